package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/clubhub-api/internal/application/auth"
	"github.com/jhoicas/clubhub-api/internal/application/usecase"
	"github.com/jhoicas/clubhub-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	NavigationUC *usecase.NavigationUseCase
	SettingsUC   *usecase.RoleSettingsUseCase
	OverrideUC   *usecase.ClubOverrideUseCase
	LayoutUC     *usecase.LayoutUseCase
	GroupsUC     *usecase.GroupAssignmentUseCase
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Navegación resuelta (cualquier usuario autenticado)
	navHandler := NewNavigationHandler(deps.NavigationUC)
	protected.Get("/navigation", navHandler.Resolve)
	protected.Get("/navigation/preview",
		RequireRole(entity.RoleSuperAdmin), navHandler.Preview)

	// Configuración de UI por rol y grupos del sidebar (solo super-admin)
	admin := protected.Group("/admin", RequireRole(entity.RoleSuperAdmin))
	settingsHandler := NewRoleSettingsHandler(deps.SettingsUC)
	admin.Get("/roles/:role/ui-settings", settingsHandler.Get)
	admin.Put("/roles/:role/ui-settings", settingsHandler.Update)
	admin.Post("/roles/:role/ui-settings/reset", settingsHandler.Reset)

	groupsHandler := NewGroupsHandler(deps.GroupsUC)
	admin.Delete("/roles/groups", groupsHandler.ResetAll)
	admin.Get("/roles/:role/groups", groupsHandler.Get)
	admin.Put("/roles/:role/groups", groupsHandler.Save)
	admin.Post("/roles/:role/groups/move", groupsHandler.Move)
	admin.Post("/roles/:role/groups/reorder", groupsHandler.Reorder)
	admin.Delete("/roles/:role/groups", groupsHandler.Reset)

	// Override por club (admin del club o super-admin; el handler confina
	// al club admin a su propio club)
	overrideHandler := NewClubOverrideHandler(deps.OverrideUC)
	clubs := protected.Group("/clubs",
		RequireRole(entity.RoleSuperAdmin, entity.RoleClubAdmin))
	clubs.Get("/:clubId/roles/:role/modules", overrideHandler.Get)
	clubs.Put("/:clubId/roles/:role/modules", overrideHandler.Save)
	clubs.Delete("/:clubId/roles/:role/modules", overrideHandler.Delete)

	// Layouts orden/ocultos por feature key (usuario autenticado)
	layoutHandler := NewLayoutHandler(deps.LayoutUC)
	layouts := protected.Group("/layouts")
	layouts.Post("/:key/resolve", layoutHandler.Resolve)
	layouts.Put("/:key", layoutHandler.Save)
	layouts.Post("/:key/move", layoutHandler.Move)
}
