package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/clubhub-api/internal/application/dto"
	"github.com/jhoicas/clubhub-api/internal/application/usecase"
)

// NavigationHandler expone la navegación resuelta. El sidebar, el tab strip
// y los pickers del frontend consumen este único endpoint: ninguna página
// re-deriva el filtrado allow-list ∩ override ∩ búsqueda.
type NavigationHandler struct {
	uc *usecase.NavigationUseCase
}

// NewNavigationHandler construye el handler.
func NewNavigationHandler(uc *usecase.NavigationUseCase) *NavigationHandler {
	return &NavigationHandler{uc: uc}
}

// Resolve godoc
// @Summary      Navegación visible del usuario autenticado
// @Tags         navigation
// @Produce      json
// @Param        search  query  string  false  "Término de búsqueda"
// @Success      200     {object}  dto.NavigationResponse
// @Security     BearerAuth
// @Router       /api/navigation [get]
func (h *NavigationHandler) Resolve(c *fiber.Ctx) error {
	role := GetRole(c)
	if role == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_ROLE", Message: "token sin rol"})
	}
	// Un rol desconocido (ej. de un token emitido por una versión más nueva)
	// produce una vista vacía, nunca un error.
	out := h.uc.Resolve(c.Context(), role, GetClubID(c), c.Query("search"))
	return c.JSON(out)
}

// Preview godoc
// @Summary      Previsualizar la navegación de cualquier rol/club (solo super-admin)
// @Tags         navigation
// @Produce      json
// @Param        role     query  string  true   "Rol a previsualizar"
// @Param        club_id  query  string  false  "Club a previsualizar"
// @Param        search   query  string  false  "Término de búsqueda"
// @Success      200      {object}  dto.NavigationResponse
// @Security     BearerAuth
// @Router       /api/navigation/preview [get]
func (h *NavigationHandler) Preview(c *fiber.Ctx) error {
	role := c.Query("role")
	if role == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "role es requerido"})
	}
	out := h.uc.Resolve(c.Context(), role, c.Query("club_id"), c.Query("search"))
	return c.JSON(out)
}
