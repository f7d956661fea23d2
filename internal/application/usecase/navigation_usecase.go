package usecase

import (
	"context"

	"github.com/jhoicas/clubhub-api/internal/application/dto"
	"github.com/jhoicas/clubhub-api/internal/domain/catalog"
	"github.com/jhoicas/clubhub-api/internal/domain/entity"
	"github.com/jhoicas/clubhub-api/internal/domain/navigation"
	"github.com/jhoicas/clubhub-api/internal/domain/repository"
	"github.com/jhoicas/clubhub-api/pkg/logger"
)

// NavigationUseCase resuelve la navegación visible para un rol/club. Es el
// único punto de la aplicación que compone allow-list, override de club,
// permisos y búsqueda: sidebar, tab strip y pickers son proyecciones de su
// salida, no reimplementan el filtrado.
type NavigationUseCase struct {
	settingsRepo repository.RoleSettingsRepository
	overrideRepo repository.ClubOverrideRepository
	groupRepo    repository.GroupAssignmentRepository
	log          *logger.Logger
}

// NewNavigationUseCase construye el caso de uso de navegación.
func NewNavigationUseCase(
	settingsRepo repository.RoleSettingsRepository,
	overrideRepo repository.ClubOverrideRepository,
	groupRepo repository.GroupAssignmentRepository,
	log *logger.Logger,
) *NavigationUseCase {
	return &NavigationUseCase{
		settingsRepo: settingsRepo,
		overrideRepo: overrideRepo,
		groupRepo:    groupRepo,
		log:          log.Component("navigation"),
	}
}

// Resolve produce la vista de navegación para un rol, recortada por el club
// si hay override. Un fallo de lectura remota degrada a defaults con un
// warning en la respuesta; jamás interrumpe el renderizado.
func (uc *NavigationUseCase) Resolve(ctx context.Context, role, clubID, search string) *dto.NavigationResponse {
	var warning *dto.WarningResponse

	allowList := catalog.DefaultAllowList(role)
	settings, err := uc.settingsRepo.Get(ctx, role)
	switch {
	case err != nil:
		uc.log.Warn().Err(err).Str("role", role).Msg("fallo leyendo ui-settings, usando defaults del catálogo")
		warning = &dto.WarningResponse{Code: "SETTINGS_UNAVAILABLE", Message: "configuración remota no disponible, mostrando módulos por defecto"}
	case settings != nil:
		allowList = settings.AllowedModules
	}

	var override []string
	if clubID != "" {
		ov, err := uc.overrideRepo.Get(ctx, clubID, role)
		if err != nil {
			uc.log.Warn().Err(err).Str("club_id", clubID).Str("role", role).Msg("fallo leyendo override de club, resolviendo sin override")
			if warning == nil {
				warning = &dto.WarningResponse{Code: "OVERRIDE_UNAVAILABLE", Message: "configuración del club no disponible, mostrando la configuración del rol"}
			}
		} else if ov != nil {
			override = ov.Modules
			if override == nil {
				override = []string{} // override vacío explícito: el club ocultó todo
			}
		}
	}

	groups := uc.groupsFor(ctx, role)
	resolver := navigation.NewResolver(catalog.Modules(), groups, catalog.PermissionFor)
	view := resolver.Resolve(role, allowList, override, search)

	resp := &dto.NavigationResponse{Role: role, Groups: toNavigationGroups(view), Warning: warning}
	return resp
}

// groupsFor asignación de grupos vigente del rol: la guardada por el
// super-admin o, en su defecto, el catálogo.
func (uc *NavigationUseCase) groupsFor(ctx context.Context, role string) []entity.Group {
	stored, err := uc.groupRepo.Get(ctx, role)
	if err != nil {
		uc.log.Warn().Err(err).Str("role", role).Msg("fallo leyendo asignación de grupos, usando catálogo")
		return catalog.Groups()
	}
	if stored == nil {
		return catalog.Groups()
	}
	return stored
}

func toNavigationGroups(view navigation.View) []dto.NavigationGroup {
	out := make([]dto.NavigationGroup, 0, len(view.Groups))
	for _, g := range view.Groups {
		ng := dto.NavigationGroup{ID: g.Group.ID, Label: g.Group.Label, Color: g.Group.Color}
		for _, it := range g.Items {
			ni := dto.NavigationItem{
				ID:      it.Module.ID,
				Label:   it.Module.Label,
				Icon:    it.Module.Icon,
				Matched: it.Matched,
			}
			for _, c := range it.Children {
				ni.Children = append(ni.Children, dto.NavigationItem{
					ID: c.ID, Label: c.Label, Icon: c.Icon, Matched: true,
				})
			}
			ng.Items = append(ng.Items, ni)
		}
		out = append(out, ng)
	}
	return out
}
