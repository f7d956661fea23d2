package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/clubhub-api/internal/application/dto"
	"github.com/jhoicas/clubhub-api/internal/domain"
	"github.com/jhoicas/clubhub-api/internal/domain/catalog"
	"github.com/jhoicas/clubhub-api/internal/domain/entity"
	"github.com/jhoicas/clubhub-api/internal/domain/repository"
	"github.com/jhoicas/clubhub-api/pkg/broadcast"
)

// Claves del broadcaster. Espacio plano de strings: claves iguales fusionan
// suscriptores.
const (
	KeySettingsPrefix = "ui-settings:" // + role
	KeyGroupsPrefix   = "nav-groups:"  // + role
	KeyLayoutPrefix   = "layout:"      // + feature key
	KeyOverridePrefix = "club-override:" // + clubID + ":" + role
)

// RoleSettingsUseCase administra la configuración de UI por rol (allow-list
// del super-admin). Cada cambio se publica en el broadcaster para que los
// consumidores re-resuelvan sin polling.
type RoleSettingsUseCase struct {
	repo repository.RoleSettingsRepository
	bus  *broadcast.Broadcaster
}

// NewRoleSettingsUseCase construye el caso de uso.
func NewRoleSettingsUseCase(repo repository.RoleSettingsRepository, bus *broadcast.Broadcaster) *RoleSettingsUseCase {
	return &RoleSettingsUseCase{repo: repo, bus: bus}
}

// Get devuelve la configuración vigente del rol; si no hay registro, los
// defaults del catálogo con Defaults=true.
func (uc *RoleSettingsUseCase) Get(ctx context.Context, role string) (*dto.RoleSettingsResponse, error) {
	if !catalog.KnownRole(role) {
		return nil, domain.ErrUnknownRole
	}
	s, err := uc.repo.Get(ctx, role)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return &dto.RoleSettingsResponse{
			Role:           role,
			AllowedModules: catalog.DefaultAllowList(role),
			Defaults:       true,
		}, nil
	}
	return &dto.RoleSettingsResponse{
		Role:           s.Role,
		AllowedModules: s.AllowedModules,
		PrimaryColor:   s.PrimaryColor,
		SecondaryColor: s.SecondaryColor,
		Widgets:        s.Widgets,
		UpdatedAt:      s.UpdatedAt,
	}, nil
}

// Update reemplaza la configuración del rol (un registro por rol, nunca se
// borra). Identificadores desconocidos en la allow-list no son error: se
// conservan y el resolver los ignora; pueden pertenecer a una versión más
// nueva del catálogo aún no desplegada aquí.
func (uc *RoleSettingsUseCase) Update(ctx context.Context, role string, in dto.UpdateRoleSettingsRequest) (*dto.RoleSettingsResponse, error) {
	if !catalog.KnownRole(role) {
		return nil, domain.ErrUnknownRole
	}
	s := &entity.RoleUISettings{
		Role:           role,
		AllowedModules: in.AllowedModules,
		PrimaryColor:   in.PrimaryColor,
		SecondaryColor: in.SecondaryColor,
		Widgets:        in.Widgets,
		UpdatedAt:      time.Now(),
	}
	if s.AllowedModules == nil {
		s.AllowedModules = []string{}
	}
	if err := uc.repo.Save(ctx, s); err != nil {
		return nil, err
	}
	uc.bus.Publish(KeySettingsPrefix+role, s.AllowedModules)
	return uc.Get(ctx, role)
}

// Reset restablece el rol a los defaults del catálogo eliminando el registro
// guardado.
func (uc *RoleSettingsUseCase) Reset(ctx context.Context, role string) (*dto.RoleSettingsResponse, error) {
	if !catalog.KnownRole(role) {
		return nil, domain.ErrUnknownRole
	}
	if err := uc.repo.Reset(ctx, role); err != nil {
		return nil, err
	}
	uc.bus.Publish(KeySettingsPrefix+role, catalog.DefaultAllowList(role))
	return uc.Get(ctx, role)
}
