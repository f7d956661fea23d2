package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/clubhub-api/internal/application/dto"
	"github.com/jhoicas/clubhub-api/internal/domain"
	"github.com/jhoicas/clubhub-api/internal/domain/catalog"
	"github.com/jhoicas/clubhub-api/internal/domain/entity"
	"github.com/jhoicas/clubhub-api/internal/domain/navigation"
	"github.com/jhoicas/clubhub-api/internal/domain/repository"
	"github.com/jhoicas/clubhub-api/pkg/broadcast"
)

// ClubOverrideUseCase administra el recorte de módulos por (club, rol).
// El override se guarda tal cual lo envía el admin del club: los
// identificadores fuera de la allow-list vigente no son error — quedan
// persistidos y el resolver los excluye en silencio (la allow-list puede
// cambiar después y legitimarlos).
type ClubOverrideUseCase struct {
	overrideRepo repository.ClubOverrideRepository
	settingsRepo repository.RoleSettingsRepository
	bus          *broadcast.Broadcaster
}

// NewClubOverrideUseCase construye el caso de uso.
func NewClubOverrideUseCase(
	overrideRepo repository.ClubOverrideRepository,
	settingsRepo repository.RoleSettingsRepository,
	bus *broadcast.Broadcaster,
) *ClubOverrideUseCase {
	return &ClubOverrideUseCase{overrideRepo: overrideRepo, settingsRepo: settingsRepo, bus: bus}
}

// Get devuelve el override del club para un rol, junto con el subconjunto
// efectivo tras recortar contra la allow-list vigente. Sin override devuelve
// (nil, nil): el caller sabe que se cae a la allow-list.
func (uc *ClubOverrideUseCase) Get(ctx context.Context, clubID, role string) (*dto.ClubOverrideResponse, error) {
	if !catalog.KnownRole(role) {
		return nil, domain.ErrUnknownRole
	}
	ov, err := uc.overrideRepo.Get(ctx, clubID, role)
	if err != nil {
		return nil, err
	}
	if ov == nil {
		return nil, nil
	}
	return uc.toResponse(ctx, ov), nil
}

// Save reemplaza el override del club (se crea en la primera edición).
func (uc *ClubOverrideUseCase) Save(ctx context.Context, clubID, role string, in dto.SaveClubOverrideRequest) (*dto.ClubOverrideResponse, error) {
	if !catalog.KnownRole(role) {
		return nil, domain.ErrUnknownRole
	}
	if clubID == "" {
		return nil, domain.ErrInvalidInput
	}
	modules := in.Modules
	if modules == nil {
		modules = []string{}
	}
	now := time.Now()
	ov := &entity.ClubOverride{
		ID:        uuid.New().String(),
		ClubID:    clubID,
		Role:      role,
		Modules:   modules,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.overrideRepo.Save(ctx, ov); err != nil {
		return nil, err
	}
	uc.bus.Publish(KeyOverridePrefix+clubID+":"+role, modules)
	return uc.toResponse(ctx, ov), nil
}

// Delete revierte el override: elimina la entrada y la resolución vuelve a
// la allow-list del rol. Borrar uno inexistente no es error.
func (uc *ClubOverrideUseCase) Delete(ctx context.Context, clubID, role string) error {
	if !catalog.KnownRole(role) {
		return domain.ErrUnknownRole
	}
	if err := uc.overrideRepo.Delete(ctx, clubID, role); err != nil {
		return err
	}
	uc.bus.Publish(KeyOverridePrefix+clubID+":"+role, nil)
	return nil
}

func (uc *ClubOverrideUseCase) toResponse(ctx context.Context, ov *entity.ClubOverride) *dto.ClubOverrideResponse {
	allowList := catalog.DefaultAllowList(ov.Role)
	if s, err := uc.settingsRepo.Get(ctx, ov.Role); err == nil && s != nil {
		allowList = s.AllowedModules
	}
	resolver := navigation.NewResolver(catalog.Modules(), nil, catalog.PermissionFor)
	effective := resolver.EffectiveAllowList(ov.Role, allowList, ov.Modules)
	return &dto.ClubOverrideResponse{
		ClubID:    ov.ClubID,
		Role:      ov.Role,
		Modules:   ov.Modules,
		Effective: effective,
	}
}
