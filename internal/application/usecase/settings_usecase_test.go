package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/clubhub-api/internal/application/dto"
	"github.com/jhoicas/clubhub-api/internal/application/usecase"
	"github.com/jhoicas/clubhub-api/internal/domain"
	"github.com/jhoicas/clubhub-api/internal/domain/catalog"
	"github.com/jhoicas/clubhub-api/internal/domain/entity"
	"github.com/jhoicas/clubhub-api/pkg/broadcast"
)

// Sin registro guardado devuelve los defaults del catálogo marcados como tal.
func TestSettingsGet_SinRegistro_DevuelveDefaults(t *testing.T) {
	uc := usecase.NewRoleSettingsUseCase(newFakeSettingsRepo(), broadcast.New())

	out, err := uc.Get(context.Background(), entity.RoleCoach)
	require.NoError(t, err)

	assert.True(t, out.Defaults)
	assert.Equal(t, catalog.DefaultAllowList(entity.RoleCoach), out.AllowedModules)
}

func TestSettingsGet_RolDesconocido(t *testing.T) {
	uc := usecase.NewRoleSettingsUseCase(newFakeSettingsRepo(), broadcast.New())

	_, err := uc.Get(context.Background(), "ROL_FANTASMA")
	assert.ErrorIs(t, err, domain.ErrUnknownRole)
}

// Update reemplaza el registro completo y publica la nueva allow-list.
func TestSettingsUpdate_GuardaYPublica(t *testing.T) {
	repo := newFakeSettingsRepo()
	bus := broadcast.New()
	uc := usecase.NewRoleSettingsUseCase(repo, bus)

	var published [][]string
	bus.Subscribe(usecase.KeySettingsPrefix+entity.RoleAthlete, func(v any) {
		published = append(published, v.([]string))
	})

	out, err := uc.Update(context.Background(), entity.RoleAthlete, dto.UpdateRoleSettingsRequest{
		AllowedModules: []string{catalog.ModuleDashboard, catalog.ModuleShop},
		PrimaryColor:   "#0044aa",
	})
	require.NoError(t, err)

	assert.False(t, out.Defaults)
	assert.Equal(t, []string{catalog.ModuleDashboard, catalog.ModuleShop}, out.AllowedModules)
	assert.Equal(t, "#0044aa", out.PrimaryColor)
	require.Len(t, published, 1)
	assert.Equal(t, []string{catalog.ModuleDashboard, catalog.ModuleShop}, published[0])
}

// Identificadores desconocidos en la allow-list no son error: se conservan
// tal cual (el resolver los ignora al renderizar).
func TestSettingsUpdate_IDsDesconocidosSeConservan(t *testing.T) {
	repo := newFakeSettingsRepo()
	uc := usecase.NewRoleSettingsUseCase(repo, broadcast.New())

	out, err := uc.Update(context.Background(), entity.RoleClub, dto.UpdateRoleSettingsRequest{
		AllowedModules: []string{catalog.ModuleDashboard, "modulo-futuro"},
	})
	require.NoError(t, err)
	assert.Contains(t, out.AllowedModules, "modulo-futuro")
}

// Reset elimina el registro, publica los defaults y el Get siguiente vuelve
// a verlos como defaults.
func TestSettingsReset_VuelveADefaults(t *testing.T) {
	repo := newFakeSettingsRepo()
	bus := broadcast.New()
	uc := usecase.NewRoleSettingsUseCase(repo, bus)

	_, err := uc.Update(context.Background(), entity.RoleCoach, dto.UpdateRoleSettingsRequest{
		AllowedModules: []string{catalog.ModuleDashboard},
	})
	require.NoError(t, err)

	var published [][]string
	bus.Subscribe(usecase.KeySettingsPrefix+entity.RoleCoach, func(v any) {
		published = append(published, v.([]string))
	})

	out, err := uc.Reset(context.Background(), entity.RoleCoach)
	require.NoError(t, err)

	assert.True(t, out.Defaults)
	assert.Equal(t, catalog.DefaultAllowList(entity.RoleCoach), out.AllowedModules)
	require.Len(t, published, 1)
	assert.Equal(t, catalog.DefaultAllowList(entity.RoleCoach), published[0])
}

func TestSettingsUpdate_FalloDePersistencia(t *testing.T) {
	repo := newFakeSettingsRepo()
	repo.fail = true
	uc := usecase.NewRoleSettingsUseCase(repo, broadcast.New())

	_, err := uc.Update(context.Background(), entity.RoleCoach, dto.UpdateRoleSettingsRequest{})
	assert.Error(t, err)
}
