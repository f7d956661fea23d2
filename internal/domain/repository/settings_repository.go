package repository

import (
	"context"

	"github.com/jhoicas/clubhub-api/internal/domain/entity"
)

// RoleSettingsRepository puerto de persistencia para la configuración de UI
// por rol (allow-list del super-admin). La implementación vive en
// infrastructure. Get devuelve (nil, nil) si el rol no tiene registro
// guardado: el caller cae a los defaults del catálogo, nunca es error.
type RoleSettingsRepository interface {
	Get(ctx context.Context, role string) (*entity.RoleUISettings, error)
	Save(ctx context.Context, settings *entity.RoleUISettings) error
	Reset(ctx context.Context, role string) error
}
