package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/clubhub-api/internal/domain/entity"
	"github.com/jhoicas/clubhub-api/internal/domain/repository"
)

// Asegura que RoleSettingsRepo implementa repository.RoleSettingsRepository.
var _ repository.RoleSettingsRepository = (*RoleSettingsRepo)(nil)

// RoleSettingsRepo implementación del puerto RoleSettingsRepository sobre
// PostgreSQL. Un registro por rol (PK role).
type RoleSettingsRepo struct {
	pool *pgxpool.Pool
}

// NewRoleSettingsRepository construye el adaptador de persistencia.
func NewRoleSettingsRepository(pool *pgxpool.Pool) *RoleSettingsRepo {
	return &RoleSettingsRepo{pool: pool}
}

// Get obtiene la configuración de UI del rol. (nil, nil) si no hay registro.
func (r *RoleSettingsRepo) Get(ctx context.Context, role string) (*entity.RoleUISettings, error) {
	const query = `
		SELECT role, allowed_modules, primary_color, secondary_color, widgets, updated_at
		FROM role_ui_settings WHERE role = $1`
	var s entity.RoleUISettings
	err := r.pool.QueryRow(ctx, query, role).Scan(
		&s.Role, &s.AllowedModules, &s.PrimaryColor, &s.SecondaryColor, &s.Widgets, &s.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get role ui settings: %w", err)
	}
	return &s, nil
}

// Save reemplaza la configuración del rol (upsert).
func (r *RoleSettingsRepo) Save(ctx context.Context, s *entity.RoleUISettings) error {
	const query = `
		INSERT INTO role_ui_settings (role, allowed_modules, primary_color, secondary_color, widgets, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (role) DO UPDATE SET
			allowed_modules = EXCLUDED.allowed_modules,
			primary_color   = EXCLUDED.primary_color,
			secondary_color = EXCLUDED.secondary_color,
			widgets         = EXCLUDED.widgets,
			updated_at      = EXCLUDED.updated_at`
	_, err := r.pool.Exec(ctx, query,
		s.Role, s.AllowedModules, s.PrimaryColor, s.SecondaryColor, s.Widgets, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("save role ui settings: %w", err)
	}
	return nil
}

// Reset elimina el registro del rol: la siguiente lectura cae a los
// defaults del catálogo.
func (r *RoleSettingsRepo) Reset(ctx context.Context, role string) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM role_ui_settings WHERE role = $1`, role); err != nil {
		return fmt.Errorf("reset role ui settings: %w", err)
	}
	return nil
}

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
