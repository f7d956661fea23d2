package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/clubhub-api/internal/domain/entity"
	"github.com/jhoicas/clubhub-api/internal/domain/repository"
)

// Asegura que ClubOverrideRepo implementa repository.ClubOverrideRepository.
var _ repository.ClubOverrideRepository = (*ClubOverrideRepo)(nil)

// ClubOverrideRepo implementación del puerto ClubOverrideRepository sobre
// PostgreSQL. Una fila por (club, rol).
type ClubOverrideRepo struct {
	pool *pgxpool.Pool
}

// NewClubOverrideRepository construye el adaptador de persistencia.
func NewClubOverrideRepository(pool *pgxpool.Pool) *ClubOverrideRepo {
	return &ClubOverrideRepo{pool: pool}
}

// Get obtiene el override del club para un rol. (nil, nil) si no existe.
func (r *ClubOverrideRepo) Get(ctx context.Context, clubID, role string) (*entity.ClubOverride, error) {
	const query = `
		SELECT id, club_id, role, modules, created_at, updated_at
		FROM club_module_overrides WHERE club_id = $1 AND role = $2`
	var ov entity.ClubOverride
	err := r.pool.QueryRow(ctx, query, clubID, role).Scan(
		&ov.ID, &ov.ClubID, &ov.Role, &ov.Modules, &ov.CreatedAt, &ov.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get club override: %w", err)
	}
	return &ov, nil
}

// Save crea o reemplaza el override del (club, rol).
func (r *ClubOverrideRepo) Save(ctx context.Context, ov *entity.ClubOverride) error {
	const query = `
		INSERT INTO club_module_overrides (id, club_id, role, modules, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (club_id, role) DO UPDATE SET
			modules    = EXCLUDED.modules,
			updated_at = EXCLUDED.updated_at`
	_, err := r.pool.Exec(ctx, query,
		ov.ID, ov.ClubID, ov.Role, ov.Modules, ov.CreatedAt, ov.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("save club override: %w", err)
	}
	return nil
}

// Delete elimina el override (revertir). Borrar uno inexistente no es error.
func (r *ClubOverrideRepo) Delete(ctx context.Context, clubID, role string) error {
	const query = `DELETE FROM club_module_overrides WHERE club_id = $1 AND role = $2`
	if _, err := r.pool.Exec(ctx, query, clubID, role); err != nil {
		return fmt.Errorf("delete club override: %w", err)
	}
	return nil
}
