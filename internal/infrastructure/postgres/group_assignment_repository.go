package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/clubhub-api/internal/domain/entity"
	"github.com/jhoicas/clubhub-api/internal/domain/repository"
)

// Asegura que GroupAssignmentRepo implementa el puerto.
var _ repository.GroupAssignmentRepository = (*GroupAssignmentRepo)(nil)

// GroupAssignmentRepo implementación del puerto GroupAssignmentRepository
// sobre PostgreSQL. La asignación completa del rol se guarda como JSONB: se
// reemplaza entera en cada edición, igual que los layout records.
type GroupAssignmentRepo struct {
	pool *pgxpool.Pool
}

// NewGroupAssignmentRepository construye el adaptador de persistencia.
func NewGroupAssignmentRepository(pool *pgxpool.Pool) *GroupAssignmentRepo {
	return &GroupAssignmentRepo{pool: pool}
}

// Get obtiene la asignación de grupos del rol. (nil, nil) si el rol usa el
// catálogo por defecto o si el JSON guardado está malformado.
func (r *GroupAssignmentRepo) Get(ctx context.Context, role string) ([]entity.Group, error) {
	const query = `SELECT groups FROM nav_group_assignments WHERE role = $1`
	var raw []byte
	if err := r.pool.QueryRow(ctx, query, role).Scan(&raw); err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get group assignment: %w", err)
	}
	var groups []entity.Group
	if err := json.Unmarshal(raw, &groups); err != nil {
		return nil, nil
	}
	return groups, nil
}

// Save reemplaza la asignación completa del rol (upsert).
func (r *GroupAssignmentRepo) Save(ctx context.Context, role string, groups []entity.Group) error {
	raw, err := json.Marshal(groups)
	if err != nil {
		return fmt.Errorf("marshal group assignment: %w", err)
	}
	const query = `
		INSERT INTO nav_group_assignments (role, groups, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (role) DO UPDATE SET
			groups     = EXCLUDED.groups,
			updated_at = EXCLUDED.updated_at`
	if _, err := r.pool.Exec(ctx, query, role, raw, time.Now()); err != nil {
		return fmt.Errorf("save group assignment: %w", err)
	}
	return nil
}

// Reset elimina la asignación del rol.
func (r *GroupAssignmentRepo) Reset(ctx context.Context, role string) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM nav_group_assignments WHERE role = $1`, role); err != nil {
		return fmt.Errorf("reset group assignment: %w", err)
	}
	return nil
}

// ResetAll elimina las asignaciones de todos los roles.
func (r *GroupAssignmentRepo) ResetAll(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM nav_group_assignments`); err != nil {
		return fmt.Errorf("reset all group assignments: %w", err)
	}
	return nil
}
