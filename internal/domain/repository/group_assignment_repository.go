package repository

import (
	"context"

	"github.com/jhoicas/clubhub-api/internal/domain/entity"
)

// GroupAssignmentRepository puerto de persistencia para la asignación de
// grupos de navegación por rol (override global del sidebar que edita el
// super-admin con drag-and-drop). Get devuelve (nil, nil) si el rol usa el
// catálogo por defecto.
type GroupAssignmentRepository interface {
	Get(ctx context.Context, role string) ([]entity.Group, error)
	Save(ctx context.Context, role string, groups []entity.Group) error
	// Reset elimina la asignación del rol; ResetAll la de todos los roles.
	Reset(ctx context.Context, role string) error
	ResetAll(ctx context.Context) error
}
