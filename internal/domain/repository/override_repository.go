package repository

import (
	"context"

	"github.com/jhoicas/clubhub-api/internal/domain/entity"
)

// ClubOverrideRepository puerto de persistencia para el recorte de módulos
// por (club, rol). La localidad del almacenamiento es intercambiable
// (remoto o local al cliente): el resolver solo conoce este puerto.
// Get devuelve (nil, nil) si no hay override: la resolución cae a la
// allow-list del rol.
type ClubOverrideRepository interface {
	Get(ctx context.Context, clubID, role string) (*entity.ClubOverride, error)
	Save(ctx context.Context, override *entity.ClubOverride) error
	// Delete elimina el override (revertir al allow-list). Borrar uno
	// inexistente no es error.
	Delete(ctx context.Context, clubID, role string) error
}
