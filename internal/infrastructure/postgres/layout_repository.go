package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/clubhub-api/internal/domain/entity"
	"github.com/jhoicas/clubhub-api/internal/domain/repository"
)

// Asegura que LayoutRepo implementa repository.LayoutRepository.
var _ repository.LayoutRepository = (*LayoutRepo)(nil)

// LayoutRepo implementación del puerto LayoutRepository sobre PostgreSQL.
// El payload se guarda como JSONB con la forma exacta
// { "order": [...], "hidden": [...] }.
type LayoutRepo struct {
	pool *pgxpool.Pool
}

// NewLayoutRepository construye el adaptador de persistencia.
func NewLayoutRepository(pool *pgxpool.Pool) *LayoutRepo {
	return &LayoutRepo{pool: pool}
}

// layoutPayload los punteros distinguen "campo ausente" de "lista vacía":
// un registro sin order o sin hidden se trata como ausente, no como error.
type layoutPayload struct {
	Order  *[]string `json:"order"`
	Hidden *[]string `json:"hidden"`
}

// Get obtiene el registro de la feature key. Devuelve (nil, nil) si no
// existe, y también si el payload guardado está malformado o le falta algún
// campo: eso dispara la reconciliación por defecto en el caller.
func (r *LayoutRepo) Get(ctx context.Context, featureKey string) (*entity.LayoutRecord, error) {
	const query = `SELECT payload, updated_at FROM layout_records WHERE feature_key = $1`
	var (
		raw []byte
		rec entity.LayoutRecord
	)
	err := r.pool.QueryRow(ctx, query, featureKey).Scan(&raw, &rec.UpdatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get layout record: %w", err)
	}
	var p layoutPayload
	if err := json.Unmarshal(raw, &p); err != nil || p.Order == nil || p.Hidden == nil {
		return nil, nil
	}
	rec.FeatureKey = featureKey
	rec.Order = *p.Order
	rec.Hidden = *p.Hidden
	return &rec, nil
}

// Save reemplaza el registro completo (upsert, nunca escritura parcial).
func (r *LayoutRepo) Save(ctx context.Context, rec *entity.LayoutRecord) error {
	payload, err := json.Marshal(map[string][]string{
		"order":  rec.Order,
		"hidden": rec.Hidden,
	})
	if err != nil {
		return fmt.Errorf("marshal layout payload: %w", err)
	}
	const query = `
		INSERT INTO layout_records (feature_key, payload, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (feature_key) DO UPDATE SET
			payload    = EXCLUDED.payload,
			updated_at = EXCLUDED.updated_at`
	if _, err := r.pool.Exec(ctx, query, rec.FeatureKey, payload, rec.UpdatedAt); err != nil {
		return fmt.Errorf("save layout record: %w", err)
	}
	return nil
}
