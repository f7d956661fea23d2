package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/clubhub-api/internal/application/dto"
	"github.com/jhoicas/clubhub-api/internal/domain"
	"github.com/jhoicas/clubhub-api/internal/domain/entity"
	"github.com/jhoicas/clubhub-api/internal/domain/layout"
	"github.com/jhoicas/clubhub-api/internal/domain/repository"
	"github.com/jhoicas/clubhub-api/pkg/broadcast"
	"github.com/jhoicas/clubhub-api/pkg/logger"
)

// LayoutUseCase administra registros orden/ocultos por feature key. La key
// es opaca: la feature dueña de la key aporta sus ítems canónicos en cada
// llamada y recibe el registro reconciliado. Dos guardados en vuelo sobre la
// misma key compiten con last-writer-wins; el guard de secuencia descarta la
// publicación del perdedor para que una respuesta fuera de orden no pise
// estado más fresco en los suscriptores.
type LayoutUseCase struct {
	repo  repository.LayoutRepository
	bus   *broadcast.Broadcaster
	guard staleGuard
	log   *logger.Logger
}

// NewLayoutUseCase construye el caso de uso de layouts.
func NewLayoutUseCase(repo repository.LayoutRepository, bus *broadcast.Broadcaster, log *logger.Logger) *LayoutUseCase {
	return &LayoutUseCase{repo: repo, bus: bus, log: log.Component("layout")}
}

// Resolve reconcilia el registro guardado de la key contra los ítems
// canónicos actuales. Un registro ausente o malformado produce el orden
// canónico sin ocultos; un fallo de lectura degrada igual, con warning.
func (uc *LayoutUseCase) Resolve(ctx context.Context, featureKey string, items []string) *dto.LayoutResponse {
	var warning *dto.WarningResponse
	stored, err := uc.repo.Get(ctx, featureKey)
	if err != nil {
		uc.log.Warn().Err(err).Str("feature_key", featureKey).Msg("fallo leyendo layout, usando orden canónico")
		warning = &dto.WarningResponse{Code: "LAYOUT_UNAVAILABLE", Message: "orden guardado no disponible, usando orden por defecto"}
		stored = nil
	}
	rec := layout.Reconcile(toRecord(stored), items)
	return &dto.LayoutResponse{FeatureKey: featureKey, Order: rec.Order, Hidden: rec.Hidden, Warning: warning}
}

// Save reemplaza el registro completo de la key y publica el cambio.
func (uc *LayoutUseCase) Save(ctx context.Context, featureKey string, in dto.LayoutRecordPayload) (*dto.LayoutResponse, error) {
	if featureKey == "" {
		return nil, domain.ErrInvalidInput
	}
	rec := layout.Record{Order: in.Order, Hidden: in.Hidden}
	if rec.Order == nil {
		rec.Order = []string{}
	}
	if rec.Hidden == nil {
		rec.Hidden = []string{}
	}
	return uc.persist(ctx, featureKey, rec)
}

// Move aplica un gesto de reordenado sobre el registro de la key: primero
// reconcilia contra los ítems canónicos, luego mueve source a la posición
// de destination. Un gesto con identificadores ausentes es un no-op que aun
// así deja el registro reconciliado.
func (uc *LayoutUseCase) Move(ctx context.Context, featureKey string, in dto.MoveLayoutRequest) (*dto.LayoutResponse, error) {
	if featureKey == "" {
		return nil, domain.ErrInvalidInput
	}
	stored, err := uc.repo.Get(ctx, featureKey)
	if err != nil {
		return nil, err
	}
	rec := layout.Reconcile(toRecord(stored), in.Items)
	rec.Order = layout.Reorder(rec.Order, in.Source, in.Destination)
	return uc.persist(ctx, featureKey, rec)
}

func (uc *LayoutUseCase) persist(ctx context.Context, featureKey string, rec layout.Record) (*dto.LayoutResponse, error) {
	seq := uc.guard.begin(featureKey)
	err := uc.repo.Save(ctx, &entity.LayoutRecord{
		FeatureKey: featureKey,
		Order:      rec.Order,
		Hidden:     rec.Hidden,
		UpdatedAt:  time.Now(),
	})
	if err != nil {
		return nil, err
	}
	// Solo el guardado más reciente de la key publica: una respuesta tardía
	// de un guardado superado se descarta.
	if uc.guard.current(featureKey, seq) {
		uc.bus.Publish(KeyLayoutPrefix+featureKey, rec)
	}
	return &dto.LayoutResponse{FeatureKey: featureKey, Order: rec.Order, Hidden: rec.Hidden}, nil
}

func toRecord(stored *entity.LayoutRecord) *layout.Record {
	if stored == nil {
		return nil
	}
	return &layout.Record{Order: stored.Order, Hidden: stored.Hidden}
}

// staleGuard secuencia monótona por clave para descartar resultados de
// operaciones superadas por otra más nueva sobre la misma clave.
type staleGuard struct {
	mu  sync.Mutex
	seq map[string]uint64
}

func (g *staleGuard) begin(key string) uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.seq == nil {
		g.seq = make(map[string]uint64)
	}
	g.seq[key]++
	return g.seq[key]
}

func (g *staleGuard) current(key string, seq uint64) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.seq[key] == seq
}
