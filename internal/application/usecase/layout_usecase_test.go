package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/clubhub-api/internal/application/dto"
	"github.com/jhoicas/clubhub-api/internal/application/usecase"
	"github.com/jhoicas/clubhub-api/internal/domain/entity"
	"github.com/jhoicas/clubhub-api/internal/domain/layout"
	"github.com/jhoicas/clubhub-api/pkg/broadcast"
	"github.com/jhoicas/clubhub-api/pkg/logger"
)

func newLayoutUC(repo *fakeLayoutRepo, bus *broadcast.Broadcaster) *usecase.LayoutUseCase {
	return usecase.NewLayoutUseCase(repo, bus, logger.Nop())
}

// Sin registro guardado: orden canónico, sin ocultos.
func TestLayoutResolve_SinRegistro_OrdenCanonico(t *testing.T) {
	uc := newLayoutUC(newFakeLayoutRepo(), broadcast.New())

	out := uc.Resolve(context.Background(), "members:tabs", []string{"a", "b", "c"})

	assert.Equal(t, []string{"a", "b", "c"}, out.Order)
	assert.Empty(t, out.Hidden)
	assert.Nil(t, out.Warning)
}

// El registro guardado se reconcilia contra los ítems canónicos actuales.
func TestLayoutResolve_ReconciliaContraCanonico(t *testing.T) {
	repo := newFakeLayoutRepo()
	repo.records["members:tabs"] = &entity.LayoutRecord{
		FeatureKey: "members:tabs",
		Order:      []string{"c", "b", "x"},
		Hidden:     []string{"b"},
		UpdatedAt:  time.Now(),
	}
	uc := newLayoutUC(repo, broadcast.New())

	out := uc.Resolve(context.Background(), "members:tabs", []string{"a", "b", "c"})

	assert.Equal(t, []string{"c", "b", "a"}, out.Order)
	assert.Equal(t, []string{"b"}, out.Hidden)
}

// Fallo de lectura: degrada al orden canónico con warning, no error.
func TestLayoutResolve_FalloDeLectura_Degrada(t *testing.T) {
	repo := newFakeLayoutRepo()
	repo.fail = true
	uc := newLayoutUC(repo, broadcast.New())

	out := uc.Resolve(context.Background(), "members:tabs", []string{"a", "b"})

	require.NotNil(t, out.Warning)
	assert.Equal(t, "LAYOUT_UNAVAILABLE", out.Warning.Code)
	assert.Equal(t, []string{"a", "b"}, out.Order)
}

// Move reconcilia primero y aplica el gesto; el guardado reemplaza el
// registro completo y publica el cambio.
func TestLayoutMove_AplicaYPublica(t *testing.T) {
	repo := newFakeLayoutRepo()
	bus := broadcast.New()
	uc := newLayoutUC(repo, bus)

	var published []layout.Record
	bus.Subscribe(usecase.KeyLayoutPrefix+"members:tabs", func(v any) {
		published = append(published, v.(layout.Record))
	})

	out, err := uc.Move(context.Background(), "members:tabs", dto.MoveLayoutRequest{
		Items:       []string{"a", "b", "c"},
		Source:      "c",
		Destination: "a",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"c", "a", "b"}, out.Order)
	require.Len(t, published, 1)
	assert.Equal(t, []string{"c", "a", "b"}, published[0].Order)

	stored := repo.records["members:tabs"]
	require.NotNil(t, stored)
	assert.Equal(t, []string{"c", "a", "b"}, stored.Order)
}

// Gesto con source ausente: no-op sobre el orden, pero igual reconcilia.
func TestLayoutMove_GestoObsoleto_NoCorrompe(t *testing.T) {
	repo := newFakeLayoutRepo()
	uc := newLayoutUC(repo, broadcast.New())

	out, err := uc.Move(context.Background(), "members:tabs", dto.MoveLayoutRequest{
		Items:       []string{"a", "b"},
		Source:      "fantasma",
		Destination: "a",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, out.Order)
}

// Guard de obsolescencia: si durante el guardado aparece otro guardado más
// nuevo para la misma key, el primero no publica (su respuesta quedó
// superada); el más nuevo sí.
func TestLayoutSave_GuardadoSuperado_NoPublica(t *testing.T) {
	repo := newFakeLayoutRepo()
	bus := broadcast.New()
	uc := newLayoutUC(repo, bus)

	var published []layout.Record
	bus.Subscribe(usecase.KeyLayoutPrefix+"k", func(v any) {
		published = append(published, v.(layout.Record))
	})

	// El primer Save dispara, todavía en vuelo, un segundo Save más nuevo.
	repo.onSave = func() {
		_, err := uc.Save(context.Background(), "k", dto.LayoutRecordPayload{
			Order: []string{"nuevo"}, Hidden: []string{},
		})
		require.NoError(t, err)
	}
	_, err := uc.Save(context.Background(), "k", dto.LayoutRecordPayload{
		Order: []string{"viejo"}, Hidden: []string{},
	})
	require.NoError(t, err)

	require.Len(t, published, 1, "solo publica el guardado más reciente")
	assert.Equal(t, []string{"nuevo"}, published[0].Order)
}

// Claves vacías se rechazan.
func TestLayoutSave_KeyVacia_EsInvalida(t *testing.T) {
	uc := newLayoutUC(newFakeLayoutRepo(), broadcast.New())
	_, err := uc.Save(context.Background(), "", dto.LayoutRecordPayload{})
	assert.Error(t, err)
}
