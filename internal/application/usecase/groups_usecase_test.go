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

func newGroupsUC(repo *fakeGroupRepo, bus *broadcast.Broadcaster) *usecase.GroupAssignmentUseCase {
	return usecase.NewGroupAssignmentUseCase(repo, bus)
}

func groupByID(t *testing.T, groups []dto.GroupPayload, id string) dto.GroupPayload {
	t.Helper()
	for _, g := range groups {
		if g.ID == id {
			return g
		}
	}
	t.Fatalf("grupo %q no encontrado", id)
	return dto.GroupPayload{}
}

// Sin asignación guardada el rol usa el catálogo, marcado como defaults.
func TestGroupsGet_SinRegistro_UsaCatalogo(t *testing.T) {
	uc := newGroupsUC(newFakeGroupRepo(), broadcast.New())

	out, err := uc.Get(context.Background(), entity.RoleCoach)
	require.NoError(t, err)

	assert.True(t, out.Defaults)
	require.Len(t, out.Groups, 4)
	assert.Equal(t, catalog.GroupGeneral, out.Groups[0].ID)
}

// Save descarta en silencio las apariciones repetidas de un módulo en
// grupos posteriores, conservando la primera.
func TestGroupsSave_DedupeTopLevel(t *testing.T) {
	uc := newGroupsUC(newFakeGroupRepo(), broadcast.New())

	out, err := uc.Save(context.Background(), entity.RoleCoach, dto.SaveGroupAssignmentRequest{
		Groups: []dto.GroupPayload{
			{ID: "a", Label: "A", Members: []string{catalog.ModuleDashboard, catalog.ModuleMembers}},
			{ID: "b", Label: "B", Members: []string{catalog.ModuleMembers, catalog.ModuleEvents}},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{catalog.ModuleDashboard, catalog.ModuleMembers}, groupByID(t, out.Groups, "a").Members)
	assert.Equal(t, []string{catalog.ModuleEvents}, groupByID(t, out.Groups, "b").Members)
}

// Mover un módulo entre grupos lo da de baja en el origen y de alta delante
// del ítem destino; el resultado se persiste y se publica.
func TestGroupsMoveModule_EntreGrupos(t *testing.T) {
	repo := newFakeGroupRepo()
	bus := broadcast.New()
	uc := newGroupsUC(repo, bus)

	var published int
	bus.Subscribe(usecase.KeyGroupsPrefix+entity.RoleClubAdmin, func(any) { published++ })

	out, err := uc.MoveModule(context.Background(), entity.RoleClubAdmin, dto.MoveModuleRequest{
		Source:    catalog.ModuleDocuments,
		DestGroup: catalog.GroupGeneral,
		DestItem:  catalog.ModuleMessages,
	})
	require.NoError(t, err)

	general := groupByID(t, out.Groups, catalog.GroupGeneral)
	assert.Equal(t, []string{catalog.ModuleDashboard, catalog.ModuleProfile, catalog.ModuleDocuments, catalog.ModuleMessages, catalog.ModuleSettings}, general.Members)
	assert.NotContains(t, groupByID(t, out.Groups, catalog.GroupClub).Members, catalog.ModuleDocuments)
	assert.Equal(t, 1, published)
	assert.NotNil(t, repo.records[entity.RoleClubAdmin])
}

// DestItem vacío agrega al final del grupo destino.
func TestGroupsMoveModule_AlFinal(t *testing.T) {
	uc := newGroupsUC(newFakeGroupRepo(), broadcast.New())

	out, err := uc.MoveModule(context.Background(), entity.RoleClubAdmin, dto.MoveModuleRequest{
		Source:    catalog.ModuleShop,
		DestGroup: catalog.GroupGeneral,
	})
	require.NoError(t, err)

	general := groupByID(t, out.Groups, catalog.GroupGeneral)
	require.NotEmpty(t, general.Members)
	assert.Equal(t, catalog.ModuleShop, general.Members[len(general.Members)-1])
}

// Un gesto con source que no pertenece a ninguna lista es un no-op: la
// estructura queda igual que el catálogo.
func TestGroupsMoveModule_SourceAusente_NoOp(t *testing.T) {
	uc := newGroupsUC(newFakeGroupRepo(), broadcast.New())

	out, err := uc.MoveModule(context.Background(), entity.RoleClubAdmin, dto.MoveModuleRequest{
		Source:    "modulo-fantasma",
		DestGroup: catalog.GroupGeneral,
	})
	require.NoError(t, err)

	for _, want := range catalog.Groups() {
		got := groupByID(t, out.Groups, want.ID)
		assert.Equal(t, want.Members, got.Members)
	}
}

// ReorderGroups mueve el grupo source a la posición del destino.
func TestGroupsReorder_MueveGrupo(t *testing.T) {
	uc := newGroupsUC(newFakeGroupRepo(), broadcast.New())

	out, err := uc.ReorderGroups(context.Background(), entity.RoleClubAdmin, dto.ReorderGroupsRequest{
		Source:      catalog.GroupComercio,
		Destination: catalog.GroupGeneral,
	})
	require.NoError(t, err)

	ids := make([]string, 0, len(out.Groups))
	for _, g := range out.Groups {
		ids = append(ids, g.ID)
	}
	assert.Equal(t, []string{catalog.GroupComercio, catalog.GroupGeneral, catalog.GroupClub, catalog.GroupFinanzas}, ids)
}

// Reset vuelve al catálogo y publica; ResetAll lo hace para todos los roles.
func TestGroupsReset_VuelveAlCatalogo(t *testing.T) {
	repo := newFakeGroupRepo()
	bus := broadcast.New()
	uc := newGroupsUC(repo, bus)

	_, err := uc.ReorderGroups(context.Background(), entity.RoleCoach, dto.ReorderGroupsRequest{
		Source: catalog.GroupComercio, Destination: catalog.GroupGeneral,
	})
	require.NoError(t, err)

	var published int
	bus.Subscribe(usecase.KeyGroupsPrefix+entity.RoleCoach, func(any) { published++ })

	require.NoError(t, uc.Reset(context.Background(), entity.RoleCoach))
	assert.Equal(t, 1, published)

	out, err := uc.Get(context.Background(), entity.RoleCoach)
	require.NoError(t, err)
	assert.True(t, out.Defaults)
}

func TestGroupsResetAll_PublicaPorRol(t *testing.T) {
	repo := newFakeGroupRepo()
	bus := broadcast.New()
	uc := newGroupsUC(repo, bus)

	published := make(map[string]int)
	for _, role := range catalog.Roles() {
		role := role
		bus.Subscribe(usecase.KeyGroupsPrefix+role, func(any) { published[role]++ })
	}

	require.NoError(t, uc.ResetAll(context.Background()))
	for _, role := range catalog.Roles() {
		assert.Equal(t, 1, published[role], "rol %s", role)
	}
}

func TestGroups_RolDesconocido(t *testing.T) {
	uc := newGroupsUC(newFakeGroupRepo(), broadcast.New())

	_, err := uc.Get(context.Background(), "ROL_FANTASMA")
	assert.ErrorIs(t, err, domain.ErrUnknownRole)
	assert.ErrorIs(t, uc.Reset(context.Background(), "ROL_FANTASMA"), domain.ErrUnknownRole)
}
