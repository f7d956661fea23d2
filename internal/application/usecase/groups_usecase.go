package usecase

import (
	"context"

	"github.com/jhoicas/clubhub-api/internal/application/dto"
	"github.com/jhoicas/clubhub-api/internal/domain"
	"github.com/jhoicas/clubhub-api/internal/domain/catalog"
	"github.com/jhoicas/clubhub-api/internal/domain/entity"
	"github.com/jhoicas/clubhub-api/internal/domain/layout"
	"github.com/jhoicas/clubhub-api/internal/domain/repository"
	"github.com/jhoicas/clubhub-api/pkg/broadcast"
)

// AvailablePool clave del grupo virtual "disponibles" en los gestos de
// drag-and-drop: los módulos del catálogo que no pertenecen a ningún grupo.
const AvailablePool = "_available"

// GroupAssignmentUseCase administra la asignación de grupos del sidebar por
// rol: reemplazo completo, movimientos entre grupos, reordenado de grupos y
// reseteo (por rol o global). Los movimientos operan sobre mapas planos de
// pertenencia (layout.Membership) con alta/baja por índice; nunca se
// clonan árboles anidados durante el gesto.
type GroupAssignmentUseCase struct {
	repo repository.GroupAssignmentRepository
	bus  *broadcast.Broadcaster
}

// NewGroupAssignmentUseCase construye el caso de uso.
func NewGroupAssignmentUseCase(repo repository.GroupAssignmentRepository, bus *broadcast.Broadcaster) *GroupAssignmentUseCase {
	return &GroupAssignmentUseCase{repo: repo, bus: bus}
}

// Get asignación vigente del rol: la guardada o el catálogo por defecto.
func (uc *GroupAssignmentUseCase) Get(ctx context.Context, role string) (*dto.GroupAssignmentResponse, error) {
	if !catalog.KnownRole(role) {
		return nil, domain.ErrUnknownRole
	}
	groups, defaults, err := uc.current(ctx, role)
	if err != nil {
		return nil, err
	}
	return &dto.GroupAssignmentResponse{Role: role, Groups: toGroupPayloads(groups), Defaults: defaults}, nil
}

// Save reemplaza la asignación completa del rol. Un módulo solo puede
// pertenecer a la lista top-level de un grupo: las apariciones repetidas en
// grupos posteriores se descartan en silencio, conservando la primera.
func (uc *GroupAssignmentUseCase) Save(ctx context.Context, role string, in dto.SaveGroupAssignmentRequest) (*dto.GroupAssignmentResponse, error) {
	if !catalog.KnownRole(role) {
		return nil, domain.ErrUnknownRole
	}
	groups := fromGroupPayloads(in.Groups)
	dedupeTopLevel(groups)
	if err := uc.repo.Save(ctx, role, groups); err != nil {
		return nil, err
	}
	uc.bus.Publish(KeyGroupsPrefix+role, groups)
	return &dto.GroupAssignmentResponse{Role: role, Groups: toGroupPayloads(groups), Defaults: false}, nil
}

// MoveModule gesto de drag entre grupos (o desde/hacia el pool de
// disponibles). Un source ausente de todas las listas es un no-op
// idempotente: se guarda el estado sin cambios estructurales.
func (uc *GroupAssignmentUseCase) MoveModule(ctx context.Context, role string, in dto.MoveModuleRequest) (*dto.GroupAssignmentResponse, error) {
	if !catalog.KnownRole(role) {
		return nil, domain.ErrUnknownRole
	}
	groups, _, err := uc.current(ctx, role)
	if err != nil {
		return nil, err
	}

	membership := make(layout.Membership, len(groups)+1)
	order := make([]string, 0, len(groups))
	for _, g := range groups {
		membership[g.ID] = g.Members
		order = append(order, g.ID)
	}
	membership[AvailablePool] = availableModules(groups)

	moved := layout.Move(membership, in.Source, in.DestGroup, in.DestItem)

	out := make([]entity.Group, 0, len(groups))
	for i, id := range order {
		g := groups[i].Clone()
		g.ID = id
		g.Members = moved[id]
		out = append(out, g)
	}
	if err := uc.repo.Save(ctx, role, out); err != nil {
		return nil, err
	}
	uc.bus.Publish(KeyGroupsPrefix+role, out)
	return &dto.GroupAssignmentResponse{Role: role, Groups: toGroupPayloads(out), Defaults: false}, nil
}

// ReorderGroups reordena la secuencia de grupos con la misma regla de
// índice que el reordenado de módulos, pero sobre identificadores de grupo.
func (uc *GroupAssignmentUseCase) ReorderGroups(ctx context.Context, role string, in dto.ReorderGroupsRequest) (*dto.GroupAssignmentResponse, error) {
	if !catalog.KnownRole(role) {
		return nil, domain.ErrUnknownRole
	}
	groups, _, err := uc.current(ctx, role)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(groups))
	byID := make(map[string]entity.Group, len(groups))
	for _, g := range groups {
		ids = append(ids, g.ID)
		byID[g.ID] = g
	}
	ids = layout.Reorder(ids, in.Source, in.Destination)
	out := make([]entity.Group, 0, len(ids))
	for _, id := range ids {
		out = append(out, byID[id])
	}
	if err := uc.repo.Save(ctx, role, out); err != nil {
		return nil, err
	}
	uc.bus.Publish(KeyGroupsPrefix+role, out)
	return &dto.GroupAssignmentResponse{Role: role, Groups: toGroupPayloads(out), Defaults: false}, nil
}

// Reset elimina la asignación del rol (vuelve al catálogo).
func (uc *GroupAssignmentUseCase) Reset(ctx context.Context, role string) error {
	if !catalog.KnownRole(role) {
		return domain.ErrUnknownRole
	}
	if err := uc.repo.Reset(ctx, role); err != nil {
		return err
	}
	uc.bus.Publish(KeyGroupsPrefix+role, catalog.Groups())
	return nil
}

// ResetAll elimina las asignaciones de todos los roles.
func (uc *GroupAssignmentUseCase) ResetAll(ctx context.Context) error {
	if err := uc.repo.ResetAll(ctx); err != nil {
		return err
	}
	for _, role := range catalog.Roles() {
		uc.bus.Publish(KeyGroupsPrefix+role, catalog.Groups())
	}
	return nil
}

func (uc *GroupAssignmentUseCase) current(ctx context.Context, role string) ([]entity.Group, bool, error) {
	stored, err := uc.repo.Get(ctx, role)
	if err != nil {
		return nil, false, err
	}
	if stored == nil {
		return catalog.Groups(), true, nil
	}
	return stored, false, nil
}

// availableModules módulos del catálogo que no pertenecen a ningún grupo
// (ni top-level ni anidados), en orden de catálogo.
func availableModules(groups []entity.Group) []string {
	assigned := make(map[string]bool)
	for _, g := range groups {
		for _, id := range g.Members {
			assigned[id] = true
		}
		for _, kids := range g.Children {
			for _, id := range kids {
				assigned[id] = true
			}
		}
	}
	var out []string
	for _, m := range catalog.Modules() {
		if !assigned[m.ID] {
			out = append(out, m.ID)
		}
	}
	return out
}

func dedupeTopLevel(groups []entity.Group) {
	seen := make(map[string]bool)
	for i := range groups {
		kept := groups[i].Members[:0]
		for _, id := range groups[i].Members {
			if !seen[id] {
				seen[id] = true
				kept = append(kept, id)
			}
		}
		groups[i].Members = kept
	}
}

func toGroupPayloads(groups []entity.Group) []dto.GroupPayload {
	out := make([]dto.GroupPayload, 0, len(groups))
	for _, g := range groups {
		out = append(out, dto.GroupPayload{
			ID: g.ID, Label: g.Label, Color: g.Color,
			Members: g.Members, Children: g.Children,
		})
	}
	return out
}

func fromGroupPayloads(payloads []dto.GroupPayload) []entity.Group {
	out := make([]entity.Group, 0, len(payloads))
	for _, p := range payloads {
		members := p.Members
		if members == nil {
			members = []string{}
		}
		out = append(out, entity.Group{
			ID: p.ID, Label: p.Label, Color: p.Color,
			Members: members, Children: p.Children,
		})
	}
	return out
}
