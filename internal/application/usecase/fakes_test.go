package usecase_test

import (
	"context"
	"errors"

	"github.com/jhoicas/clubhub-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de persistencia
// ──────────────────────────────────────────────────────────────────────────────

var errRemoto = errors.New("fallo remoto simulado")

type fakeSettingsRepo struct {
	records map[string]*entity.RoleUISettings
	fail    bool
}

func newFakeSettingsRepo() *fakeSettingsRepo {
	return &fakeSettingsRepo{records: make(map[string]*entity.RoleUISettings)}
}

func (f *fakeSettingsRepo) Get(_ context.Context, role string) (*entity.RoleUISettings, error) {
	if f.fail {
		return nil, errRemoto
	}
	return f.records[role], nil
}

func (f *fakeSettingsRepo) Save(_ context.Context, s *entity.RoleUISettings) error {
	if f.fail {
		return errRemoto
	}
	f.records[s.Role] = s
	return nil
}

func (f *fakeSettingsRepo) Reset(_ context.Context, role string) error {
	if f.fail {
		return errRemoto
	}
	delete(f.records, role)
	return nil
}

type fakeOverrideRepo struct {
	records map[string]*entity.ClubOverride // key clubID+"/"+role
	fail    bool
}

func newFakeOverrideRepo() *fakeOverrideRepo {
	return &fakeOverrideRepo{records: make(map[string]*entity.ClubOverride)}
}

func (f *fakeOverrideRepo) Get(_ context.Context, clubID, role string) (*entity.ClubOverride, error) {
	if f.fail {
		return nil, errRemoto
	}
	return f.records[clubID+"/"+role], nil
}

func (f *fakeOverrideRepo) Save(_ context.Context, ov *entity.ClubOverride) error {
	f.records[ov.ClubID+"/"+ov.Role] = ov
	return nil
}

func (f *fakeOverrideRepo) Delete(_ context.Context, clubID, role string) error {
	delete(f.records, clubID+"/"+role)
	return nil
}

type fakeGroupRepo struct {
	records map[string][]entity.Group
	fail    bool
}

func newFakeGroupRepo() *fakeGroupRepo {
	return &fakeGroupRepo{records: make(map[string][]entity.Group)}
}

func (f *fakeGroupRepo) Get(_ context.Context, role string) ([]entity.Group, error) {
	if f.fail {
		return nil, errRemoto
	}
	return f.records[role], nil
}

func (f *fakeGroupRepo) Save(_ context.Context, role string, groups []entity.Group) error {
	f.records[role] = groups
	return nil
}

func (f *fakeGroupRepo) Reset(_ context.Context, role string) error {
	delete(f.records, role)
	return nil
}

func (f *fakeGroupRepo) ResetAll(_ context.Context) error {
	f.records = make(map[string][]entity.Group)
	return nil
}

type fakeLayoutRepo struct {
	records map[string]*entity.LayoutRecord
	fail    bool
	// onSave permite simular un guardado concurrente que supera al actual
	// mientras este sigue en vuelo.
	onSave func()
}

func newFakeLayoutRepo() *fakeLayoutRepo {
	return &fakeLayoutRepo{records: make(map[string]*entity.LayoutRecord)}
}

func (f *fakeLayoutRepo) Get(_ context.Context, key string) (*entity.LayoutRecord, error) {
	if f.fail {
		return nil, errRemoto
	}
	return f.records[key], nil
}

func (f *fakeLayoutRepo) Save(_ context.Context, rec *entity.LayoutRecord) error {
	if f.fail {
		return errRemoto
	}
	f.records[rec.FeatureKey] = rec
	if f.onSave != nil {
		cb := f.onSave
		f.onSave = nil
		cb()
	}
	return nil
}
