package regulationmock

import (
	"context"

	domain "curricula-backend/internal/domain/regulation"
)

// Repo is a function-backed mock that satisfies domain.Repository.
// Only methods you need are included; add more as tests require.
type Repo struct {
	CreateFn                    func(ctx context.Context, v *domain.RegulationVersion) error
	SaveFn                      func(ctx context.Context, v *domain.RegulationVersion) error
	GetByVersionIDFn            func(ctx context.Context, versionID string) (*domain.RegulationVersion, error)
	GetMarkedLatestFn           func(ctx context.Context, code, department string) (*domain.RegulationVersion, error)
	GetNewestVersionFn          func(ctx context.Context, code, department string) (*domain.RegulationVersion, error)
	GetNewestVersionForUpdateFn func(ctx context.Context, code, department string) (*domain.RegulationVersion, error)
	ListByDepartmentFn          func(ctx context.Context, department string) ([]domain.RegulationVersion, error)
	ListByCodeFn                func(ctx context.Context, code, department string) ([]domain.RegulationVersion, error)
	FamilyExistsFn              func(ctx context.Context, code, department string) (bool, error)
	DeleteFamilyFn              func(ctx context.Context, code, department string) (int64, error)
	RenameFamilyFn              func(ctx context.Context, code, newCode, department string) (int64, error)
}

func (m *Repo) Create(ctx context.Context, v *domain.RegulationVersion) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, v)
	}
	return nil
}

func (m *Repo) Save(ctx context.Context, v *domain.RegulationVersion) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, v)
	}
	return nil
}

func (m *Repo) GetByVersionID(ctx context.Context, versionID string) (*domain.RegulationVersion, error) {
	if m.GetByVersionIDFn != nil {
		return m.GetByVersionIDFn(ctx, versionID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetMarkedLatest(ctx context.Context, code, department string) (*domain.RegulationVersion, error) {
	if m.GetMarkedLatestFn != nil {
		return m.GetMarkedLatestFn(ctx, code, department)
	}
	return nil, context.Canceled
}

func (m *Repo) GetNewestVersion(ctx context.Context, code, department string) (*domain.RegulationVersion, error) {
	if m.GetNewestVersionFn != nil {
		return m.GetNewestVersionFn(ctx, code, department)
	}
	return nil, context.Canceled
}

func (m *Repo) GetNewestVersionForUpdate(ctx context.Context, code, department string) (*domain.RegulationVersion, error) {
	if m.GetNewestVersionForUpdateFn != nil {
		return m.GetNewestVersionForUpdateFn(ctx, code, department)
	}
	return nil, context.Canceled
}

func (m *Repo) ListByDepartment(ctx context.Context, department string) ([]domain.RegulationVersion, error) {
	if m.ListByDepartmentFn != nil {
		return m.ListByDepartmentFn(ctx, department)
	}
	return nil, context.Canceled
}

func (m *Repo) ListByCode(ctx context.Context, code, department string) ([]domain.RegulationVersion, error) {
	if m.ListByCodeFn != nil {
		return m.ListByCodeFn(ctx, code, department)
	}
	return nil, context.Canceled
}

func (m *Repo) FamilyExists(ctx context.Context, code, department string) (bool, error) {
	if m.FamilyExistsFn != nil {
		return m.FamilyExistsFn(ctx, code, department)
	}
	return false, nil
}

func (m *Repo) DeleteFamily(ctx context.Context, code, department string) (int64, error) {
	if m.DeleteFamilyFn != nil {
		return m.DeleteFamilyFn(ctx, code, department)
	}
	return 0, nil
}

func (m *Repo) RenameFamily(ctx context.Context, code, newCode, department string) (int64, error) {
	if m.RenameFamilyFn != nil {
		return m.RenameFamilyFn(ctx, code, newCode, department)
	}
	return 0, nil
}
