package subjectmock

import (
	"context"

	domain "curricula-backend/internal/domain/subject"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn               func(ctx context.Context, s *domain.Subject) error
	GetBySubjectIDFn       func(ctx context.Context, subjectID string) (*domain.Subject, error)
	ListByRegulationFn     func(ctx context.Context, code, department string) ([]domain.Subject, error)
	RenameRegulationRefsFn func(ctx context.Context, code, newCode, department string) (int64, error)
	ClearRegulationRefsFn  func(ctx context.Context, code, department string) (int64, error)
}

func (m *Repo) Create(ctx context.Context, s *domain.Subject) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, s)
	}
	return nil
}

func (m *Repo) GetBySubjectID(ctx context.Context, subjectID string) (*domain.Subject, error) {
	if m.GetBySubjectIDFn != nil {
		return m.GetBySubjectIDFn(ctx, subjectID)
	}
	return nil, context.Canceled
}

func (m *Repo) ListByRegulation(ctx context.Context, code, department string) ([]domain.Subject, error) {
	if m.ListByRegulationFn != nil {
		return m.ListByRegulationFn(ctx, code, department)
	}
	return nil, context.Canceled
}

func (m *Repo) RenameRegulationRefs(ctx context.Context, code, newCode, department string) (int64, error) {
	if m.RenameRegulationRefsFn != nil {
		return m.RenameRegulationRefsFn(ctx, code, newCode, department)
	}
	return 0, nil
}

func (m *Repo) ClearRegulationRefs(ctx context.Context, code, department string) (int64, error) {
	if m.ClearRegulationRefsFn != nil {
		return m.ClearRegulationRefsFn(ctx, code, department)
	}
	return 0, nil
}
