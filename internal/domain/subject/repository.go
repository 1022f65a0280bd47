package subject

import "context"

type Repository interface {
	Create(ctx context.Context, s *Subject) error
	GetBySubjectID(ctx context.Context, subjectID string) (*Subject, error)
	ListByRegulation(ctx context.Context, code, department string) ([]Subject, error)

	// RenameRegulationRefs follows an admin rename of a regulation family.
	RenameRegulationRefs(ctx context.Context, code, newCode, department string) (int64, error)
	// ClearRegulationRefs follows an admin delete; the subject rows survive
	// with an empty regulation_code.
	ClearRegulationRefs(ctx context.Context, code, department string) (int64, error)
}
