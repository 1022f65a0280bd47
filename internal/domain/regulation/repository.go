package regulation

import "context"

type Repository interface {
	Create(ctx context.Context, r *RegulationVersion) error
	Save(ctx context.Context, r *RegulationVersion) error
	GetByVersionID(ctx context.Context, versionID string) (*RegulationVersion, error)

	// GetMarkedLatest fetches the family record flagged is_latest, highest
	// version first. Used by the draft path.
	GetMarkedLatest(ctx context.Context, code, department string) (*RegulationVersion, error)
	// GetNewestVersion re-derives "latest" from max(version), ignoring the
	// is_latest flag. Used by the submit path.
	GetNewestVersion(ctx context.Context, code, department string) (*RegulationVersion, error)
	// GetNewestVersionForUpdate is GetNewestVersion with a row lock; callers
	// run it inside a transaction to serialize writers on one family.
	GetNewestVersionForUpdate(ctx context.Context, code, department string) (*RegulationVersion, error)

	ListByDepartment(ctx context.Context, department string) ([]RegulationVersion, error)
	ListByCode(ctx context.Context, code, department string) ([]RegulationVersion, error)
	FamilyExists(ctx context.Context, code, department string) (bool, error)

	// DeleteFamily hard-deletes every version of (code, department) and
	// returns the number of removed records.
	DeleteFamily(ctx context.Context, code, department string) (int64, error)
	// RenameFamily rewrites regulation_code across the family.
	RenameFamily(ctx context.Context, code, newCode, department string) (int64, error)
}
