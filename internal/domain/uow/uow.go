package uow

import (
	"context"

	"curricula-backend/internal/domain/regulation"
	"curricula-backend/internal/domain/subject"
)

type Repos struct {
	Regulations regulation.Repository
	Subjects    subject.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock the family's newest version row first, then pass it
	// in (nil when the family does not exist yet). Serializes the
	// read-decide-write sequence per (regulationCode, department).
	WithinFamilyTx(ctx context.Context, code, department string, fn func(r Repos, latest *regulation.RegulationVersion) error) error
}
