package uowmock

import (
	"context"

	regDomain "curricula-backend/internal/domain/regulation"
	"curricula-backend/internal/domain/uow"
)

// UoW satisfies uow.UnitOfWork without a database. By default both methods
// run fn against the embedded Repos; WithinFamilyTx resolves the locked
// "latest" row through LatestFn (nil meaning the family does not exist).
type UoW struct {
	Repos    uow.Repos
	LatestFn func(code, department string) *regDomain.RegulationVersion

	WithinTxFn       func(ctx context.Context, fn func(r uow.Repos) error) error
	WithinFamilyTxFn func(ctx context.Context, code, department string, fn func(r uow.Repos, latest *regDomain.RegulationVersion) error) error
}

func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if m.WithinTxFn != nil {
		return m.WithinTxFn(ctx, fn)
	}
	return fn(m.Repos)
}

func (m *UoW) WithinFamilyTx(ctx context.Context, code, department string, fn func(r uow.Repos, latest *regDomain.RegulationVersion) error) error {
	if m.WithinFamilyTxFn != nil {
		return m.WithinFamilyTxFn(ctx, code, department, fn)
	}
	var latest *regDomain.RegulationVersion
	if m.LatestFn != nil {
		latest = m.LatestFn(code, department)
	}
	return fn(m.Repos, latest)
}
