package regulation

import (
	domain "curricula-backend/internal/domain/regulation"
	domainSubject "curricula-backend/internal/domain/subject"
	"curricula-backend/internal/domain/uow"
)

type Usecase struct {
	repo     domain.Repository
	subjects domainSubject.Repository
	uow      uow.UnitOfWork
}

// NewUsecase: pass both repos and a UoW for tx flows. Reads go straight to
// the repo; every family mutation runs through the UoW.
func NewUsecase(regs domain.Repository, subjects domainSubject.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{repo: regs, subjects: subjects, uow: tx}
}
