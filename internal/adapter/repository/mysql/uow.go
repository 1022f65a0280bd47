package mysql

import (
	"context"
	"errors"

	"curricula-backend/internal/domain/regulation"
	"curricula-backend/internal/domain/uow"

	"gorm.io/gorm"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := uow.Repos{
			Regulations: &RegulationRepository{db: tx},
			Subjects:    &SubjectRepository{db: tx},
		}
		return fn(r)
	})
}

func (u *GormUoW) WithinFamilyTx(ctx context.Context, code, department string, fn func(r uow.Repos, latest *regulation.RegulationVersion) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := uow.Repos{
			Regulations: &RegulationRepository{db: tx},
			Subjects:    &SubjectRepository{db: tx},
		}
		// lock the family's newest row up-front to serialize writers; a brand
		// new family has nothing to lock and relies on the unique index
		latest, err := r.Regulations.GetNewestVersionForUpdate(ctx, code, department)
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			latest = nil
		}
		return fn(r, latest)
	})
}
