package regulation

import (
	"context"
	"fmt"
	"log"

	domain "curricula-backend/internal/domain/regulation"
	"curricula-backend/internal/domain/uow"
)

// DeleteFamily removes every version of (code, acting department) and clears
// the regulation reference on the department's subject records in the same
// transaction. Destructive and unconditional; there is no undo.
func (u *Usecase) DeleteFamily(ctx context.Context, code, actingDepartment string) error {
	if code == "" {
		return fmt.Errorf("%w: regulation code is required", domain.ErrValidation)
	}
	return u.uow.WithinTx(ctx, func(r uow.Repos) error {
		removed, err := r.Regulations.DeleteFamily(ctx, code, actingDepartment)
		if err != nil {
			return err
		}
		if removed == 0 {
			return domain.ErrNotFound
		}
		cleared, err := r.Subjects.ClearRegulationRefs(ctx, code, actingDepartment)
		if err != nil {
			return err
		}
		log.Printf("deleted regulation family %s/%s: %d versions, %d subject refs cleared", code, actingDepartment, removed, cleared)
		return nil
	})
}

// RenameFamily rewrites the regulation code across every version of the
// family and its subject references. Refuses to merge into an existing
// family under the new code.
func (u *Usecase) RenameFamily(ctx context.Context, in RenameInput) error {
	if in.RegulationCode == "" || in.NewRegulationCode == "" {
		return fmt.Errorf("%w: regulation code and new code are required", domain.ErrValidation)
	}
	if in.NewRegulationCode == in.RegulationCode {
		return fmt.Errorf("%w: new code equals the current one", domain.ErrValidation)
	}
	return u.uow.WithinTx(ctx, func(r uow.Repos) error {
		taken, err := r.Regulations.FamilyExists(ctx, in.NewRegulationCode, in.ActingDepartment)
		if err != nil {
			return err
		}
		if taken {
			return domain.ErrCodeConflict
		}
		renamed, err := r.Regulations.RenameFamily(ctx, in.RegulationCode, in.NewRegulationCode, in.ActingDepartment)
		if err != nil {
			return err
		}
		if renamed == 0 {
			return domain.ErrNotFound
		}
		if _, err := r.Subjects.RenameRegulationRefs(ctx, in.RegulationCode, in.NewRegulationCode, in.ActingDepartment); err != nil {
			return err
		}
		return nil
	})
}
