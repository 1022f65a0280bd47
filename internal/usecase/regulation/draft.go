package regulation

import (
	"context"
	"fmt"
	"time"

	domain "curricula-backend/internal/domain/regulation"
	"curricula-backend/internal/domain/uow"
	"curricula-backend/pkg/id"
)

// SaveDraft coalesces consecutive saves onto the family's single draft: as
// long as the latest version is a draft it is mutated in place, otherwise a
// new version forks off the previous latest.
func (u *Usecase) SaveDraft(ctx context.Context, in SaveDraftInput) (*SaveResult, error) {
	if in.RegulationCode == "" {
		return nil, fmt.Errorf("%w: regulationCode is required", domain.ErrValidation)
	}
	department := normalizeDepartment(in.Department, in.ActingDepartment)
	if department == "" {
		return nil, fmt.Errorf("%w: department is required", domain.ErrValidation)
	}

	payload := normalizeFormData(in.FormData)
	actor := identityRef(in.ActingUserID)

	var out *SaveResult
	err := u.uow.WithinFamilyTx(ctx, in.RegulationCode, department, func(r uow.Repos, latest *domain.RegulationVersion) error {
		now := time.Now().UTC()

		// Latest draft present: update it instead of creating a new version.
		if latest != nil && latest.IsDraft {
			latest.FormData = payload
			latest.ChangeSummary = in.ChangeSummary
			latest.LastUpdated = now
			if actor != nil {
				latest.SavedBy = actor
			}
			latest.SavedAt = &now
			if err := r.Regulations.Save(ctx, latest); err != nil {
				return err
			}
			out = &SaveResult{
				Created:    false,
				Message:    fmt.Sprintf("Draft version %d updated", latest.Version),
				Regulation: toDTO(latest),
			}
			return nil
		}

		nextVersion := 1
		if latest != nil {
			nextVersion = latest.Version + 1
		}

		draft := &domain.RegulationVersion{
			VersionID:      id.NewID32(),
			RegulationCode: in.RegulationCode,
			Department:     department,
			Version:        nextVersion,
			Status:         domain.StatusDraft,
			IsDraft:        true,
			IsLatest:       true,
			FormData:       payload,
			ChangeSummary:  in.ChangeSummary,
			SavedBy:        actor,
			SavedAt:        &now,
			LastUpdated:    now,
		}
		if latest != nil {
			// carry ownership and the attached document forward
			draft.HodID = latest.HodID
			draft.CurriculumFileID = latest.CurriculumFileID
		}
		if actor != nil {
			draft.HodID = actor
		}

		// insert before demote so a torn operation leaves two latest rows,
		// never zero; readers fall back to max(version) anyway
		if err := r.Regulations.Create(ctx, draft); err != nil {
			return err
		}
		if latest != nil {
			latest.IsLatest = false
			if err := r.Regulations.Save(ctx, latest); err != nil {
				return err
			}
		}

		out = &SaveResult{
			Created:    true,
			Message:    fmt.Sprintf("Draft version %d saved", draft.Version),
			Regulation: toDTO(draft),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
