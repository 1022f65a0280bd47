package regulation

import (
	"context"
	"fmt"
	"regexp"
	"time"

	domain "curricula-backend/internal/domain/regulation"
	"curricula-backend/internal/domain/uow"
	"curricula-backend/pkg/id"
)

// blob store file ids are 24-char lowercase hex
var reFileID = regexp.MustCompile(`^[a-f0-9]{24}$`)

// Submit promotes the family's current draft to Submitted in place, or forks
// a new Submitted version when the latest record is already immutable.
// "Latest" is re-derived from max(version) rather than trusting is_latest.
func (u *Usecase) Submit(ctx context.Context, in SubmitInput) (*SaveResult, error) {
	if in.RegulationCode == "" || in.FileID == "" {
		return nil, fmt.Errorf("%w: regulationCode and fileId are required", domain.ErrValidation)
	}
	if !reFileID.MatchString(in.FileID) {
		return nil, fmt.Errorf("%w: invalid fileId", domain.ErrValidation)
	}
	department := normalizeDepartment(in.Department, in.ActingDepartment)
	if department == "" {
		return nil, fmt.Errorf("%w: department is required", domain.ErrValidation)
	}

	payload := normalizeFormData(in.FormData)
	actor := identityRef(in.ActingUserID)
	fileID := in.FileID

	var out *SaveResult
	err := u.uow.WithinFamilyTx(ctx, in.RegulationCode, department, func(r uow.Repos, latest *domain.RegulationVersion) error {
		if latest == nil {
			return domain.ErrNotFound
		}
		now := time.Now().UTC()

		if latest.Promotable() {
			latest.CurriculumFileID = &fileID
			if payload != nil {
				latest.FormData = payload
			}
			latest.Status = domain.StatusSubmitted
			latest.IsDraft = false
			if actor != nil {
				latest.HodID = actor
				latest.SubmittedBy = actor
				latest.SavedBy = actor
			}
			latest.SubmittedAt = &now
			latest.SavedAt = &now
			latest.LastUpdated = now
			latest.IsLatest = true
			if in.ChangeSummary != nil {
				latest.ChangeSummary = *in.ChangeSummary
			}
			if err := r.Regulations.Save(ctx, latest); err != nil {
				return err
			}
			out = &SaveResult{
				Created:    false,
				Message:    fmt.Sprintf("Regulation version %d submitted", latest.Version),
				Regulation: toDTO(latest),
			}
			return nil
		}

		next := &domain.RegulationVersion{
			VersionID:        id.NewID32(),
			RegulationCode:   in.RegulationCode,
			Department:       department,
			Version:          latest.Version + 1,
			Status:           domain.StatusSubmitted,
			IsDraft:          false,
			IsLatest:         true,
			FormData:         payload,
			CurriculumFileID: &fileID,
			HodID:            latest.HodID,
			SubmittedBy:      latest.SubmittedBy,
			SubmittedAt:      &now,
			SavedBy:          actor,
			SavedAt:          &now,
			LastUpdated:      now,
		}
		if actor != nil {
			next.HodID = actor
			next.SubmittedBy = actor
		}
		if in.ChangeSummary != nil {
			next.ChangeSummary = *in.ChangeSummary
		}

		// insert-before-demote, same ordering as the draft path
		if err := r.Regulations.Create(ctx, next); err != nil {
			return err
		}
		latest.IsLatest = false
		if err := r.Regulations.Save(ctx, latest); err != nil {
			return err
		}

		out = &SaveResult{
			Created:    true,
			Message:    fmt.Sprintf("Regulation version %d submitted", next.Version),
			Regulation: toDTO(next),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
