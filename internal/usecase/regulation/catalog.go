package regulation

import (
	"context"
	"errors"
	"sort"

	domain "curricula-backend/internal/domain/regulation"

	"gorm.io/gorm"
)

// ListForDepartment projects the department's version records into
// per-family summaries. Pure read; families sharing a code across
// departments are kept apart by the code::department grouping key.
func (u *Usecase) ListForDepartment(ctx context.Context, department string) ([]RegulationSummary, error) {
	records, err := u.repo.ListByDepartment(ctx, department)
	if err != nil {
		return nil, err
	}

	index := make(map[string]int)
	summaries := make([]RegulationSummary, 0, len(records))

	for i := range records {
		rec := &records[i]
		key := rec.RegulationCode + "::" + rec.Department

		pos, ok := index[key]
		if !ok {
			pos = len(summaries)
			index[key] = pos
			summaries = append(summaries, RegulationSummary{
				RegulationCode: rec.RegulationCode,
				Department:     rec.Department,
			})
		}
		s := &summaries[pos]

		if rec.Version > s.LatestVersion {
			s.LatestVersion = rec.Version
			s.LatestStatus = string(rec.Status)
		}
		updated := rec.LastUpdated
		if updated.IsZero() {
			updated = rec.UpdatedAt
		}
		if updated.After(s.LastUpdated) {
			s.LastUpdated = updated
		}

		s.Versions = append(s.Versions, VersionMeta{
			VersionID:        rec.VersionID,
			Version:          rec.Version,
			Status:           string(rec.Status),
			IsDraft:          rec.IsDraft,
			IsLatest:         rec.IsLatest,
			LastUpdated:      updated,
			SubmittedAt:      rec.SubmittedAt,
			CurriculumFileID: rec.CurriculumFileID,
			SavedAt:          rec.SavedAt,
			SavedBy:          rec.SavedBy,
			ChangeSummary:    rec.ChangeSummary,
		})
	}

	for i := range summaries {
		vs := summaries[i].Versions
		sort.Slice(vs, func(a, b int) bool { return vs[a].Version > vs[b].Version })
	}
	return summaries, nil
}

// GetVersion fetches one version record, enforcing department ownership.
func (u *Usecase) GetVersion(ctx context.Context, versionID, actingDepartment string) (*RegulationDTO, error) {
	rec, err := u.repo.GetByVersionID(ctx, versionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if rec.Department != actingDepartment {
		return nil, domain.ErrNotAuthorized
	}
	dto := toDTO(rec)
	return &dto, nil
}

// ListVersionsByCode returns the family's records, newest version first.
func (u *Usecase) ListVersionsByCode(ctx context.Context, code, department string) ([]RegulationDTO, error) {
	if code == "" {
		return nil, domain.ErrValidation
	}
	records, err := u.repo.ListByCode(ctx, code, department)
	if err != nil {
		return nil, err
	}
	out := make([]RegulationDTO, 0, len(records))
	for i := range records {
		out = append(out, toDTO(&records[i]))
	}
	return out, nil
}
