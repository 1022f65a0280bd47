package mysql

import (
	"context"
	"errors"

	regDomain "curricula-backend/internal/domain/regulation"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RegulationRepository struct{ db *gorm.DB }

func NewRegulationRepository(db *gorm.DB) *RegulationRepository { return &RegulationRepository{db: db} }

func (r *RegulationRepository) Create(ctx context.Context, v *regDomain.RegulationVersion) error {
	err := r.db.WithContext(ctx).Create(v).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// ux_regulations_family_version: a concurrent writer won the race for
		// this version number.
		return regDomain.ErrVersionConflict
	}
	return err
}

func (r *RegulationRepository) Save(ctx context.Context, v *regDomain.RegulationVersion) error {
	return r.db.WithContext(ctx).Save(v).Error
}

func (r *RegulationRepository) GetByVersionID(ctx context.Context, versionID string) (*regDomain.RegulationVersion, error) {
	var out regDomain.RegulationVersion
	res := r.db.WithContext(ctx).Where("version_id = ?", versionID).First(&out)
	return &out, res.Error
}

func (r *RegulationRepository) GetMarkedLatest(ctx context.Context, code, department string) (*regDomain.RegulationVersion, error) {
	var out regDomain.RegulationVersion
	res := r.db.WithContext(ctx).
		Where("regulation_code = ? AND department = ? AND is_latest = ?", code, department, true).
		Order("version DESC").
		First(&out)
	return &out, res.Error
}

func (r *RegulationRepository) GetNewestVersion(ctx context.Context, code, department string) (*regDomain.RegulationVersion, error) {
	var out regDomain.RegulationVersion
	res := r.db.WithContext(ctx).
		Where("regulation_code = ? AND department = ?", code, department).
		Order("version DESC").
		First(&out)
	return &out, res.Error
}

func (r *RegulationRepository) GetNewestVersionForUpdate(ctx context.Context, code, department string) (*regDomain.RegulationVersion, error) {
	var out regDomain.RegulationVersion
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("regulation_code = ? AND department = ?", code, department).
		Order("version DESC").
		First(&out)
	return &out, res.Error
}

func (r *RegulationRepository) ListByDepartment(ctx context.Context, department string) ([]regDomain.RegulationVersion, error) {
	var out []regDomain.RegulationVersion
	res := r.db.WithContext(ctx).
		Where("department = ?", department).
		Order("regulation_code ASC, version DESC").
		Find(&out)
	return out, res.Error
}

func (r *RegulationRepository) ListByCode(ctx context.Context, code, department string) ([]regDomain.RegulationVersion, error) {
	var out []regDomain.RegulationVersion
	res := r.db.WithContext(ctx).
		Where("regulation_code = ? AND department = ?", code, department).
		Order("version DESC").
		Find(&out)
	return out, res.Error
}

func (r *RegulationRepository) FamilyExists(ctx context.Context, code, department string) (bool, error) {
	var n int64
	res := r.db.WithContext(ctx).Model(&regDomain.RegulationVersion{}).
		Where("regulation_code = ? AND department = ?", code, department).
		Count(&n)
	return n > 0, res.Error
}

func (r *RegulationRepository) DeleteFamily(ctx context.Context, code, department string) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("regulation_code = ? AND department = ?", code, department).
		Delete(&regDomain.RegulationVersion{})
	return res.RowsAffected, res.Error
}

func (r *RegulationRepository) RenameFamily(ctx context.Context, code, newCode, department string) (int64, error) {
	res := r.db.WithContext(ctx).Model(&regDomain.RegulationVersion{}).
		Where("regulation_code = ? AND department = ?", code, department).
		Update("regulation_code", newCode)
	if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
		return 0, regDomain.ErrCodeConflict
	}
	return res.RowsAffected, res.Error
}
