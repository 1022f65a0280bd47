package mysql

import (
	"context"

	subjDomain "curricula-backend/internal/domain/subject"

	"gorm.io/gorm"
)

type SubjectRepository struct{ db *gorm.DB }

func NewSubjectRepository(db *gorm.DB) *SubjectRepository { return &SubjectRepository{db: db} }

func (r *SubjectRepository) Create(ctx context.Context, s *subjDomain.Subject) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *SubjectRepository) GetBySubjectID(ctx context.Context, subjectID string) (*subjDomain.Subject, error) {
	var out subjDomain.Subject
	res := r.db.WithContext(ctx).Where("subject_id = ?", subjectID).First(&out)
	return &out, res.Error
}

func (r *SubjectRepository) ListByRegulation(ctx context.Context, code, department string) ([]subjDomain.Subject, error) {
	var out []subjDomain.Subject
	res := r.db.WithContext(ctx).
		Where("regulation_code = ? AND department = ?", code, department).
		Order("semester ASC, code ASC").
		Find(&out)
	return out, res.Error
}

func (r *SubjectRepository) RenameRegulationRefs(ctx context.Context, code, newCode, department string) (int64, error) {
	res := r.db.WithContext(ctx).Model(&subjDomain.Subject{}).
		Where("regulation_code = ? AND department = ?", code, department).
		Update("regulation_code", newCode)
	return res.RowsAffected, res.Error
}

func (r *SubjectRepository) ClearRegulationRefs(ctx context.Context, code, department string) (int64, error) {
	res := r.db.WithContext(ctx).Model(&subjDomain.Subject{}).
		Where("regulation_code = ? AND department = ?", code, department).
		Update("regulation_code", "")
	return res.RowsAffected, res.Error
}
