package subject

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("subject not found")

// Subject is a course record owned by a department. Only the regulation
// reference matters to this service: admin rename/delete of a regulation
// family cascades into regulation_code here.
type Subject struct {
	ID uint64 `gorm:"primaryKey;column:id" json:"-"`
	// Public identifier (32-char lowercase hex)
	SubjectID       string         `gorm:"column:subject_id;type:char(32);not null;uniqueIndex:ux_subjects_subject_id" json:"subject_id"`
	Code            string         `gorm:"column:code;size:32;not null;index" json:"code"`
	Title           string         `gorm:"column:title;size:255;not null" json:"title"`
	Department      string         `gorm:"column:department;size:64;index:idx_subjects_dept_regulation,priority:1" json:"department"`
	RegulationCode  string         `gorm:"column:regulation_code;size:64;index:idx_subjects_dept_regulation,priority:2" json:"regulation_code"`
	AssignedFaculty string         `gorm:"column:assigned_faculty;type:char(32)" json:"assigned_faculty"`
	AssignedExpert  string         `gorm:"column:assigned_expert;type:char(32)" json:"assigned_expert"`
	Semester        int            `gorm:"column:semester" json:"semester"`
	Status          string         `gorm:"column:status;size:32;default:'Draft'" json:"status"`
	CreatedAt       time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (Subject) TableName() string { return "subjects" }
