package regulation

import (
	"errors"
	"time"

	"gorm.io/datatypes"
)

type Status string

const (
	StatusPending          Status = "Pending"
	StatusDraft            Status = "Draft"
	StatusSubmitted        Status = "Submitted"
	StatusUnderReview      Status = "Under Review"
	StatusApproved         Status = "Approved"
	StatusChangesRequested Status = "Changes Requested"
	StatusArchived         Status = "Archived"
)

var (
	ErrNotFound = errors.New("regulation version not found")
	// ErrVersionConflict: a concurrent writer claimed the same version number.
	// Caller should re-read the family and retry the whole operation.
	ErrVersionConflict = errors.New("regulation version number conflict")
	// ErrCodeConflict: rename target already has a family in this department.
	ErrCodeConflict = errors.New("regulation code already in use")
	ErrNotAuthorized = errors.New("regulation belongs to another department")
	ErrValidation    = errors.New("invalid input")
)

// RegulationVersion is one record in a regulation family. A family is the set
// of all versions sharing (regulation_code, department); versions are numbered
// 1..N with no gaps and exactly one record per family carries is_latest.
type RegulationVersion struct {
	ID uint64 `gorm:"primaryKey;column:id" json:"-"`
	// Public identifier (32-char lowercase hex)
	VersionID      string         `gorm:"column:version_id;type:char(32);not null;uniqueIndex:ux_regulations_version_id" json:"version_id"`
	RegulationCode string         `gorm:"column:regulation_code;size:64;not null;uniqueIndex:ux_regulations_family_version,priority:1" json:"regulation_code"`
	Department     string         `gorm:"column:department;size:64;not null;index:idx_regulations_department;uniqueIndex:ux_regulations_family_version,priority:2" json:"department"`
	Version        int            `gorm:"column:version;not null;uniqueIndex:ux_regulations_family_version,priority:3" json:"version"`
	Status         Status         `gorm:"column:status;type:enum('Pending','Draft','Submitted','Under Review','Approved','Changes Requested','Archived');default:'Pending'" json:"status"`
	IsDraft        bool           `gorm:"column:is_draft;not null;default:true" json:"is_draft"`
	IsLatest       bool           `gorm:"column:is_latest;not null;default:true" json:"is_latest"`
	FormData       datatypes.JSON `gorm:"column:form_data" json:"form_data,omitempty"`
	ChangeSummary  string         `gorm:"column:change_summary;type:text" json:"change_summary"`
	// Opaque reference into the external blob store (24-char hex file id)
	CurriculumFileID *string        `gorm:"column:curriculum_file_id;type:char(24)" json:"curriculum_file_id"`
	HodID            *string        `gorm:"column:hod_id;type:char(32)" json:"hod_id"`
	SavedBy          *string        `gorm:"column:saved_by;type:char(32)" json:"saved_by"`
	SubmittedBy      *string        `gorm:"column:submitted_by;type:char(32)" json:"submitted_by"`
	SavedAt          *time.Time `gorm:"column:saved_at" json:"saved_at"`
	SubmittedAt      *time.Time `gorm:"column:submitted_at" json:"submitted_at"`
	LastUpdated      time.Time  `gorm:"column:last_updated" json:"last_updated"`
	CreatedAt        time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (RegulationVersion) TableName() string { return "regulation_versions" }

// Promotable reports whether a submit call updates this record in place
// rather than forking a new version.
func (r *RegulationVersion) Promotable() bool {
	return r.IsDraft || r.Status == StatusDraft || r.Status == StatusPending
}
