package regulation

import (
	"encoding/json"
	"log"
	"strings"
	"time"

	domain "curricula-backend/internal/domain/regulation"

	"gorm.io/datatypes"
)

type SaveDraftInput struct {
	RegulationCode string
	Department     string // optional; falls back to the acting user's department
	FormData       any    // JSON object or a stringified JSON payload
	ChangeSummary  string

	ActingUserID     string
	ActingDepartment string
}

type SubmitInput struct {
	RegulationCode string
	Department     string
	FileID         string // 24-char hex blob reference, required
	FormData       any    // nil keeps the stored payload
	ChangeSummary  *string

	ActingUserID     string
	ActingDepartment string
}

type RenameInput struct {
	RegulationCode    string
	NewRegulationCode string
	ActingDepartment  string
}

// RegulationDTO mirrors one version record on the wire.
type RegulationDTO struct {
	VersionID        string          `json:"versionId"`
	RegulationCode   string          `json:"regulationCode"`
	Department       string          `json:"department"`
	Version          int             `json:"version"`
	Status           string          `json:"status"`
	IsDraft          bool            `json:"isDraft"`
	IsLatest         bool            `json:"isLatest"`
	FormData         json.RawMessage `json:"formData,omitempty"`
	ChangeSummary    string          `json:"changeSummary"`
	CurriculumFileID *string         `json:"curriculumFileId"`
	HodID            *string         `json:"hod"`
	SavedBy          *string         `json:"savedBy"`
	SubmittedBy      *string         `json:"submittedBy"`
	SavedAt          *time.Time      `json:"savedAt"`
	SubmittedAt      *time.Time      `json:"submittedAt"`
	LastUpdated      time.Time       `json:"lastUpdated"`
	CreatedAt        time.Time       `json:"createdAt"`
}

// SaveResult distinguishes an in-place draft update from a fork so the UI can
// tell the user whether a new version came into existence.
type SaveResult struct {
	Created    bool
	Message    string
	Regulation RegulationDTO
}

type VersionMeta struct {
	VersionID        string     `json:"versionId"`
	Version          int        `json:"version"`
	Status           string     `json:"status"`
	IsDraft          bool       `json:"isDraft"`
	IsLatest         bool       `json:"isLatest"`
	LastUpdated      time.Time  `json:"lastUpdated"`
	SubmittedAt      *time.Time `json:"submittedAt"`
	CurriculumFileID *string    `json:"curriculumFileId"`
	SavedAt          *time.Time `json:"savedAt"`
	SavedBy          *string    `json:"savedBy"`
	ChangeSummary    string     `json:"changeSummary"`
}

// RegulationSummary groups one family for the department listing.
type RegulationSummary struct {
	RegulationCode string        `json:"regulationCode"`
	Department     string        `json:"department"`
	LatestVersion  int           `json:"latestVersion"`
	LatestStatus   string        `json:"latestStatus"`
	LastUpdated    time.Time     `json:"lastUpdated"`
	Versions       []VersionMeta `json:"versions"`
}

func toDTO(v *domain.RegulationVersion) RegulationDTO {
	return RegulationDTO{
		VersionID:        v.VersionID,
		RegulationCode:   v.RegulationCode,
		Department:       v.Department,
		Version:          v.Version,
		Status:           string(v.Status),
		IsDraft:          v.IsDraft,
		IsLatest:         v.IsLatest,
		FormData:         json.RawMessage(v.FormData),
		ChangeSummary:    v.ChangeSummary,
		CurriculumFileID: v.CurriculumFileID,
		HodID:            v.HodID,
		SavedBy:          v.SavedBy,
		SubmittedBy:      v.SubmittedBy,
		SavedAt:          v.SavedAt,
		SubmittedAt:      v.SubmittedAt,
		LastUpdated:      v.LastUpdated,
		CreatedAt:        v.CreatedAt,
	}
}

// normalizeFormData accepts the loose payload shapes clients send: a JSON
// object, a stringified JSON document, or nothing. Unparseable strings are
// dropped rather than rejected.
func normalizeFormData(v any) datatypes.JSON {
	switch p := v.(type) {
	case nil:
		return nil
	case string:
		if p == "" {
			return nil
		}
		if !json.Valid([]byte(p)) {
			log.Printf("dropping unparseable formData payload")
			return nil
		}
		return datatypes.JSON(p)
	case json.RawMessage:
		trimmed := strings.TrimSpace(string(p))
		if trimmed == "" || trimmed == "null" {
			return nil
		}
		// clients sometimes double-encode the form: a JSON string holding a
		// JSON document
		if trimmed[0] == '"' {
			var inner string
			if err := json.Unmarshal([]byte(trimmed), &inner); err != nil {
				log.Printf("dropping unparseable formData payload: %v", err)
				return nil
			}
			return normalizeFormData(inner)
		}
		if !json.Valid([]byte(trimmed)) {
			log.Printf("dropping unparseable formData payload")
			return nil
		}
		return datatypes.JSON(trimmed)
	default:
		b, err := json.Marshal(p)
		if err != nil {
			log.Printf("dropping unmarshalable formData payload: %v", err)
			return nil
		}
		return datatypes.JSON(b)
	}
}

// normalizeDepartment picks the explicit department when present, otherwise
// the acting user's own.
func normalizeDepartment(incoming, fallback string) string {
	if s := strings.TrimSpace(incoming); s != "" {
		return s
	}
	return fallback
}

func identityRef(userID string) *string {
	if userID == "" {
		return nil
	}
	return &userID
}
