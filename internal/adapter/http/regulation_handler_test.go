package http

import (
	"bytes"
	"context"
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	domain "curricula-backend/internal/domain/regulation"
	"curricula-backend/internal/domain/uow"
	"curricula-backend/internal/testutil/regulationmock"
	"curricula-backend/internal/testutil/subjectmock"
	"curricula-backend/internal/testutil/uowmock"
	uc "curricula-backend/internal/usecase/regulation"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// -------- helpers --------

func newEchoWithValidator() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func mustJSON(v any) *bytes.Reader {
	b, _ := json.Marshal(v)
	return bytes.NewReader(b)
}

func newHandler(repo *regulationmock.Repo, latest func(code, dept string) *domain.RegulationVersion) *RegulationHandler {
	subj := &subjectmock.Repo{}
	u := &uowmock.UoW{
		Repos:    uow.Repos{Regulations: repo, Subjects: subj},
		LatestFn: latest,
	}
	return NewRegulationHandler(uc.NewUsecase(repo, subj, u))
}

// authedContext fakes what the JWT middleware injects.
func authedContext(e *echo.Echo, req *stdhttp.Request) (echo.Context, *httptest.ResponseRecorder) {
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", strings.Repeat("d", 32))
	c.Set("department", "CSE")
	c.Set("role", "hod")
	return c, rec
}

func seedSubmitted(code, dept string, version int) *domain.RegulationVersion {
	now := time.Now().UTC()
	file := strings.Repeat("c", 24)
	return &domain.RegulationVersion{
		ID:               uint64(version),
		VersionID:        strings.Repeat("a", 32),
		RegulationCode:   code,
		Department:       dept,
		Version:          version,
		Status:           domain.StatusSubmitted,
		IsLatest:         true,
		CurriculumFileID: &file,
		SubmittedAt:      &now,
		LastUpdated:      now,
	}
}

// -------- tests --------

func TestSaveDraft_CreatesVersion(t *testing.T) {
	e := newEchoWithValidator()
	h := newHandler(&regulationmock.Repo{}, func(code, dept string) *domain.RegulationVersion { return nil })

	reqBody := map[string]any{
		"regulationCode": "R2022",
		"formData":       map[string]any{"title": "B.Tech CSE"},
	}
	req := httptest.NewRequest(stdhttp.MethodPost, "/regulations/save-draft", mustJSON(reqBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c, rec := authedContext(e, req)

	if err := h.SaveDraft(c); err != nil {
		t.Fatalf("SaveDraft error: %v", err)
	}
	if rec.Code != stdhttp.StatusCreated {
		t.Fatalf("status = %d, want 201", rec.Code)
	}
	var got struct {
		Message    string           `json:"message"`
		Regulation uc.RegulationDTO `json:"regulation"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if got.Regulation.Version != 1 || !got.Regulation.IsDraft || got.Regulation.Department != "CSE" {
		t.Fatalf("unexpected dto: %+v", got.Regulation)
	}
	if got.Message != "Draft version 1 saved" {
		t.Fatalf("message = %q", got.Message)
	}
}

func TestSaveDraft_CoalescesToOK(t *testing.T) {
	e := newEchoWithValidator()
	latest := &domain.RegulationVersion{
		VersionID:      strings.Repeat("b", 32),
		RegulationCode: "R2022",
		Department:     "CSE",
		Version:        1,
		Status:         domain.StatusDraft,
		IsDraft:        true,
		IsLatest:       true,
	}
	h := newHandler(&regulationmock.Repo{}, func(code, dept string) *domain.RegulationVersion { return latest })

	reqBody := map[string]any{"regulationCode": "R2022", "formData": map[string]any{"rev": 2}}
	req := httptest.NewRequest(stdhttp.MethodPost, "/regulations/save-draft", mustJSON(reqBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c, rec := authedContext(e, req)

	if err := h.SaveDraft(c); err != nil {
		t.Fatalf("SaveDraft error: %v", err)
	}
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestSaveDraft_BindError(t *testing.T) {
	e := newEchoWithValidator()
	h := newHandler(&regulationmock.Repo{}, nil)

	req := httptest.NewRequest(stdhttp.MethodPost, "/regulations/save-draft", strings.NewReader(`{"regulationCode":`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c, rec := authedContext(e, req)

	if err := h.SaveDraft(c); err != nil {
		t.Fatalf("SaveDraft error: %v", err)
	}
	if rec.Code != stdhttp.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	var er ErrorResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &er)
	if er.Error != "invalid body" {
		t.Fatalf("error = %q, want %q", er.Error, "invalid body")
	}
}

func TestSaveDraft_ValidationError(t *testing.T) {
	e := newEchoWithValidator()
	h := newHandler(&regulationmock.Repo{}, nil) // usecase won't be called

	req := httptest.NewRequest(stdhttp.MethodPost, "/regulations/save-draft", mustJSON(map[string]any{"formData": map[string]any{}}))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c, rec := authedContext(e, req)

	if err := h.SaveDraft(c); err != nil {
		t.Fatalf("SaveDraft error: %v", err)
	}
	if rec.Code != stdhttp.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	var er ErrorResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &er)
	if !containsFieldMsg(er.Details, "RegulationCode", "required") {
		t.Fatalf("missing field detail: %+v", er.Details)
	}
}

func TestSaveDraft_Unauthenticated(t *testing.T) {
	e := newEchoWithValidator()
	h := newHandler(&regulationmock.Repo{}, nil)

	req := httptest.NewRequest(stdhttp.MethodPost, "/regulations/save-draft", mustJSON(map[string]any{"regulationCode": "R2022"}))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec) // no identity set

	if err := h.SaveDraft(c); err != nil {
		t.Fatalf("SaveDraft error: %v", err)
	}
	if rec.Code != stdhttp.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestSubmit_PromotesDraft(t *testing.T) {
	e := newEchoWithValidator()
	latest := &domain.RegulationVersion{
		VersionID:      strings.Repeat("b", 32),
		RegulationCode: "R2022",
		Department:     "CSE",
		Version:        1,
		Status:         domain.StatusDraft,
		IsDraft:        true,
		IsLatest:       true,
	}
	h := newHandler(&regulationmock.Repo{}, func(code, dept string) *domain.RegulationVersion { return latest })

	reqBody := map[string]any{
		"regulationCode": "R2022",
		"fileId":         strings.Repeat("c", 24),
	}
	req := httptest.NewRequest(stdhttp.MethodPost, "/regulations/submit", mustJSON(reqBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c, rec := authedContext(e, req)

	if err := h.Submit(c); err != nil {
		t.Fatalf("Submit error: %v", err)
	}
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var got struct {
		Message    string           `json:"message"`
		Regulation uc.RegulationDTO `json:"regulation"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if got.Regulation.Status != string(domain.StatusSubmitted) || got.Regulation.IsDraft {
		t.Fatalf("unexpected dto: %+v", got.Regulation)
	}
}

func TestSubmit_ForkReturnsCreated(t *testing.T) {
	e := newEchoWithValidator()
	latest := seedSubmitted("R2022", "CSE", 1)
	h := newHandler(&regulationmock.Repo{}, func(code, dept string) *domain.RegulationVersion { return latest })

	reqBody := map[string]any{
		"regulationCode": "R2022",
		"fileId":         strings.Repeat("c", 24),
	}
	req := httptest.NewRequest(stdhttp.MethodPost, "/regulations/submit", mustJSON(reqBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c, rec := authedContext(e, req)

	if err := h.Submit(c); err != nil {
		t.Fatalf("Submit error: %v", err)
	}
	if rec.Code != stdhttp.StatusCreated {
		t.Fatalf("status = %d, want 201", rec.Code)
	}
}

func TestSubmit_InvalidFileID(t *testing.T) {
	e := newEchoWithValidator()
	h := newHandler(&regulationmock.Repo{}, nil)

	reqBody := map[string]any{"regulationCode": "R2022", "fileId": "NOT_A_FILE_ID"}
	req := httptest.NewRequest(stdhttp.MethodPost, "/regulations/submit", mustJSON(reqBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c, rec := authedContext(e, req)

	if err := h.Submit(c); err != nil {
		t.Fatalf("Submit error: %v", err)
	}
	if rec.Code != stdhttp.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	var er ErrorResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &er)
	if !containsFieldMsg(er.Details, "FileID", "24-char") {
		t.Fatalf("missing field detail: %+v", er.Details)
	}
}

func TestSubmit_FamilyMissing(t *testing.T) {
	e := newEchoWithValidator()
	h := newHandler(&regulationmock.Repo{}, func(code, dept string) *domain.RegulationVersion { return nil })

	reqBody := map[string]any{"regulationCode": "R1999", "fileId": strings.Repeat("c", 24)}
	req := httptest.NewRequest(stdhttp.MethodPost, "/regulations/submit", mustJSON(reqBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c, rec := authedContext(e, req)

	if err := h.Submit(c); err != nil {
		t.Fatalf("Submit error: %v", err)
	}
	if rec.Code != stdhttp.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestList_ScopedToDepartment(t *testing.T) {
	e := newEchoWithValidator()
	repo := &regulationmock.Repo{
		ListByDepartmentFn: func(ctx context.Context, department string) ([]domain.RegulationVersion, error) {
			if department != "CSE" {
				t.Fatalf("department = %s, want CSE", department)
			}
			return []domain.RegulationVersion{*seedSubmitted("R2022", "CSE", 1)}, nil
		},
	}
	h := newHandler(repo, nil)

	req := httptest.NewRequest(stdhttp.MethodGet, "/regulations", nil)
	c, rec := authedContext(e, req)

	if err := h.List(c); err != nil {
		t.Fatalf("List error: %v", err)
	}
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var got []uc.RegulationSummary
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if len(got) != 1 || got[0].RegulationCode != "R2022" {
		t.Fatalf("unexpected list: %+v", got)
	}
}

func TestGetVersion_WrongDepartment(t *testing.T) {
	e := newEchoWithValidator()
	other := seedSubmitted("R2022", "ECE", 1)
	repo := &regulationmock.Repo{
		GetByVersionIDFn: func(ctx context.Context, versionID string) (*domain.RegulationVersion, error) {
			return other, nil
		},
	}
	h := newHandler(repo, nil)

	req := httptest.NewRequest(stdhttp.MethodGet, "/regulations/version/"+other.VersionID, nil)
	c, rec := authedContext(e, req)
	c.SetParamNames("id")
	c.SetParamValues(other.VersionID)

	if err := h.GetVersion(c); err != nil {
		t.Fatalf("GetVersion error: %v", err)
	}
	if rec.Code != stdhttp.StatusForbidden {
		t.Fatalf("status = %d, want 403", rec.Code)
	}
}

func TestGetVersion_NotFound(t *testing.T) {
	e := newEchoWithValidator()
	repo := &regulationmock.Repo{
		GetByVersionIDFn: func(ctx context.Context, versionID string) (*domain.RegulationVersion, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	h := newHandler(repo, nil)

	id := strings.Repeat("e", 32)
	req := httptest.NewRequest(stdhttp.MethodGet, "/regulations/version/"+id, nil)
	c, rec := authedContext(e, req)
	c.SetParamNames("id")
	c.SetParamValues(id)

	if err := h.GetVersion(c); err != nil {
		t.Fatalf("GetVersion error: %v", err)
	}
	if rec.Code != stdhttp.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestGetVersion_MalformedID(t *testing.T) {
	e := newEchoWithValidator()
	repo := &regulationmock.Repo{
		GetByVersionIDFn: func(ctx context.Context, versionID string) (*domain.RegulationVersion, error) {
			t.Fatalf("lookup must be skipped for malformed ids")
			return nil, nil
		},
	}
	h := newHandler(repo, nil)

	req := httptest.NewRequest(stdhttp.MethodGet, "/regulations/version/short", nil)
	c, rec := authedContext(e, req)
	c.SetParamNames("id")
	c.SetParamValues("short")

	if err := h.GetVersion(c); err != nil {
		t.Fatalf("GetVersion error: %v", err)
	}
	if rec.Code != stdhttp.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestDeleteFamily_NotFound(t *testing.T) {
	e := newEchoWithValidator()
	repo := &regulationmock.Repo{
		DeleteFamilyFn: func(ctx context.Context, code, department string) (int64, error) { return 0, nil },
	}
	h := newHandler(repo, nil)

	req := httptest.NewRequest(stdhttp.MethodDelete, "/regulations/R1999", nil)
	c, rec := authedContext(e, req)
	c.SetParamNames("code")
	c.SetParamValues("R1999")

	if err := h.DeleteFamily(c); err != nil {
		t.Fatalf("DeleteFamily error: %v", err)
	}
	if rec.Code != stdhttp.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestDeleteFamily_Success(t *testing.T) {
	e := newEchoWithValidator()
	repo := &regulationmock.Repo{
		DeleteFamilyFn: func(ctx context.Context, code, department string) (int64, error) { return 2, nil },
	}
	h := newHandler(repo, nil)

	req := httptest.NewRequest(stdhttp.MethodDelete, "/regulations/R2022", nil)
	c, rec := authedContext(e, req)
	c.SetParamNames("code")
	c.SetParamValues("R2022")

	if err := h.DeleteFamily(c); err != nil {
		t.Fatalf("DeleteFamily error: %v", err)
	}
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var got map[string]string
	_ = json.Unmarshal(rec.Body.Bytes(), &got)
	if got["message"] != "Regulation R2022 deleted" {
		t.Fatalf("message = %q", got["message"])
	}
}

func TestRenameFamily_Conflict(t *testing.T) {
	e := newEchoWithValidator()
	repo := &regulationmock.Repo{
		FamilyExistsFn: func(ctx context.Context, code, department string) (bool, error) { return true, nil },
	}
	h := newHandler(repo, nil)

	req := httptest.NewRequest(stdhttp.MethodPut, "/regulations/R2022/rename", mustJSON(map[string]any{"newRegulationCode": "R2026"}))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c, rec := authedContext(e, req)
	c.SetParamNames("code")
	c.SetParamValues("R2022")

	if err := h.RenameFamily(c); err != nil {
		t.Fatalf("RenameFamily error: %v", err)
	}
	if rec.Code != stdhttp.StatusConflict {
		t.Fatalf("status = %d, want 409", rec.Code)
	}
}

func TestRenameFamily_Success(t *testing.T) {
	e := newEchoWithValidator()
	repo := &regulationmock.Repo{
		FamilyExistsFn: func(ctx context.Context, code, department string) (bool, error) { return false, nil },
		RenameFamilyFn: func(ctx context.Context, code, newCode, department string) (int64, error) { return 2, nil },
	}
	h := newHandler(repo, nil)

	req := httptest.NewRequest(stdhttp.MethodPut, "/regulations/R2022/rename", mustJSON(map[string]any{"newRegulationCode": "R2026"}))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c, rec := authedContext(e, req)
	c.SetParamNames("code")
	c.SetParamValues("R2022")

	if err := h.RenameFamily(c); err != nil {
		t.Fatalf("RenameFamily error: %v", err)
	}
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var got map[string]string
	_ = json.Unmarshal(rec.Body.Bytes(), &got)
	if got["message"] != "Regulation R2022 renamed to R2026" {
		t.Fatalf("message = %q", got["message"])
	}
}
