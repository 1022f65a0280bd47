package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	domain "curricula-backend/internal/domain/regulation"
	uc "curricula-backend/internal/usecase/regulation"

	"github.com/labstack/echo/v4"
)

type RegulationHandler struct{ uc *uc.Usecase }

func NewRegulationHandler(u *uc.Usecase) *RegulationHandler { return &RegulationHandler{uc: u} }

type saveDraftReq struct {
	RegulationCode string          `json:"regulationCode" validate:"required,max=64"`
	Department     string          `json:"department" validate:"omitempty,max=64"`
	FormData       json.RawMessage `json:"formData"`
	ChangeSummary  string          `json:"changeSummary"`
}

type submitReq struct {
	RegulationCode string          `json:"regulationCode" validate:"required,max=64"`
	Department     string          `json:"department" validate:"omitempty,max=64"`
	FileID         string          `json:"fileId" validate:"required,hex24"`
	FormData       json.RawMessage `json:"formData"`
	ChangeSummary  *string         `json:"changeSummary"`
}

type renameReq struct {
	NewRegulationCode string `json:"newRegulationCode" validate:"required,max=64"`
}

type mutationResp struct {
	Message    string           `json:"message"`
	Regulation uc.RegulationDTO `json:"regulation"`
}

// POST /regulations/save-draft
func (h *RegulationHandler) SaveDraft(c echo.Context) error {
	ident, ok := MustIdentity(c)
	if !ok {
		return nil
	}
	var req saveDraftReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}

	res, err := h.uc.SaveDraft(c.Request().Context(), uc.SaveDraftInput{
		RegulationCode:   req.RegulationCode,
		Department:       req.Department,
		FormData:         req.FormData,
		ChangeSummary:    req.ChangeSummary,
		ActingUserID:     ident.UserID,
		ActingDepartment: ident.Department,
	})
	if err != nil {
		return writeDomainError(c, err, "Unable to save draft")
	}

	status := http.StatusOK
	if res.Created {
		status = http.StatusCreated
	}
	return c.JSON(status, mutationResp{Message: res.Message, Regulation: res.Regulation})
}

// POST /regulations/submit
func (h *RegulationHandler) Submit(c echo.Context) error {
	ident, ok := MustIdentity(c)
	if !ok {
		return nil
	}
	var req submitReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}

	res, err := h.uc.Submit(c.Request().Context(), uc.SubmitInput{
		RegulationCode:   req.RegulationCode,
		Department:       req.Department,
		FileID:           req.FileID,
		FormData:         req.FormData,
		ChangeSummary:    req.ChangeSummary,
		ActingUserID:     ident.UserID,
		ActingDepartment: ident.Department,
	})
	if err != nil {
		return writeDomainError(c, err, "Unable to submit regulation")
	}

	status := http.StatusOK
	if res.Created {
		status = http.StatusCreated
	}
	return c.JSON(status, mutationResp{Message: res.Message, Regulation: res.Regulation})
}

// GET /regulations — scoped to the caller's department
func (h *RegulationHandler) List(c echo.Context) error {
	ident, ok := MustIdentity(c)
	if !ok {
		return nil
	}
	summaries, err := h.uc.ListForDepartment(c.Request().Context(), ident.Department)
	if err != nil {
		return writeDomainError(c, err, "Unable to fetch regulations")
	}
	return c.JSON(http.StatusOK, summaries)
}

// GET /regulations/version/:id
func (h *RegulationHandler) GetVersion(c echo.Context) error {
	ident, ok := MustIdentity(c)
	if !ok {
		return nil
	}
	versionID := c.Param("id")
	if !reHex32.MatchString(versionID) {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "Regulation not found"})
	}
	dto, err := h.uc.GetVersion(c.Request().Context(), versionID, ident.Department)
	if err != nil {
		return writeDomainError(c, err, "Unable to fetch regulation")
	}
	return c.JSON(http.StatusOK, dto)
}

// GET /regulations/:code/versions
func (h *RegulationHandler) ListVersionsByCode(c echo.Context) error {
	ident, ok := MustIdentity(c)
	if !ok {
		return nil
	}
	records, err := h.uc.ListVersionsByCode(c.Request().Context(), c.Param("code"), ident.Department)
	if err != nil {
		return writeDomainError(c, err, "Unable to fetch versions")
	}
	return c.JSON(http.StatusOK, records)
}

// DELETE /regulations/:code
func (h *RegulationHandler) DeleteFamily(c echo.Context) error {
	ident, ok := MustIdentity(c)
	if !ok {
		return nil
	}
	code := c.Param("code")
	if err := h.uc.DeleteFamily(c.Request().Context(), code, ident.Department); err != nil {
		return writeDomainError(c, err, "Unable to delete regulation")
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Regulation " + code + " deleted"})
}

// PUT /regulations/:code/rename
func (h *RegulationHandler) RenameFamily(c echo.Context) error {
	ident, ok := MustIdentity(c)
	if !ok {
		return nil
	}
	var req renameReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	code := c.Param("code")
	err := h.uc.RenameFamily(c.Request().Context(), uc.RenameInput{
		RegulationCode:    code,
		NewRegulationCode: req.NewRegulationCode,
		ActingDepartment:  ident.Department,
	})
	if err != nil {
		return writeDomainError(c, err, "Unable to rename regulation")
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Regulation " + code + " renamed to " + req.NewRegulationCode})
}

// writeDomainError maps domain errors to status codes; anything unexpected
// logs server-side and surfaces the safe fallback only.
func writeDomainError(c echo.Context, err error, fallback string) error {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "Regulation not found"})
	case errors.Is(err, domain.ErrNotAuthorized):
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: "Not authorized to view this regulation"})
	case errors.Is(err, domain.ErrCodeConflict), errors.Is(err, domain.ErrVersionConflict):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	default:
		log.Printf("%s: %v", fallback, err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: fallback})
	}
}
