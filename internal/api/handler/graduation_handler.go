package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/rifkydyatama/si-eligible/internal/dto"
	"github.com/rifkydyatama/si-eligible/internal/service"
	"github.com/rifkydyatama/si-eligible/pkg/response"
	"github.com/rifkydyatama/si-eligible/pkg/storage"
)

// GraduationHandler serves the admission-outcome report endpoints.
type GraduationHandler struct {
	gradSvc service.GraduationService
	store   storage.Storage
}

// NewGraduationHandler creates a GraduationHandler.
func NewGraduationHandler(gradSvc service.GraduationService, store storage.Storage) *GraduationHandler {
	return &GraduationHandler{gradSvc: gradSvc, store: store}
}

// Get returns the authenticated student's report.
// GET /api/v1/graduation
func (h *GraduationHandler) Get(c *gin.Context) {
	studentID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	report, err := h.gradSvc.Get(c.Request.Context(), studentID)
	if err != nil {
		if errors.Is(err, service.ErrReportNotFound) {
			response.NotFound(c, 41001, "graduation report not found")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, report)
}

// Upsert creates or replaces the student's report. Multipart form;
// the evidence file is required when status is accepted and no
// evidence is on record yet.
// PUT /api/v1/graduation
func (h *GraduationHandler) Upsert(c *gin.Context) {
	studentID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.UpsertGraduationRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request parameters")
		return
	}

	var evidenceRef *string
	if fileHeader, err := c.FormFile("evidence"); err == nil {
		file, err := fileHeader.Open()
		if err != nil {
			response.BadRequest(c, 41002, "evidence file unreadable")
			return
		}
		defer file.Close()

		ref, err := h.store.Save("graduation", fileHeader.Filename, file)
		if err != nil {
			response.InternalError(c)
			return
		}
		evidenceRef = &ref
	}

	report, err := h.gradSvc.Upsert(c.Request.Context(), studentID, &req, evidenceRef)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEvidenceRequired):
			response.BadRequest(c, 41003, "acceptance evidence is required")
		case errors.Is(err, service.ErrCampusNotFound):
			response.NotFound(c, 40001, "campus not found")
		case errors.Is(err, service.ErrMajorNotFound):
			response.NotFound(c, 40003, "major not found")
		case errors.Is(err, service.ErrMajorMismatch):
			response.BadRequest(c, 40004, "major does not belong to the chosen campus")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, report)
}

// Delete removes the student's report.
// DELETE /api/v1/graduation
func (h *GraduationHandler) Delete(c *gin.Context) {
	studentID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.gradSvc.Delete(c.Request.Context(), studentID); err != nil {
		if errors.Is(err, service.ErrReportNotFound) {
			response.NotFound(c, 41001, "graduation report not found")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, nil)
}
