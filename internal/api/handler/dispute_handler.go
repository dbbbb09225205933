package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/rifkydyatama/si-eligible/internal/dto"
	"github.com/rifkydyatama/si-eligible/internal/model"
	"github.com/rifkydyatama/si-eligible/internal/service"
	"github.com/rifkydyatama/si-eligible/pkg/response"
	"github.com/rifkydyatama/si-eligible/pkg/storage"
)

// DisputeHandler serves the score-dispute endpoints.
type DisputeHandler struct {
	disputeSvc service.DisputeService
	store      storage.Storage
}

// NewDisputeHandler creates a DisputeHandler.
func NewDisputeHandler(disputeSvc service.DisputeService, store storage.Storage) *DisputeHandler {
	return &DisputeHandler{disputeSvc: disputeSvc, store: store}
}

// Submit files a dispute against one of the student's own scores.
// Multipart form: score_id, claimed_value, evidence (file, required).
// POST /api/v1/disputes
func (h *DisputeHandler) Submit(c *gin.Context) {
	studentID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.SubmitDisputeRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request parameters")
		return
	}

	fileHeader, err := c.FormFile("evidence")
	if err != nil {
		response.BadRequest(c, 31001, "evidence file is required")
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		response.BadRequest(c, 31001, "evidence file unreadable")
		return
	}
	defer file.Close()

	evidenceRef, err := h.store.Save("disputes", fileHeader.Filename, file)
	if err != nil {
		response.InternalError(c)
		return
	}

	dispute, err := h.disputeSvc.Submit(c.Request.Context(), studentID, &req, evidenceRef)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrScoreNotFound):
			response.NotFound(c, 30001, "score not found")
		case errors.Is(err, service.ErrNotScoreOwner):
			response.Forbidden(c, 30002, "score belongs to another student")
		case errors.Is(err, service.ErrDisputeAlreadyPending):
			response.BadRequest(c, 31002, "a pending dispute already exists for this score")
		default:
			response.InternalError(c)
		}
		return
	}

	response.Created(c, dispute)
}

// ListMine returns the authenticated student's disputes.
// GET /api/v1/disputes
func (h *DisputeHandler) ListMine(c *gin.Context) {
	studentID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	disputes, err := h.disputeSvc.ListMine(c.Request.Context(), studentID)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, disputes)
}

// ListByStatus returns disputes for review, pending by default.
// GET /api/v1/admin/disputes?status=pending
func (h *DisputeHandler) ListByStatus(c *gin.Context) {
	status := c.DefaultQuery("status", model.DisputeStatusPending)

	disputes, err := h.disputeSvc.ListByStatus(c.Request.Context(), status)
	if err != nil {
		if errors.Is(err, service.ErrInvalidDisputeStatus) {
			response.BadRequest(c, 31003, "invalid dispute status")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, disputes)
}

// Resolve approves or rejects a pending dispute.
// POST /api/v1/admin/disputes/:id/resolve
func (h *DisputeHandler) Resolve(c *gin.Context) {
	reviewerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.ResolveDisputeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request parameters")
		return
	}

	dispute, err := h.disputeSvc.Resolve(c.Request.Context(), reviewerID, c.Param("id"), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrDisputeNotFound):
			response.NotFound(c, 31004, "dispute not found")
		case errors.Is(err, service.ErrDisputeAlreadyResolved):
			response.BadRequest(c, 31005, "dispute has already been resolved")
		case errors.Is(err, service.ErrReviewNoteRequired):
			response.BadRequest(c, 31006, "a review note is required when rejecting")
		case errors.Is(err, service.ErrScoreNotFound):
			response.NotFound(c, 30001, "score not found")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, dispute)
}
