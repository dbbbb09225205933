package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/rifkydyatama/si-eligible/internal/service"
	"github.com/rifkydyatama/si-eligible/pkg/response"
)

// ScoreHandler serves score reads and verification.
type ScoreHandler struct {
	scoreSvc service.ScoreService
}

// NewScoreHandler creates a ScoreHandler.
func NewScoreHandler(scoreSvc service.ScoreService) *ScoreHandler {
	return &ScoreHandler{scoreSvc: scoreSvc}
}

// ListMine returns the authenticated student's scores.
// GET /api/v1/scores
func (h *ScoreHandler) ListMine(c *gin.Context) {
	studentID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	scores, err := h.scoreSvc.ListMine(c.Request.Context(), studentID)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, scores)
}

// VerifyOwn marks one of the student's own scores as verified.
// POST /api/v1/scores/:id/verify
func (h *ScoreHandler) VerifyOwn(c *gin.Context) {
	studentID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	score, err := h.scoreSvc.VerifyOwn(c.Request.Context(), studentID, c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrScoreNotFound):
			response.NotFound(c, 30001, "score not found")
		case errors.Is(err, service.ErrNotScoreOwner):
			response.Forbidden(c, 30002, "score belongs to another student")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, score)
}

// ListByStudent returns a student's scores for reviewers.
// GET /api/v1/admin/students/:id/scores
func (h *ScoreHandler) ListByStudent(c *gin.Context) {
	scores, err := h.scoreSvc.ListByStudent(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrStudentNotFound) {
			response.NotFound(c, 20001, "student not found")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, scores)
}

// VerifyAny marks any score as verified (reviewer action).
// POST /api/v1/admin/scores/:id/verify
func (h *ScoreHandler) VerifyAny(c *gin.Context) {
	score, err := h.scoreSvc.VerifyAny(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrScoreNotFound) {
			response.NotFound(c, 30001, "score not found")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, score)
}
