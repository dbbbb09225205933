package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rifkydyatama/si-eligible/internal/dto"
	"github.com/rifkydyatama/si-eligible/internal/service"
	"github.com/rifkydyatama/si-eligible/pkg/response"
)

// PreferenceHandler serves the student's ranked admission choices.
type PreferenceHandler struct {
	prefSvc service.PreferenceService
}

// NewPreferenceHandler creates a PreferenceHandler.
func NewPreferenceHandler(prefSvc service.PreferenceService) *PreferenceHandler {
	return &PreferenceHandler{prefSvc: prefSvc}
}

// List returns the authenticated student's choices ordered by rank.
// GET /api/v1/preferences
func (h *PreferenceHandler) List(c *gin.Context) {
	studentID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	prefs, err := h.prefSvc.List(c.Request.Context(), studentID)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, prefs)
}

// Upsert creates or replaces the choice at the given rank.
// PUT /api/v1/preferences
func (h *PreferenceHandler) Upsert(c *gin.Context) {
	studentID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.UpsertPreferenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request parameters")
		return
	}

	pref, err := h.prefSvc.Upsert(c.Request.Context(), studentID, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCampusNotFound):
			response.NotFound(c, 40001, "campus not found")
		case errors.Is(err, service.ErrMajorNotFound):
			response.NotFound(c, 40003, "major not found")
		case errors.Is(err, service.ErrMajorMismatch):
			response.BadRequest(c, 40004, "major does not belong to the chosen campus")
		case errors.Is(err, service.ErrCampusInactive):
			response.BadRequest(c, 40005, "campus is not accepting applications")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, pref)
}

// Delete removes the choice at the given rank.
// DELETE /api/v1/preferences/:rank
func (h *PreferenceHandler) Delete(c *gin.Context) {
	studentID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	rank, err := strconv.Atoi(c.Param("rank"))
	if err != nil || rank < 1 || rank > 5 {
		response.BadRequest(c, 10001, "rank must be between 1 and 5")
		return
	}

	if err := h.prefSvc.Delete(c.Request.Context(), studentID, rank); err != nil {
		if errors.Is(err, service.ErrPreferenceNotFound) {
			response.NotFound(c, 40006, "preference not found")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, nil)
}
