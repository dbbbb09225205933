package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/rifkydyatama/si-eligible/internal/service"
	"github.com/rifkydyatama/si-eligible/pkg/response"
)

// StatsHandler serves the staff dashboard summary.
type StatsHandler struct {
	statsSvc service.StatsService
}

// NewStatsHandler creates a StatsHandler.
func NewStatsHandler(statsSvc service.StatsService) *StatsHandler {
	return &StatsHandler{statsSvc: statsSvc}
}

// Summary returns the dashboard counters.
// GET /api/v1/admin/stats
func (h *StatsHandler) Summary(c *gin.Context) {
	stats, err := h.statsSvc.Summary(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, stats)
}
