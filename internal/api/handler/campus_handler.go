package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/rifkydyatama/si-eligible/internal/dto"
	"github.com/rifkydyatama/si-eligible/internal/service"
	"github.com/rifkydyatama/si-eligible/pkg/response"
)

// CampusHandler serves the campus/major catalog. Reads are open to
// all authenticated users; writes are admin only (enforced in the
// router).
type CampusHandler struct {
	campusSvc service.CampusService
}

// NewCampusHandler creates a CampusHandler.
func NewCampusHandler(campusSvc service.CampusService) *CampusHandler {
	return &CampusHandler{campusSvc: campusSvc}
}

// List returns the campus catalog. Students see active entries only;
// staff can pass ?all=true.
// GET /api/v1/campuses
func (h *CampusHandler) List(c *gin.Context) {
	role, ok := MustGetRole(c)
	if !ok {
		return
	}
	activeOnly := role == "student" || c.Query("all") != "true"

	campuses, err := h.campusSvc.ListCampuses(c.Request.Context(), activeOnly)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, campuses)
}

// Get returns one campus with its majors.
// GET /api/v1/campuses/:id
func (h *CampusHandler) Get(c *gin.Context) {
	campus, majors, err := h.campusSvc.GetCampus(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrCampusNotFound) {
			response.NotFound(c, 40001, "campus not found")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"campus": campus, "majors": majors})
}

// Create adds a campus to the catalog.
// POST /api/v1/admin/campuses
func (h *CampusHandler) Create(c *gin.Context) {
	actorID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CreateCampusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request parameters")
		return
	}

	campus, err := h.campusSvc.CreateCampus(c.Request.Context(), actorID, &req)
	if err != nil {
		if errors.Is(err, service.ErrCampusCodeTaken) {
			response.BadRequest(c, 40002, "campus code already in use")
			return
		}
		response.InternalError(c)
		return
	}

	response.Created(c, campus)
}

// Update edits a catalog campus.
// PATCH /api/v1/admin/campuses/:id
func (h *CampusHandler) Update(c *gin.Context) {
	actorID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateCampusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request parameters")
		return
	}

	campus, err := h.campusSvc.UpdateCampus(c.Request.Context(), actorID, c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, service.ErrCampusNotFound) {
			response.NotFound(c, 40001, "campus not found")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, campus)
}

// Delete removes a catalog campus.
// DELETE /api/v1/admin/campuses/:id
func (h *CampusHandler) Delete(c *gin.Context) {
	actorID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.campusSvc.DeleteCampus(c.Request.Context(), actorID, c.Param("id")); err != nil {
		if errors.Is(err, service.ErrCampusNotFound) {
			response.NotFound(c, 40001, "campus not found")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, nil)
}

// ListMajors returns a campus's majors.
// GET /api/v1/campuses/:id/majors
func (h *CampusHandler) ListMajors(c *gin.Context) {
	role, ok := MustGetRole(c)
	if !ok {
		return
	}
	activeOnly := role == "student" || c.Query("all") != "true"

	majors, err := h.campusSvc.ListMajors(c.Request.Context(), c.Param("id"), activeOnly)
	if err != nil {
		if errors.Is(err, service.ErrCampusNotFound) {
			response.NotFound(c, 40001, "campus not found")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, majors)
}

// CreateMajor adds a major to a campus.
// POST /api/v1/admin/campuses/:id/majors
func (h *CampusHandler) CreateMajor(c *gin.Context) {
	actorID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CreateMajorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request parameters")
		return
	}

	major, err := h.campusSvc.CreateMajor(c.Request.Context(), actorID, c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, service.ErrCampusNotFound) {
			response.NotFound(c, 40001, "campus not found")
			return
		}
		response.InternalError(c)
		return
	}

	response.Created(c, major)
}

// UpdateMajor edits a catalog major.
// PATCH /api/v1/admin/majors/:id
func (h *CampusHandler) UpdateMajor(c *gin.Context) {
	actorID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateMajorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request parameters")
		return
	}

	major, err := h.campusSvc.UpdateMajor(c.Request.Context(), actorID, c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, service.ErrMajorNotFound) {
			response.NotFound(c, 40003, "major not found")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, major)
}

// DeleteMajor removes a catalog major.
// DELETE /api/v1/admin/majors/:id
func (h *CampusHandler) DeleteMajor(c *gin.Context) {
	actorID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.campusSvc.DeleteMajor(c.Request.Context(), actorID, c.Param("id")); err != nil {
		if errors.Is(err, service.ErrMajorNotFound) {
			response.NotFound(c, 40003, "major not found")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, nil)
}
