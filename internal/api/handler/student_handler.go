package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/rifkydyatama/si-eligible/internal/dto"
	"github.com/rifkydyatama/si-eligible/internal/service"
	"github.com/rifkydyatama/si-eligible/pkg/response"
)

// StudentHandler serves student management for staff.
type StudentHandler struct {
	studentSvc service.StudentService
}

// NewStudentHandler creates a StudentHandler.
func NewStudentHandler(studentSvc service.StudentService) *StudentHandler {
	return &StudentHandler{studentSvc: studentSvc}
}

// List returns a paginated student roster.
// GET /api/v1/admin/students
func (h *StudentHandler) List(c *gin.Context) {
	var page dto.PaginationRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		response.BadRequest(c, 10001, "invalid request parameters")
		return
	}

	students, total, err := h.studentSvc.List(c.Request.Context(), &page)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OKPage(c, students, total, page.GetPage(), page.GetPageSize())
}

// Get returns one student.
// GET /api/v1/admin/students/:id
func (h *StudentHandler) Get(c *gin.Context) {
	student, err := h.studentSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrStudentNotFound) {
			response.NotFound(c, 20001, "student not found")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, student)
}

// Create registers a single student.
// POST /api/v1/admin/students
func (h *StudentHandler) Create(c *gin.Context) {
	actorID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CreateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request parameters")
		return
	}

	student, err := h.studentSvc.Create(c.Request.Context(), actorID, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNISNTaken):
			response.BadRequest(c, 20002, "nisn already registered")
		case errors.Is(err, service.ErrInvalidDate):
			response.BadRequest(c, 20003, "invalid birth date")
		default:
			response.InternalError(c)
		}
		return
	}

	response.Created(c, student)
}

// Update edits a student's profile.
// PATCH /api/v1/admin/students/:id
func (h *StudentHandler) Update(c *gin.Context) {
	actorID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request parameters")
		return
	}

	student, err := h.studentSvc.Update(c.Request.Context(), actorID, c.Param("id"), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrStudentNotFound):
			response.NotFound(c, 20001, "student not found")
		case errors.Is(err, service.ErrInvalidDate):
			response.BadRequest(c, 20003, "invalid birth date")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, student)
}

// Delete removes a student account.
// DELETE /api/v1/admin/students/:id
func (h *StudentHandler) Delete(c *gin.Context) {
	actorID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.studentSvc.Delete(c.Request.Context(), actorID, c.Param("id")); err != nil {
		if errors.Is(err, service.ErrStudentNotFound) {
			response.NotFound(c, 20001, "student not found")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, nil)
}
