package handler

import (
	"context"
	"errors"
	"io"

	"github.com/gin-gonic/gin"

	"github.com/rifkydyatama/si-eligible/internal/dto"
	"github.com/rifkydyatama/si-eligible/internal/service"
	"github.com/rifkydyatama/si-eligible/pkg/response"
)

// ImportHandler serves the bulk workbook-import endpoints.
type ImportHandler struct {
	importSvc service.ImportService
}

// NewImportHandler creates an ImportHandler.
func NewImportHandler(importSvc service.ImportService) *ImportHandler {
	return &ImportHandler{importSvc: importSvc}
}

// ImportScores uploads a score workbook.
// Multipart form: file (.xlsx).
// POST /api/v1/admin/imports/scores
func (h *ImportHandler) ImportScores(c *gin.Context) {
	h.handleImport(c, h.importSvc.ImportScores)
}

// ImportStudents uploads a student workbook.
// POST /api/v1/admin/imports/students
func (h *ImportHandler) ImportStudents(c *gin.Context) {
	h.handleImport(c, h.importSvc.ImportStudents)
}

func (h *ImportHandler) handleImport(c *gin.Context, run func(ctx context.Context, actorID string, r io.Reader) (*dto.ImportResultResponse, error)) {
	actorID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, 50001, "workbook file is required")
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		response.BadRequest(c, 50001, "workbook file unreadable")
		return
	}
	defer file.Close()

	result, err := run(c.Request.Context(), actorID, file)
	if err != nil {
		var vErr *service.ImportValidationError
		switch {
		case errors.As(err, &vErr):
			response.ValidationFailed(c, 50002, "workbook validation failed", vErr.Errors)
		case errors.Is(err, service.ErrEmptyWorkbook):
			response.BadRequest(c, 50003, "workbook has no data rows")
		case errors.Is(err, service.ErrTooManyRows):
			response.BadRequest(c, 50004, "workbook exceeds the row limit")
		case errors.Is(err, service.ErrWorkbookInvalid):
			response.BadRequest(c, 50005, "workbook could not be processed")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, result)
}
