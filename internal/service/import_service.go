package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/rifkydyatama/si-eligible/config"
	"github.com/rifkydyatama/si-eligible/internal/dto"
	"github.com/rifkydyatama/si-eligible/internal/model"
	"github.com/rifkydyatama/si-eligible/internal/repository"
)

var (
	ErrWorkbookInvalid = errors.New("workbook could not be read")
	ErrEmptyWorkbook   = errors.New("workbook has no data rows")
	ErrTooManyRows     = errors.New("workbook exceeds the row limit")
)

// ImportValidationError aborts an import before anything is written:
// every data row is validated first and all problems are reported at
// once.
type ImportValidationError struct {
	Errors []string
}

func (e *ImportValidationError) Error() string {
	return fmt.Sprintf("import validation failed: %d error(s)", len(e.Errors))
}

// ImportService handles bulk Excel uploads. Validation is all-or-
// nothing; the write stage is row-by-row and partial: unknown students
// (score import) and duplicate NISNs (student import) are counted as
// skipped while the remaining rows proceed.
type ImportService interface {
	ImportScores(ctx context.Context, actorID string, r io.Reader) (*dto.ImportResultResponse, error)
	ImportStudents(ctx context.Context, actorID string, r io.Reader) (*dto.ImportResultResponse, error)
}

type importService struct {
	cfg    *config.ImportConfig
	repo   *repository.Repository
	audit  *AuditRecorder
	logger *zap.Logger
}

// NewImportService creates the import service.
func NewImportService(cfg *config.ImportConfig, repo *repository.Repository, audit *AuditRecorder, logger *zap.Logger) ImportService {
	return &importService{cfg: cfg, repo: repo, audit: audit, logger: logger}
}

// scoreRow is one parsed data row of a score workbook.
// Columns: NISN | Semester | Subject | Value.
type scoreRow struct {
	line     int
	nisn     string
	semester int
	subject  string
	value    float64
}

func (s *importService) ImportScores(ctx context.Context, actorID string, r io.Reader) (*dto.ImportResultResponse, error) {
	rows, err := s.readRows(r)
	if err != nil {
		return nil, err
	}

	// Stage 1: validate every row before touching the database.
	parsed := make([]scoreRow, 0, len(rows))
	var problems []string
	for i, cells := range rows {
		line := i + 2 // 1-based, after the header row
		row, errs := parseScoreRow(line, cells)
		if len(errs) > 0 {
			problems = append(problems, errs...)
			continue
		}
		parsed = append(parsed, row)
	}
	if len(problems) > 0 {
		return nil, &ImportValidationError{Errors: problems}
	}

	// Stage 2: write row by row. A missing student skips the row; a
	// write error is recorded and the batch continues.
	result := &dto.ImportResultResponse{TotalRows: len(parsed)}
	for _, row := range parsed {
		student, err := s.repo.Student.GetByNISN(ctx, row.nisn)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				result.Skipped++
				result.Errors = append(result.Errors,
					fmt.Sprintf("row %d: nisn %s is not registered", row.line, row.nisn))
				continue
			}
			return nil, err
		}

		score := &model.Score{
			StudentID: student.StudentID,
			Semester:  row.semester,
			Subject:   row.subject,
			Value:     row.value,
		}
		if err := s.repo.Score.Upsert(ctx, score); err != nil {
			s.logger.Error("upsert score failed",
				zap.String("nisn", row.nisn), zap.Int("row", row.line), zap.Error(err))
			result.Errors = append(result.Errors,
				fmt.Sprintf("row %d: %v", row.line, err))
			continue
		}
		result.Success++
	}

	s.audit.Record(ctx, actorID, "staff", "import.scores",
		"imported a score workbook", map[string]interface{}{
			"total_rows": result.TotalRows,
			"success":    result.Success,
			"skipped":    result.Skipped,
		})
	return result, nil
}

// studentRow is one parsed data row of a student workbook.
// Columns: NISN | Name | BirthDate | Class | Track | Email | Phone |
// Scholarship.
type studentRow struct {
	line        int
	nisn        string
	name        string
	birthDate   time.Time
	class       string
	track       string
	email       string
	phone       string
	scholarship bool
}

func (s *importService) ImportStudents(ctx context.Context, actorID string, r io.Reader) (*dto.ImportResultResponse, error) {
	rows, err := s.readRows(r)
	if err != nil {
		return nil, err
	}

	parsed := make([]studentRow, 0, len(rows))
	var problems []string
	seen := make(map[string]int)
	for i, cells := range rows {
		line := i + 2
		row, errs := parseStudentRow(line, cells)
		if len(errs) > 0 {
			problems = append(problems, errs...)
			continue
		}
		if prev, ok := seen[row.nisn]; ok {
			problems = append(problems,
				fmt.Sprintf("row %d: nisn %s repeats row %d", line, row.nisn, prev))
			continue
		}
		seen[row.nisn] = line
		parsed = append(parsed, row)
	}
	if len(problems) > 0 {
		return nil, &ImportValidationError{Errors: problems}
	}

	result := &dto.ImportResultResponse{TotalRows: len(parsed)}
	for _, row := range parsed {
		if _, err := s.repo.Student.GetByNISN(ctx, row.nisn); err == nil {
			result.Skipped++
			result.Errors = append(result.Errors,
				fmt.Sprintf("row %d: nisn %s already registered", row.line, row.nisn))
			continue
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}

		hash, err := defaultPasswordHash(row.nisn)
		if err != nil {
			return nil, err
		}

		student := &model.Student{
			NISN:         row.nisn,
			Name:         row.name,
			BirthDate:    row.birthDate,
			Class:        row.class,
			Track:        row.track,
			Scholarship:  row.scholarship,
			PasswordHash: hash,
		}
		if row.email != "" {
			email := row.email
			student.Email = &email
		}
		if row.phone != "" {
			phone := row.phone
			student.Phone = &phone
		}

		if err := s.repo.Student.Create(ctx, student); err != nil {
			s.logger.Error("create student failed",
				zap.String("nisn", row.nisn), zap.Int("row", row.line), zap.Error(err))
			result.Errors = append(result.Errors,
				fmt.Sprintf("row %d: %v", row.line, err))
			continue
		}
		result.Success++
	}

	s.audit.Record(ctx, actorID, "staff", "import.students",
		"imported a student workbook", map[string]interface{}{
			"total_rows": result.TotalRows,
			"success":    result.Success,
			"skipped":    result.Skipped,
		})
	return result, nil
}

// readRows opens the workbook and returns the data rows of the first
// sheet, header excluded.
func (s *importService) readRows(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWorkbookInvalid, err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWorkbookInvalid, err)
	}
	if len(rows) <= 1 {
		return nil, ErrEmptyWorkbook
	}

	data := rows[1:]
	if s.cfg.MaxRows > 0 && len(data) > s.cfg.MaxRows {
		return nil, ErrTooManyRows
	}
	return data, nil
}

func parseScoreRow(line int, cells []string) (scoreRow, []string) {
	row := scoreRow{line: line}
	var errs []string

	// A malformed NISN is not a validation failure here: resolution
	// happens at the write stage, where an unknown NISN skips the row.
	row.nisn = cellAt(cells, 0)
	if row.nisn == "" {
		errs = append(errs, fmt.Sprintf("row %d: nisn is required", line))
	}

	semester, err := strconv.Atoi(cellAt(cells, 1))
	if err != nil || semester < 1 || semester > 5 {
		errs = append(errs, fmt.Sprintf("row %d: semester must be between 1 and 5", line))
	}
	row.semester = semester

	row.subject = cellAt(cells, 2)
	if row.subject == "" {
		errs = append(errs, fmt.Sprintf("row %d: subject is required", line))
	}

	value, err := strconv.ParseFloat(cellAt(cells, 3), 64)
	if err != nil || value < 0 || value > 100 {
		errs = append(errs, fmt.Sprintf("row %d: value must be between 0 and 100", line))
	}
	row.value = value

	return row, errs
}

func parseStudentRow(line int, cells []string) (studentRow, []string) {
	row := studentRow{line: line}
	var errs []string

	row.nisn = cellAt(cells, 0)
	if len(row.nisn) != 10 {
		errs = append(errs, fmt.Sprintf("row %d: nisn must be exactly 10 characters", line))
	}

	row.name = cellAt(cells, 1)
	if row.name == "" {
		errs = append(errs, fmt.Sprintf("row %d: name is required", line))
	}

	birthDate, err := parseBirthDate(cellAt(cells, 2))
	if err != nil {
		errs = append(errs, fmt.Sprintf("row %d: unrecognized birth date", line))
	}
	row.birthDate = birthDate

	row.class = cellAt(cells, 3)
	if row.class == "" {
		row.class = defaultClass
	}
	row.track = cellAt(cells, 4)
	if row.track == "" {
		row.track = defaultTrack
	}
	row.email = cellAt(cells, 5)
	row.phone = cellAt(cells, 6)

	// Scholarship column accepts ya/tidak; blank defaults to tidak.
	switch strings.ToLower(cellAt(cells, 7)) {
	case "ya":
		row.scholarship = true
	case "", "tidak":
		row.scholarship = false
	default:
		errs = append(errs, fmt.Sprintf("row %d: scholarship must be ya or tidak", line))
	}

	return row, errs
}

// parseBirthDate accepts the common spreadsheet date formats plus the
// raw Excel serial number (days since 1900, with the Unix epoch at
// serial 25569).
func parseBirthDate(s string) (time.Time, error) {
	for _, layout := range []string{"2006-01-02", "02/01/2006", "02-01-2006", "2/1/2006"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	if serial, err := strconv.ParseFloat(s, 64); err == nil && serial > 0 {
		return time.Unix(int64((serial-25569)*86400), 0).UTC(), nil
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}

func cellAt(cells []string, idx int) string {
	if idx >= len(cells) {
		return ""
	}
	return strings.TrimSpace(cells[idx])
}
