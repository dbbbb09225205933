package service

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/rifkydyatama/si-eligible/internal/model"
	"github.com/rifkydyatama/si-eligible/internal/repository"
)

// ExportService renders the eligible-student report: every student who
// has at least one verified score, with per-score detail and their
// ranked admission preferences on a second sheet.
type ExportService interface {
	ExportEligible(ctx context.Context) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService creates the export service.
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

const (
	eligibleSheet   = "Eligible Students"
	preferenceSheet = "Preferences"
)

func (s *exportService) ExportEligible(ctx context.Context) (*bytes.Buffer, string, error) {
	students, err := s.repo.Student.ListWithVerifiedScores(ctx)
	if err != nil {
		s.logger.Error("load eligible students failed", zap.Error(err))
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(eligibleSheet)
	if err != nil {
		return nil, "", err
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	headers := []string{"NISN", "Name", "Class", "Track", "Semester", "Subject", "Value"}
	widths := []float64{14, 28, 8, 8, 10, 24, 8}
	for i, w := range widths {
		col := colName(i)
		if err := f.SetColWidth(eligibleSheet, col, col, w); err != nil {
			return nil, "", err
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"D9E1F2"}},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, "", err
	}
	for i, h := range headers {
		f.SetCellValue(eligibleSheet, cell(i, 1), h)
	}
	f.SetCellStyle(eligibleSheet, cell(0, 1), cell(len(headers)-1, 1), headerStyle)

	row := 2
	for i := range students {
		student := &students[i]
		for j := range student.Scores {
			score := &student.Scores[j]
			f.SetCellValue(eligibleSheet, cell(0, row), student.NISN)
			f.SetCellValue(eligibleSheet, cell(1, row), student.Name)
			f.SetCellValue(eligibleSheet, cell(2, row), student.Class)
			f.SetCellValue(eligibleSheet, cell(3, row), student.Track)
			f.SetCellValue(eligibleSheet, cell(4, row), score.Semester)
			f.SetCellValue(eligibleSheet, cell(5, row), score.Subject)
			f.SetCellValue(eligibleSheet, cell(6, row), score.Value)
			row++
		}
	}

	if err := s.writePreferenceSheet(ctx, f, headerStyle, students); err != nil {
		return nil, "", err
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("eligible_students_%s.xlsx", time.Now().Format("20060102_150405"))
	return buf, filename, nil
}

// writePreferenceSheet adds the admission preferences of the exported
// students as a second sheet.
func (s *exportService) writePreferenceSheet(ctx context.Context, f *excelize.File, headerStyle int, students []model.Student) error {
	if _, err := f.NewSheet(preferenceSheet); err != nil {
		return err
	}

	headers := []string{"NISN", "Name", "Rank", "Campus", "Major", "Admission Path"}
	widths := []float64{14, 28, 8, 32, 28, 16}
	for i, w := range widths {
		col := colName(i)
		if err := f.SetColWidth(preferenceSheet, col, col, w); err != nil {
			return err
		}
	}
	for i, h := range headers {
		f.SetCellValue(preferenceSheet, cell(i, 1), h)
	}
	f.SetCellStyle(preferenceSheet, cell(0, 1), cell(len(headers)-1, 1), headerStyle)

	row := 2
	for i := range students {
		student := &students[i]
		prefs, err := s.repo.Preference.ListByStudent(ctx, student.StudentID)
		if err != nil {
			s.logger.Error("load preferences failed",
				zap.String("student_id", student.StudentID), zap.Error(err))
			return err
		}
		for k := range prefs {
			pref := &prefs[k]
			campusName, majorName := pref.CampusID, pref.MajorID
			if pref.Campus != nil {
				campusName = pref.Campus.Name
			}
			if pref.Major != nil {
				majorName = pref.Major.Name
			}
			f.SetCellValue(preferenceSheet, cell(0, row), student.NISN)
			f.SetCellValue(preferenceSheet, cell(1, row), student.Name)
			f.SetCellValue(preferenceSheet, cell(2, row), pref.Rank)
			f.SetCellValue(preferenceSheet, cell(3, row), campusName)
			f.SetCellValue(preferenceSheet, cell(4, row), majorName)
			f.SetCellValue(preferenceSheet, cell(5, row), pref.AdmissionPath)
			row++
		}
	}
	return nil
}

// colName converts a zero-based column index to its A1 letter.
func colName(i int) string {
	name, _ := excelize.ColumnNumberToName(i + 1)
	return name
}

// cell builds an A1 reference from zero-based column and 1-based row.
func cell(col, row int) string {
	return fmt.Sprintf("%s%d", colName(col), row)
}
