package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/rifkydyatama/si-eligible/internal/dto"
	"github.com/rifkydyatama/si-eligible/internal/model"
	"github.com/rifkydyatama/si-eligible/internal/repository"
)

var (
	ErrReportNotFound   = errors.New("graduation report not found")
	ErrEvidenceRequired = errors.New("acceptance evidence is required")
)

// GraduationService records each student's admission outcome. One
// report per student; evidence is mandatory when the status is
// accepted.
type GraduationService interface {
	Get(ctx context.Context, studentID string) (*dto.GraduationResponse, error)
	Upsert(ctx context.Context, studentID string, req *dto.UpsertGraduationRequest, evidenceRef *string) (*dto.GraduationResponse, error)
	Delete(ctx context.Context, studentID string) error
}

type graduationService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewGraduationService creates the graduation service.
func NewGraduationService(repo *repository.Repository, logger *zap.Logger) GraduationService {
	return &graduationService{repo: repo, logger: logger}
}

func (s *graduationService) Get(ctx context.Context, studentID string) (*dto.GraduationResponse, error) {
	report, err := s.repo.Graduation.GetByStudent(ctx, studentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReportNotFound
		}
		return nil, err
	}
	resp := toGraduationResponse(report)
	return &resp, nil
}

func (s *graduationService) Upsert(ctx context.Context, studentID string, req *dto.UpsertGraduationRequest, evidenceRef *string) (*dto.GraduationResponse, error) {
	campus, err := s.repo.Campus.GetByID(ctx, req.CampusID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCampusNotFound
		}
		return nil, err
	}
	major, err := s.repo.Major.GetByID(ctx, req.MajorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMajorNotFound
		}
		return nil, err
	}
	if major.CampusID != campus.CampusID {
		return nil, ErrMajorMismatch
	}

	report, err := s.repo.Graduation.GetByStudent(ctx, studentID)
	switch {
	case err == nil:
		report.Status = req.Status
		report.CampusID = req.CampusID
		report.MajorID = req.MajorID
		report.AdmissionPath = req.AdmissionPath
		if evidenceRef != nil {
			report.Evidence = evidenceRef
		}
		if req.Status == model.GraduationStatusAccepted && report.Evidence == nil {
			return nil, ErrEvidenceRequired
		}
		report.Campus = nil
		report.Major = nil
		if err := s.repo.Graduation.Update(ctx, report); err != nil {
			s.logger.Error("update graduation report failed", zap.String("student_id", studentID), zap.Error(err))
			return nil, err
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		if req.Status == model.GraduationStatusAccepted && evidenceRef == nil {
			return nil, ErrEvidenceRequired
		}
		report = &model.GraduationReport{
			StudentID:     studentID,
			Status:        req.Status,
			CampusID:      req.CampusID,
			MajorID:       req.MajorID,
			AdmissionPath: req.AdmissionPath,
			Evidence:      evidenceRef,
		}
		if err := s.repo.Graduation.Create(ctx, report); err != nil {
			s.logger.Error("create graduation report failed", zap.String("student_id", studentID), zap.Error(err))
			return nil, err
		}
	default:
		return nil, err
	}

	report.Campus = campus
	report.Major = major
	resp := toGraduationResponse(report)
	return &resp, nil
}

func (s *graduationService) Delete(ctx context.Context, studentID string) error {
	affected, err := s.repo.Graduation.DeleteByStudent(ctx, studentID)
	if err != nil {
		s.logger.Error("delete graduation report failed", zap.String("student_id", studentID), zap.Error(err))
		return err
	}
	if affected == 0 {
		return ErrReportNotFound
	}
	return nil
}

func toGraduationResponse(report *model.GraduationReport) dto.GraduationResponse {
	resp := dto.GraduationResponse{
		ID:            report.ReportID,
		Status:        report.Status,
		AdmissionPath: report.AdmissionPath,
		Evidence:      report.Evidence,
	}
	if report.Campus != nil {
		campus := toCampusResponse(report.Campus)
		resp.Campus = &campus
	}
	if report.Major != nil {
		major := toMajorResponse(report.Major)
		resp.Major = &major
	}
	return resp
}
