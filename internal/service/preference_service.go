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
	ErrPreferenceNotFound = errors.New("preference not found")
	ErrMajorMismatch      = errors.New("major does not belong to the chosen campus")
	ErrCampusInactive     = errors.New("campus is not accepting applications")
)

// PreferenceService manages a student's ranked admission choices.
// Ranks 1 through 5; writing to an occupied rank replaces the choice.
type PreferenceService interface {
	List(ctx context.Context, studentID string) ([]dto.PreferenceResponse, error)
	Upsert(ctx context.Context, studentID string, req *dto.UpsertPreferenceRequest) (*dto.PreferenceResponse, error)
	Delete(ctx context.Context, studentID string, rank int) error
}

type preferenceService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewPreferenceService creates the preference service.
func NewPreferenceService(repo *repository.Repository, logger *zap.Logger) PreferenceService {
	return &preferenceService{repo: repo, logger: logger}
}

func (s *preferenceService) List(ctx context.Context, studentID string) ([]dto.PreferenceResponse, error) {
	prefs, err := s.repo.Preference.ListByStudent(ctx, studentID)
	if err != nil {
		s.logger.Error("list preferences failed", zap.String("student_id", studentID), zap.Error(err))
		return nil, err
	}

	out := make([]dto.PreferenceResponse, 0, len(prefs))
	for i := range prefs {
		out = append(out, toPreferenceResponse(&prefs[i]))
	}
	return out, nil
}

func (s *preferenceService) Upsert(ctx context.Context, studentID string, req *dto.UpsertPreferenceRequest) (*dto.PreferenceResponse, error) {
	campus, err := s.repo.Campus.GetByID(ctx, req.CampusID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCampusNotFound
		}
		return nil, err
	}
	if !campus.IsActive {
		return nil, ErrCampusInactive
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

	pref, err := s.repo.Preference.GetByStudentAndRank(ctx, studentID, req.Rank)
	switch {
	case err == nil:
		pref.CampusID = req.CampusID
		pref.MajorID = req.MajorID
		pref.AdmissionPath = req.AdmissionPath
		pref.Campus = nil
		pref.Major = nil
		if err := s.repo.Preference.Update(ctx, pref); err != nil {
			s.logger.Error("update preference failed", zap.String("student_id", studentID), zap.Error(err))
			return nil, err
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		pref = &model.Preference{
			StudentID:     studentID,
			CampusID:      req.CampusID,
			MajorID:       req.MajorID,
			Rank:          req.Rank,
			AdmissionPath: req.AdmissionPath,
		}
		if err := s.repo.Preference.Create(ctx, pref); err != nil {
			s.logger.Error("create preference failed", zap.String("student_id", studentID), zap.Error(err))
			return nil, err
		}
	default:
		return nil, err
	}

	pref.Campus = campus
	pref.Major = major
	resp := toPreferenceResponse(pref)
	return &resp, nil
}

func (s *preferenceService) Delete(ctx context.Context, studentID string, rank int) error {
	affected, err := s.repo.Preference.DeleteByStudentAndRank(ctx, studentID, rank)
	if err != nil {
		s.logger.Error("delete preference failed", zap.String("student_id", studentID), zap.Error(err))
		return err
	}
	if affected == 0 {
		return ErrPreferenceNotFound
	}
	return nil
}

func toPreferenceResponse(pref *model.Preference) dto.PreferenceResponse {
	resp := dto.PreferenceResponse{
		ID:            pref.PreferenceID,
		Rank:          pref.Rank,
		AdmissionPath: pref.AdmissionPath,
	}
	if pref.Campus != nil {
		campus := toCampusResponse(pref.Campus)
		resp.Campus = &campus
	}
	if pref.Major != nil {
		major := toMajorResponse(pref.Major)
		resp.Major = &major
	}
	return resp
}
