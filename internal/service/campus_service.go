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
	ErrCampusNotFound  = errors.New("campus not found")
	ErrMajorNotFound   = errors.New("major not found")
	ErrCampusCodeTaken = errors.New("campus code already in use")
)

// CampusService manages the campus/major catalog students pick their
// preferences from.
type CampusService interface {
	ListCampuses(ctx context.Context, activeOnly bool) ([]dto.CampusResponse, error)
	GetCampus(ctx context.Context, id string) (*dto.CampusResponse, []dto.MajorResponse, error)
	CreateCampus(ctx context.Context, actorID string, req *dto.CreateCampusRequest) (*dto.CampusResponse, error)
	UpdateCampus(ctx context.Context, actorID, id string, req *dto.UpdateCampusRequest) (*dto.CampusResponse, error)
	DeleteCampus(ctx context.Context, actorID, id string) error

	ListMajors(ctx context.Context, campusID string, activeOnly bool) ([]dto.MajorResponse, error)
	CreateMajor(ctx context.Context, actorID, campusID string, req *dto.CreateMajorRequest) (*dto.MajorResponse, error)
	UpdateMajor(ctx context.Context, actorID, id string, req *dto.UpdateMajorRequest) (*dto.MajorResponse, error)
	DeleteMajor(ctx context.Context, actorID, id string) error
}

type campusService struct {
	repo   *repository.Repository
	audit  *AuditRecorder
	logger *zap.Logger
}

// NewCampusService creates the campus service.
func NewCampusService(repo *repository.Repository, audit *AuditRecorder, logger *zap.Logger) CampusService {
	return &campusService{repo: repo, audit: audit, logger: logger}
}

func (s *campusService) ListCampuses(ctx context.Context, activeOnly bool) ([]dto.CampusResponse, error) {
	campuses, err := s.repo.Campus.List(ctx, activeOnly)
	if err != nil {
		s.logger.Error("list campuses failed", zap.Error(err))
		return nil, err
	}

	out := make([]dto.CampusResponse, 0, len(campuses))
	for i := range campuses {
		out = append(out, toCampusResponse(&campuses[i]))
	}
	return out, nil
}

func (s *campusService) GetCampus(ctx context.Context, id string) (*dto.CampusResponse, []dto.MajorResponse, error) {
	campus, err := s.repo.Campus.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrCampusNotFound
		}
		return nil, nil, err
	}

	resp := toCampusResponse(campus)
	majors := make([]dto.MajorResponse, 0, len(campus.Majors))
	for i := range campus.Majors {
		majors = append(majors, toMajorResponse(&campus.Majors[i]))
	}
	return &resp, majors, nil
}

func (s *campusService) CreateCampus(ctx context.Context, actorID string, req *dto.CreateCampusRequest) (*dto.CampusResponse, error) {
	if _, err := s.repo.Campus.GetByCode(ctx, req.Code); err == nil {
		return nil, ErrCampusCodeTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	campus := &model.Campus{
		Code:              req.Code,
		Name:              req.Name,
		Type:              req.Type,
		AdmissionCategory: req.AdmissionCategory,
		Accreditation:     req.Accreditation,
		Province:          req.Province,
		City:              req.City,
		Website:           req.Website,
		IsActive:          true,
	}
	if err := s.repo.Campus.Create(ctx, campus); err != nil {
		s.logger.Error("create campus failed", zap.String("code", req.Code), zap.Error(err))
		return nil, err
	}

	s.audit.Record(ctx, actorID, "admin", "campus.create",
		"added a campus to the catalog", map[string]interface{}{"campus_id": campus.CampusID})

	resp := toCampusResponse(campus)
	return &resp, nil
}

func (s *campusService) UpdateCampus(ctx context.Context, actorID, id string, req *dto.UpdateCampusRequest) (*dto.CampusResponse, error) {
	campus, err := s.repo.Campus.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCampusNotFound
		}
		return nil, err
	}

	if req.Name != nil {
		campus.Name = *req.Name
	}
	if req.Type != nil {
		campus.Type = *req.Type
	}
	if req.AdmissionCategory != nil {
		campus.AdmissionCategory = *req.AdmissionCategory
	}
	if req.Accreditation != nil {
		campus.Accreditation = req.Accreditation
	}
	if req.Province != nil {
		campus.Province = *req.Province
	}
	if req.City != nil {
		campus.City = *req.City
	}
	if req.Website != nil {
		campus.Website = req.Website
	}
	if req.IsActive != nil {
		campus.IsActive = *req.IsActive
	}
	campus.Majors = nil

	if err := s.repo.Campus.Update(ctx, campus); err != nil {
		s.logger.Error("update campus failed", zap.String("campus_id", id), zap.Error(err))
		return nil, err
	}

	s.audit.Record(ctx, actorID, "admin", "campus.update",
		"updated a catalog campus", map[string]interface{}{"campus_id": id})

	resp := toCampusResponse(campus)
	return &resp, nil
}

func (s *campusService) DeleteCampus(ctx context.Context, actorID, id string) error {
	if _, err := s.repo.Campus.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCampusNotFound
		}
		return err
	}

	if err := s.repo.Campus.Delete(ctx, id); err != nil {
		s.logger.Error("delete campus failed", zap.String("campus_id", id), zap.Error(err))
		return err
	}

	s.audit.Record(ctx, actorID, "admin", "campus.delete",
		"removed a catalog campus", map[string]interface{}{"campus_id": id})
	return nil
}

func (s *campusService) ListMajors(ctx context.Context, campusID string, activeOnly bool) ([]dto.MajorResponse, error) {
	if _, err := s.repo.Campus.GetByID(ctx, campusID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCampusNotFound
		}
		return nil, err
	}

	majors, err := s.repo.Major.ListByCampus(ctx, campusID, activeOnly)
	if err != nil {
		s.logger.Error("list majors failed", zap.String("campus_id", campusID), zap.Error(err))
		return nil, err
	}

	out := make([]dto.MajorResponse, 0, len(majors))
	for i := range majors {
		out = append(out, toMajorResponse(&majors[i]))
	}
	return out, nil
}

func (s *campusService) CreateMajor(ctx context.Context, actorID, campusID string, req *dto.CreateMajorRequest) (*dto.MajorResponse, error) {
	if _, err := s.repo.Campus.GetByID(ctx, campusID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCampusNotFound
		}
		return nil, err
	}

	major := &model.Major{
		CampusID:      campusID,
		Name:          req.Name,
		Level:         req.Level,
		Faculty:       req.Faculty,
		Accreditation: req.Accreditation,
		IsActive:      true,
	}
	if err := s.repo.Major.Create(ctx, major); err != nil {
		s.logger.Error("create major failed", zap.String("campus_id", campusID), zap.Error(err))
		return nil, err
	}

	s.audit.Record(ctx, actorID, "admin", "major.create",
		"added a major to the catalog", map[string]interface{}{
			"campus_id": campusID,
			"major_id":  major.MajorID,
		})

	resp := toMajorResponse(major)
	return &resp, nil
}

func (s *campusService) UpdateMajor(ctx context.Context, actorID, id string, req *dto.UpdateMajorRequest) (*dto.MajorResponse, error) {
	major, err := s.repo.Major.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMajorNotFound
		}
		return nil, err
	}

	if req.Name != nil {
		major.Name = *req.Name
	}
	if req.Level != nil {
		major.Level = *req.Level
	}
	if req.Faculty != nil {
		major.Faculty = req.Faculty
	}
	if req.Accreditation != nil {
		major.Accreditation = req.Accreditation
	}
	if req.IsActive != nil {
		major.IsActive = *req.IsActive
	}

	if err := s.repo.Major.Update(ctx, major); err != nil {
		s.logger.Error("update major failed", zap.String("major_id", id), zap.Error(err))
		return nil, err
	}

	s.audit.Record(ctx, actorID, "admin", "major.update",
		"updated a catalog major", map[string]interface{}{"major_id": id})

	resp := toMajorResponse(major)
	return &resp, nil
}

func (s *campusService) DeleteMajor(ctx context.Context, actorID, id string) error {
	if _, err := s.repo.Major.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMajorNotFound
		}
		return err
	}

	if err := s.repo.Major.Delete(ctx, id); err != nil {
		s.logger.Error("delete major failed", zap.String("major_id", id), zap.Error(err))
		return err
	}

	s.audit.Record(ctx, actorID, "admin", "major.delete",
		"removed a catalog major", map[string]interface{}{"major_id": id})
	return nil
}

func toCampusResponse(campus *model.Campus) dto.CampusResponse {
	return dto.CampusResponse{
		ID:                campus.CampusID,
		Code:              campus.Code,
		Name:              campus.Name,
		Type:              campus.Type,
		AdmissionCategory: campus.AdmissionCategory,
		Accreditation:     campus.Accreditation,
		Province:          campus.Province,
		City:              campus.City,
		Website:           campus.Website,
		IsActive:          campus.IsActive,
	}
}

func toMajorResponse(major *model.Major) dto.MajorResponse {
	return dto.MajorResponse{
		ID:            major.MajorID,
		CampusID:      major.CampusID,
		Name:          major.Name,
		Level:         major.Level,
		Faculty:       major.Faculty,
		Accreditation: major.Accreditation,
		IsActive:      major.IsActive,
	}
}
