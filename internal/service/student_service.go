package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/rifkydyatama/si-eligible/internal/dto"
	"github.com/rifkydyatama/si-eligible/internal/model"
	"github.com/rifkydyatama/si-eligible/internal/repository"
)

var (
	ErrStudentNotFound = errors.New("student not found")
	ErrNISNTaken       = errors.New("nisn already registered")
	ErrInvalidDate     = errors.New("invalid birth date")
)

const (
	defaultClass    = "12"
	defaultTrack    = "IPA"
	birthDateLayout = "2006-01-02"
)

// StudentService manages student accounts.
type StudentService interface {
	List(ctx context.Context, p *dto.PaginationRequest) ([]dto.StudentResponse, int64, error)
	Get(ctx context.Context, id string) (*dto.StudentResponse, error)
	Create(ctx context.Context, actorID string, req *dto.CreateStudentRequest) (*dto.StudentResponse, error)
	Update(ctx context.Context, actorID, id string, req *dto.UpdateStudentRequest) (*dto.StudentResponse, error)
	Delete(ctx context.Context, actorID, id string) error
}

type studentService struct {
	repo   *repository.Repository
	audit  *AuditRecorder
	logger *zap.Logger
}

// NewStudentService creates the student service.
func NewStudentService(repo *repository.Repository, audit *AuditRecorder, logger *zap.Logger) StudentService {
	return &studentService{repo: repo, audit: audit, logger: logger}
}

func (s *studentService) List(ctx context.Context, p *dto.PaginationRequest) ([]dto.StudentResponse, int64, error) {
	rows, total, err := s.repo.Student.List(ctx, p.GetOffset(), p.GetPageSize())
	if err != nil {
		s.logger.Error("list students failed", zap.Error(err))
		return nil, 0, err
	}

	out := make([]dto.StudentResponse, 0, len(rows))
	for i := range rows {
		resp := toStudentResponse(&rows[i].Student)
		resp.ScoreCount = rows[i].ScoreCount
		out = append(out, resp)
	}
	return out, total, nil
}

func (s *studentService) Get(ctx context.Context, id string) (*dto.StudentResponse, error) {
	student, err := s.repo.Student.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}
	resp := toStudentResponse(student)
	return &resp, nil
}

func (s *studentService) Create(ctx context.Context, actorID string, req *dto.CreateStudentRequest) (*dto.StudentResponse, error) {
	if _, err := s.repo.Student.GetByNISN(ctx, req.NISN); err == nil {
		return nil, ErrNISNTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	birthDate, err := time.Parse(birthDateLayout, req.BirthDate)
	if err != nil {
		return nil, ErrInvalidDate
	}

	hash, err := defaultPasswordHash(req.NISN)
	if err != nil {
		return nil, err
	}

	student := &model.Student{
		NISN:         req.NISN,
		Name:         req.Name,
		BirthDate:    birthDate,
		Class:        defaultClass,
		Track:        defaultTrack,
		Email:        req.Email,
		Phone:        req.Phone,
		Scholarship:  req.Scholarship,
		PasswordHash: hash,
	}
	if req.Class != "" {
		student.Class = req.Class
	}
	if req.Track != "" {
		student.Track = req.Track
	}

	if err := s.repo.Student.Create(ctx, student); err != nil {
		s.logger.Error("create student failed", zap.String("nisn", req.NISN), zap.Error(err))
		return nil, err
	}

	s.audit.Record(ctx, actorID, "staff", "student.create",
		"created a student account", map[string]interface{}{
			"student_id": student.StudentID,
			"nisn":       student.NISN,
		})

	resp := toStudentResponse(student)
	return &resp, nil
}

func (s *studentService) Update(ctx context.Context, actorID, id string, req *dto.UpdateStudentRequest) (*dto.StudentResponse, error) {
	student, err := s.repo.Student.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}

	if req.Name != nil {
		student.Name = *req.Name
	}
	if req.BirthDate != nil {
		birthDate, err := time.Parse(birthDateLayout, *req.BirthDate)
		if err != nil {
			return nil, ErrInvalidDate
		}
		student.BirthDate = birthDate
	}
	if req.Class != nil {
		student.Class = *req.Class
	}
	if req.Track != nil {
		student.Track = *req.Track
	}
	if req.Email != nil {
		student.Email = req.Email
	}
	if req.Phone != nil {
		student.Phone = req.Phone
	}
	if req.Scholarship != nil {
		student.Scholarship = *req.Scholarship
	}

	if err := s.repo.Student.Update(ctx, student); err != nil {
		s.logger.Error("update student failed", zap.String("student_id", id), zap.Error(err))
		return nil, err
	}

	s.audit.Record(ctx, actorID, "staff", "student.update",
		"updated a student account", map[string]interface{}{"student_id": id})

	resp := toStudentResponse(student)
	return &resp, nil
}

func (s *studentService) Delete(ctx context.Context, actorID, id string) error {
	if _, err := s.repo.Student.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrStudentNotFound
		}
		return err
	}

	if err := s.repo.Student.Delete(ctx, id); err != nil {
		s.logger.Error("delete student failed", zap.String("student_id", id), zap.Error(err))
		return err
	}

	s.audit.Record(ctx, actorID, "staff", "student.delete",
		"deleted a student account", map[string]interface{}{"student_id": id})
	return nil
}

// defaultPasswordHash derives the initial password from the NISN:
// "Si" followed by the last six digits. Students are expected to
// change it after first login.
func defaultPasswordHash(nisn string) (string, error) {
	suffix := nisn
	if len(suffix) > 6 {
		suffix = suffix[len(suffix)-6:]
	}
	hash, err := bcrypt.GenerateFromPassword([]byte("Si"+suffix), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func toStudentResponse(student *model.Student) dto.StudentResponse {
	return dto.StudentResponse{
		ID:          student.StudentID,
		NISN:        student.NISN,
		Name:        student.Name,
		BirthDate:   student.BirthDate.Format(birthDateLayout),
		Class:       student.Class,
		Track:       student.Track,
		Email:       student.Email,
		Phone:       student.Phone,
		Scholarship: student.Scholarship,
	}
}
