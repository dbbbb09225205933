package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/rifkydyatama/si-eligible/internal/model"
)

// GraduationRepository is the graduation_reports data-access interface.
type GraduationRepository interface {
	Create(ctx context.Context, report *model.GraduationReport) error
	GetByStudent(ctx context.Context, studentID string) (*model.GraduationReport, error)
	Update(ctx context.Context, report *model.GraduationReport) error
	DeleteByStudent(ctx context.Context, studentID string) (int64, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
}

type graduationRepo struct {
	db *gorm.DB
}

// NewGraduationRepo creates the GORM-backed GraduationRepository.
func NewGraduationRepo(db *gorm.DB) GraduationRepository {
	return &graduationRepo{db: db}
}

func (r *graduationRepo) Create(ctx context.Context, report *model.GraduationReport) error {
	return r.db.WithContext(ctx).Create(report).Error
}

func (r *graduationRepo) GetByStudent(ctx context.Context, studentID string) (*model.GraduationReport, error) {
	var report model.GraduationReport
	err := r.db.WithContext(ctx).
		Preload("Campus").
		Preload("Major").
		Where("student_id = ?", studentID).
		First(&report).Error
	if err != nil {
		return nil, err
	}
	return &report, nil
}

func (r *graduationRepo) Update(ctx context.Context, report *model.GraduationReport) error {
	return r.db.WithContext(ctx).Save(report).Error
}

func (r *graduationRepo) DeleteByStudent(ctx context.Context, studentID string) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Delete(&model.GraduationReport{})
	return res.RowsAffected, res.Error
}

func (r *graduationRepo) CountByStatus(ctx context.Context, status string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.GraduationReport{}).
		Where("status = ?", status).
		Count(&count).Error
	return count, err
}
