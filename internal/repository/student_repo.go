package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/rifkydyatama/si-eligible/internal/model"
)

// StudentWithScoreCount is a list row joined with the number of score
// records the student has.
type StudentWithScoreCount struct {
	model.Student
	ScoreCount int64 `json:"score_count"`
}

// StudentRepository is the students data-access interface.
type StudentRepository interface {
	Create(ctx context.Context, student *model.Student) error
	GetByID(ctx context.Context, id string) (*model.Student, error)
	GetByNISN(ctx context.Context, nisn string) (*model.Student, error)
	List(ctx context.Context, offset, limit int) ([]StudentWithScoreCount, int64, error)
	Update(ctx context.Context, student *model.Student) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
	CountWithVerifiedScores(ctx context.Context) (int64, error)
	ListWithVerifiedScores(ctx context.Context) ([]model.Student, error)
}

type studentRepo struct {
	db *gorm.DB
}

// NewStudentRepo creates the GORM-backed StudentRepository.
func NewStudentRepo(db *gorm.DB) StudentRepository {
	return &studentRepo{db: db}
}

func (r *studentRepo) Create(ctx context.Context, student *model.Student) error {
	return r.db.WithContext(ctx).Create(student).Error
}

func (r *studentRepo) GetByID(ctx context.Context, id string) (*model.Student, error) {
	var student model.Student
	err := r.db.WithContext(ctx).
		Where("student_id = ?", id).
		First(&student).Error
	if err != nil {
		return nil, err
	}
	return &student, nil
}

func (r *studentRepo) GetByNISN(ctx context.Context, nisn string) (*model.Student, error) {
	var student model.Student
	err := r.db.WithContext(ctx).
		Where("nisn = ?", nisn).
		First(&student).Error
	if err != nil {
		return nil, err
	}
	return &student, nil
}

func (r *studentRepo) List(ctx context.Context, offset, limit int) ([]StudentWithScoreCount, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.Student{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []StudentWithScoreCount
	err := r.db.WithContext(ctx).
		Model(&model.Student{}).
		Select("students.*, COUNT(scores.score_id) AS score_count").
		Joins("LEFT JOIN scores ON scores.student_id = students.student_id").
		Group("students.student_id").
		Order("students.name ASC").
		Offset(offset).Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}

	return rows, total, nil
}

func (r *studentRepo) Update(ctx context.Context, student *model.Student) error {
	return r.db.WithContext(ctx).Save(student).Error
}

func (r *studentRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("student_id = ?", id).
		Delete(&model.Student{}).Error
}

func (r *studentRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Student{}).Count(&count).Error
	return count, err
}

func (r *studentRepo) CountWithVerifiedScores(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Student{}).
		Where("EXISTS (SELECT 1 FROM scores WHERE scores.student_id = students.student_id AND scores.verified)").
		Count(&count).Error
	return count, err
}

func (r *studentRepo) ListWithVerifiedScores(ctx context.Context) ([]model.Student, error) {
	var students []model.Student
	err := r.db.WithContext(ctx).
		Where("EXISTS (SELECT 1 FROM scores WHERE scores.student_id = students.student_id AND scores.verified)").
		Preload("Scores", "verified", true).
		Order("name ASC").
		Find(&students).Error
	if err != nil {
		return nil, err
	}
	return students, nil
}
