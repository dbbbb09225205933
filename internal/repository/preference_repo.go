package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/rifkydyatama/si-eligible/internal/model"
)

// PreferenceRepository is the preferences data-access interface.
type PreferenceRepository interface {
	Create(ctx context.Context, pref *model.Preference) error
	GetByStudentAndRank(ctx context.Context, studentID string, rank int) (*model.Preference, error)
	ListByStudent(ctx context.Context, studentID string) ([]model.Preference, error)
	Update(ctx context.Context, pref *model.Preference) error
	DeleteByStudentAndRank(ctx context.Context, studentID string, rank int) (int64, error)
}

type preferenceRepo struct {
	db *gorm.DB
}

// NewPreferenceRepo creates the GORM-backed PreferenceRepository.
func NewPreferenceRepo(db *gorm.DB) PreferenceRepository {
	return &preferenceRepo{db: db}
}

func (r *preferenceRepo) Create(ctx context.Context, pref *model.Preference) error {
	return r.db.WithContext(ctx).Create(pref).Error
}

func (r *preferenceRepo) GetByStudentAndRank(ctx context.Context, studentID string, rank int) (*model.Preference, error) {
	var pref model.Preference
	err := r.db.WithContext(ctx).
		Where("student_id = ? AND rank = ?", studentID, rank).
		First(&pref).Error
	if err != nil {
		return nil, err
	}
	return &pref, nil
}

func (r *preferenceRepo) ListByStudent(ctx context.Context, studentID string) ([]model.Preference, error) {
	var prefs []model.Preference
	err := r.db.WithContext(ctx).
		Preload("Campus").
		Preload("Major").
		Where("student_id = ?", studentID).
		Order("rank ASC").
		Find(&prefs).Error
	if err != nil {
		return nil, err
	}
	return prefs, nil
}

func (r *preferenceRepo) Update(ctx context.Context, pref *model.Preference) error {
	return r.db.WithContext(ctx).Save(pref).Error
}

func (r *preferenceRepo) DeleteByStudentAndRank(ctx context.Context, studentID string, rank int) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("student_id = ? AND rank = ?", studentID, rank).
		Delete(&model.Preference{})
	return res.RowsAffected, res.Error
}
