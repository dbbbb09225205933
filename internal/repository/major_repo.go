package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/rifkydyatama/si-eligible/internal/model"
)

// MajorRepository is the majors data-access interface.
type MajorRepository interface {
	Create(ctx context.Context, major *model.Major) error
	GetByID(ctx context.Context, id string) (*model.Major, error)
	ListByCampus(ctx context.Context, campusID string, activeOnly bool) ([]model.Major, error)
	Update(ctx context.Context, major *model.Major) error
	Delete(ctx context.Context, id string) error
}

type majorRepo struct {
	db *gorm.DB
}

// NewMajorRepo creates the GORM-backed MajorRepository.
func NewMajorRepo(db *gorm.DB) MajorRepository {
	return &majorRepo{db: db}
}

func (r *majorRepo) Create(ctx context.Context, major *model.Major) error {
	return r.db.WithContext(ctx).Create(major).Error
}

func (r *majorRepo) GetByID(ctx context.Context, id string) (*model.Major, error) {
	var major model.Major
	err := r.db.WithContext(ctx).
		Where("major_id = ?", id).
		First(&major).Error
	if err != nil {
		return nil, err
	}
	return &major, nil
}

func (r *majorRepo) ListByCampus(ctx context.Context, campusID string, activeOnly bool) ([]model.Major, error) {
	db := r.db.WithContext(ctx).Where("campus_id = ?", campusID)
	if activeOnly {
		db = db.Where("is_active", true)
	}

	var majors []model.Major
	if err := db.Order("name ASC").Find(&majors).Error; err != nil {
		return nil, err
	}
	return majors, nil
}

func (r *majorRepo) Update(ctx context.Context, major *model.Major) error {
	return r.db.WithContext(ctx).Save(major).Error
}

func (r *majorRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("major_id = ?", id).
		Delete(&model.Major{}).Error
}
