package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/rifkydyatama/si-eligible/internal/model"
)

// CampusRepository is the campuses data-access interface.
type CampusRepository interface {
	Create(ctx context.Context, campus *model.Campus) error
	GetByID(ctx context.Context, id string) (*model.Campus, error)
	GetByCode(ctx context.Context, code string) (*model.Campus, error)
	List(ctx context.Context, activeOnly bool) ([]model.Campus, error)
	Update(ctx context.Context, campus *model.Campus) error
	Delete(ctx context.Context, id string) error
}

type campusRepo struct {
	db *gorm.DB
}

// NewCampusRepo creates the GORM-backed CampusRepository.
func NewCampusRepo(db *gorm.DB) CampusRepository {
	return &campusRepo{db: db}
}

func (r *campusRepo) Create(ctx context.Context, campus *model.Campus) error {
	return r.db.WithContext(ctx).Create(campus).Error
}

func (r *campusRepo) GetByID(ctx context.Context, id string) (*model.Campus, error) {
	var campus model.Campus
	err := r.db.WithContext(ctx).
		Preload("Majors").
		Where("campus_id = ?", id).
		First(&campus).Error
	if err != nil {
		return nil, err
	}
	return &campus, nil
}

func (r *campusRepo) GetByCode(ctx context.Context, code string) (*model.Campus, error) {
	var campus model.Campus
	err := r.db.WithContext(ctx).
		Where("code = ?", code).
		First(&campus).Error
	if err != nil {
		return nil, err
	}
	return &campus, nil
}

func (r *campusRepo) List(ctx context.Context, activeOnly bool) ([]model.Campus, error) {
	db := r.db.WithContext(ctx)
	if activeOnly {
		db = db.Where("is_active", true)
	}

	var campuses []model.Campus
	if err := db.Order("name ASC").Find(&campuses).Error; err != nil {
		return nil, err
	}
	return campuses, nil
}

func (r *campusRepo) Update(ctx context.Context, campus *model.Campus) error {
	return r.db.WithContext(ctx).Save(campus).Error
}

func (r *campusRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("campus_id = ?", id).
		Delete(&model.Campus{}).Error
}
