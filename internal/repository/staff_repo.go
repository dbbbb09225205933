package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/rifkydyatama/si-eligible/internal/model"
)

// StaffRepository is the staff_users data-access interface.
type StaffRepository interface {
	Create(ctx context.Context, staff *model.StaffUser) error
	GetByID(ctx context.Context, id string) (*model.StaffUser, error)
	GetByUsername(ctx context.Context, username string) (*model.StaffUser, error)
}

type staffRepo struct {
	db *gorm.DB
}

// NewStaffRepo creates the GORM-backed StaffRepository.
func NewStaffRepo(db *gorm.DB) StaffRepository {
	return &staffRepo{db: db}
}

func (r *staffRepo) Create(ctx context.Context, staff *model.StaffUser) error {
	return r.db.WithContext(ctx).Create(staff).Error
}

func (r *staffRepo) GetByID(ctx context.Context, id string) (*model.StaffUser, error) {
	var staff model.StaffUser
	err := r.db.WithContext(ctx).
		Where("staff_id = ?", id).
		First(&staff).Error
	if err != nil {
		return nil, err
	}
	return &staff, nil
}

func (r *staffRepo) GetByUsername(ctx context.Context, username string) (*model.StaffUser, error) {
	var staff model.StaffUser
	err := r.db.WithContext(ctx).
		Where("username = ?", username).
		First(&staff).Error
	if err != nil {
		return nil, err
	}
	return &staff, nil
}
