package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/rifkydyatama/si-eligible/internal/model"
)

// DisputeRepository is the disputes data-access interface.
type DisputeRepository interface {
	Create(ctx context.Context, dispute *model.Dispute) error
	GetByID(ctx context.Context, id string) (*model.Dispute, error)
	ListByStatus(ctx context.Context, status string) ([]model.Dispute, error)
	ListByStudent(ctx context.Context, studentID string) ([]model.Dispute, error)
	Update(ctx context.Context, dispute *model.Dispute) error
	HasPendingForScore(ctx context.Context, scoreID string) (bool, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
}

type disputeRepo struct {
	db *gorm.DB
}

// NewDisputeRepo creates the GORM-backed DisputeRepository.
func NewDisputeRepo(db *gorm.DB) DisputeRepository {
	return &disputeRepo{db: db}
}

func (r *disputeRepo) Create(ctx context.Context, dispute *model.Dispute) error {
	return r.db.WithContext(ctx).Create(dispute).Error
}

func (r *disputeRepo) GetByID(ctx context.Context, id string) (*model.Dispute, error) {
	var dispute model.Dispute
	err := r.db.WithContext(ctx).
		Preload("Student").
		Where("dispute_id = ?", id).
		First(&dispute).Error
	if err != nil {
		return nil, err
	}
	return &dispute, nil
}

func (r *disputeRepo) ListByStatus(ctx context.Context, status string) ([]model.Dispute, error) {
	var disputes []model.Dispute
	err := r.db.WithContext(ctx).
		Preload("Student").
		Where("status = ?", status).
		Order("created_at DESC").
		Find(&disputes).Error
	if err != nil {
		return nil, err
	}
	return disputes, nil
}

func (r *disputeRepo) ListByStudent(ctx context.Context, studentID string) ([]model.Dispute, error) {
	var disputes []model.Dispute
	err := r.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("created_at DESC").
		Find(&disputes).Error
	if err != nil {
		return nil, err
	}
	return disputes, nil
}

func (r *disputeRepo) Update(ctx context.Context, dispute *model.Dispute) error {
	return r.db.WithContext(ctx).Save(dispute).Error
}

func (r *disputeRepo) HasPendingForScore(ctx context.Context, scoreID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Dispute{}).
		Where("score_id = ? AND status = ?", scoreID, model.DisputeStatusPending).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *disputeRepo) CountByStatus(ctx context.Context, status string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Dispute{}).
		Where("status = ?", status).
		Count(&count).Error
	return count, err
}
