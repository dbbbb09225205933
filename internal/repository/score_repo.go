package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/rifkydyatama/si-eligible/internal/model"
)

// ScoreRepository is the scores data-access interface.
type ScoreRepository interface {
	Create(ctx context.Context, score *model.Score) error
	GetByID(ctx context.Context, id string) (*model.Score, error)
	GetByNaturalKey(ctx context.Context, studentID string, semester int, subject string) (*model.Score, error)
	ListByStudent(ctx context.Context, studentID string) ([]model.Score, error)
	Update(ctx context.Context, score *model.Score) error
	// Upsert inserts or, when (student_id, semester, subject) exists,
	// updates only the value. The verified flag is left untouched on
	// conflict.
	Upsert(ctx context.Context, score *model.Score) error
	UpdateValue(ctx context.Context, id string, value float64) error
	UpdateValueByNaturalKey(ctx context.Context, studentID string, semester int, subject string, value float64) (int64, error)
}

type scoreRepo struct {
	db *gorm.DB
}

// NewScoreRepo creates the GORM-backed ScoreRepository.
func NewScoreRepo(db *gorm.DB) ScoreRepository {
	return &scoreRepo{db: db}
}

func (r *scoreRepo) Create(ctx context.Context, score *model.Score) error {
	return r.db.WithContext(ctx).Create(score).Error
}

func (r *scoreRepo) GetByID(ctx context.Context, id string) (*model.Score, error) {
	var score model.Score
	err := r.db.WithContext(ctx).
		Where("score_id = ?", id).
		First(&score).Error
	if err != nil {
		return nil, err
	}
	return &score, nil
}

func (r *scoreRepo) GetByNaturalKey(ctx context.Context, studentID string, semester int, subject string) (*model.Score, error) {
	var score model.Score
	err := r.db.WithContext(ctx).
		Where("student_id = ? AND semester = ? AND subject = ?", studentID, semester, subject).
		First(&score).Error
	if err != nil {
		return nil, err
	}
	return &score, nil
}

func (r *scoreRepo) ListByStudent(ctx context.Context, studentID string) ([]model.Score, error) {
	var scores []model.Score
	err := r.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("semester ASC, subject ASC").
		Find(&scores).Error
	if err != nil {
		return nil, err
	}
	return scores, nil
}

func (r *scoreRepo) Update(ctx context.Context, score *model.Score) error {
	return r.db.WithContext(ctx).Save(score).Error
}

func (r *scoreRepo) Upsert(ctx context.Context, score *model.Score) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "student_id"}, {Name: "semester"}, {Name: "subject"},
			},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(score).Error
}

func (r *scoreRepo) UpdateValue(ctx context.Context, id string, value float64) error {
	return r.db.WithContext(ctx).
		Model(&model.Score{}).
		Where("score_id = ?", id).
		Update("value", value).Error
}

func (r *scoreRepo) UpdateValueByNaturalKey(ctx context.Context, studentID string, semester int, subject string, value float64) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&model.Score{}).
		Where("student_id = ? AND semester = ? AND subject = ?", studentID, semester, subject).
		Update("value", value)
	return res.RowsAffected, res.Error
}
