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
	ErrScoreNotFound = errors.New("score not found")
	ErrNotScoreOwner = errors.New("score belongs to another student")
)

// ScoreService exposes score reads and verification. Verification
// marks a score as confirmed correct; a verified flag survives later
// value imports.
type ScoreService interface {
	ListMine(ctx context.Context, studentID string) ([]dto.ScoreResponse, error)
	ListByStudent(ctx context.Context, studentID string) ([]dto.ScoreResponse, error)
	VerifyOwn(ctx context.Context, studentID, scoreID string) (*dto.ScoreResponse, error)
	VerifyAny(ctx context.Context, scoreID string) (*dto.ScoreResponse, error)
}

type scoreService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewScoreService creates the score service.
func NewScoreService(repo *repository.Repository, logger *zap.Logger) ScoreService {
	return &scoreService{repo: repo, logger: logger}
}

func (s *scoreService) ListMine(ctx context.Context, studentID string) ([]dto.ScoreResponse, error) {
	scores, err := s.repo.Score.ListByStudent(ctx, studentID)
	if err != nil {
		s.logger.Error("list scores failed", zap.String("student_id", studentID), zap.Error(err))
		return nil, err
	}
	return toScoreResponses(scores), nil
}

func (s *scoreService) ListByStudent(ctx context.Context, studentID string) ([]dto.ScoreResponse, error) {
	if _, err := s.repo.Student.GetByID(ctx, studentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}
	return s.ListMine(ctx, studentID)
}

func (s *scoreService) VerifyOwn(ctx context.Context, studentID, scoreID string) (*dto.ScoreResponse, error) {
	score, err := s.getScore(ctx, scoreID)
	if err != nil {
		return nil, err
	}
	if score.StudentID != studentID {
		return nil, ErrNotScoreOwner
	}
	return s.verify(ctx, score)
}

func (s *scoreService) VerifyAny(ctx context.Context, scoreID string) (*dto.ScoreResponse, error) {
	score, err := s.getScore(ctx, scoreID)
	if err != nil {
		return nil, err
	}
	return s.verify(ctx, score)
}

func (s *scoreService) getScore(ctx context.Context, scoreID string) (*model.Score, error) {
	score, err := s.repo.Score.GetByID(ctx, scoreID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrScoreNotFound
		}
		return nil, err
	}
	return score, nil
}

func (s *scoreService) verify(ctx context.Context, score *model.Score) (*dto.ScoreResponse, error) {
	score.Verified = true
	if err := s.repo.Score.Update(ctx, score); err != nil {
		s.logger.Error("verify score failed", zap.String("score_id", score.ScoreID), zap.Error(err))
		return nil, err
	}
	resp := toScoreResponse(score)
	return &resp, nil
}

func toScoreResponse(score *model.Score) dto.ScoreResponse {
	return dto.ScoreResponse{
		ID:       score.ScoreID,
		Semester: score.Semester,
		Subject:  score.Subject,
		Value:    score.Value,
		Verified: score.Verified,
	}
}

func toScoreResponses(scores []model.Score) []dto.ScoreResponse {
	out := make([]dto.ScoreResponse, 0, len(scores))
	for i := range scores {
		out = append(out, toScoreResponse(&scores[i]))
	}
	return out
}
