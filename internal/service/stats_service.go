package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/rifkydyatama/si-eligible/internal/dto"
	"github.com/rifkydyatama/si-eligible/internal/model"
	"github.com/rifkydyatama/si-eligible/internal/repository"
)

// StatsService builds the staff dashboard summary.
type StatsService interface {
	Summary(ctx context.Context) (*dto.StatsResponse, error)
}

type statsService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewStatsService creates the stats service.
func NewStatsService(repo *repository.Repository, logger *zap.Logger) StatsService {
	return &statsService{repo: repo, logger: logger}
}

func (s *statsService) Summary(ctx context.Context) (*dto.StatsResponse, error) {
	totalStudents, err := s.repo.Student.Count(ctx)
	if err != nil {
		s.logger.Error("count students failed", zap.Error(err))
		return nil, err
	}
	withVerified, err := s.repo.Student.CountWithVerifiedScores(ctx)
	if err != nil {
		s.logger.Error("count verified students failed", zap.Error(err))
		return nil, err
	}
	pendingDisputes, err := s.repo.Dispute.CountByStatus(ctx, model.DisputeStatusPending)
	if err != nil {
		s.logger.Error("count pending disputes failed", zap.Error(err))
		return nil, err
	}
	accepted, err := s.repo.Graduation.CountByStatus(ctx, model.GraduationStatusAccepted)
	if err != nil {
		s.logger.Error("count accepted graduations failed", zap.Error(err))
		return nil, err
	}

	return &dto.StatsResponse{
		TotalStudents:        totalStudents,
		StudentsWithVerified: withVerified,
		PendingDisputes:      pendingDisputes,
		AcceptedGraduations:  accepted,
	}, nil
}
