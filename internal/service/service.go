package service

import (
	"go.uber.org/zap"

	"github.com/rifkydyatama/si-eligible/config"
	"github.com/rifkydyatama/si-eligible/internal/repository"
	"github.com/rifkydyatama/si-eligible/pkg/jwt"
	"github.com/rifkydyatama/si-eligible/pkg/redis"
)

// Service aggregates all business-logic interfaces.
type Service struct {
	Auth       AuthService
	Student    StudentService
	Score      ScoreService
	Dispute    DisputeService
	Import     ImportService
	Campus     CampusService
	Preference PreferenceService
	Graduation GraduationService
	Stats      StatsService
	Export     ExportService
}

// NewService wires the service implementations.
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	logger *zap.Logger,
) *Service {
	audit := NewAuditRecorder(repo, logger)

	return &Service{
		Auth:       NewAuthService(cfg, repo, jwtMgr, rdb, logger),
		Student:    NewStudentService(repo, audit, logger),
		Score:      NewScoreService(repo, logger),
		Dispute:    NewDisputeService(repo, audit, logger),
		Import:     NewImportService(&cfg.Import, repo, audit, logger),
		Campus:     NewCampusService(repo, audit, logger),
		Preference: NewPreferenceService(repo, logger),
		Graduation: NewGraduationService(repo, logger),
		Stats:      NewStatsService(repo, logger),
		Export:     NewExportService(repo, logger),
	}
}
