package handler

import (
	"github.com/rifkydyatama/si-eligible/internal/service"
	"github.com/rifkydyatama/si-eligible/pkg/storage"
)

// Handler aggregates all HTTP handlers.
type Handler struct {
	Auth       *AuthHandler
	Student    *StudentHandler
	Score      *ScoreHandler
	Dispute    *DisputeHandler
	Import     *ImportHandler
	Campus     *CampusHandler
	Preference *PreferenceHandler
	Graduation *GraduationHandler
	Stats      *StatsHandler
	Export     *ExportHandler
}

// NewHandler creates the handler aggregate.
func NewHandler(svc *service.Service, store storage.Storage) *Handler {
	return &Handler{
		Auth:       NewAuthHandler(svc.Auth),
		Student:    NewStudentHandler(svc.Student),
		Score:      NewScoreHandler(svc.Score),
		Dispute:    NewDisputeHandler(svc.Dispute, store),
		Import:     NewImportHandler(svc.Import),
		Campus:     NewCampusHandler(svc.Campus),
		Preference: NewPreferenceHandler(svc.Preference),
		Graduation: NewGraduationHandler(svc.Graduation, store),
		Stats:      NewStatsHandler(svc.Stats),
		Export:     NewExportHandler(svc.Export),
	}
}
