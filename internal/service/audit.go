package service

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/rifkydyatama/si-eligible/internal/model"
	"github.com/rifkydyatama/si-eligible/internal/repository"
)

// AuditRecorder writes audit-log entries fire-and-forget: a failed
// write is logged and swallowed, never surfaced to the caller.
type AuditRecorder struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewAuditRecorder creates an AuditRecorder.
func NewAuditRecorder(repo *repository.Repository, logger *zap.Logger) *AuditRecorder {
	return &AuditRecorder{repo: repo, logger: logger}
}

// Record persists one audit entry.
func (a *AuditRecorder) Record(ctx context.Context, actorID, actorRole, action, description string, metadata map[string]interface{}) {
	entry := &model.AuditLog{
		ActorID:     actorID,
		ActorRole:   actorRole,
		Action:      action,
		Description: description,
	}

	if metadata != nil {
		raw, err := json.Marshal(metadata)
		if err != nil {
			a.logger.Warn("marshal audit metadata failed", zap.String("action", action), zap.Error(err))
		} else {
			entry.Metadata = raw
		}
	}

	if err := a.repo.Audit.Create(ctx, entry); err != nil {
		a.logger.Warn("write audit log failed",
			zap.String("action", action),
			zap.String("actor_id", actorID),
			zap.Error(err),
		)
	}
}
