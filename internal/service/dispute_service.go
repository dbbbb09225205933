package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/rifkydyatama/si-eligible/internal/dto"
	"github.com/rifkydyatama/si-eligible/internal/model"
	"github.com/rifkydyatama/si-eligible/internal/repository"
)

var (
	ErrDisputeNotFound        = errors.New("dispute not found")
	ErrDisputeAlreadyPending  = errors.New("a pending dispute already exists for this score")
	ErrDisputeAlreadyResolved = errors.New("dispute has already been resolved")
	ErrReviewNoteRequired     = errors.New("a review note is required when rejecting")
	ErrInvalidDisputeStatus   = errors.New("invalid dispute status")
)

// DisputeService handles score disputes: a student contests a value
// with evidence, a reviewer approves or rejects. Approval overwrites
// the score value with the claimed one in the same transaction.
type DisputeService interface {
	Submit(ctx context.Context, studentID string, req *dto.SubmitDisputeRequest, evidenceRef string) (*dto.DisputeResponse, error)
	ListMine(ctx context.Context, studentID string) ([]dto.DisputeResponse, error)
	ListByStatus(ctx context.Context, status string) ([]dto.DisputeResponse, error)
	Resolve(ctx context.Context, reviewerID, disputeID string, req *dto.ResolveDisputeRequest) (*dto.DisputeResponse, error)
}

type disputeService struct {
	repo   *repository.Repository
	audit  *AuditRecorder
	logger *zap.Logger
}

// NewDisputeService creates the dispute service.
func NewDisputeService(repo *repository.Repository, audit *AuditRecorder, logger *zap.Logger) DisputeService {
	return &disputeService{repo: repo, audit: audit, logger: logger}
}

func (s *disputeService) Submit(ctx context.Context, studentID string, req *dto.SubmitDisputeRequest, evidenceRef string) (*dto.DisputeResponse, error) {
	score, err := s.repo.Score.GetByID(ctx, req.ScoreID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrScoreNotFound
		}
		return nil, err
	}
	if score.StudentID != studentID {
		return nil, ErrNotScoreOwner
	}

	pending, err := s.repo.Dispute.HasPendingForScore(ctx, score.ScoreID)
	if err != nil {
		return nil, err
	}
	if pending {
		return nil, ErrDisputeAlreadyPending
	}

	// Semester, subject and the contested value are frozen at
	// submission time so the record stays meaningful even if the
	// score changes underneath.
	dispute := &model.Dispute{
		ScoreID:      score.ScoreID,
		StudentID:    studentID,
		Semester:     score.Semester,
		Subject:      score.Subject,
		OldValue:     score.Value,
		ClaimedValue: req.ClaimedValue,
		Evidence:     evidenceRef,
		Status:       model.DisputeStatusPending,
	}
	if err := s.repo.Dispute.Create(ctx, dispute); err != nil {
		s.logger.Error("create dispute failed", zap.String("score_id", score.ScoreID), zap.Error(err))
		return nil, err
	}

	s.audit.Record(ctx, studentID, "student", "dispute.submit",
		"submitted a score dispute", map[string]interface{}{
			"dispute_id":    dispute.DisputeID,
			"score_id":      score.ScoreID,
			"old_value":     score.Value,
			"claimed_value": req.ClaimedValue,
		})

	resp := toDisputeResponse(dispute)
	return &resp, nil
}

func (s *disputeService) ListMine(ctx context.Context, studentID string) ([]dto.DisputeResponse, error) {
	disputes, err := s.repo.Dispute.ListByStudent(ctx, studentID)
	if err != nil {
		s.logger.Error("list disputes failed", zap.String("student_id", studentID), zap.Error(err))
		return nil, err
	}
	return toDisputeResponses(disputes), nil
}

func (s *disputeService) ListByStatus(ctx context.Context, status string) ([]dto.DisputeResponse, error) {
	switch status {
	case model.DisputeStatusPending, model.DisputeStatusApproved, model.DisputeStatusRejected:
	default:
		return nil, ErrInvalidDisputeStatus
	}

	disputes, err := s.repo.Dispute.ListByStatus(ctx, status)
	if err != nil {
		s.logger.Error("list disputes failed", zap.String("status", status), zap.Error(err))
		return nil, err
	}
	return toDisputeResponses(disputes), nil
}

func (s *disputeService) Resolve(ctx context.Context, reviewerID, disputeID string, req *dto.ResolveDisputeRequest) (*dto.DisputeResponse, error) {
	dispute, err := s.repo.Dispute.GetByID(ctx, disputeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDisputeNotFound
		}
		return nil, err
	}
	if dispute.Status != model.DisputeStatusPending {
		return nil, ErrDisputeAlreadyResolved
	}
	if req.Decision == model.DisputeStatusRejected && req.Note == "" {
		return nil, ErrReviewNoteRequired
	}

	now := time.Now()
	dispute.Status = req.Decision
	dispute.ReviewedBy = &reviewerID
	dispute.ReviewedAt = &now
	if req.Note != "" {
		note := req.Note
		dispute.ReviewNote = &note
	}

	// The status flip and the score overwrite commit together.
	err = s.repo.Transaction(ctx, func(txRepo *repository.Repository) error {
		if err := txRepo.Dispute.Update(ctx, dispute); err != nil {
			s.logger.Error("update dispute failed", zap.String("dispute_id", disputeID), zap.Error(err))
			return err
		}

		// Approval overwrites the score with the claimed value. If
		// the original row was replaced since submission, fall back
		// to the denormalized (student, semester, subject) key.
		if req.Decision == model.DisputeStatusApproved {
			return s.applyClaimedValue(ctx, txRepo, dispute)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, reviewerID, "staff", "dispute.resolve",
		"resolved a score dispute", map[string]interface{}{
			"dispute_id": dispute.DisputeID,
			"decision":   req.Decision,
		})

	resp := toDisputeResponse(dispute)
	return &resp, nil
}

func (s *disputeService) applyClaimedValue(ctx context.Context, txRepo *repository.Repository, dispute *model.Dispute) error {
	_, err := txRepo.Score.GetByID(ctx, dispute.ScoreID)
	if err == nil {
		return txRepo.Score.UpdateValue(ctx, dispute.ScoreID, dispute.ClaimedValue)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	affected, err := txRepo.Score.UpdateValueByNaturalKey(ctx,
		dispute.StudentID, dispute.Semester, dispute.Subject, dispute.ClaimedValue)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrScoreNotFound
	}
	return nil
}

func toDisputeResponse(d *model.Dispute) dto.DisputeResponse {
	resp := dto.DisputeResponse{
		ID:           d.DisputeID,
		ScoreID:      d.ScoreID,
		Semester:     d.Semester,
		Subject:      d.Subject,
		OldValue:     d.OldValue,
		ClaimedValue: d.ClaimedValue,
		Evidence:     d.Evidence,
		Status:       d.Status,
		ReviewNote:   d.ReviewNote,
		ReviewedBy:   d.ReviewedBy,
		CreatedAt:    d.CreatedAt.Format(time.RFC3339),
	}
	if d.ReviewedAt != nil {
		at := d.ReviewedAt.Format(time.RFC3339)
		resp.ReviewedAt = &at
	}
	if d.Student != nil {
		resp.Student = &dto.DisputeStudentResponse{
			ID:    d.Student.StudentID,
			NISN:  d.Student.NISN,
			Name:  d.Student.Name,
			Class: d.Student.Class,
		}
	}
	return resp
}

func toDisputeResponses(disputes []model.Dispute) []dto.DisputeResponse {
	out := make([]dto.DisputeResponse, 0, len(disputes))
	for i := range disputes {
		out = append(out, toDisputeResponse(&disputes[i]))
	}
	return out
}
