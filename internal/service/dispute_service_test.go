package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/rifkydyatama/si-eligible/internal/dto"
	"github.com/rifkydyatama/si-eligible/internal/model"
)

func setupDisputeService() (DisputeService, *mockRepos) {
	repos := newMockRepos()
	logger := zap.NewNop()
	audit := NewAuditRecorder(repos.repository, logger)
	svc := NewDisputeService(repos.repository, audit, logger)
	return svc, repos
}

func seedScore(repos *mockRepos, studentID string, semester int, subject string, value float64) *model.Score {
	score := &model.Score{
		StudentID: studentID,
		Semester:  semester,
		Subject:   subject,
		Value:     value,
	}
	repos.scores.Create(context.Background(), score)
	return score
}

func TestDisputeService_Submit_FreezesScoreSnapshot(t *testing.T) {
	svc, repos := setupDisputeService()
	score := seedScore(repos, "stu-001", 3, "Matematika", 78)

	dispute, err := svc.Submit(context.Background(), "stu-001", &dto.SubmitDisputeRequest{
		ScoreID:      score.ScoreID,
		ClaimedValue: 88,
	}, "/uploads/disputes/ev.pdf")
	if err != nil {
		t.Fatalf("Submit should succeed: %v", err)
	}

	if dispute.Status != model.DisputeStatusPending {
		t.Errorf("expected status pending, got %s", dispute.Status)
	}
	if dispute.Semester != 3 || dispute.Subject != "Matematika" {
		t.Errorf("submission should copy semester and subject, got %d/%s", dispute.Semester, dispute.Subject)
	}
	if dispute.OldValue != 78 {
		t.Errorf("expected old value 78, got %v", dispute.OldValue)
	}
	if dispute.ClaimedValue != 88 {
		t.Errorf("expected claimed value 88, got %v", dispute.ClaimedValue)
	}
}

func TestDisputeService_Submit_RejectsForeignScore(t *testing.T) {
	svc, repos := setupDisputeService()
	score := seedScore(repos, "stu-001", 1, "Fisika", 80)

	_, err := svc.Submit(context.Background(), "stu-002", &dto.SubmitDisputeRequest{
		ScoreID:      score.ScoreID,
		ClaimedValue: 90,
	}, "/uploads/disputes/ev.pdf")
	if !errors.Is(err, ErrNotScoreOwner) {
		t.Errorf("expected ErrNotScoreOwner, got %v", err)
	}
}

func TestDisputeService_Submit_RejectsDuplicatePending(t *testing.T) {
	svc, repos := setupDisputeService()
	score := seedScore(repos, "stu-001", 1, "Kimia", 70)

	req := &dto.SubmitDisputeRequest{ScoreID: score.ScoreID, ClaimedValue: 85}
	if _, err := svc.Submit(context.Background(), "stu-001", req, "/e1.pdf"); err != nil {
		t.Fatalf("first submit should succeed: %v", err)
	}

	_, err := svc.Submit(context.Background(), "stu-001", req, "/e2.pdf")
	if !errors.Is(err, ErrDisputeAlreadyPending) {
		t.Errorf("expected ErrDisputeAlreadyPending, got %v", err)
	}
}

func TestDisputeService_Submit_UnknownScore(t *testing.T) {
	svc, _ := setupDisputeService()

	_, err := svc.Submit(context.Background(), "stu-001", &dto.SubmitDisputeRequest{
		ScoreID:      "score-missing",
		ClaimedValue: 85,
	}, "/e.pdf")
	if !errors.Is(err, ErrScoreNotFound) {
		t.Errorf("expected ErrScoreNotFound, got %v", err)
	}
}

func TestDisputeService_Resolve_ApproveOverwritesScore(t *testing.T) {
	svc, repos := setupDisputeService()
	score := seedScore(repos, "stu-001", 2, "Biologi", 65)

	dispute, err := svc.Submit(context.Background(), "stu-001", &dto.SubmitDisputeRequest{
		ScoreID:      score.ScoreID,
		ClaimedValue: 82,
	}, "/e.pdf")
	if err != nil {
		t.Fatalf("Submit should succeed: %v", err)
	}

	resolved, err := svc.Resolve(context.Background(), "staff-001", dispute.ID, &dto.ResolveDisputeRequest{
		Decision: model.DisputeStatusApproved,
	})
	if err != nil {
		t.Fatalf("Resolve should succeed: %v", err)
	}

	if resolved.Status != model.DisputeStatusApproved {
		t.Errorf("expected status approved, got %s", resolved.Status)
	}
	if resolved.ReviewedBy == nil || *resolved.ReviewedBy != "staff-001" {
		t.Error("reviewer should be recorded")
	}
	if resolved.ReviewedAt == nil {
		t.Error("review time should be recorded")
	}
	if repos.scores.scores[score.ScoreID].Value != 82 {
		t.Errorf("approval should overwrite the score value, got %v", repos.scores.scores[score.ScoreID].Value)
	}
}

func TestDisputeService_Resolve_ApproveFallsBackToNaturalKey(t *testing.T) {
	svc, repos := setupDisputeService()
	score := seedScore(repos, "stu-001", 4, "Sejarah", 60)

	dispute, err := svc.Submit(context.Background(), "stu-001", &dto.SubmitDisputeRequest{
		ScoreID:      score.ScoreID,
		ClaimedValue: 75,
	}, "/e.pdf")
	if err != nil {
		t.Fatalf("Submit should succeed: %v", err)
	}

	// The score row is replaced between submission and review; the
	// natural key still identifies the record.
	delete(repos.scores.scores, score.ScoreID)
	replacement := seedScore(repos, "stu-001", 4, "Sejarah", 61)

	_, err = svc.Resolve(context.Background(), "staff-001", dispute.ID, &dto.ResolveDisputeRequest{
		Decision: model.DisputeStatusApproved,
	})
	if err != nil {
		t.Fatalf("Resolve should succeed via natural key: %v", err)
	}
	if repos.scores.scores[replacement.ScoreID].Value != 75 {
		t.Errorf("expected replacement row updated to 75, got %v", repos.scores.scores[replacement.ScoreID].Value)
	}
}

func TestDisputeService_Resolve_RejectRequiresNote(t *testing.T) {
	svc, repos := setupDisputeService()
	score := seedScore(repos, "stu-001", 1, "Geografi", 55)

	dispute, err := svc.Submit(context.Background(), "stu-001", &dto.SubmitDisputeRequest{
		ScoreID:      score.ScoreID,
		ClaimedValue: 70,
	}, "/e.pdf")
	if err != nil {
		t.Fatalf("Submit should succeed: %v", err)
	}

	_, err = svc.Resolve(context.Background(), "staff-001", dispute.ID, &dto.ResolveDisputeRequest{
		Decision: model.DisputeStatusRejected,
	})
	if !errors.Is(err, ErrReviewNoteRequired) {
		t.Errorf("expected ErrReviewNoteRequired, got %v", err)
	}
}

func TestDisputeService_Resolve_RejectLeavesScoreUntouched(t *testing.T) {
	svc, repos := setupDisputeService()
	score := seedScore(repos, "stu-001", 1, "Ekonomi", 55)

	dispute, err := svc.Submit(context.Background(), "stu-001", &dto.SubmitDisputeRequest{
		ScoreID:      score.ScoreID,
		ClaimedValue: 95,
	}, "/e.pdf")
	if err != nil {
		t.Fatalf("Submit should succeed: %v", err)
	}

	resolved, err := svc.Resolve(context.Background(), "staff-001", dispute.ID, &dto.ResolveDisputeRequest{
		Decision: model.DisputeStatusRejected,
		Note:     "evidence does not match the report card",
	})
	if err != nil {
		t.Fatalf("Resolve should succeed: %v", err)
	}

	if resolved.ReviewNote == nil || *resolved.ReviewNote == "" {
		t.Error("rejection note should be stored")
	}
	if repos.scores.scores[score.ScoreID].Value != 55 {
		t.Errorf("rejection must not change the score, got %v", repos.scores.scores[score.ScoreID].Value)
	}
}

func TestDisputeService_Resolve_AlreadyResolved(t *testing.T) {
	svc, repos := setupDisputeService()
	score := seedScore(repos, "stu-001", 1, "Bahasa Inggris", 66)

	dispute, err := svc.Submit(context.Background(), "stu-001", &dto.SubmitDisputeRequest{
		ScoreID:      score.ScoreID,
		ClaimedValue: 77,
	}, "/e.pdf")
	if err != nil {
		t.Fatalf("Submit should succeed: %v", err)
	}

	req := &dto.ResolveDisputeRequest{Decision: model.DisputeStatusApproved}
	if _, err := svc.Resolve(context.Background(), "staff-001", dispute.ID, req); err != nil {
		t.Fatalf("first resolve should succeed: %v", err)
	}

	_, err = svc.Resolve(context.Background(), "staff-002", dispute.ID, req)
	if !errors.Is(err, ErrDisputeAlreadyResolved) {
		t.Errorf("expected ErrDisputeAlreadyResolved, got %v", err)
	}
}

func TestDisputeService_ListByStatus_InvalidStatus(t *testing.T) {
	svc, _ := setupDisputeService()

	_, err := svc.ListByStatus(context.Background(), "escalated")
	if !errors.Is(err, ErrInvalidDisputeStatus) {
		t.Errorf("expected ErrInvalidDisputeStatus, got %v", err)
	}
}
