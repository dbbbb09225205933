package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/rifkydyatama/si-eligible/internal/model"
)

func setupScoreService() (ScoreService, *mockRepos) {
	repos := newMockRepos()
	svc := NewScoreService(repos.repository, zap.NewNop())
	return svc, repos
}

func TestScoreService_VerifyOwn_Success(t *testing.T) {
	svc, repos := setupScoreService()
	score := seedScore(repos, "stu-001", 1, "Matematika", 80)

	result, err := svc.VerifyOwn(context.Background(), "stu-001", score.ScoreID)
	if err != nil {
		t.Fatalf("VerifyOwn should succeed: %v", err)
	}
	if !result.Verified {
		t.Error("score should be marked verified")
	}
	if !repos.scores.scores[score.ScoreID].Verified {
		t.Error("verified flag should be persisted")
	}
}

func TestScoreService_VerifyOwn_ForeignScore(t *testing.T) {
	svc, repos := setupScoreService()
	score := seedScore(repos, "stu-001", 1, "Matematika", 80)

	_, err := svc.VerifyOwn(context.Background(), "stu-002", score.ScoreID)
	if !errors.Is(err, ErrNotScoreOwner) {
		t.Errorf("expected ErrNotScoreOwner, got %v", err)
	}
	if repos.scores.scores[score.ScoreID].Verified {
		t.Error("a rejected verification must not set the flag")
	}
}

func TestScoreService_VerifyOwn_NotFound(t *testing.T) {
	svc, _ := setupScoreService()

	_, err := svc.VerifyOwn(context.Background(), "stu-001", "score-missing")
	if !errors.Is(err, ErrScoreNotFound) {
		t.Errorf("expected ErrScoreNotFound, got %v", err)
	}
}

func TestScoreService_VerifyAny_Success(t *testing.T) {
	svc, repos := setupScoreService()
	score := seedScore(repos, "stu-001", 2, "Fisika", 71)

	result, err := svc.VerifyAny(context.Background(), score.ScoreID)
	if err != nil {
		t.Fatalf("VerifyAny should succeed: %v", err)
	}
	if !result.Verified {
		t.Error("score should be marked verified")
	}
}

func TestScoreService_ListByStudent_UnknownStudent(t *testing.T) {
	svc, _ := setupScoreService()

	_, err := svc.ListByStudent(context.Background(), "stu-missing")
	if !errors.Is(err, ErrStudentNotFound) {
		t.Errorf("expected ErrStudentNotFound, got %v", err)
	}
}

func TestScoreService_ListMine_OrderedView(t *testing.T) {
	svc, repos := setupScoreService()
	repos.students.Create(context.Background(), &model.Student{StudentID: "stu-001", NISN: "0012345678", Name: "Ani"})
	seedScore(repos, "stu-001", 1, "Matematika", 80)
	seedScore(repos, "stu-001", 2, "Fisika", 75)
	seedScore(repos, "stu-002", 1, "Matematika", 60)

	scores, err := svc.ListMine(context.Background(), "stu-001")
	if err != nil {
		t.Fatalf("ListMine should succeed: %v", err)
	}
	if len(scores) != 2 {
		t.Errorf("expected 2 scores, got %d", len(scores))
	}
}
