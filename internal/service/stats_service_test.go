package service

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/rifkydyatama/si-eligible/internal/model"
)

func TestStatsService_Summary(t *testing.T) {
	repos := newMockRepos()
	svc := NewStatsService(repos.repository, zap.NewNop())

	ctx := context.Background()
	repos.students.Create(ctx, &model.Student{StudentID: "stu-001", NISN: "0012345678", Name: "Ani"})
	repos.students.Create(ctx, &model.Student{StudentID: "stu-002", NISN: "0087654321", Name: "Budi"})
	repos.scores.Create(ctx, &model.Score{StudentID: "stu-001", Semester: 1, Subject: "Matematika", Value: 80, Verified: true})
	repos.scores.Create(ctx, &model.Score{StudentID: "stu-002", Semester: 1, Subject: "Matematika", Value: 75})
	repos.disputes.Create(ctx, &model.Dispute{StudentID: "stu-001", Status: model.DisputeStatusPending})
	repos.disputes.Create(ctx, &model.Dispute{StudentID: "stu-002", Status: model.DisputeStatusRejected})
	repos.reports.Create(ctx, &model.GraduationReport{StudentID: "stu-001", Status: model.GraduationStatusAccepted})

	stats, err := svc.Summary(ctx)
	if err != nil {
		t.Fatalf("Summary should succeed: %v", err)
	}
	if stats.TotalStudents != 2 {
		t.Errorf("expected 2 students, got %d", stats.TotalStudents)
	}
	if stats.StudentsWithVerified != 1 {
		t.Errorf("expected 1 student with verified scores, got %d", stats.StudentsWithVerified)
	}
	if stats.PendingDisputes != 1 {
		t.Errorf("expected 1 pending dispute, got %d", stats.PendingDisputes)
	}
	if stats.AcceptedGraduations != 1 {
		t.Errorf("expected 1 accepted graduation, got %d", stats.AcceptedGraduations)
	}
}
