package service

import (
	"context"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/rifkydyatama/si-eligible/internal/model"
)

func TestExportService_ExportEligible(t *testing.T) {
	repos := newMockRepos()
	svc := NewExportService(repos.repository, zap.NewNop())

	ctx := context.Background()
	repos.students.Create(ctx, &model.Student{StudentID: "stu-001", NISN: "0012345678", Name: "Ani Lestari", Class: "12", Track: "IPA"})
	repos.students.Create(ctx, &model.Student{StudentID: "stu-002", NISN: "0087654321", Name: "Budi", Class: "12", Track: "IPS"})
	repos.scores.Create(ctx, &model.Score{StudentID: "stu-001", Semester: 1, Subject: "Matematika", Value: 85, Verified: true})
	repos.scores.Create(ctx, &model.Score{StudentID: "stu-001", Semester: 2, Subject: "Fisika", Value: 90, Verified: true})
	repos.scores.Create(ctx, &model.Score{StudentID: "stu-002", Semester: 1, Subject: "Matematika", Value: 70})

	campus := &model.Campus{Code: "UI", Name: "Universitas Indonesia", IsActive: true}
	repos.campuses.Create(ctx, campus)
	major := &model.Major{CampusID: campus.CampusID, Name: "Ilmu Komputer", Level: "S1", IsActive: true}
	repos.majors.Create(ctx, major)
	repos.prefs.Create(ctx, &model.Preference{
		StudentID: "stu-001", CampusID: campus.CampusID, MajorID: major.MajorID,
		Rank: 1, AdmissionPath: "snbp", Campus: campus, Major: major,
	})

	buf, filename, err := svc.ExportEligible(ctx)
	if err != nil {
		t.Fatalf("ExportEligible should succeed: %v", err)
	}
	if !strings.HasPrefix(filename, "eligible_students_") || !strings.HasSuffix(filename, ".xlsx") {
		t.Errorf("unexpected filename %s", filename)
	}

	f, err := excelize.OpenReader(buf)
	if err != nil {
		t.Fatalf("workbook should open: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Eligible Students")
	if err != nil {
		t.Fatalf("score sheet should exist: %v", err)
	}
	// header plus the two verified scores; the unverified student is absent
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	if rows[0][0] != "NISN" {
		t.Errorf("expected NISN header, got %s", rows[0][0])
	}
	for _, row := range rows[1:] {
		if row[0] != "0012345678" {
			t.Errorf("only the verified student should appear, got NISN %s", row[0])
		}
	}

	prefRows, err := f.GetRows("Preferences")
	if err != nil {
		t.Fatalf("preference sheet should exist: %v", err)
	}
	if len(prefRows) != 2 {
		t.Fatalf("expected header plus 1 preference, got %d rows", len(prefRows))
	}
	if prefRows[1][3] != "Universitas Indonesia" || prefRows[1][4] != "Ilmu Komputer" {
		t.Errorf("preference row should carry catalog names, got %v", prefRows[1])
	}
}
