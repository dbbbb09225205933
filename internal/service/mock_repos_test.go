package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/rifkydyatama/si-eligible/internal/model"
	"github.com/rifkydyatama/si-eligible/internal/repository"
)

// ── Mock StudentRepository ──

type mockStudentRepo struct {
	students map[string]*model.Student
	scores   *mockScoreRepo
	seq      int
}

func newMockStudentRepo() *mockStudentRepo {
	return &mockStudentRepo{students: make(map[string]*model.Student)}
}

func (m *mockStudentRepo) Create(_ context.Context, student *model.Student) error {
	if student.StudentID == "" {
		m.seq++
		student.StudentID = fmt.Sprintf("stu-%03d", m.seq)
	}
	m.students[student.StudentID] = student
	return nil
}

func (m *mockStudentRepo) GetByID(_ context.Context, id string) (*model.Student, error) {
	if s, ok := m.students[id]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockStudentRepo) GetByNISN(_ context.Context, nisn string) (*model.Student, error) {
	for _, s := range m.students {
		if s.NISN == nisn {
			return s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockStudentRepo) List(_ context.Context, offset, limit int) ([]repository.StudentWithScoreCount, int64, error) {
	var rows []repository.StudentWithScoreCount
	for _, s := range m.students {
		row := repository.StudentWithScoreCount{Student: *s}
		if m.scores != nil {
			for _, sc := range m.scores.scores {
				if sc.StudentID == s.StudentID {
					row.ScoreCount++
				}
			}
		}
		rows = append(rows, row)
	}
	return rows, int64(len(m.students)), nil
}

func (m *mockStudentRepo) Update(_ context.Context, student *model.Student) error {
	m.students[student.StudentID] = student
	return nil
}

func (m *mockStudentRepo) Delete(_ context.Context, id string) error {
	delete(m.students, id)
	return nil
}

func (m *mockStudentRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.students)), nil
}

func (m *mockStudentRepo) CountWithVerifiedScores(_ context.Context) (int64, error) {
	var count int64
	for _, s := range m.students {
		if m.hasVerified(s.StudentID) {
			count++
		}
	}
	return count, nil
}

func (m *mockStudentRepo) ListWithVerifiedScores(_ context.Context) ([]model.Student, error) {
	var result []model.Student
	for _, s := range m.students {
		if !m.hasVerified(s.StudentID) {
			continue
		}
		copied := *s
		copied.Scores = nil
		for _, sc := range m.scores.scores {
			if sc.StudentID == s.StudentID && sc.Verified {
				copied.Scores = append(copied.Scores, *sc)
			}
		}
		result = append(result, copied)
	}
	return result, nil
}

func (m *mockStudentRepo) hasVerified(studentID string) bool {
	if m.scores == nil {
		return false
	}
	for _, sc := range m.scores.scores {
		if sc.StudentID == studentID && sc.Verified {
			return true
		}
	}
	return false
}

// ── Mock StaffRepository ──

type mockStaffRepo struct {
	staff map[string]*model.StaffUser
}

func newMockStaffRepo() *mockStaffRepo {
	return &mockStaffRepo{staff: make(map[string]*model.StaffUser)}
}

func (m *mockStaffRepo) Create(_ context.Context, s *model.StaffUser) error {
	if s.StaffID == "" {
		s.StaffID = "staff-" + s.Username
	}
	m.staff[s.StaffID] = s
	return nil
}

func (m *mockStaffRepo) GetByID(_ context.Context, id string) (*model.StaffUser, error) {
	if s, ok := m.staff[id]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockStaffRepo) GetByUsername(_ context.Context, username string) (*model.StaffUser, error) {
	for _, s := range m.staff {
		if s.Username == username {
			return s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

// ── Mock ScoreRepository ──

type mockScoreRepo struct {
	scores map[string]*model.Score
	seq    int
}

func newMockScoreRepo() *mockScoreRepo {
	return &mockScoreRepo{scores: make(map[string]*model.Score)}
}

func (m *mockScoreRepo) Create(_ context.Context, score *model.Score) error {
	if score.ScoreID == "" {
		m.seq++
		score.ScoreID = fmt.Sprintf("score-%03d", m.seq)
	}
	m.scores[score.ScoreID] = score
	return nil
}

func (m *mockScoreRepo) GetByID(_ context.Context, id string) (*model.Score, error) {
	if s, ok := m.scores[id]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockScoreRepo) GetByNaturalKey(_ context.Context, studentID string, semester int, subject string) (*model.Score, error) {
	for _, s := range m.scores {
		if s.StudentID == studentID && s.Semester == semester && s.Subject == subject {
			return s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockScoreRepo) ListByStudent(_ context.Context, studentID string) ([]model.Score, error) {
	var result []model.Score
	for _, s := range m.scores {
		if s.StudentID == studentID {
			result = append(result, *s)
		}
	}
	return result, nil
}

func (m *mockScoreRepo) Update(_ context.Context, score *model.Score) error {
	m.scores[score.ScoreID] = score
	return nil
}

func (m *mockScoreRepo) Upsert(ctx context.Context, score *model.Score) error {
	existing, err := m.GetByNaturalKey(ctx, score.StudentID, score.Semester, score.Subject)
	if err == nil {
		existing.Value = score.Value
		score.ScoreID = existing.ScoreID
		return nil
	}
	return m.Create(ctx, score)
}

func (m *mockScoreRepo) UpdateValue(_ context.Context, id string, value float64) error {
	if s, ok := m.scores[id]; ok {
		s.Value = value
		return nil
	}
	return gorm.ErrRecordNotFound
}

func (m *mockScoreRepo) UpdateValueByNaturalKey(ctx context.Context, studentID string, semester int, subject string, value float64) (int64, error) {
	s, err := m.GetByNaturalKey(ctx, studentID, semester, subject)
	if err != nil {
		return 0, nil
	}
	s.Value = value
	return 1, nil
}

// ── Mock DisputeRepository ──

type mockDisputeRepo struct {
	disputes map[string]*model.Dispute
	seq      int
}

func newMockDisputeRepo() *mockDisputeRepo {
	return &mockDisputeRepo{disputes: make(map[string]*model.Dispute)}
}

func (m *mockDisputeRepo) Create(_ context.Context, dispute *model.Dispute) error {
	if dispute.DisputeID == "" {
		m.seq++
		dispute.DisputeID = fmt.Sprintf("disp-%03d", m.seq)
	}
	m.disputes[dispute.DisputeID] = dispute
	return nil
}

func (m *mockDisputeRepo) GetByID(_ context.Context, id string) (*model.Dispute, error) {
	if d, ok := m.disputes[id]; ok {
		return d, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockDisputeRepo) ListByStatus(_ context.Context, status string) ([]model.Dispute, error) {
	var result []model.Dispute
	for _, d := range m.disputes {
		if d.Status == status {
			result = append(result, *d)
		}
	}
	return result, nil
}

func (m *mockDisputeRepo) ListByStudent(_ context.Context, studentID string) ([]model.Dispute, error) {
	var result []model.Dispute
	for _, d := range m.disputes {
		if d.StudentID == studentID {
			result = append(result, *d)
		}
	}
	return result, nil
}

func (m *mockDisputeRepo) Update(_ context.Context, dispute *model.Dispute) error {
	m.disputes[dispute.DisputeID] = dispute
	return nil
}

func (m *mockDisputeRepo) HasPendingForScore(_ context.Context, scoreID string) (bool, error) {
	for _, d := range m.disputes {
		if d.ScoreID == scoreID && d.Status == model.DisputeStatusPending {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockDisputeRepo) CountByStatus(_ context.Context, status string) (int64, error) {
	var count int64
	for _, d := range m.disputes {
		if d.Status == status {
			count++
		}
	}
	return count, nil
}

// ── Mock CampusRepository ──

type mockCampusRepo struct {
	campuses map[string]*model.Campus
	seq      int
}

func newMockCampusRepo() *mockCampusRepo {
	return &mockCampusRepo{campuses: make(map[string]*model.Campus)}
}

func (m *mockCampusRepo) Create(_ context.Context, campus *model.Campus) error {
	if campus.CampusID == "" {
		m.seq++
		campus.CampusID = fmt.Sprintf("campus-%03d", m.seq)
	}
	m.campuses[campus.CampusID] = campus
	return nil
}

func (m *mockCampusRepo) GetByID(_ context.Context, id string) (*model.Campus, error) {
	if c, ok := m.campuses[id]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCampusRepo) GetByCode(_ context.Context, code string) (*model.Campus, error) {
	for _, c := range m.campuses {
		if c.Code == code {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCampusRepo) List(_ context.Context, activeOnly bool) ([]model.Campus, error) {
	var result []model.Campus
	for _, c := range m.campuses {
		if activeOnly && !c.IsActive {
			continue
		}
		result = append(result, *c)
	}
	return result, nil
}

func (m *mockCampusRepo) Update(_ context.Context, campus *model.Campus) error {
	m.campuses[campus.CampusID] = campus
	return nil
}

func (m *mockCampusRepo) Delete(_ context.Context, id string) error {
	delete(m.campuses, id)
	return nil
}

// ── Mock MajorRepository ──

type mockMajorRepo struct {
	majors map[string]*model.Major
	seq    int
}

func newMockMajorRepo() *mockMajorRepo {
	return &mockMajorRepo{majors: make(map[string]*model.Major)}
}

func (m *mockMajorRepo) Create(_ context.Context, major *model.Major) error {
	if major.MajorID == "" {
		m.seq++
		major.MajorID = fmt.Sprintf("major-%03d", m.seq)
	}
	m.majors[major.MajorID] = major
	return nil
}

func (m *mockMajorRepo) GetByID(_ context.Context, id string) (*model.Major, error) {
	if mj, ok := m.majors[id]; ok {
		return mj, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockMajorRepo) ListByCampus(_ context.Context, campusID string, activeOnly bool) ([]model.Major, error) {
	var result []model.Major
	for _, mj := range m.majors {
		if mj.CampusID != campusID {
			continue
		}
		if activeOnly && !mj.IsActive {
			continue
		}
		result = append(result, *mj)
	}
	return result, nil
}

func (m *mockMajorRepo) Update(_ context.Context, major *model.Major) error {
	m.majors[major.MajorID] = major
	return nil
}

func (m *mockMajorRepo) Delete(_ context.Context, id string) error {
	delete(m.majors, id)
	return nil
}

// ── Mock PreferenceRepository ──

type mockPreferenceRepo struct {
	prefs map[string]*model.Preference
	seq   int
}

func newMockPreferenceRepo() *mockPreferenceRepo {
	return &mockPreferenceRepo{prefs: make(map[string]*model.Preference)}
}

func (m *mockPreferenceRepo) Create(_ context.Context, pref *model.Preference) error {
	if pref.PreferenceID == "" {
		m.seq++
		pref.PreferenceID = fmt.Sprintf("pref-%03d", m.seq)
	}
	m.prefs[pref.PreferenceID] = pref
	return nil
}

func (m *mockPreferenceRepo) GetByStudentAndRank(_ context.Context, studentID string, rank int) (*model.Preference, error) {
	for _, p := range m.prefs {
		if p.StudentID == studentID && p.Rank == rank {
			return p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockPreferenceRepo) ListByStudent(_ context.Context, studentID string) ([]model.Preference, error) {
	var result []model.Preference
	for _, p := range m.prefs {
		if p.StudentID == studentID {
			result = append(result, *p)
		}
	}
	return result, nil
}

func (m *mockPreferenceRepo) Update(_ context.Context, pref *model.Preference) error {
	m.prefs[pref.PreferenceID] = pref
	return nil
}

func (m *mockPreferenceRepo) DeleteByStudentAndRank(_ context.Context, studentID string, rank int) (int64, error) {
	for id, p := range m.prefs {
		if p.StudentID == studentID && p.Rank == rank {
			delete(m.prefs, id)
			return 1, nil
		}
	}
	return 0, nil
}

// ── Mock GraduationRepository ──

type mockGraduationRepo struct {
	reports map[string]*model.GraduationReport
	seq     int
}

func newMockGraduationRepo() *mockGraduationRepo {
	return &mockGraduationRepo{reports: make(map[string]*model.GraduationReport)}
}

func (m *mockGraduationRepo) Create(_ context.Context, report *model.GraduationReport) error {
	if report.ReportID == "" {
		m.seq++
		report.ReportID = fmt.Sprintf("report-%03d", m.seq)
	}
	m.reports[report.ReportID] = report
	return nil
}

func (m *mockGraduationRepo) GetByStudent(_ context.Context, studentID string) (*model.GraduationReport, error) {
	for _, r := range m.reports {
		if r.StudentID == studentID {
			return r, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockGraduationRepo) Update(_ context.Context, report *model.GraduationReport) error {
	m.reports[report.ReportID] = report
	return nil
}

func (m *mockGraduationRepo) DeleteByStudent(_ context.Context, studentID string) (int64, error) {
	for id, r := range m.reports {
		if r.StudentID == studentID {
			delete(m.reports, id)
			return 1, nil
		}
	}
	return 0, nil
}

func (m *mockGraduationRepo) CountByStatus(_ context.Context, status string) (int64, error) {
	var count int64
	for _, r := range m.reports {
		if r.Status == status {
			count++
		}
	}
	return count, nil
}

// ── Mock AuditRepository ──

type mockAuditRepo struct {
	entries []model.AuditLog
}

func newMockAuditRepo() *mockAuditRepo {
	return &mockAuditRepo{}
}

func (m *mockAuditRepo) Create(_ context.Context, entry *model.AuditLog) error {
	m.entries = append(m.entries, *entry)
	return nil
}

func (m *mockAuditRepo) List(_ context.Context, offset, limit int) ([]model.AuditLog, int64, error) {
	return m.entries, int64(len(m.entries)), nil
}

// ── shared fixture ──

type mockRepos struct {
	students   *mockStudentRepo
	staff      *mockStaffRepo
	scores     *mockScoreRepo
	disputes   *mockDisputeRepo
	campuses   *mockCampusRepo
	majors     *mockMajorRepo
	prefs      *mockPreferenceRepo
	reports    *mockGraduationRepo
	audits     *mockAuditRepo
	repository *repository.Repository
}

func newMockRepos() *mockRepos {
	m := &mockRepos{
		students: newMockStudentRepo(),
		staff:    newMockStaffRepo(),
		scores:   newMockScoreRepo(),
		disputes: newMockDisputeRepo(),
		campuses: newMockCampusRepo(),
		majors:   newMockMajorRepo(),
		prefs:    newMockPreferenceRepo(),
		reports:  newMockGraduationRepo(),
		audits:   newMockAuditRepo(),
	}
	m.students.scores = m.scores
	m.repository = &repository.Repository{
		Student:    m.students,
		Staff:      m.staff,
		Score:      m.scores,
		Dispute:    m.disputes,
		Campus:     m.campuses,
		Major:      m.majors,
		Preference: m.prefs,
		Graduation: m.reports,
		Audit:      m.audits,
	}
	return m
}
