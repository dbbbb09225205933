package repository

import (
	"context"

	"gorm.io/gorm"
)

// Repository aggregates all data-access interfaces.
type Repository struct {
	db *gorm.DB

	Student    StudentRepository
	Staff      StaffRepository
	Score      ScoreRepository
	Dispute    DisputeRepository
	Campus     CampusRepository
	Major      MajorRepository
	Preference PreferenceRepository
	Graduation GraduationRepository
	Audit      AuditRepository
}

// NewRepository wires the GORM implementations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		db:         db,
		Student:    NewStudentRepo(db),
		Staff:      NewStaffRepo(db),
		Score:      NewScoreRepo(db),
		Dispute:    NewDisputeRepo(db),
		Campus:     NewCampusRepo(db),
		Major:      NewMajorRepo(db),
		Preference: NewPreferenceRepo(db),
		Graduation: NewGraduationRepo(db),
		Audit:      NewAuditRepo(db),
	}
}

// Transaction runs fn inside a database transaction and rolls back on
// error. When no database handle is present, fn runs against the same
// repository.
func (r *Repository) Transaction(ctx context.Context, fn func(txRepo *Repository) error) error {
	if r.db == nil {
		return fn(r)
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewRepository(tx))
	})
}
