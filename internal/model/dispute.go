package model

import "time"

// Dispute statuses. Transitions are pending→approved or
// pending→rejected only; both are terminal.
const (
	DisputeStatusPending  = "pending"
	DisputeStatusApproved = "approved"
	DisputeStatusRejected = "rejected"
)

// Dispute maps to the disputes table.
// ScoreID references the disputed score; the (StudentID, Semester,
// Subject) triple is a denormalized fallback in case the score row is
// recreated between submission and review.
type Dispute struct {
	DisputeID    string     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"dispute_id"`
	ScoreID      string     `gorm:"type:uuid;not null"                             json:"score_id"`
	StudentID    string     `gorm:"type:uuid;not null;index"                       json:"student_id"`
	Semester     int        `gorm:"not null"                                       json:"semester"`
	Subject      string     `gorm:"type:varchar(100);not null"                     json:"subject"`
	OldValue     float64    `gorm:"type:numeric(5,2);not null"                     json:"old_value"`
	ClaimedValue float64    `gorm:"type:numeric(5,2);not null"                     json:"claimed_value"`
	Evidence     string     `gorm:"type:varchar(500);not null"                     json:"evidence"`
	Status       string     `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	ReviewNote   *string    `gorm:"type:text"                                      json:"review_note,omitempty"`
	ReviewedBy   *string    `gorm:"type:uuid"                                      json:"reviewed_by,omitempty"`
	ReviewedAt   *time.Time `json:"reviewed_at,omitempty"`
	BaseModel

	Student *Student `gorm:"foreignKey:StudentID;references:StudentID" json:"student,omitempty"`
}

// TableName sets the table name.
func (Dispute) TableName() string { return "disputes" }
