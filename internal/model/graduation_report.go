package model

// Graduation report statuses.
const (
	GraduationStatusAccepted    = "accepted"
	GraduationStatusNotAccepted = "not_accepted"
	GraduationStatusWaiting     = "waiting"
)

// GraduationReport maps to the graduation_reports table, one per
// student, recording the admission outcome. Evidence is required when
// status is accepted.
type GraduationReport struct {
	ReportID      string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"report_id"`
	StudentID     string  `gorm:"type:uuid;not null;uniqueIndex"                 json:"student_id"`
	Status        string  `gorm:"type:varchar(20);not null"                      json:"status"`
	CampusID      string  `gorm:"type:uuid;not null"                             json:"campus_id"`
	MajorID       string  `gorm:"type:uuid;not null"                             json:"major_id"`
	AdmissionPath string  `gorm:"type:varchar(50);not null"                      json:"admission_path"`
	Evidence      *string `gorm:"type:varchar(500)"                              json:"evidence,omitempty"`
	BaseModel

	Campus *Campus `gorm:"foreignKey:CampusID;references:CampusID" json:"campus,omitempty"`
	Major  *Major  `gorm:"foreignKey:MajorID;references:MajorID"   json:"major,omitempty"`
}

// TableName sets the table name.
func (GraduationReport) TableName() string { return "graduation_reports" }
