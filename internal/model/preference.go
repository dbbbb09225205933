package model

// Preference maps to the preferences table: a student's ranked
// campus/major admission choice. Unique per (student, rank).
type Preference struct {
	PreferenceID  string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"preference_id"`
	StudentID     string `gorm:"type:uuid;not null;index:idx_pref_rank,unique,priority:1" json:"student_id"`
	CampusID      string `gorm:"type:uuid;not null"                             json:"campus_id"`
	MajorID       string `gorm:"type:uuid;not null"                             json:"major_id"`
	Rank          int    `gorm:"not null;index:idx_pref_rank,unique,priority:2" json:"rank"`
	AdmissionPath string `gorm:"type:varchar(50);not null"                      json:"admission_path"`
	BaseModel

	Campus *Campus `gorm:"foreignKey:CampusID;references:CampusID" json:"campus,omitempty"`
	Major  *Major  `gorm:"foreignKey:MajorID;references:MajorID"   json:"major,omitempty"`
}

// TableName sets the table name.
func (Preference) TableName() string { return "preferences" }
