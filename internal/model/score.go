package model

// Score maps to the scores table.
// One row per (student, semester, subject); subject matches
// case-sensitively.
type Score struct {
	ScoreID   string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"score_id"`
	StudentID string  `gorm:"type:uuid;not null;index:idx_scores_key,unique,priority:1" json:"student_id"`
	Semester  int     `gorm:"not null;index:idx_scores_key,unique,priority:2"           json:"semester"`
	Subject   string  `gorm:"type:varchar(100);not null;index:idx_scores_key,unique,priority:3" json:"subject"`
	Value     float64 `gorm:"type:numeric(5,2);not null"                     json:"value"`
	Verified  bool    `gorm:"not null;default:false"                         json:"verified"`
	BaseModel

	Student *Student `gorm:"foreignKey:StudentID;references:StudentID" json:"student,omitempty"`
}

// TableName sets the table name.
func (Score) TableName() string { return "scores" }
