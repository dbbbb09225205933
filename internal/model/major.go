package model

// Major maps to the majors table (study programs per campus).
type Major struct {
	MajorID       string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"major_id"`
	CampusID      string  `gorm:"type:uuid;not null;index"                       json:"campus_id"`
	Name          string  `gorm:"type:varchar(200);not null"                     json:"name"`
	Level         string  `gorm:"type:varchar(10);not null"                      json:"level"`
	Faculty       *string `gorm:"type:varchar(200)"                              json:"faculty,omitempty"`
	Accreditation *string `gorm:"type:varchar(10)"                               json:"accreditation,omitempty"`
	IsActive      bool    `gorm:"not null;default:true"                          json:"is_active"`
	BaseModel

	Campus *Campus `gorm:"foreignKey:CampusID;references:CampusID" json:"campus,omitempty"`
}

// TableName sets the table name.
func (Major) TableName() string { return "majors" }
