package model

// Campus maps to the campuses table.
type Campus struct {
	CampusID          string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"campus_id"`
	Code              string  `gorm:"type:varchar(20);not null;uniqueIndex"          json:"code"`
	Name              string  `gorm:"type:varchar(200);not null"                     json:"name"`
	Type              string  `gorm:"type:varchar(50);not null"                      json:"type"`
	AdmissionCategory string  `gorm:"type:varchar(50);not null"                      json:"admission_category"`
	Accreditation     *string `gorm:"type:varchar(10)"                               json:"accreditation,omitempty"`
	Province          string  `gorm:"type:varchar(100);not null"                     json:"province"`
	City              string  `gorm:"type:varchar(100);not null"                     json:"city"`
	Website           *string `gorm:"type:varchar(255)"                              json:"website,omitempty"`
	IsActive          bool    `gorm:"not null;default:true"                          json:"is_active"`
	BaseModel

	Majors []Major `gorm:"foreignKey:CampusID;references:CampusID" json:"majors,omitempty"`
}

// TableName sets the table name.
func (Campus) TableName() string { return "campuses" }
