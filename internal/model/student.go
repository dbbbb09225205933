package model

import "time"

// Student maps to the students table. NISN is the national student
// number used as the natural key during bulk import.
type Student struct {
	StudentID    string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"student_id"`
	NISN         string    `gorm:"type:varchar(10);not null;uniqueIndex"          json:"nisn"`
	Name         string    `gorm:"type:varchar(100);not null"                     json:"name"`
	BirthDate    time.Time `gorm:"type:date;not null"                             json:"birth_date"`
	Class        string    `gorm:"type:varchar(20);not null;default:'12'"         json:"class"`
	Track        string    `gorm:"type:varchar(20);not null;default:'IPA'"        json:"track"`
	Email        *string   `gorm:"type:varchar(255)"                              json:"email,omitempty"`
	Phone        *string   `gorm:"type:varchar(20)"                               json:"phone,omitempty"`
	Scholarship  bool      `gorm:"not null;default:false"                         json:"scholarship"`
	PasswordHash string    `gorm:"type:varchar(255);not null"                     json:"-"`
	BaseModel

	Scores []Score `gorm:"foreignKey:StudentID;references:StudentID" json:"scores,omitempty"`
}

// TableName sets the table name.
func (Student) TableName() string { return "students" }
