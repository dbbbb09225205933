package model

// StaffUser maps to the staff_users table.
// Role is "staff" (counselor) or "admin".
type StaffUser struct {
	StaffID      string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"staff_id"`
	Username     string  `gorm:"type:varchar(50);not null;uniqueIndex"          json:"username"`
	Name         string  `gorm:"type:varchar(100);not null"                     json:"name"`
	Email        *string `gorm:"type:varchar(255)"                              json:"email,omitempty"`
	PasswordHash string  `gorm:"type:varchar(255);not null"                     json:"-"`
	Role         string  `gorm:"type:varchar(20);not null;default:'staff'"      json:"role"`
	BaseModel
}

// TableName sets the table name.
func (StaffUser) TableName() string { return "staff_users" }
