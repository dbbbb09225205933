package dto

// CreateStudentRequest adds a single student manually.
type CreateStudentRequest struct {
	NISN        string  `json:"nisn"        binding:"required,len=10"`
	Name        string  `json:"name"        binding:"required,max=100"`
	BirthDate   string  `json:"birth_date"  binding:"required"` // YYYY-MM-DD
	Class       string  `json:"class"       binding:"omitempty,max=20"`
	Track       string  `json:"track"       binding:"omitempty,max=20"`
	Email       *string `json:"email"       binding:"omitempty,email"`
	Phone       *string `json:"phone"       binding:"omitempty,max=20"`
	Scholarship bool    `json:"scholarship"`
}

// UpdateStudentRequest updates the mutable student fields.
type UpdateStudentRequest struct {
	Name        *string `json:"name"        binding:"omitempty,max=100"`
	BirthDate   *string `json:"birth_date"  binding:"omitempty"`
	Class       *string `json:"class"       binding:"omitempty,max=20"`
	Track       *string `json:"track"       binding:"omitempty,max=20"`
	Email       *string `json:"email"       binding:"omitempty,email"`
	Phone       *string `json:"phone"       binding:"omitempty,max=20"`
	Scholarship *bool   `json:"scholarship"`
}

// StudentResponse is the staff-facing student view.
type StudentResponse struct {
	ID          string  `json:"id"`
	NISN        string  `json:"nisn"`
	Name        string  `json:"name"`
	BirthDate   string  `json:"birth_date"`
	Class       string  `json:"class"`
	Track       string  `json:"track"`
	Email       *string `json:"email,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	Scholarship bool    `json:"scholarship"`
	ScoreCount  int64   `json:"score_count"`
}
