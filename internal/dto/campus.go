package dto

// CreateCampusRequest registers a campus in the catalog.
type CreateCampusRequest struct {
	Code              string  `json:"code"               binding:"required,max=20"`
	Name              string  `json:"name"               binding:"required,max=200"`
	Type              string  `json:"type"               binding:"required,max=50"`
	AdmissionCategory string  `json:"admission_category" binding:"required,max=50"`
	Accreditation     *string `json:"accreditation"      binding:"omitempty,max=10"`
	Province          string  `json:"province"           binding:"required,max=100"`
	City              string  `json:"city"               binding:"required,max=100"`
	Website           *string `json:"website"            binding:"omitempty,url"`
}

// UpdateCampusRequest updates the mutable campus fields.
type UpdateCampusRequest struct {
	Name              *string `json:"name"               binding:"omitempty,max=200"`
	Type              *string `json:"type"               binding:"omitempty,max=50"`
	AdmissionCategory *string `json:"admission_category" binding:"omitempty,max=50"`
	Accreditation     *string `json:"accreditation"      binding:"omitempty,max=10"`
	Province          *string `json:"province"           binding:"omitempty,max=100"`
	City              *string `json:"city"               binding:"omitempty,max=100"`
	Website           *string `json:"website"            binding:"omitempty,url"`
	IsActive          *bool   `json:"is_active"`
}

// CampusResponse is the campus catalog view.
type CampusResponse struct {
	ID                string  `json:"id"`
	Code              string  `json:"code"`
	Name              string  `json:"name"`
	Type              string  `json:"type"`
	AdmissionCategory string  `json:"admission_category"`
	Accreditation     *string `json:"accreditation,omitempty"`
	Province          string  `json:"province"`
	City              string  `json:"city"`
	Website           *string `json:"website,omitempty"`
	IsActive          bool    `json:"is_active"`
}

// CreateMajorRequest adds a study program to a campus.
type CreateMajorRequest struct {
	Name          string  `json:"name"          binding:"required,max=200"`
	Level         string  `json:"level"         binding:"required,max=10"`
	Faculty       *string `json:"faculty"       binding:"omitempty,max=200"`
	Accreditation *string `json:"accreditation" binding:"omitempty,max=10"`
}

// UpdateMajorRequest updates the mutable major fields.
type UpdateMajorRequest struct {
	Name          *string `json:"name"          binding:"omitempty,max=200"`
	Level         *string `json:"level"         binding:"omitempty,max=10"`
	Faculty       *string `json:"faculty"       binding:"omitempty,max=200"`
	Accreditation *string `json:"accreditation" binding:"omitempty,max=10"`
	IsActive      *bool   `json:"is_active"`
}

// MajorResponse is the major catalog view.
type MajorResponse struct {
	ID            string  `json:"id"`
	CampusID      string  `json:"campus_id"`
	Name          string  `json:"name"`
	Level         string  `json:"level"`
	Faculty       *string `json:"faculty,omitempty"`
	Accreditation *string `json:"accreditation,omitempty"`
	IsActive      bool    `json:"is_active"`
}
