package dto

// UpsertGraduationRequest records the student's admission outcome.
// Sent as multipart form; the acceptance evidence file is handled by
// the handler and is required when status is "accepted".
type UpsertGraduationRequest struct {
	Status        string `form:"status"         binding:"required,oneof=accepted not_accepted waiting"`
	CampusID      string `form:"campus_id"      binding:"required,uuid"`
	MajorID       string `form:"major_id"       binding:"required,uuid"`
	AdmissionPath string `form:"admission_path" binding:"required,max=50"`
}

// GraduationResponse is the graduation report view.
type GraduationResponse struct {
	ID            string          `json:"id"`
	Status        string          `json:"status"`
	AdmissionPath string          `json:"admission_path"`
	Evidence      *string         `json:"evidence,omitempty"`
	Campus        *CampusResponse `json:"campus,omitempty"`
	Major         *MajorResponse  `json:"major,omitempty"`
}
