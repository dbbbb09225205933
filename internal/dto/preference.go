package dto

// UpsertPreferenceRequest creates or replaces the choice at the given
// rank.
type UpsertPreferenceRequest struct {
	CampusID      string `json:"campus_id"      binding:"required,uuid"`
	MajorID       string `json:"major_id"       binding:"required,uuid"`
	Rank          int    `json:"rank"           binding:"required,min=1,max=5"`
	AdmissionPath string `json:"admission_path" binding:"required,max=50"`
}

// PreferenceResponse is one ranked choice with catalog detail.
type PreferenceResponse struct {
	ID            string          `json:"id"`
	Rank          int             `json:"rank"`
	AdmissionPath string          `json:"admission_path"`
	Campus        *CampusResponse `json:"campus,omitempty"`
	Major         *MajorResponse  `json:"major,omitempty"`
}
