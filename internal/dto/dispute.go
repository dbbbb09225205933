package dto

// SubmitDisputeRequest contests a score value. Sent as multipart form;
// the evidence file is handled separately by the handler.
type SubmitDisputeRequest struct {
	ScoreID      string  `form:"score_id"      binding:"required,uuid"`
	ClaimedValue float64 `form:"claimed_value" binding:"required,gte=0,lte=100"`
}

// ResolveDisputeRequest approves or rejects a pending dispute.
// Note is required when rejecting.
type ResolveDisputeRequest struct {
	Decision string `json:"decision" binding:"required,oneof=approved rejected"`
	Note     string `json:"note"     binding:"omitempty,max=1000"`
}

// DisputeResponse is the dispute view for both roles.
type DisputeResponse struct {
	ID           string                  `json:"id"`
	ScoreID      string                  `json:"score_id"`
	Semester     int                     `json:"semester"`
	Subject      string                  `json:"subject"`
	OldValue     float64                 `json:"old_value"`
	ClaimedValue float64                 `json:"claimed_value"`
	Evidence     string                  `json:"evidence"`
	Status       string                  `json:"status"`
	ReviewNote   *string                 `json:"review_note,omitempty"`
	ReviewedBy   *string                 `json:"reviewed_by,omitempty"`
	ReviewedAt   *string                 `json:"reviewed_at,omitempty"`
	CreatedAt    string                  `json:"created_at"`
	Student      *DisputeStudentResponse `json:"student,omitempty"`
}

// DisputeStudentResponse is the embedded student summary shown to
// reviewers.
type DisputeStudentResponse struct {
	ID    string `json:"id"`
	NISN  string `json:"nisn"`
	Name  string `json:"name"`
	Class string `json:"class"`
}
