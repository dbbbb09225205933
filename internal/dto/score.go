package dto

// ScoreResponse is a single score record.
type ScoreResponse struct {
	ID       string  `json:"id"`
	Semester int     `json:"semester"`
	Subject  string  `json:"subject"`
	Value    float64 `json:"value"`
	Verified bool    `json:"verified"`
}
