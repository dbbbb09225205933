package dto

// ImportResultResponse summarizes a bulk import batch.
// Skipped counts rows left unwritten at the write stage: unknown
// natural keys for score imports, duplicates for student imports.
type ImportResultResponse struct {
	TotalRows int      `json:"total_rows"`
	Success   int      `json:"success"`
	Skipped   int      `json:"skipped"`
	Errors    []string `json:"errors,omitempty"`
}
