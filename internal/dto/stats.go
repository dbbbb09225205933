package dto

// StatsResponse is the staff dashboard summary.
type StatsResponse struct {
	TotalStudents        int64 `json:"total_students"`
	StudentsWithVerified int64 `json:"students_with_verified"`
	PendingDisputes      int64 `json:"pending_disputes"`
	AcceptedGraduations  int64 `json:"accepted_graduations"`
}
