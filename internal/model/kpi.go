package model

// KPIReport is the admin dashboard summary computed over one snapshot.
type KPIReport struct {
	TotalTutors       int            `json:"totalTutors"`
	ApprovedTutors    int            `json:"approvedTutors"`
	PendingTutors     int            `json:"pendingTutors"`
	RejectedTutors    int            `json:"rejectedTutors"`
	TotalPosts        int            `json:"totalPosts"`
	OpenPosts         int            `json:"openPosts"`
	TotalApplications int            `json:"totalApplications"`
	HireRate          float64        `json:"hireRate"`
	ModeDist          map[string]int `json:"modeDist"`
	SubjectDist       map[string]int `json:"subjectDist"`
}
