package model

import "time"

// AppStatus is the lifecycle state of a tutor application.
type AppStatus string

const (
	AppApplied     AppStatus = "APPLIED"
	AppShortlisted AppStatus = "SHORTLISTED"
	AppHired       AppStatus = "HIRED"
	AppRejected    AppStatus = "REJECTED"
)

// TutorApplication links one tutor profile to one tuition post. TutorName
// and PostGrade are display copies taken at creation time.
type TutorApplication struct {
	ID           string    `json:"id"`
	TutorID      string    `json:"tutorId"`
	TutorName    string    `json:"tutorName,omitempty"`
	PostID       string    `json:"postId"`
	PostGrade    string    `json:"postGrade,omitempty"`
	ExpectedRate *float64  `json:"expectedRate,omitempty"`
	CoverNote    string    `json:"coverNote,omitempty"`
	Status       AppStatus `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ApplicationDraft is the caller-supplied part of a new application.
type ApplicationDraft struct {
	PostID       string   `json:"postId" validate:"required"`
	ExpectedRate *float64 `json:"expectedRate,omitempty" validate:"omitempty,gte=0"`
	CoverNote    string   `json:"coverNote,omitempty"`
}
