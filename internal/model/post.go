package model

import "time"

// PostStatus is the lifecycle state of a tuition post.
type PostStatus string

const (
	PostOpen     PostStatus = "OPEN"
	PostAssigned PostStatus = "ASSIGNED"
	PostClosed   PostStatus = "CLOSED"
)

// TuitionPost is a tuition request owned by exactly one parent profile.
// ParentName is copied from the profile at creation and not kept in sync.
// ApplicationsCount is incremented when an application is created and is
// never recomputed.
type TuitionPost struct {
	ID                string     `json:"id"`
	ParentID          string     `json:"parentId"`
	ParentName        string     `json:"parentName,omitempty"`
	Grade             string     `json:"grade"`
	Subjects          []string   `json:"subjects"`
	Mode              Mode       `json:"mode"`
	Area              string     `json:"area,omitempty"`
	Schedule          string     `json:"schedule,omitempty"`
	BudgetMin         *float64   `json:"budgetMin,omitempty"`
	BudgetMax         *float64   `json:"budgetMax,omitempty"`
	Note              string     `json:"note,omitempty"`
	Status            PostStatus `json:"status"`
	ApplicationsCount int        `json:"applicationsCount"`
	CreatedAt         time.Time  `json:"createdAt"`
}

// PostDraft is the caller-supplied part of a new tuition post.
type PostDraft struct {
	Grade     string   `json:"grade" validate:"required"`
	Subjects  []string `json:"subjects" validate:"required,min=1"`
	Mode      Mode     `json:"mode" validate:"required,oneof=ONLINE OFFLINE HYBRID"`
	Area      string   `json:"area,omitempty"`
	Schedule  string   `json:"schedule,omitempty"`
	BudgetMin *float64 `json:"budgetMin,omitempty" validate:"omitempty,gte=0"`
	BudgetMax *float64 `json:"budgetMax,omitempty" validate:"omitempty,gte=0"`
	Note      string   `json:"note,omitempty"`
}
