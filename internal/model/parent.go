package model

import "time"

// ParentProfile is owned by exactly one user of role PARENT.
type ParentProfile struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	FullName  string    `json:"fullName"`
	Phone     string    `json:"phone"`
	Area      string    `json:"area,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// ParentProfilePatch carries the fields of a parent profile upsert.
type ParentProfilePatch struct {
	FullName *string `json:"fullName,omitempty" validate:"omitempty,min=1"`
	Phone    *string `json:"phone,omitempty"`
	Area     *string `json:"area,omitempty"`
}

// Apply merges the patch into the profile in place.
func (p ParentProfilePatch) Apply(pr *ParentProfile) {
	if p.FullName != nil {
		pr.FullName = *p.FullName
	}
	if p.Phone != nil {
		pr.Phone = *p.Phone
	}
	if p.Area != nil {
		pr.Area = *p.Area
	}
}
