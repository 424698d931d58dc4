package model

import "time"

// VerifyStatus is the admin-controlled trust flag on a tutor profile.
type VerifyStatus string

const (
	VerifyPending  VerifyStatus = "PENDING"
	VerifyApproved VerifyStatus = "APPROVED"
	VerifyRejected VerifyStatus = "REJECTED"
)

// Mode is how tuition is delivered. A HYBRID entity satisfies any mode filter.
type Mode string

const (
	ModeOnline  Mode = "ONLINE"
	ModeOffline Mode = "OFFLINE"
	ModeHybrid  Mode = "HYBRID"
)

// TutorProfile is owned by exactly one user of role TUTOR.
type TutorProfile struct {
	ID          string       `json:"id"`
	UserID      string       `json:"userId"`
	FullName    string       `json:"fullName"`
	University  string       `json:"university"`
	Department  string       `json:"department"`
	Session     string       `json:"session"`
	Subjects    []string     `json:"subjects"`
	Mode        Mode         `json:"mode"`
	HourlyRate  *float64     `json:"hourlyRate,omitempty"`
	Areas       []string     `json:"areas"`
	Bio         string       `json:"bio,omitempty"`
	AvatarURL   string       `json:"avatarUrl,omitempty"`
	Verify      VerifyStatus `json:"verify"`
	RatingAvg   *float64     `json:"ratingAvg,omitempty"`
	RatingCount int          `json:"ratingCount"`
	CreatedAt   time.Time    `json:"createdAt"`
}

// TutorProfilePatch carries the fields of an upsert. A nil field leaves the
// current value alone; a non-nil slice replaces the stored slice wholesale,
// never merges into it.
type TutorProfilePatch struct {
	FullName   *string  `json:"fullName,omitempty" validate:"omitempty,min=1"`
	University *string  `json:"university,omitempty"`
	Department *string  `json:"department,omitempty"`
	Session    *string  `json:"session,omitempty"`
	Subjects   []string `json:"subjects,omitempty"`
	Mode       *Mode    `json:"mode,omitempty" validate:"omitempty,oneof=ONLINE OFFLINE HYBRID"`
	HourlyRate *float64 `json:"hourlyRate,omitempty" validate:"omitempty,gte=0"`
	Areas      []string `json:"areas,omitempty"`
	Bio        *string  `json:"bio,omitempty"`
	AvatarURL  *string  `json:"avatarUrl,omitempty"`
}

// Apply merges the patch into the profile in place.
func (p TutorProfilePatch) Apply(t *TutorProfile) {
	if p.FullName != nil {
		t.FullName = *p.FullName
	}
	if p.University != nil {
		t.University = *p.University
	}
	if p.Department != nil {
		t.Department = *p.Department
	}
	if p.Session != nil {
		t.Session = *p.Session
	}
	if p.Subjects != nil {
		t.Subjects = p.Subjects
	}
	if p.Mode != nil {
		t.Mode = *p.Mode
	}
	if p.HourlyRate != nil {
		t.HourlyRate = p.HourlyRate
	}
	if p.Areas != nil {
		t.Areas = p.Areas
	}
	if p.Bio != nil {
		t.Bio = *p.Bio
	}
	if p.AvatarURL != nil {
		t.AvatarURL = *p.AvatarURL
	}
}
