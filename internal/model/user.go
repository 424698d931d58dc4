package model

// Role determines which profile kind a user may own and which routes it may call.
type Role string

const (
	RoleParent Role = "PARENT"
	RoleTutor  Role = "TUTOR"
	RoleAdmin  Role = "ADMIN"
)

// UserStatus is the admin-controlled account flag.
type UserStatus string

const (
	UserActive UserStatus = "ACTIVE"
	UserBanned UserStatus = "BANNED"
)

// User represents an identity record in the directory.
type User struct {
	ID           string     `json:"id"`
	Email        string     `json:"email"`
	Name         string     `json:"name"`
	Role         Role       `json:"role"`
	Status       UserStatus `json:"status"`
	PasswordHash string     `json:"passwordHash,omitempty"`
}

// Redacted returns a copy safe to serialize in API responses.
func (u User) Redacted() User {
	u.PasswordHash = ""
	return u
}

// Banned reports whether the account has been banned by an admin.
func (u User) Banned() bool {
	return u.Status == UserBanned
}
