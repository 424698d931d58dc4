package model

// Snapshot is the complete set of collections the directory serves. It is
// persisted as one JSON document and overwritten wholesale on every
// mutation; the top-level keys are the external storage layout.
type Snapshot struct {
	Users        []User             `json:"users"`
	Tutors       []TutorProfile     `json:"tutors"`
	Parents      []ParentProfile    `json:"parents"`
	Posts        []TuitionPost      `json:"posts"`
	Applications []TutorApplication `json:"applications"`
}

// UserByID returns a pointer into the snapshot, or nil.
func (s *Snapshot) UserByID(id string) *User {
	for i := range s.Users {
		if s.Users[i].ID == id {
			return &s.Users[i]
		}
	}
	return nil
}

// UserByEmail returns a pointer into the snapshot, or nil.
func (s *Snapshot) UserByEmail(email string) *User {
	for i := range s.Users {
		if s.Users[i].Email == email {
			return &s.Users[i]
		}
	}
	return nil
}

// TutorByID returns a pointer into the snapshot, or nil.
func (s *Snapshot) TutorByID(id string) *TutorProfile {
	for i := range s.Tutors {
		if s.Tutors[i].ID == id {
			return &s.Tutors[i]
		}
	}
	return nil
}

// TutorByUserID returns the profile owned by the given user, or nil.
// Ownership is one profile per user, enforced by this lookup at upsert time.
func (s *Snapshot) TutorByUserID(userID string) *TutorProfile {
	for i := range s.Tutors {
		if s.Tutors[i].UserID == userID {
			return &s.Tutors[i]
		}
	}
	return nil
}

// ParentByUserID returns the profile owned by the given user, or nil.
func (s *Snapshot) ParentByUserID(userID string) *ParentProfile {
	for i := range s.Parents {
		if s.Parents[i].UserID == userID {
			return &s.Parents[i]
		}
	}
	return nil
}

// PostByID returns a pointer into the snapshot, or nil.
func (s *Snapshot) PostByID(id string) *TuitionPost {
	for i := range s.Posts {
		if s.Posts[i].ID == id {
			return &s.Posts[i]
		}
	}
	return nil
}

// ApplicationByID returns a pointer into the snapshot, or nil.
func (s *Snapshot) ApplicationByID(id string) *TutorApplication {
	for i := range s.Applications {
		if s.Applications[i].ID == id {
			return &s.Applications[i]
		}
	}
	return nil
}
