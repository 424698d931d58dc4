package service

import "github.com/google/uuid"

// newID returns the random part of an entity key. Seed entities keep their
// fixed numeric suffixes; everything created at runtime gets a uuid.
func newID() string {
	return uuid.NewString()
}
