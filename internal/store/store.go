// Package store persists the directory snapshot as one serialized document.
// Every backend has overwrite semantics only: no partial writes, no
// versioning, no migration between schema layouts.
package store

import (
	"context"

	"tutorhub/internal/model"
)

// Store loads and saves the whole snapshot.
type Store interface {
	// Load returns the last persisted snapshot, (nil, nil) when nothing has
	// been persisted yet, or an error when the stored document cannot be
	// decoded. Callers fall back to the seed fixture on either.
	Load(ctx context.Context) (*model.Snapshot, error)
	// Save serializes and persists the entire snapshot, replacing whatever
	// was stored before.
	Save(ctx context.Context, snap *model.Snapshot) error
}
