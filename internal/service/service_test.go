package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"tutorhub/internal/directory"
	"tutorhub/internal/model"
	"tutorhub/internal/store"
)

// newTestDirectory opens a seeded directory backed by a file store in a
// temp dir. Latency is zero so tests run at full speed.
func newTestDirectory(t *testing.T) *directory.Directory {
	t.Helper()
	st := store.NewFileStore(filepath.Join(t.TempDir(), "snapshot.json"))
	dir, err := directory.Open(context.Background(), st)
	require.NoError(t, err)
	return dir
}

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

func modePtr(m model.Mode) *model.Mode { return &m }

// snapshotView reads the current snapshot for assertions.
func snapshotView(t *testing.T, dir *directory.Directory) model.Snapshot {
	t.Helper()
	var snap model.Snapshot
	err := dir.View(context.Background(), func(s *model.Snapshot) error {
		snap = *s
		return nil
	})
	require.NoError(t, err)
	return snap
}

// MockTokenStore is a mock implementation of TokenStoreInterface.
type MockTokenStore struct {
	mock.Mock
}

func (m *MockTokenStore) BlacklistAccessToken(ctx context.Context, tokenID string, ttl time.Duration) error {
	args := m.Called(ctx, tokenID, ttl)
	return args.Error(0)
}

func (m *MockTokenStore) IsAccessTokenBlacklisted(ctx context.Context, tokenID string) (bool, error) {
	args := m.Called(ctx, tokenID)
	return args.Bool(0), args.Error(1)
}
