package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tutorhub/internal/model"
)

func TestFileStore_LoadMissing(t *testing.T) {
	st := NewFileStore(filepath.Join(t.TempDir(), "snapshot.json"))

	snap, err := st.Load(context.Background())
	require.NoError(t, err, "a missing file is an empty store, not a failure")
	assert.Nil(t, snap)
}

func TestFileStore_LoadCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	st := NewFileStore(path)
	_, err := st.Load(context.Background())
	assert.Error(t, err)
}

func TestFileStore_SaveLoadRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "snapshot.json")
	st := NewFileStore(path)

	saved := &model.Snapshot{
		Users: []model.User{
			{ID: "user-1", Email: "a@b.com", Role: model.RoleParent, Status: model.UserActive},
		},
		Posts: []model.TuitionPost{
			{ID: "post-1", ParentID: "parent-1", Grade: "HSC", Status: model.PostOpen},
		},
	}
	require.NoError(t, st.Save(context.Background(), saved))

	loaded, err := st.Load(context.Background())
	require.NoError(t, err)
	require.NotNil(t, loaded)
	require.Len(t, loaded.Users, 1)
	assert.Equal(t, "a@b.com", loaded.Users[0].Email)
	require.Len(t, loaded.Posts, 1)
	assert.Equal(t, model.PostOpen, loaded.Posts[0].Status)
}

func TestFileStore_SaveOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.json")
	st := NewFileStore(path)

	require.NoError(t, st.Save(context.Background(), &model.Snapshot{
		Users: []model.User{{ID: "user-1"}, {ID: "user-2"}},
	}))
	require.NoError(t, st.Save(context.Background(), &model.Snapshot{
		Users: []model.User{{ID: "user-3"}},
	}))

	loaded, err := st.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, loaded.Users, 1, "save replaces the whole document")
	assert.Equal(t, "user-3", loaded.Users[0].ID)

	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err), "temp file cleaned up by the rename")
}
