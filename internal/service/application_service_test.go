package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "tutorhub/internal/errors"
	"tutorhub/internal/model"
)

func TestApplicationService_Create(t *testing.T) {
	dir := newTestDirectory(t)
	svc := NewApplicationService(dir)

	seeded := snapshotView(t, dir)
	before := seeded.PostByID("post-10").ApplicationsCount

	app, err := svc.Create(context.Background(), "user-tutor-1", model.ApplicationDraft{
		PostID:       "post-10",
		ExpectedRate: floatPtr(550),
		CoverNote:    "Available on weekends.",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, app.ID)
	assert.Equal(t, "tutor-1", app.TutorID)
	assert.Equal(t, "Rafiq Ahmed", app.TutorName, "tutor name copied at creation")
	assert.Equal(t, "post-10", app.PostID)
	assert.Equal(t, model.AppApplied, app.Status)

	snap := snapshotView(t, dir)
	assert.Equal(t, before+1, snap.PostByID("post-10").ApplicationsCount)
	assert.Len(t, snap.Applications, 9)
}

func TestApplicationService_Create_PostNotFound(t *testing.T) {
	dir := newTestDirectory(t)
	svc := NewApplicationService(dir)

	_, err := svc.Create(context.Background(), "user-tutor-1", model.ApplicationDraft{PostID: "post-999"})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	snap := snapshotView(t, dir)
	assert.Len(t, snap.Applications, 8, "a rejected create writes nothing")
}

func TestApplicationService_Create_RequiresTutorProfile(t *testing.T) {
	dir := newTestDirectory(t)
	svc := NewApplicationService(dir)

	// user-parent-1 has no tutor profile.
	_, err := svc.Create(context.Background(), "user-parent-1", model.ApplicationDraft{PostID: "post-1"})
	assert.ErrorIs(t, err, apperrors.ErrProfileRequired)

	snap := snapshotView(t, dir)
	assert.Len(t, snap.Applications, 8)
	assert.Equal(t, 1, snap.PostByID("post-1").ApplicationsCount, "counter untouched on failure")
}

func TestApplicationService_Create_RequiresSession(t *testing.T) {
	svc := NewApplicationService(newTestDirectory(t))

	_, err := svc.Create(context.Background(), "", model.ApplicationDraft{PostID: "post-1"})
	assert.ErrorIs(t, err, apperrors.ErrUnauthenticated)
}

func TestApplicationService_MyApplications(t *testing.T) {
	svc := NewApplicationService(newTestDirectory(t))

	apps, err := svc.MyApplications(context.Background(), "user-tutor-1")
	require.NoError(t, err)
	require.Len(t, apps, 1)
	assert.Equal(t, "app-1", apps[0].ID)

	apps, err = svc.MyApplications(context.Background(), "user-parent-1")
	require.NoError(t, err)
	assert.Empty(t, apps)
	assert.NotNil(t, apps, "no profile means an empty list, not an error")
}
