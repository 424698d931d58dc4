package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "tutorhub/internal/errors"
	"tutorhub/internal/model"
)

func TestAdminService_ListTutors(t *testing.T) {
	svc := NewAdminService(newTestDirectory(t), nil)

	all, err := svc.ListTutors(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, all, 36, "admin sees every state")

	pending, err := svc.ListTutors(context.Background(), model.VerifyPending)
	require.NoError(t, err)
	assert.Len(t, pending, 4)

	rejected, err := svc.ListTutors(context.Background(), model.VerifyRejected)
	require.NoError(t, err)
	assert.Len(t, rejected, 2)
}

func TestAdminService_UpdateVerify(t *testing.T) {
	tests := []struct {
		name    string
		tutorID string
		status  model.VerifyStatus
	}{
		{name: "approve pending", tutorID: "tutor-31", status: model.VerifyApproved},
		{name: "reject pending", tutorID: "tutor-32", status: model.VerifyRejected},
		{name: "re-approve rejected", tutorID: "tutor-35", status: model.VerifyApproved},
		{name: "demote approved", tutorID: "tutor-1", status: model.VerifyPending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := newTestDirectory(t)
			svc := NewAdminService(dir, nil)

			tutor, err := svc.UpdateVerify(context.Background(), tt.tutorID, tt.status)
			require.NoError(t, err)
			assert.Equal(t, tt.status, tutor.Verify)

			snap := snapshotView(t, dir)
			assert.Equal(t, tt.status, snap.TutorByID(tt.tutorID).Verify, "transition persisted")
		})
	}
}

func TestAdminService_UpdateVerify_AffectsPublicListing(t *testing.T) {
	dir := newTestDirectory(t)
	adminSvc := NewAdminService(dir, nil)
	tutorSvc := NewTutorService(dir, nil)

	_, err := adminSvc.UpdateVerify(context.Background(), "tutor-31", model.VerifyApproved)
	require.NoError(t, err)

	page, err := tutorSvc.List(context.Background(), model.TutorFilters{Limit: 100})
	require.NoError(t, err)
	assert.Equal(t, 31, page.Total, "approval adds the profile to the directory")
}

func TestAdminService_UpdateVerify_NotFound(t *testing.T) {
	svc := NewAdminService(newTestDirectory(t), nil)

	_, err := svc.UpdateVerify(context.Background(), "tutor-999", model.VerifyApproved)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestAdminService_ListUsers(t *testing.T) {
	svc := NewAdminService(newTestDirectory(t), nil)

	users, err := svc.ListUsers(context.Background())
	require.NoError(t, err)
	assert.Len(t, users, 3)
	for _, u := range users {
		assert.Empty(t, u.PasswordHash)
	}
}

func TestAdminService_SetUserStatus(t *testing.T) {
	dir := newTestDirectory(t)
	svc := NewAdminService(dir, nil)

	user, err := svc.SetUserStatus(context.Background(), "user-tutor-1", model.UserBanned)
	require.NoError(t, err)
	assert.Equal(t, model.UserBanned, user.Status)

	user, err = svc.SetUserStatus(context.Background(), "user-tutor-1", model.UserActive)
	require.NoError(t, err)
	assert.Equal(t, model.UserActive, user.Status)

	_, err = svc.SetUserStatus(context.Background(), "user-999", model.UserBanned)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestAdminService_ListPosts(t *testing.T) {
	svc := NewAdminService(newTestDirectory(t), nil)

	all, err := svc.ListPosts(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, all, 10, "moderation sees every status")

	assigned, err := svc.ListPosts(context.Background(), model.PostAssigned)
	require.NoError(t, err)
	require.Len(t, assigned, 2)
	for _, p := range assigned {
		assert.Equal(t, model.PostAssigned, p.Status)
	}

	closed, err := svc.ListPosts(context.Background(), model.PostClosed)
	require.NoError(t, err)
	assert.Len(t, closed, 1)

	open, err := svc.ListPosts(context.Background(), model.PostOpen)
	require.NoError(t, err)
	assert.Len(t, open, 7)
}

func TestAdminService_SetPostStatus(t *testing.T) {
	dir := newTestDirectory(t)
	svc := NewAdminService(dir, nil)
	postSvc := NewPostService(dir)

	post, err := svc.SetPostStatus(context.Background(), "post-1", model.PostClosed)
	require.NoError(t, err)
	assert.Equal(t, model.PostClosed, post.Status)

	page, err := postSvc.List(context.Background(), model.PostFilters{Limit: 100})
	require.NoError(t, err)
	assert.Equal(t, 6, page.Total, "closing removes the post from the feed")

	post, err = svc.SetPostStatus(context.Background(), "post-10", model.PostOpen)
	require.NoError(t, err)
	assert.Equal(t, model.PostOpen, post.Status)

	_, err = svc.SetPostStatus(context.Background(), "post-999", model.PostOpen)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestAdminService_ListPostApplications(t *testing.T) {
	svc := NewAdminService(newTestDirectory(t), nil)

	apps, err := svc.ListPostApplications(context.Background(), "post-1")
	require.NoError(t, err)
	require.Len(t, apps, 1)
	assert.Equal(t, "app-1", apps[0].ID)

	apps, err = svc.ListPostApplications(context.Background(), "post-10")
	require.NoError(t, err)
	assert.Empty(t, apps)
	assert.NotNil(t, apps)

	_, err = svc.ListPostApplications(context.Background(), "post-999")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestAdminService_SetApplicationStatus(t *testing.T) {
	dir := newTestDirectory(t)
	svc := NewAdminService(dir, nil)

	// The workflow allows any overwrite, including skipping shortlist.
	app, err := svc.SetApplicationStatus(context.Background(), "app-1", model.AppHired)
	require.NoError(t, err)
	assert.Equal(t, model.AppHired, app.Status)

	app, err = svc.SetApplicationStatus(context.Background(), "app-1", model.AppRejected)
	require.NoError(t, err)
	assert.Equal(t, model.AppRejected, app.Status)

	snap := snapshotView(t, dir)
	assert.Equal(t, model.AppRejected, snap.ApplicationByID("app-1").Status)

	_, err = svc.SetApplicationStatus(context.Background(), "app-999", model.AppShortlisted)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestAdminService_KPIs(t *testing.T) {
	svc := NewAdminService(newTestDirectory(t), nil)

	report, err := svc.KPIs(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 36, report.TotalTutors)
	assert.Equal(t, 30, report.ApprovedTutors)
	assert.Equal(t, 4, report.PendingTutors)
	assert.Equal(t, 2, report.RejectedTutors)
	assert.Equal(t, 10, report.TotalPosts)
	assert.Equal(t, 7, report.OpenPosts)
	assert.Equal(t, 8, report.TotalApplications)
	assert.InDelta(t, 1.0/8.0, report.HireRate, 1e-9)
	assert.Equal(t, 12, report.ModeDist[string(model.ModeOnline)])
	assert.NotEmpty(t, report.SubjectDist)
}
