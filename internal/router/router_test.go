package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tutorhub/internal/auth"
	"tutorhub/internal/config"
	"tutorhub/internal/directory"
	"tutorhub/internal/handler"
	"tutorhub/internal/model"
	"tutorhub/internal/service"
	"tutorhub/internal/store"
	"tutorhub/pkg/client"
)

// newTestServer boots the full HTTP stack against a seeded file-backed
// directory and returns a client pointed at it.
func newTestServer(t *testing.T) *client.Client {
	t.Helper()
	return client.New(newTestServerURL(t) + "/api")
}

// newTestServerURL boots the stack and returns the server's base URL for
// tests that need to shape requests by hand.
func newTestServerURL(t *testing.T) string {
	t.Helper()

	cfg := &config.Config{JWTSecret: "test-secret"}

	st := store.NewFileStore(filepath.Join(t.TempDir(), "snapshot.json"))
	dir, err := directory.Open(context.Background(), st)
	require.NoError(t, err)

	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(nil)

	authService := service.NewAuthService(dir, jwtService, tokenStore)
	tutorService := service.NewTutorService(dir, nil)
	parentService := service.NewParentService(dir)
	postService := service.NewPostService(dir)
	applicationService := service.NewApplicationService(dir)
	adminService := service.NewAdminService(dir, nil)

	e := echo.New()
	e.HideBanner = true
	Register(e, cfg, tokenStore,
		handler.NewAuthHandler(authService),
		handler.NewTutorHandler(tutorService),
		handler.NewParentHandler(parentService),
		handler.NewPostHandler(postService),
		handler.NewApplicationHandler(applicationService),
		handler.NewAdminHandler(adminService),
	)

	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)

	return srv.URL
}

func loginAs(t *testing.T, api *client.Client, email string) *model.User {
	t.Helper()
	resp, err := api.Login(context.Background(), email, "anything")
	require.NoError(t, err)
	api.SetToken(resp.Token)
	return &resp.User
}

func apiError(t *testing.T, err error) *client.APIError {
	t.Helper()
	require.Error(t, err)
	apiErr, ok := err.(*client.APIError)
	require.True(t, ok, "expected an API error, got %v", err)
	return apiErr
}

func TestAPI_PublicDirectory(t *testing.T) {
	api := newTestServer(t)
	ctx := context.Background()

	page, err := api.ListTutors(ctx, model.TutorFilters{})
	require.NoError(t, err)
	assert.Equal(t, 30, page.Total)
	assert.Equal(t, 3, page.Pages)
	assert.Len(t, page.Items, 12)

	filtered, err := api.ListTutors(ctx, model.TutorFilters{University: "RUET", Mode: model.ModeOnline})
	require.NoError(t, err)
	for _, tutor := range filtered.Items {
		assert.Equal(t, "RUET", tutor.University)
		assert.Contains(t, []model.Mode{model.ModeOnline, model.ModeHybrid}, tutor.Mode)
	}

	tutor, err := api.GetTutor(ctx, "tutor-1")
	require.NoError(t, err)
	assert.Equal(t, "Rafiq Ahmed", tutor.FullName)

	_, err = api.GetTutor(ctx, "tutor-999")
	apiErr := apiError(t, err)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "NOT_FOUND", apiErr.Code)

	posts, err := api.ListPosts(ctx, model.PostFilters{})
	require.NoError(t, err)
	assert.Equal(t, 7, posts.Total)
}

func TestAPI_ParentJourney(t *testing.T) {
	api := newTestServer(t)
	ctx := context.Background()

	resp, err := api.Register(ctx, "amina@example.com", "password123", model.RoleParent)
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	assert.Equal(t, model.RoleParent, resp.User.Role)
	api.SetToken(resp.Token)

	me, err := api.Me(ctx)
	require.NoError(t, err)
	require.NotNil(t, me)
	assert.Equal(t, "amina@example.com", me.Email)

	// Posting before creating a profile is refused and writes nothing.
	draft := model.PostDraft{Grade: "SSC", Subjects: []string{"Math"}, Mode: model.ModeOnline}
	_, err = api.CreatePost(ctx, draft)
	apiErr := apiError(t, err)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "PROFILE_REQUIRED", apiErr.Code)

	profile, err := api.UpsertParentProfile(ctx, model.ParentProfilePatch{
		FullName: ptr("Amina Begum"),
		Phone:    ptr("+8801811111111"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Amina Begum", profile.FullName)

	post, err := api.CreatePost(ctx, draft)
	require.NoError(t, err)
	assert.Equal(t, "Amina Begum", post.ParentName)
	assert.Equal(t, model.PostOpen, post.Status)

	feed, err := api.ListPosts(ctx, model.PostFilters{})
	require.NoError(t, err)
	require.NotEmpty(t, feed.Items)
	assert.Equal(t, post.ID, feed.Items[0].ID, "newest post leads the feed")

	mine, err := api.MyPosts(ctx)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, post.ID, mine[0].ID)
}

func TestAPI_TutorJourney(t *testing.T) {
	api := newTestServer(t)
	ctx := context.Background()

	loginAs(t, api, "tutor@test.com")

	apps, err := api.MyApplications(ctx)
	require.NoError(t, err)
	require.Len(t, apps, 1)

	before, err := api.GetTutor(ctx, "tutor-1")
	require.NoError(t, err)
	assert.Equal(t, "tutor-1", before.ID)

	app, err := api.CreateApplication(ctx, model.ApplicationDraft{
		PostID:    "post-2",
		CoverNote: "Weekday evenings work for me.",
	})
	require.NoError(t, err)
	assert.Equal(t, model.AppApplied, app.Status)
	assert.Equal(t, "tutor-1", app.TutorID)

	apps, err = api.MyApplications(ctx)
	require.NoError(t, err)
	assert.Len(t, apps, 2)
}

func TestAPI_RegisterDuplicateEmail(t *testing.T) {
	api := newTestServer(t)

	_, err := api.Register(context.Background(), "parent@test.com", "password123", model.RoleParent)
	apiErr := apiError(t, err)
	assert.Equal(t, http.StatusConflict, apiErr.Status)
	assert.Equal(t, "DUPLICATE_EMAIL", apiErr.Code)
}

func TestAPI_LoginUnknownEmail(t *testing.T) {
	api := newTestServer(t)

	_, err := api.Login(context.Background(), "nobody@test.com", "anything")
	apiErr := apiError(t, err)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, "INVALID_CREDENTIALS", apiErr.Code)
}

func TestAPI_BearerSchemeStripped(t *testing.T) {
	baseURL := newTestServerURL(t)

	api := client.New(baseURL + "/api")
	resp, err := api.Login(context.Background(), "parent@test.com", "anything")
	require.NoError(t, err)

	// The middleware must strip the "Bearer " scheme before parsing,
	// otherwise every standards-compliant client is rejected.
	req, err := http.NewRequest(http.MethodGet, baseURL+"/api/me", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+resp.Token)

	res, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)

	// A bare token without the scheme is not a valid credential.
	req, err = http.NewRequest(http.MethodGet, baseURL+"/api/me", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", resp.Token)

	res, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer res.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestAPI_SecuredRoutesNeedToken(t *testing.T) {
	api := newTestServer(t)

	_, err := api.Me(context.Background())
	assert.Error(t, err)

	_, err = api.MyPosts(context.Background())
	assert.Error(t, err)
}

func TestAPI_AdminFlow(t *testing.T) {
	api := newTestServer(t)
	ctx := context.Background()

	loginAs(t, api, "admin@test.com")

	all, err := api.AdminListTutors(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 36)

	pending, err := api.AdminListTutors(ctx, model.VerifyPending)
	require.NoError(t, err)
	assert.Len(t, pending, 4)

	tutor, err := api.AdminUpdateVerify(ctx, "tutor-31", model.VerifyApproved)
	require.NoError(t, err)
	assert.Equal(t, model.VerifyApproved, tutor.Verify)

	page, err := api.ListTutors(ctx, model.TutorFilters{})
	require.NoError(t, err)
	assert.Equal(t, 31, page.Total, "approval is visible to the public directory")

	report, err := api.AdminKPIs(ctx)
	require.NoError(t, err)
	assert.Equal(t, 36, report.TotalTutors)
	assert.Equal(t, 31, report.ApprovedTutors)

	// The moderation listing reaches posts the public feed hides.
	closed, err := api.AdminListPosts(ctx, model.PostClosed)
	require.NoError(t, err)
	require.Len(t, closed, 1)

	reopened, err := api.AdminApprovePost(ctx, closed[0].ID)
	require.NoError(t, err)
	assert.Equal(t, model.PostOpen, reopened.Status)

	feed, err := api.ListPosts(ctx, model.PostFilters{Limit: 100})
	require.NoError(t, err)
	assert.Equal(t, 8, feed.Total, "reopened post returns to the feed")
}

func TestAPI_AdminRoutesNeedAdminRole(t *testing.T) {
	api := newTestServer(t)

	loginAs(t, api, "tutor@test.com")

	_, err := api.AdminKPIs(context.Background())
	apiErr := apiError(t, err)
	assert.Equal(t, http.StatusForbidden, apiErr.Status)
	assert.Equal(t, "FORBIDDEN", apiErr.Code)
}

func TestAPI_LogoutRevokesNothingWithoutRedis(t *testing.T) {
	api := newTestServer(t)
	ctx := context.Background()

	loginAs(t, api, "parent@test.com")
	require.NoError(t, api.Logout(ctx))

	// Without a redis-backed blacklist the token keeps working, which is
	// the documented fail-safe degradation.
	me, err := api.Me(ctx)
	require.NoError(t, err)
	assert.NotNil(t, me)
}

func ptr[T any](v T) *T { return &v }
