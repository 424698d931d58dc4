// Package client is a typed HTTP client for the directory API. It is the
// swap-in point for consumers that talk to a deployed backend instead of
// linking the service in-process.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"tutorhub/internal/model"
)

// APIError is the decoded error payload of a failed request.
type APIError struct {
	Status  int
	Message string `json:"error"`
	Code    string `json:"code"`
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("http %d: %s", e.Status, e.Message)
}

// AuthResponse is the token/user pair returned by register and login.
type AuthResponse struct {
	Token string     `json:"token"`
	User  model.User `json:"user"`
}

// Client talks to one directory API deployment. Not safe for concurrent
// token swaps; create one client per session.
type Client struct {
	http *resty.Client
}

// New creates a client for the given base URL (including the /api prefix).
func New(baseURL string) *Client {
	return &Client{
		http: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(30 * time.Second).
			SetHeader("Content-Type", "application/json").
			SetHeader("Accept", "application/json"),
	}
}

// SetToken attaches a session token to all subsequent requests.
func (c *Client) SetToken(token string) {
	c.http.SetAuthToken(token)
}

// Register creates an account and returns its session token.
func (c *Client) Register(ctx context.Context, email, password string, role model.Role) (*AuthResponse, error) {
	var out AuthResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]any{"email": email, "password": password, "role": role}).
		SetResult(&out).
		Post("/auth/register")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, decodeError(resp)
	}
	return &out, nil
}

// Login authenticates and returns a session token.
func (c *Client) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	var out AuthResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]any{"email": email, "password": password}).
		SetResult(&out).
		Post("/auth/login")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, decodeError(resp)
	}
	return &out, nil
}

// Logout revokes the current session token.
func (c *Client) Logout(ctx context.Context) error {
	resp, err := c.http.R().SetContext(ctx).Post("/auth/logout")
	if err != nil {
		return err
	}
	if resp.IsError() {
		return decodeError(resp)
	}
	return nil
}

// Me returns the session's user, or nil when the token maps to none.
func (c *Client) Me(ctx context.Context) (*model.User, error) {
	var out struct {
		User *model.User `json:"user"`
	}
	resp, err := c.http.R().SetContext(ctx).SetResult(&out).Get("/me")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, decodeError(resp)
	}
	return out.User, nil
}

// ListTutors returns one page of the public tutor directory.
func (c *Client) ListTutors(ctx context.Context, filters model.TutorFilters) (*model.Page[model.TutorProfile], error) {
	var out model.Page[model.TutorProfile]
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(tutorFilterParams(filters)).
		SetResult(&out).
		Get("/tutors")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, decodeError(resp)
	}
	return &out, nil
}

// GetTutor returns one tutor by id.
func (c *Client) GetTutor(ctx context.Context, id string) (*model.TutorProfile, error) {
	var out model.TutorProfile
	resp, err := c.http.R().SetContext(ctx).SetResult(&out).Get("/tutors/" + id)
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, decodeError(resp)
	}
	return &out, nil
}

// UpsertTutorProfile creates or patches the session's tutor profile.
func (c *Client) UpsertTutorProfile(ctx context.Context, patch model.TutorProfilePatch) (*model.TutorProfile, error) {
	var out model.TutorProfile
	resp, err := c.http.R().SetContext(ctx).SetBody(patch).SetResult(&out).Put("/tutors/me/profile")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, decodeError(resp)
	}
	return &out, nil
}

// MyTutorProfile returns the session's tutor profile, or nil when the
// user has not created one yet.
func (c *Client) MyTutorProfile(ctx context.Context) (*model.TutorProfile, error) {
	var out struct {
		Profile *model.TutorProfile `json:"profile"`
	}
	resp, err := c.http.R().SetContext(ctx).SetResult(&out).Get("/tutors/me/profile")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, decodeError(resp)
	}
	return out.Profile, nil
}

// UpsertParentProfile creates or patches the session's parent profile.
func (c *Client) UpsertParentProfile(ctx context.Context, patch model.ParentProfilePatch) (*model.ParentProfile, error) {
	var out model.ParentProfile
	resp, err := c.http.R().SetContext(ctx).SetBody(patch).SetResult(&out).Put("/parents/me/profile")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, decodeError(resp)
	}
	return &out, nil
}

// MyParentProfile returns the session's parent profile, or nil when the
// user has not created one yet.
func (c *Client) MyParentProfile(ctx context.Context) (*model.ParentProfile, error) {
	var out struct {
		Profile *model.ParentProfile `json:"profile"`
	}
	resp, err := c.http.R().SetContext(ctx).SetResult(&out).Get("/parents/me/profile")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, decodeError(resp)
	}
	return out.Profile, nil
}

// ListPosts returns one page of open tuition posts.
func (c *Client) ListPosts(ctx context.Context, filters model.PostFilters) (*model.Page[model.TuitionPost], error) {
	var out model.Page[model.TuitionPost]
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(postFilterParams(filters)).
		SetResult(&out).
		Get("/posts")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, decodeError(resp)
	}
	return &out, nil
}

// CreatePost creates a tuition post owned by the session's parent profile.
func (c *Client) CreatePost(ctx context.Context, draft model.PostDraft) (*model.TuitionPost, error) {
	var out model.TuitionPost
	resp, err := c.http.R().SetContext(ctx).SetBody(draft).SetResult(&out).Post("/posts")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, decodeError(resp)
	}
	return &out, nil
}

// MyPosts returns the session parent's own posts.
func (c *Client) MyPosts(ctx context.Context) ([]model.TuitionPost, error) {
	var out []model.TuitionPost
	resp, err := c.http.R().SetContext(ctx).SetResult(&out).Get("/posts/my")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, decodeError(resp)
	}
	return out, nil
}

// CreateApplication applies to a post as the session's tutor profile.
func (c *Client) CreateApplication(ctx context.Context, draft model.ApplicationDraft) (*model.TutorApplication, error) {
	var out model.TutorApplication
	resp, err := c.http.R().SetContext(ctx).SetBody(draft).SetResult(&out).Post("/applications")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, decodeError(resp)
	}
	return &out, nil
}

// MyApplications returns the session tutor's own applications.
func (c *Client) MyApplications(ctx context.Context) ([]model.TutorApplication, error) {
	var out []model.TutorApplication
	resp, err := c.http.R().SetContext(ctx).SetResult(&out).Get("/applications/my")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, decodeError(resp)
	}
	return out, nil
}

// AdminListTutors lists all tutors, optionally by verification state.
func (c *Client) AdminListTutors(ctx context.Context, verify model.VerifyStatus) ([]model.TutorProfile, error) {
	req := c.http.R().SetContext(ctx)
	if verify != "" {
		req.SetQueryParam("verify", string(verify))
	}
	var out []model.TutorProfile
	resp, err := req.SetResult(&out).Get("/admin/tutors")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, decodeError(resp)
	}
	return out, nil
}

// AdminUpdateVerify sets a tutor's verification status.
func (c *Client) AdminUpdateVerify(ctx context.Context, tutorID string, status model.VerifyStatus) (*model.TutorProfile, error) {
	var out model.TutorProfile
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]any{"status": status}).
		SetResult(&out).
		Post("/admin/tutors/" + tutorID + "/verify")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, decodeError(resp)
	}
	return &out, nil
}

// AdminListPosts lists all posts, optionally by status.
func (c *Client) AdminListPosts(ctx context.Context, status model.PostStatus) ([]model.TuitionPost, error) {
	req := c.http.R().SetContext(ctx)
	if status != "" {
		req.SetQueryParam("status", string(status))
	}
	var out []model.TuitionPost
	resp, err := req.SetResult(&out).Get("/admin/posts")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, decodeError(resp)
	}
	return out, nil
}

// AdminApprovePost reopens a post.
func (c *Client) AdminApprovePost(ctx context.Context, postID string) (*model.TuitionPost, error) {
	var out model.TuitionPost
	resp, err := c.http.R().SetContext(ctx).SetResult(&out).Post("/admin/posts/" + postID + "/approve")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, decodeError(resp)
	}
	return &out, nil
}

// AdminClosePost closes a post.
func (c *Client) AdminClosePost(ctx context.Context, postID string) (*model.TuitionPost, error) {
	var out model.TuitionPost
	resp, err := c.http.R().SetContext(ctx).SetResult(&out).Post("/admin/posts/" + postID + "/close")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, decodeError(resp)
	}
	return &out, nil
}

// AdminKPIs returns the dashboard summary.
func (c *Client) AdminKPIs(ctx context.Context) (*model.KPIReport, error) {
	var out model.KPIReport
	resp, err := c.http.R().SetContext(ctx).SetResult(&out).Get("/admin/kpis")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, decodeError(resp)
	}
	return &out, nil
}

func tutorFilterParams(f model.TutorFilters) map[string]string {
	params := map[string]string{}
	setIfSet(params, "university", f.University)
	setIfSet(params, "department", f.Department)
	setIfSet(params, "session", f.Session)
	setIfSet(params, "subject", f.Subject)
	setIfSet(params, "area", f.Area)
	setIfSet(params, "mode", string(f.Mode))
	setIfSet(params, "q", f.Q)
	if f.RateMin != nil {
		params["rateMin"] = strconv.FormatFloat(*f.RateMin, 'f', -1, 64)
	}
	if f.RateMax != nil {
		params["rateMax"] = strconv.FormatFloat(*f.RateMax, 'f', -1, 64)
	}
	if f.Page > 0 {
		params["page"] = strconv.Itoa(f.Page)
	}
	if f.Limit > 0 {
		params["limit"] = strconv.Itoa(f.Limit)
	}
	return params
}

func postFilterParams(f model.PostFilters) map[string]string {
	params := map[string]string{}
	setIfSet(params, "area", f.Area)
	setIfSet(params, "subject", f.Subject)
	setIfSet(params, "mode", string(f.Mode))
	setIfSet(params, "status", string(f.Status))
	if f.BudgetMin != nil {
		params["budgetMin"] = strconv.FormatFloat(*f.BudgetMin, 'f', -1, 64)
	}
	if f.BudgetMax != nil {
		params["budgetMax"] = strconv.FormatFloat(*f.BudgetMax, 'f', -1, 64)
	}
	if f.Page > 0 {
		params["page"] = strconv.Itoa(f.Page)
	}
	if f.Limit > 0 {
		params["limit"] = strconv.Itoa(f.Limit)
	}
	return params
}

func setIfSet(params map[string]string, key, value string) {
	if value != "" {
		params[key] = value
	}
}

func decodeError(resp *resty.Response) error {
	return decodeAPIError(resp.StatusCode(), resp.Body())
}

// decodeAPIError parses a failed response body. Handler errors arrive as
// the bare {error, code} payload; echo-generated errors (missing token,
// validation) arrive as a {"message": ...} envelope around a string.
func decodeAPIError(status int, body []byte) error {
	var apiErr APIError
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Code != "" {
		apiErr.Status = status
		return &apiErr
	}

	var env struct {
		Message json.RawMessage `json:"message"`
	}
	if err := json.Unmarshal(body, &env); err == nil && len(env.Message) > 0 {
		var nested APIError
		if err := json.Unmarshal(env.Message, &nested); err == nil && nested.Code != "" {
			nested.Status = status
			return &nested
		}
		var msg string
		if err := json.Unmarshal(env.Message, &msg); err == nil {
			return &APIError{Status: status, Message: msg}
		}
	}
	return &APIError{Status: status, Message: http.StatusText(status)}
}
