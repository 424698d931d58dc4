package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"tutorhub/internal/model"
	"tutorhub/internal/service"
)

// AdminHandler handles the privileged moderation endpoints.
type AdminHandler struct {
	adminService service.AdminService
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(adminService service.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

// VerifyRequest carries a tutor verification decision.
type VerifyRequest struct {
	Status model.VerifyStatus `json:"status" validate:"required,oneof=PENDING APPROVED REJECTED"`
}

// ListTutors godoc
// @Summary List all tutors, optionally by verification state
// @Tags admin
// @Produce json
// @Param verify query string false "PENDING, APPROVED or REJECTED"
// @Success 200 {array} model.TutorProfile
// @Security BearerAuth
// @Router /admin/tutors [get]
func (h *AdminHandler) ListTutors(c echo.Context) error {
	tutors, err := h.adminService.ListTutors(c.Request().Context(), model.VerifyStatus(c.QueryParam("verify")))
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, tutors)
}

// UpdateVerify godoc
// @Summary Set a tutor's verification status
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Tutor id"
// @Param request body VerifyRequest true "New status"
// @Success 200 {object} model.TutorProfile
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /admin/tutors/{id}/verify [post]
func (h *AdminHandler) UpdateVerify(c echo.Context) error {
	var req VerifyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	tutor, err := h.adminService.UpdateVerify(c.Request().Context(), c.Param("id"), req.Status)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, tutor)
}

// ListUsers godoc
// @Summary List all users
// @Tags admin
// @Produce json
// @Success 200 {array} model.User
// @Security BearerAuth
// @Router /admin/users [get]
func (h *AdminHandler) ListUsers(c echo.Context) error {
	users, err := h.adminService.ListUsers(c.Request().Context())
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, users)
}

// BanUser godoc
// @Summary Ban a user
// @Tags admin
// @Produce json
// @Param id path string true "User id"
// @Success 200 {object} model.User
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /admin/users/{id}/ban [post]
func (h *AdminHandler) BanUser(c echo.Context) error {
	user, err := h.adminService.SetUserStatus(c.Request().Context(), c.Param("id"), model.UserBanned)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, user)
}

// UnbanUser godoc
// @Summary Unban a user
// @Tags admin
// @Produce json
// @Param id path string true "User id"
// @Success 200 {object} model.User
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /admin/users/{id}/unban [post]
func (h *AdminHandler) UnbanUser(c echo.Context) error {
	user, err := h.adminService.SetUserStatus(c.Request().Context(), c.Param("id"), model.UserActive)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, user)
}

// ListPosts godoc
// @Summary List all posts, optionally by status
// @Tags admin
// @Produce json
// @Param status query string false "OPEN, ASSIGNED or CLOSED"
// @Success 200 {array} model.TuitionPost
// @Security BearerAuth
// @Router /admin/posts [get]
func (h *AdminHandler) ListPosts(c echo.Context) error {
	posts, err := h.adminService.ListPosts(c.Request().Context(), model.PostStatus(c.QueryParam("status")))
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, posts)
}

// ApprovePost godoc
// @Summary Reopen (approve) a tuition post
// @Tags admin
// @Produce json
// @Param id path string true "Post id"
// @Success 200 {object} model.TuitionPost
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /admin/posts/{id}/approve [post]
func (h *AdminHandler) ApprovePost(c echo.Context) error {
	post, err := h.adminService.SetPostStatus(c.Request().Context(), c.Param("id"), model.PostOpen)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, post)
}

// ClosePost godoc
// @Summary Close a tuition post
// @Tags admin
// @Produce json
// @Param id path string true "Post id"
// @Success 200 {object} model.TuitionPost
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /admin/posts/{id}/close [post]
func (h *AdminHandler) ClosePost(c echo.Context) error {
	post, err := h.adminService.SetPostStatus(c.Request().Context(), c.Param("id"), model.PostClosed)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, post)
}

// ListPostApplications godoc
// @Summary List the applicants for one post
// @Tags admin
// @Produce json
// @Param id path string true "Post id"
// @Success 200 {array} model.TutorApplication
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /admin/posts/{id}/applications [get]
func (h *AdminHandler) ListPostApplications(c echo.Context) error {
	apps, err := h.adminService.ListPostApplications(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, apps)
}

// ShortlistApplication godoc
// @Summary Shortlist an application
// @Tags admin
// @Produce json
// @Param id path string true "Application id"
// @Success 200 {object} model.TutorApplication
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /admin/applications/{id}/shortlist [post]
func (h *AdminHandler) ShortlistApplication(c echo.Context) error {
	return h.setApplicationStatus(c, model.AppShortlisted)
}

// HireApplication godoc
// @Summary Mark an application hired
// @Tags admin
// @Produce json
// @Param id path string true "Application id"
// @Success 200 {object} model.TutorApplication
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /admin/applications/{id}/hire [post]
func (h *AdminHandler) HireApplication(c echo.Context) error {
	return h.setApplicationStatus(c, model.AppHired)
}

// RejectApplication godoc
// @Summary Reject an application
// @Tags admin
// @Produce json
// @Param id path string true "Application id"
// @Success 200 {object} model.TutorApplication
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /admin/applications/{id}/reject [post]
func (h *AdminHandler) RejectApplication(c echo.Context) error {
	return h.setApplicationStatus(c, model.AppRejected)
}

func (h *AdminHandler) setApplicationStatus(c echo.Context, status model.AppStatus) error {
	app, err := h.adminService.SetApplicationStatus(c.Request().Context(), c.Param("id"), status)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, app)
}

// KPIs godoc
// @Summary Dashboard summary of the directory
// @Tags admin
// @Produce json
// @Success 200 {object} model.KPIReport
// @Security BearerAuth
// @Router /admin/kpis [get]
func (h *AdminHandler) KPIs(c echo.Context) error {
	report, err := h.adminService.KPIs(c.Request().Context())
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, report)
}

// ExportTutors godoc
// @Summary Download the tutor directory as an xlsx workbook
// @Tags admin
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} binary
// @Security BearerAuth
// @Router /admin/tutors/export [get]
func (h *AdminHandler) ExportTutors(c echo.Context) error {
	tutors, err := h.adminService.ListTutors(c.Request().Context(), model.VerifyStatus(c.QueryParam("verify")))
	if err != nil {
		return respondError(err)
	}

	data, err := GenerateTutorExport(tutors)
	if err != nil {
		return respondError(err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="tutors.xlsx"`)
	return c.Blob(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
