package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"tutorhub/internal/model"
	"tutorhub/internal/service"
)

// ApplicationHandler handles tutor application endpoints.
type ApplicationHandler struct {
	applicationService service.ApplicationService
}

// NewApplicationHandler creates a new application handler.
func NewApplicationHandler(applicationService service.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{applicationService: applicationService}
}

// Create godoc
// @Summary Apply to a tuition post as the session's tutor profile
// @Tags applications
// @Accept json
// @Produce json
// @Param request body model.ApplicationDraft true "Application fields"
// @Success 201 {object} model.TutorApplication
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /applications [post]
func (h *ApplicationHandler) Create(c echo.Context) error {
	var draft model.ApplicationDraft
	if err := c.Bind(&draft); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&draft); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	app, err := h.applicationService.Create(c.Request().Context(), currentUserID(c), draft)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusCreated, app)
}

// My godoc
// @Summary List the session tutor's own applications
// @Tags applications
// @Produce json
// @Success 200 {array} model.TutorApplication
// @Security BearerAuth
// @Router /applications/my [get]
func (h *ApplicationHandler) My(c echo.Context) error {
	apps, err := h.applicationService.MyApplications(c.Request().Context(), currentUserID(c))
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, apps)
}
