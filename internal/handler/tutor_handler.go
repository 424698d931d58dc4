package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"tutorhub/internal/model"
	"tutorhub/internal/service"
)

// TutorHandler handles the tutor directory endpoints.
type TutorHandler struct {
	tutorService service.TutorService
}

// NewTutorHandler creates a new tutor handler.
func NewTutorHandler(tutorService service.TutorService) *TutorHandler {
	return &TutorHandler{tutorService: tutorService}
}

// List godoc
// @Summary List approved tutors with filters and pagination
// @Tags tutors
// @Produce json
// @Param university query string false "Exact university match"
// @Param department query string false "Exact department match"
// @Param session query string false "Exact session match"
// @Param subject query string false "Subject membership"
// @Param area query string false "Area membership"
// @Param mode query string false "Service mode (HYBRID matches any)"
// @Param q query string false "Free-text search over name, subjects, areas"
// @Param rateMin query number false "Minimum hourly rate (inclusive)"
// @Param rateMax query number false "Maximum hourly rate (inclusive)"
// @Param page query int false "1-indexed page"
// @Param limit query int false "Page size (default 12)"
// @Success 200 {object} map[string]interface{}
// @Router /tutors [get]
func (h *TutorHandler) List(c echo.Context) error {
	var filters model.TutorFilters
	if err := c.Bind(&filters); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid filters")
	}

	page, err := h.tutorService.List(c.Request().Context(), filters)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, page)
}

// Get godoc
// @Summary Get one tutor by id
// @Tags tutors
// @Produce json
// @Param id path string true "Tutor id"
// @Success 200 {object} model.TutorProfile
// @Failure 404 {object} errors.ErrorResponse
// @Router /tutors/{id} [get]
func (h *TutorHandler) Get(c echo.Context) error {
	tutor, err := h.tutorService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, tutor)
}

// UpsertProfile godoc
// @Summary Create or patch the session user's tutor profile
// @Tags tutors
// @Accept json
// @Produce json
// @Param request body model.TutorProfilePatch true "Profile fields"
// @Success 200 {object} model.TutorProfile
// @Failure 401 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /tutors/me/profile [put]
func (h *TutorHandler) UpsertProfile(c echo.Context) error {
	var patch model.TutorProfilePatch
	if err := c.Bind(&patch); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&patch); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	profile, err := h.tutorService.UpsertProfile(c.Request().Context(), currentUserID(c), patch)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, profile)
}

// MyProfile godoc
// @Summary Get the session user's tutor profile
// @Tags tutors
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /tutors/me/profile [get]
func (h *TutorHandler) MyProfile(c echo.Context) error {
	profile, err := h.tutorService.MyProfile(c.Request().Context(), currentUserID(c))
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"profile": profile})
}
