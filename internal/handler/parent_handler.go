package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"tutorhub/internal/model"
	"tutorhub/internal/service"
)

// ParentHandler handles parent profile endpoints.
type ParentHandler struct {
	parentService service.ParentService
}

// NewParentHandler creates a new parent handler.
func NewParentHandler(parentService service.ParentService) *ParentHandler {
	return &ParentHandler{parentService: parentService}
}

// UpsertProfile godoc
// @Summary Create or patch the session user's parent profile
// @Tags parents
// @Accept json
// @Produce json
// @Param request body model.ParentProfilePatch true "Profile fields"
// @Success 200 {object} model.ParentProfile
// @Failure 401 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /parents/me/profile [put]
func (h *ParentHandler) UpsertProfile(c echo.Context) error {
	var patch model.ParentProfilePatch
	if err := c.Bind(&patch); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&patch); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	profile, err := h.parentService.UpsertProfile(c.Request().Context(), currentUserID(c), patch)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, profile)
}

// MyProfile godoc
// @Summary Get the session user's parent profile
// @Tags parents
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /parents/me/profile [get]
func (h *ParentHandler) MyProfile(c echo.Context) error {
	profile, err := h.parentService.MyProfile(c.Request().Context(), currentUserID(c))
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"profile": profile})
}
