package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"tutorhub/internal/model"
	"tutorhub/internal/service"
)

// PostHandler handles tuition post endpoints.
type PostHandler struct {
	postService service.PostService
}

// NewPostHandler creates a new post handler.
func NewPostHandler(postService service.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

// List godoc
// @Summary List open tuition posts with filters and pagination
// @Tags posts
// @Produce json
// @Param area query string false "Exact area match"
// @Param subject query string false "Subject membership"
// @Param mode query string false "Service mode (HYBRID matches any)"
// @Param budgetMin query number false "Minimum budget (inclusive)"
// @Param budgetMax query number false "Maximum budget (inclusive)"
// @Param page query int false "1-indexed page"
// @Param limit query int false "Page size (default 12)"
// @Success 200 {object} map[string]interface{}
// @Router /posts [get]
func (h *PostHandler) List(c echo.Context) error {
	var filters model.PostFilters
	if err := c.Bind(&filters); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid filters")
	}

	page, err := h.postService.List(c.Request().Context(), filters)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, page)
}

// Get godoc
// @Summary Get one tuition post by id
// @Tags posts
// @Produce json
// @Param id path string true "Post id"
// @Success 200 {object} model.TuitionPost
// @Failure 404 {object} errors.ErrorResponse
// @Router /posts/{id} [get]
func (h *PostHandler) Get(c echo.Context) error {
	post, err := h.postService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, post)
}

// Create godoc
// @Summary Create a tuition post owned by the session's parent profile
// @Tags posts
// @Accept json
// @Produce json
// @Param request body model.PostDraft true "Post fields"
// @Success 201 {object} model.TuitionPost
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /posts [post]
func (h *PostHandler) Create(c echo.Context) error {
	var draft model.PostDraft
	if err := c.Bind(&draft); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&draft); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	post, err := h.postService.Create(c.Request().Context(), currentUserID(c), draft)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusCreated, post)
}

// MyPosts godoc
// @Summary List the session parent's own posts, any status
// @Tags posts
// @Produce json
// @Success 200 {array} model.TuitionPost
// @Security BearerAuth
// @Router /posts/my [get]
func (h *PostHandler) MyPosts(c echo.Context) error {
	posts, err := h.postService.MyPosts(c.Request().Context(), currentUserID(c))
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, posts)
}
