package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"tutorhub/internal/auth"
	"tutorhub/internal/config"
	apperrors "tutorhub/internal/errors"
	"tutorhub/internal/handler"
	"tutorhub/internal/model"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	tokenStore auth.TokenStoreInterface,
	authHandler *handler.AuthHandler,
	tutorHandler *handler.TutorHandler,
	parentHandler *handler.ParentHandler,
	postHandler *handler.PostHandler,
	applicationHandler *handler.ApplicationHandler,
	adminHandler *handler.AdminHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.GET("/tutors", tutorHandler.List)
	api.GET("/tutors/:id", tutorHandler.Get)
	api.GET("/posts", postHandler.List)
	api.GET("/posts/:id", postHandler.Get)

	// Secured routes (require JWT authentication)
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ",
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(auth.Claims)
		},
	}), rejectBlacklisted(tokenStore))

	secured.GET("/me", authHandler.Me)
	secured.POST("/auth/logout", authHandler.Logout)

	secured.GET("/tutors/me/profile", tutorHandler.MyProfile)
	secured.PUT("/tutors/me/profile", tutorHandler.UpsertProfile)

	secured.GET("/parents/me/profile", parentHandler.MyProfile)
	secured.PUT("/parents/me/profile", parentHandler.UpsertProfile)

	secured.POST("/posts", postHandler.Create)
	secured.GET("/posts/my", postHandler.MyPosts)

	secured.POST("/applications", applicationHandler.Create)
	secured.GET("/applications/my", applicationHandler.My)

	// Admin routes
	admin := secured.Group("/admin", requireRole(model.RoleAdmin))
	admin.GET("/kpis", adminHandler.KPIs)
	admin.GET("/users", adminHandler.ListUsers)
	admin.POST("/users/:id/ban", adminHandler.BanUser)
	admin.POST("/users/:id/unban", adminHandler.UnbanUser)
	admin.GET("/tutors", adminHandler.ListTutors)
	admin.GET("/tutors/export", adminHandler.ExportTutors)
	admin.POST("/tutors/:id/verify", adminHandler.UpdateVerify)
	admin.GET("/posts", adminHandler.ListPosts)
	admin.POST("/posts/:id/approve", adminHandler.ApprovePost)
	admin.POST("/posts/:id/close", adminHandler.ClosePost)
	admin.GET("/posts/:id/applications", adminHandler.ListPostApplications)
	admin.POST("/applications/:id/shortlist", adminHandler.ShortlistApplication)
	admin.POST("/applications/:id/hire", adminHandler.HireApplication)
	admin.POST("/applications/:id/reject", adminHandler.RejectApplication)
}

// claimsFrom extracts the verified session claims set by the JWT middleware.
func claimsFrom(c echo.Context) *auth.Claims {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return nil
	}
	claims, ok := token.Claims.(*auth.Claims)
	if !ok {
		return nil
	}
	return claims
}

// rejectBlacklisted refuses tokens revoked by logout. Without a redis
// instance the blacklist always reports clean, which keeps the demo
// deployment working.
func rejectBlacklisted(tokenStore auth.TokenStoreInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims := claimsFrom(c)
			if claims == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
					Error: "invalid token",
					Code:  "UNAUTHENTICATED",
				})
			}
			if revoked, _ := tokenStore.IsAccessTokenBlacklisted(c.Request().Context(), claims.ID); revoked {
				return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
					Error: "token revoked",
					Code:  "UNAUTHENTICATED",
				})
			}
			return next(c)
		}
	}
}

// requireRole guards a route group behind one role.
func requireRole(role model.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims := claimsFrom(c)
			if claims == nil || claims.Role != role {
				return echo.NewHTTPError(http.StatusForbidden, apperrors.ErrorResponse{
					Error: "insufficient role",
					Code:  "FORBIDDEN",
				})
			}
			return next(c)
		}
	}
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
