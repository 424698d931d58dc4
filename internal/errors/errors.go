package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrDuplicateEmail is returned when registering an email that already exists.
	ErrDuplicateEmail = errors.New("email already exists")
	// ErrInvalidCredentials is returned when login cannot match a user.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrNotFound is returned when a lookup by id does not resolve.
	ErrNotFound = errors.New("not found")
	// ErrProfileRequired is returned when an action needs a role-specific
	// profile the session's user has not created yet.
	ErrProfileRequired = errors.New("profile required")
	// ErrUnauthenticated is returned when a mutation requires a session and
	// none is active.
	ErrUnauthenticated = errors.New("not authenticated")
	// ErrUserBanned is returned when a banned account attempts to log in.
	ErrUserBanned = errors.New("user is banned")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Wrapped errors match
// via errors.Is so call sites may add entity context.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrDuplicateEmail):
		return NewHTTPError(http.StatusConflict, err.Error(), "DUPLICATE_EMAIL")
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "NOT_FOUND")
	case errors.Is(err, ErrProfileRequired):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "PROFILE_REQUIRED")
	case errors.Is(err, ErrUnauthenticated):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "UNAUTHENTICATED")
	case errors.Is(err, ErrUserBanned):
		return NewHTTPError(http.StatusForbidden, err.Error(), "USER_BANNED")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
