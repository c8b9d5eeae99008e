package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/chhavipande/museumyatra/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest    = "INVALID_REQUEST"
	CodeDuplicateUsername = "DUPLICATE_USERNAME"
	CodeUnknownUser       = "UNKNOWN_USER"
	CodeWrongPassword     = "WRONG_PASSWORD"
	CodeNotSignedIn       = "NOT_SIGNED_IN"
	CodeMuseumNotFound    = "MUSEUM_NOT_FOUND"
	CodeInvalidRating     = "INVALID_RATING"
	CodeInternalError     = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	switch {
	case errors.Is(err, model.ErrDuplicateUsername):
		return &httpError{http.StatusConflict, APIError{CodeDuplicateUsername, "Username already exists"}}
	case errors.Is(err, model.ErrUnknownUser):
		return &httpError{http.StatusUnauthorized, APIError{CodeUnknownUser, "No account with that username"}}
	case errors.Is(err, model.ErrWrongPassword):
		return &httpError{http.StatusUnauthorized, APIError{CodeWrongPassword, "Wrong password"}}
	case errors.Is(err, model.ErrNoCurrentUser):
		return &httpError{http.StatusUnauthorized, APIError{CodeNotSignedIn, "No user is signed in"}}
	case errors.Is(err, model.ErrMuseumNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeMuseumNotFound, "Museum not found"}}
	case errors.Is(err, model.ErrInvalidRating):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidRating, "Rating must be between 1 and 5"}}
	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
