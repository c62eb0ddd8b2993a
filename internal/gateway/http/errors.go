package http

import (
	"net/http"

	"github.com/campuslink/wpsgate/pkg/httpx"
)

// APIError is a JSON error response in the OAuth2 error envelope shape.
type APIError struct {
	Status      int    `json:"-"`
	Code        string `json:"error"`
	Description string `json:"error_description"`
}

// WriteError writes the error as a JSON response with its status code.
func (e APIError) WriteError(w http.ResponseWriter) {
	httpx.WriteJSON(w, e.Status, e)
}

// WithDescription returns a copy of the error with a different description.
func (e APIError) WithDescription(desc string) APIError {
	e.Description = desc
	return e
}

var (
	// ErrInvalidRequest reports a missing or malformed request parameter.
	ErrInvalidRequest = APIError{
		Status:      http.StatusBadRequest,
		Code:        "invalid_request",
		Description: "The request is missing a required parameter.",
	}

	// ErrAccessDenied reports that the platform user has no internal identity.
	ErrAccessDenied = APIError{
		Status:      http.StatusForbidden,
		Code:        "access_denied",
		Description: "No internal identity matches the platform account.",
	}

	// ErrUpstream reports a failed call to the platform.
	ErrUpstream = APIError{
		Status:      http.StatusBadGateway,
		Code:        "upstream_error",
		Description: "The platform request failed.",
	}

	// ErrServerError reports an unexpected internal failure.
	ErrServerError = APIError{
		Status:      http.StatusInternalServerError,
		Code:        "server_error",
		Description: "An internal error occurred.",
	}
)
