package sdk

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/spendlog/spendlog/pkg/httpx"
)

// APIError is the error half of the response envelope. It implements the
// error interface and is shared by the server (to write HTTP responses) and
// by the SDK client (to surface failures to callers).
type APIError struct {
	StatusCode int    `json:"status_code"`
	Message    string `json:"message"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%d: %s", e.StatusCode, e.Message)
}

// WriteError writes this APIError to an HTTP response writer using the
// standard envelope shape.
func (e *APIError) WriteError(w http.ResponseWriter) {
	httpx.NoCache(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.StatusCode)
	_ = json.NewEncoder(w).Encode(Envelope{
		StatusCode: e.StatusCode,
		Success:    false,
		Message:    e.Message,
	})
}

// Predefined errors for the fixed failure modes of the API. Handlers use
// these directly; anything carrying a dynamic message builds an APIError
// inline.
var (
	// ErrMissingToken is returned when no bearer token accompanies a
	// request to a protected route.
	ErrMissingToken = &APIError{
		StatusCode: http.StatusUnauthorized,
		Message:    MsgMissingAuthorizationToken,
	}

	// ErrInvalidToken is returned when the token fails signature or shape
	// checks, or when its subject cannot be resolved.
	ErrInvalidToken = &APIError{
		StatusCode: http.StatusUnauthorized,
		Message:    MsgInvalidAuthorizationToken,
	}

	// ErrExpiredToken is returned for well-formed tokens past their expiry.
	ErrExpiredToken = &APIError{
		StatusCode: http.StatusUnauthorized,
		Message:    MsgExpiredAuthorizationToken,
	}

	// ErrForbidden is returned when an authenticated caller's role is not
	// allowed on the route.
	ErrForbidden = &APIError{
		StatusCode: http.StatusForbidden,
		Message:    MsgAccessForbidden,
	}

	// ErrInvalidCredentials collapses every login failure into one answer.
	ErrInvalidCredentials = &APIError{
		StatusCode: http.StatusUnauthorized,
		Message:    MsgInvalidCredentials,
	}

	// ErrValidation is returned when a request body fails validation.
	ErrValidation = &APIError{
		StatusCode: http.StatusUnprocessableEntity,
		Message:    MsgValidationError,
	}

	// ErrServerError is the catch-all for unexpected failures.
	ErrServerError = &APIError{
		StatusCode: http.StatusInternalServerError,
		Message:    MsgInternalServerError,
	}
)
