// Package apierror renders every failure as the service's JSON error envelope.
package apierror

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"github.com/serroba/web-toolbox/internal/upstream"
)

// Error is the envelope returned for failed requests.
type Error struct {
	status int

	Success   bool   `json:"success"`
	Message   string `json:"error"`
	Details   string `json:"details,omitempty"`
	Retryable bool   `json:"retryable,omitempty"`
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) GetStatus() int {
	return e.status
}

// New builds an envelope. Causes are summarised in Details only when exposeDetails is set.
func New(status int, message string, exposeDetails bool, errs ...error) *Error {
	e := &Error{
		status:  status,
		Message: message,
	}

	cause := errors.Join(errs...)
	if cause == nil {
		return e
	}

	e.Retryable = upstream.IsRetryable(cause)

	if exposeDetails {
		e.Details = strings.ReplaceAll(cause.Error(), "\n", "; ")
	}

	return e
}

// Install makes huma render its errors, including request validation failures, as
// the envelope. Validation failures are reported as 400.
func Install(exposeDetails bool) {
	huma.NewError = func(status int, message string, errs ...error) huma.StatusError {
		if status == http.StatusUnprocessableEntity {
			status = http.StatusBadRequest
		}

		return New(status, message, exposeDetails, errs...)
	}
}

// Write renders e directly to w, for failures outside huma operations.
func Write(w http.ResponseWriter, e *Error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.status)
	_ = json.NewEncoder(w).Encode(e)
}
