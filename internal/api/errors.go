package api

import (
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	domainerrors "github.com/grammatica/grammatica-server/internal/errors"
	"github.com/grammatica/grammatica-server/internal/store"
)

// APIError is the error envelope. It implements huma.StatusError so every
// failure, including huma's own request validation, renders the same way.
type APIError struct { //nolint:revive // API prefix is intentional for clarity
	status  int
	Success bool   `json:"success" doc:"Always false"`
	Message string `json:"message" doc:"Human-readable error message"`
	Code    string `json:"code" doc:"Machine-readable error code"`
	Details any    `json:"details,omitempty" doc:"Per-field validation messages"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return e.Message
}

// GetStatus implements huma.StatusError.
func (e *APIError) GetStatus() int {
	return e.status
}

// ContentType returns the content type for the error response.
func (e *APIError) ContentType(_ string) string {
	return "application/json"
}

// RegisterErrorHandler configures huma to build APIErrors.
// Call this after creating the huma.API but before registering routes.
func RegisterErrorHandler() {
	huma.NewError = newAPIError
}

func newAPIError(status int, message string, errs ...error) huma.StatusError {
	for _, err := range errs {
		var domainErr *domainerrors.Error
		if errors.As(err, &domainErr) {
			return &APIError{
				status:  domainErr.HTTPStatus(),
				Code:    string(domainErr.Code),
				Message: domainErr.Message,
				Details: domainErr.Details,
			}
		}

		var storeErr *store.Error
		if errors.As(err, &storeErr) {
			return &APIError{
				status:  storeErr.HTTPCode(),
				Code:    string(domainerrors.CodeForStatus(storeErr.HTTPCode())),
				Message: storeErr.Message,
			}
		}
	}

	if status >= http.StatusInternalServerError {
		// Handler errors that reach here carry driver or I/O text.
		message = "internal server error"
	}

	apiErr := &APIError{
		status:  status,
		Code:    string(domainerrors.CodeForStatus(status)),
		Message: message,
	}
	if details := requestDetails(errs); len(details) > 0 {
		apiErr.Details = details
	}
	return apiErr
}

// requestDetails collects huma's request validation failures keyed by
// location, e.g. "query.page" or "path.id".
func requestDetails(errs []error) map[string]string {
	var details map[string]string
	for _, err := range errs {
		var detail *huma.ErrorDetail
		if !errors.As(err, &detail) {
			continue
		}
		if details == nil {
			details = make(map[string]string, len(errs))
		}
		details[detail.Location] = detail.Message
	}
	return details
}
