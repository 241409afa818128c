package api

import (
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "github.com/grammatica/grammatica-server/internal/errors"
	"github.com/grammatica/grammatica-server/internal/store"
)

func asAPIError(t *testing.T, se huma.StatusError) *APIError {
	t.Helper()
	apiErr, ok := se.(*APIError)
	require.True(t, ok, "expected *APIError, got %T", se)
	return apiErr
}

func TestNewAPIError_DomainError(t *testing.T) {
	err := domainerrors.ValidationWithDetails("validation failed", map[string]string{"word": "is required"})

	apiErr := asAPIError(t, newAPIError(http.StatusInternalServerError, err.Error(), err))

	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.GetStatus())
	assert.Equal(t, "VALIDATION", apiErr.Code)
	assert.Equal(t, "validation failed", apiErr.Message)
	assert.False(t, apiErr.Success)
	assert.Equal(t, map[string]string{"word": "is required"}, apiErr.Details)
}

func TestNewAPIError_StoreError(t *testing.T) {
	err := errors.Join(errors.New("delete books"), store.ErrForeignKey)

	apiErr := asAPIError(t, newAPIError(http.StatusInternalServerError, err.Error(), err))

	assert.Equal(t, http.StatusConflict, apiErr.GetStatus())
	assert.Equal(t, "CONFLICT", apiErr.Code)
}

func TestNewAPIError_HidesInternalMessages(t *testing.T) {
	err := errors.New("dial tcp 10.0.0.5:3306: connection refused")

	apiErr := asAPIError(t, newAPIError(http.StatusInternalServerError, err.Error(), err))

	assert.Equal(t, http.StatusInternalServerError, apiErr.GetStatus())
	assert.Equal(t, "INTERNAL", apiErr.Code)
	assert.Equal(t, "internal server error", apiErr.Message)
}

func TestNewAPIError_RequestDetails(t *testing.T) {
	apiErr := asAPIError(t, newAPIError(http.StatusUnprocessableEntity, "validation failed",
		&huma.ErrorDetail{Location: "query.page", Message: "expected number >= 0"},
	))

	assert.Equal(t, "VALIDATION", apiErr.Code)
	assert.Equal(t, map[string]string{"query.page": "expected number >= 0"}, apiErr.Details)
}

func TestNewAPIError_StatusOnly(t *testing.T) {
	apiErr := asAPIError(t, newAPIError(http.StatusUnauthorized, "Missing authorization header"))

	assert.Equal(t, "UNAUTHORIZED", apiErr.Code)
	assert.Equal(t, "Missing authorization header", apiErr.Message)
	assert.Nil(t, apiErr.Details)
	assert.Equal(t, "application/json", apiErr.ContentType("application/problem+json"))
}
