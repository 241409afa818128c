package errors

import (
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCode_HTTPStatus(t *testing.T) {
	tests := []struct {
		code Code
		want int
	}{
		{CodeNotFound, http.StatusNotFound},
		{CodeAlreadyExists, http.StatusConflict},
		{CodeConflict, http.StatusConflict},
		{CodeValidation, http.StatusUnprocessableEntity},
		{CodeUnauthorized, http.StatusUnauthorized},
		{CodeInvalidCredentials, http.StatusUnauthorized},
		{CodeRateLimited, http.StatusTooManyRequests},
		{CodeInternal, http.StatusInternalServerError},
		{Code("SOMETHING_ELSE"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.code.HTTPStatus())
		})
	}
}

func TestCodeForStatus(t *testing.T) {
	assert.Equal(t, CodeValidation, CodeForStatus(http.StatusUnprocessableEntity))
	assert.Equal(t, CodeValidation, CodeForStatus(http.StatusBadRequest))
	assert.Equal(t, CodeNotFound, CodeForStatus(http.StatusNotFound))
	assert.Equal(t, CodeRateLimited, CodeForStatus(http.StatusTooManyRequests))
	assert.Equal(t, CodeInternal, CodeForStatus(http.StatusTeapot))
}

func TestError_IsMatchesByCode(t *testing.T) {
	err := NotFound("Book not found")

	assert.True(t, Is(err, ErrNotFound))
	assert.False(t, Is(err, ErrValidation))
	assert.Equal(t, "Book not found", err.Error())
}

func TestError_WithCause(t *testing.T) {
	cause := stderrors.New("disk on fire")
	err := ErrInternal.WithCause(cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "internal error: disk on fire", err.Error())
	// Sentinel is left untouched.
	assert.Nil(t, ErrInternal.Unwrap())
}

func TestValidationWithDetails(t *testing.T) {
	err := ValidationWithDetails("validation failed", map[string]string{"title": "is required"})

	assert.Equal(t, CodeValidation, err.Code)
	assert.Equal(t, http.StatusUnprocessableEntity, err.HTTPStatus())
	assert.Equal(t, map[string]string{"title": "is required"}, err.Details)
}
