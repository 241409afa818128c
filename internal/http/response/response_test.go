package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grammatica/grammatica-server/internal/logger"
)

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestInternalError(t *testing.T) {
	w := httptest.NewRecorder()

	InternalError(w, "internal server error", logger.Discard().Logger)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))

	body := decodeBody(t, w)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "internal server error", body["message"])
	assert.Equal(t, "INTERNAL", body["code"])
}

func TestError_NilLogger(t *testing.T) {
	w := httptest.NewRecorder()

	NotFound(w, "Book not found", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Book not found", body["message"])
	assert.Equal(t, "NOT_FOUND", body["code"])
	assert.NotContains(t, body, "details")
}

func TestMethodNotAllowed(t *testing.T) {
	w := httptest.NewRecorder()

	MethodNotAllowed(w, nil)

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.Equal(t, "METHOD_NOT_ALLOWED", decodeBody(t, w)["code"])
}
