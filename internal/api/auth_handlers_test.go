package api

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grammatica/grammatica-server/internal/auth"
	"github.com/grammatica/grammatica-server/internal/domain"
)

var cheapArgon2 = auth.Argon2Params{Memory: 1024, Iterations: 1, Parallelism: 1, SaltLength: 16, KeyLength: 32}

// createTestUser stores a user directly, skipping the expensive default hash.
func createTestUser(t *testing.T, ts *testServer, email, password string) *domain.User {
	t.Helper()

	hash, err := cheapArgon2.Hash(password)
	require.NoError(t, err)

	now := time.Now().UTC()
	user := &domain.User{
		ID:           "usr-test-" + email,
		Email:        email,
		Name:         "Test User",
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, ts.db.CreateUser(context.Background(), user))
	return user
}

func TestLogin_Success(t *testing.T) {
	ts := setupTestServer(t)
	createTestUser(t, ts, "docent@example.nl", "grammatica")

	resp := ts.api.Post("/api/auth/login", map[string]any{
		"email":    "docent@example.nl",
		"password": "grammatica",
	})
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	data := dataOf(t, resp)
	assert.Equal(t, "Bearer", data["token_type"])
	assert.NotEmpty(t, data["access_token"])
	assert.Equal(t, "docent@example.nl", data["user"].(map[string]any)["email"])
	assert.NotContains(t, data["user"], "password_hash")
}

func TestLogin_Failures(t *testing.T) {
	ts := setupTestServer(t)
	createTestUser(t, ts, "docent@example.nl", "grammatica")

	tests := []struct {
		name   string
		body   map[string]any
		status int
		code   string
	}{
		{"wrong password", map[string]any{"email": "docent@example.nl", "password": "spelling"}, http.StatusUnauthorized, "INVALID_CREDENTIALS"},
		{"unknown email", map[string]any{"email": "leerling@example.nl", "password": "grammatica"}, http.StatusUnauthorized, "INVALID_CREDENTIALS"},
		{"not an email", map[string]any{"email": "docent", "password": "grammatica"}, http.StatusUnprocessableEntity, "VALIDATION"},
		{"missing password", map[string]any{"email": "docent@example.nl"}, http.StatusUnprocessableEntity, "VALIDATION"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := ts.api.Post("/api/auth/login", tt.body)
			assertErrorEnvelope(t, resp, tt.status, tt.code)
		})
	}
}

func TestLogin_RateLimited(t *testing.T) {
	ts := setupTestServer(t, func(o *Options) {
		o.LoginPerMinute = 1
		o.LoginBurst = 1
	})

	body := map[string]any{"email": "docent@example.nl", "password": "grammatica"}

	resp := ts.api.Post("/api/auth/login", body)
	assertErrorEnvelope(t, resp, http.StatusUnauthorized, "INVALID_CREDENTIALS")

	resp = ts.api.Post("/api/auth/login", body)
	assertErrorEnvelope(t, resp, http.StatusTooManyRequests, "RATE_LIMITED")
	assert.NotEmpty(t, resp.Header().Get("Retry-After"))

	// Other clients have their own bucket.
	resp = ts.api.Post("/api/auth/login", "X-Real-IP: 198.51.100.7", body)
	assertErrorEnvelope(t, resp, http.StatusUnauthorized, "INVALID_CREDENTIALS")
}

func TestGetCurrentUser(t *testing.T) {
	ts := setupTestServer(t)
	user := createTestUser(t, ts, "docent@example.nl", "grammatica")

	token, _, err := ts.tokens.GenerateAccessToken(user)
	require.NoError(t, err)

	resp := ts.api.Get("/api/user", "Authorization: Bearer "+token)
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	body := decode(t, resp)
	assert.Equal(t, true, body["success"])
	data := body["data"].(map[string]any)
	assert.Equal(t, user.ID, data["id"])
	assert.Equal(t, "docent@example.nl", data["email"])
}

func TestGetCurrentUser_Unauthorized(t *testing.T) {
	ts := setupTestServer(t)

	tests := []struct {
		name    string
		headers []any
	}{
		{"no header", nil},
		{"wrong scheme", []any{"Authorization: Basic Zm9vOmJhcg=="}},
		{"garbage token", []any{"Authorization: Bearer v4.local.garbage"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := ts.api.Get("/api/user", tt.headers...)
			assertErrorEnvelope(t, resp, http.StatusUnauthorized, "UNAUTHORIZED")
		})
	}
}

func TestGetCurrentUser_DeletedUser(t *testing.T) {
	ts := setupTestServer(t)

	token, _, err := ts.tokens.GenerateAccessToken(&domain.User{ID: "usr-ghost", Email: "ghost@example.nl"})
	require.NoError(t, err)

	resp := ts.api.Get("/api/user", "Authorization: Bearer "+token)
	assertErrorEnvelope(t, resp, http.StatusUnauthorized, "UNAUTHORIZED")
}
