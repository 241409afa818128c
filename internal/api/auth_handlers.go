package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"

	"github.com/grammatica/grammatica-server/internal/domain"
	"github.com/grammatica/grammatica-server/internal/service"
)

func (s *Server) registerAuthRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "login",
		Method:      http.MethodPost,
		Path:        "/api/auth/login",
		Summary:     "Log in",
		Description: "Exchanges email and password for a bearer access token. Rate limited per client IP.",
		Tags:        []string{"Auth"},
		Middlewares: huma.Middlewares{s.rateLimitLogin},
		Errors:      []int{http.StatusUnauthorized, http.StatusUnprocessableEntity, http.StatusTooManyRequests},
	}, s.handleLogin)

	huma.Register(s.api, huma.Operation{
		OperationID: "getCurrentUser",
		Method:      http.MethodGet,
		Path:        "/api/user",
		Summary:     "Get current user",
		Description: "Returns the user the bearer token was issued to",
		Tags:        []string{"Auth"},
		Security:    []map[string][]string{{"bearer": {}}},
		Errors:      []int{http.StatusUnauthorized},
	}, s.handleGetCurrentUser)
}

// LoginInput wraps the login request for Huma.
type LoginInput struct {
	Body service.LoginRequest
}

// LoginOutput wraps the login response for Huma.
type LoginOutput struct {
	Body Envelope[*service.LoginResult]
}

// CurrentUserInput carries the bearer token.
type CurrentUserInput struct {
	Authorization string `header:"Authorization" doc:"Bearer access token"`
}

// CurrentUserOutput wraps the authenticated user for Huma.
type CurrentUserOutput struct {
	Body Envelope[*domain.User]
}

func (s *Server) handleLogin(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
	result, err := s.services.Auth.Login(ctx, input.Body)
	if err != nil {
		return nil, s.fail(ctx, err)
	}
	return &LoginOutput{Body: ok(result, "Login successful")}, nil
}

func (s *Server) handleGetCurrentUser(ctx context.Context, input *CurrentUserInput) (*CurrentUserOutput, error) {
	user, err := s.authenticateRequest(ctx, input.Authorization)
	if err != nil {
		return nil, err
	}
	return &CurrentUserOutput{Body: ok(user, "User retrieved successfully")}, nil
}

// authenticateRequest validates the Authorization header and returns the user.
func (s *Server) authenticateRequest(ctx context.Context, authHeader string) (*domain.User, error) {
	if authHeader == "" {
		return nil, huma.Error401Unauthorized("Missing authorization header")
	}

	scheme, token, found := strings.Cut(authHeader, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") || token == "" {
		return nil, huma.Error401Unauthorized("Invalid authorization header format")
	}

	user, err := s.services.Auth.VerifyAccessToken(ctx, token)
	if err != nil {
		return nil, s.fail(ctx, err)
	}
	return user, nil
}
