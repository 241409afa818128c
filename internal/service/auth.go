package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/grammatica/grammatica-server/internal/auth"
	"github.com/grammatica/grammatica-server/internal/domain"
	domainerrors "github.com/grammatica/grammatica-server/internal/errors"
	"github.com/grammatica/grammatica-server/internal/id"
	"github.com/grammatica/grammatica-server/internal/metrics"
	"github.com/grammatica/grammatica-server/internal/store"
	"github.com/grammatica/grammatica-server/internal/validation"
)

// LoginRecorder observes login attempts.
type LoginRecorder interface {
	RecordLogin(outcome string)
}

// LoginRequest is the credential pair sent to the login endpoint.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email,max=254" doc:"Account email address"`
	Password string `json:"password" validate:"required,max=1024" doc:"Account password"`
}

// CreateUserRequest describes a new account.
type CreateUserRequest struct {
	Email    string `json:"email" validate:"required,email,max=254"`
	Name     string `json:"name" validate:"max=255"`
	Password string `json:"password" validate:"required,min=8,max=1024"`
}

// LoginResult is returned by a successful login.
type LoginResult struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	ExpiresAt   time.Time    `json:"expires_at"`
	User        *domain.User `json:"user"`
}

// AuthService handles logins and bearer token verification.
type AuthService struct {
	users     store.Users
	tokens    *auth.TokenService
	validator *validation.Validator
	recorder  LoginRecorder
	logger    *slog.Logger
	hasher    auth.Argon2Params
}

// NewAuthService creates an auth service. recorder may be nil.
func NewAuthService(users store.Users, tokens *auth.TokenService, v *validation.Validator, recorder LoginRecorder, logger *slog.Logger) *AuthService {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthService{
		users:     users,
		tokens:    tokens,
		validator: v,
		recorder:  recorder,
		logger:    logger,
		hasher:    auth.DefaultArgon2Params,
	}
}

var errBadCredentials = domainerrors.InvalidCredentials("invalid email or password")

// Login checks credentials and issues an access token.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	if err := s.validator.Validate(req); err != nil {
		s.recordLogin(metrics.OutcomeInvalid)
		return nil, err
	}

	user, err := s.users.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Don't leak whether the email exists.
			s.recordLogin(metrics.OutcomeInvalid)
			return nil, errBadCredentials
		}
		s.recordLogin(metrics.OutcomeError)
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	if !auth.VerifyPassword(user.PasswordHash, req.Password) {
		s.recordLogin(metrics.OutcomeInvalid)
		return nil, errBadCredentials
	}

	token, expires, err := s.tokens.GenerateAccessToken(user)
	if err != nil {
		s.recordLogin(metrics.OutcomeError)
		return nil, fmt.Errorf("issue token: %w", err)
	}

	s.recordLogin(metrics.OutcomeOK)
	s.logger.Info("user logged in", "user_id", user.ID)

	return &LoginResult{AccessToken: token, TokenType: "Bearer", ExpiresAt: expires, User: user}, nil
}

// VerifyAccessToken returns the user a bearer token belongs to.
func (s *AuthService) VerifyAccessToken(ctx context.Context, token string) (*domain.User, error) {
	claims, err := s.tokens.VerifyAccessToken(token)
	if err != nil {
		return nil, domainerrors.Unauthorized("invalid or expired token")
	}

	user, err := s.users.GetUser(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, domainerrors.Unauthorized("user no longer exists")
		}
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	return user, nil
}

// CreateUser registers an account with a hashed password.
func (s *AuthService) CreateUser(ctx context.Context, req CreateUserRequest) (*domain.User, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	userID, err := id.NewUserID()
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:           userID,
		Email:        strings.TrimSpace(req.Email),
		Name:         req.Name,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.users.CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return nil, domainerrors.AlreadyExists("a user with this email already exists")
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

func (s *AuthService) recordLogin(outcome string) {
	if s.recorder != nil {
		s.recorder.RecordLogin(outcome)
	}
}
