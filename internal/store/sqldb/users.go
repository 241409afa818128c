package sqldb

import (
	"context"
	"fmt"
	"strings"

	"github.com/grammatica/grammatica-server/internal/domain"
	"github.com/grammatica/grammatica-server/internal/store"
)

var _ store.Users = (*Store)(nil)

const userColumns = "`id`, `email`, `name`, `password_hash`, `created_at`, `updated_at`"

// CreateUser inserts a new user. Emails are unique case-insensitively.
func (s *Store) CreateUser(ctx context.Context, user *domain.User) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO `users` (`id`, `email`, `email_lower`, `name`, `password_hash`, `created_at`, `updated_at`) VALUES (?, ?, ?, ?, ?, ?, ?)",
		user.ID,
		user.Email,
		strings.ToLower(user.Email),
		user.Name,
		user.PasswordHash,
		formatTime(user.CreatedAt),
		formatTime(user.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("create user: %w", translate(err))
	}
	return nil
}

// GetUser returns the user with the given id.
func (s *Store) GetUser(ctx context.Context, id string) (*domain.User, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+userColumns+" FROM `users` WHERE `id` = ?", id)
	return scanUser(row)
}

// GetUserByEmail looks a user up case-insensitively.
func (s *Store) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+userColumns+" FROM `users` WHERE `email_lower` = ?", strings.ToLower(email))
	return scanUser(row)
}

func scanUser(sc scanner) (*domain.User, error) {
	var (
		u                    domain.User
		createdAt, updatedAt string
	)
	if err := sc.Scan(&u.ID, &u.Email, &u.Name, &u.PasswordHash, &createdAt, &updatedAt); err != nil {
		return nil, translate(err)
	}

	var err error
	if u.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, fmt.Errorf("parse created_at: %w", err)
	}
	if u.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, fmt.Errorf("parse updated_at: %w", err)
	}
	return &u, nil
}
