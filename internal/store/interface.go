// Package store defines the persistence contracts for the Grammatica server.
package store

import (
	"context"

	"github.com/grammatica/grammatica-server/internal/domain"
)

// Repository is the CRUD contract every resource table satisfies.
type Repository[T any] interface {
	// List returns rows matching q ordered by id.
	List(ctx context.Context, q Query) ([]*T, error)
	// Count returns the number of rows matching q's filters, ignoring Skip and Limit.
	Count(ctx context.Context, q Query) (int, error)
	Get(ctx context.Context, id int64) (*T, error)
	// Create inserts row and fills in its id and timestamps.
	Create(ctx context.Context, row *T) error
	// Update writes every column of row and bumps updated_at.
	Update(ctx context.Context, row *T) error
	Delete(ctx context.Context, id int64) error
}

// Users is the account persistence used by authentication.
type Users interface {
	CreateUser(ctx context.Context, user *domain.User) error
	GetUser(ctx context.Context, id string) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
}

// Pinger reports database reachability.
type Pinger interface {
	Ping(ctx context.Context) error
}
