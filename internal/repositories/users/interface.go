package users

import (
	"context"

	"github.com/binayakpanigrahi011-debug/Invoicor/internal/models"
)

// Repository describes the user registry: one JSON object keyed by email,
// persisted whole under the users key.
type Repository interface {
	// GetByEmail returns the user registered under email, or
	// common.ErrUserNotFound.
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// Create registers a new user. Returns common.ErrUserExists when the
	// email is already taken.
	Create(ctx context.Context, email string, user *models.User) error

	// GetAll returns the whole registry keyed by email.
	GetAll(ctx context.Context) (map[string]models.User, error)
}
