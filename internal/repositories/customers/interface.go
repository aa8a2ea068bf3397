package customers

import (
	"context"

	"github.com/binayakpanigrahi011-debug/Invoicor/internal/models"
)

// Repository describes CRUD operations for Customer records.
type Repository interface {
	// GetAll returns all customers in stored order.
	GetAll(ctx context.Context) ([]models.Customer, error)

	// GetByID returns a customer by id, or common.ErrorNotFound.
	GetByID(ctx context.Context, id int64) (*models.Customer, error)

	// Create stores a new customer and returns it with its generated id.
	Create(ctx context.Context, c *models.Customer) (*models.Customer, error)

	// Update replaces the record with the matching id, or returns
	// common.ErrorNotFound.
	Update(ctx context.Context, id int64, c *models.Customer) error

	// DeleteByID removes the record with the matching id unconditionally.
	DeleteByID(ctx context.Context, id int64) error
}
