package invoices

import (
	"context"

	"github.com/binayakpanigrahi011-debug/Invoicor/internal/models"
)

// Repository describes CRUD operations for Invoice records.
type Repository interface {
	GetAll(ctx context.Context) ([]models.Invoice, error)

	// GetByID returns an invoice by id, or common.ErrorNotFound.
	GetByID(ctx context.Context, id int64) (*models.Invoice, error)

	// Create stores a new invoice, assigning its id and the next invoice
	// number.
	Create(ctx context.Context, inv *models.Invoice) (*models.Invoice, error)

	// Update replaces the record with the matching id, preserving its
	// invoice number. Returns common.ErrorNotFound for an unknown id.
	Update(ctx context.Context, id int64, inv *models.Invoice) error

	DeleteByID(ctx context.Context, id int64) error
}
