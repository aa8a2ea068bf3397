package products

import (
	"context"

	"github.com/binayakpanigrahi011-debug/Invoicor/internal/models"
)

// Repository describes CRUD operations for Product records.
//
// Reads consult the current inventoryProducts:v1 key first and fall back to
// the pre-rename inventoryProducts key when the current one is absent.
// Writes always go to the current key; the legacy key is never written.
type Repository interface {
	GetAll(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, id int64) (*models.Product, error)
	Create(ctx context.Context, p *models.Product) (*models.Product, error)
	Update(ctx context.Context, id int64, p *models.Product) error
	DeleteByID(ctx context.Context, id int64) error
}
