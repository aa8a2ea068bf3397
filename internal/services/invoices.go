package services

import (
	"context"

	"github.com/binayakpanigrahi011-debug/Invoicor/internal/models"
	"github.com/binayakpanigrahi011-debug/Invoicor/internal/repositories/invoices"
)

// InvoiceService validates and persists invoices. The stored total is always
// recomputed from the line items at save time, so a caller cannot persist a
// total that disagrees with its items.
type InvoiceService struct {
	repo invoices.Repository
}

func NewInvoiceService(repo invoices.Repository) *InvoiceService {
	return &InvoiceService{repo: repo}
}

// List returns the invoices matching query and status. An empty status or
// models.AnyStatus disables the status filter.
func (s *InvoiceService) List(ctx context.Context, query, status string) ([]models.Invoice, error) {
	list, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return FilterInvoices(query, status, list), nil
}

func (s *InvoiceService) Get(ctx context.Context, id int64) (*models.Invoice, error) {
	return s.repo.GetByID(ctx, id)
}

// Create validates inv, recomputes its total from the items, and stores it
// with a fresh id and the next invoice number.
func (s *InvoiceService) Create(ctx context.Context, inv *models.Invoice) (*models.Invoice, error) {
	if err := inv.Validate(); err != nil {
		return nil, err
	}
	inv.TotalAmount = inv.Totals().Total
	return s.repo.Create(ctx, inv)
}

// Update replaces the invoice with the given id, recomputing the total and
// keeping the original invoice number.
func (s *InvoiceService) Update(ctx context.Context, id int64, inv *models.Invoice) error {
	if err := inv.Validate(); err != nil {
		return err
	}
	inv.TotalAmount = inv.Totals().Total
	return s.repo.Update(ctx, id, inv)
}

func (s *InvoiceService) Delete(ctx context.Context, id int64) error {
	return s.repo.DeleteByID(ctx, id)
}
