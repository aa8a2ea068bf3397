package services

import (
	"context"

	"github.com/binayakpanigrahi011-debug/Invoicor/internal/models"
	"github.com/binayakpanigrahi011-debug/Invoicor/internal/repositories/products"
)

// InventorySummary carries the figures shown above the product table.
type InventorySummary struct {
	TotalProducts int
	TotalValue    float64
	LowStockCount int
	Categories    int
}

// InventoryService validates and persists products and derives stock figures.
type InventoryService struct {
	repo products.Repository
}

func NewInventoryService(repo products.Repository) *InventoryService {
	return &InventoryService{repo: repo}
}

func (s *InventoryService) List(ctx context.Context, query string) ([]models.Product, error) {
	list, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return FilterProducts(query, list), nil
}

func (s *InventoryService) Get(ctx context.Context, id int64) (*models.Product, error) {
	return s.repo.GetByID(ctx, id)
}

// Create normalizes and validates p, then stores it with a fresh id. A zero
// minimum stock level is replaced with the default during normalization.
func (s *InventoryService) Create(ctx context.Context, p *models.Product) (*models.Product, error) {
	p.Normalize()
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, p)
}

func (s *InventoryService) Update(ctx context.Context, id int64, p *models.Product) error {
	p.Normalize()
	if err := p.Validate(); err != nil {
		return err
	}
	return s.repo.Update(ctx, id, p)
}

func (s *InventoryService) Delete(ctx context.Context, id int64) error {
	return s.repo.DeleteByID(ctx, id)
}

// Summary reports the product count, the total stock value at current prices,
// the number of products at or below their minimum stock level, and the
// number of distinct categories.
func (s *InventoryService) Summary(ctx context.Context) (*InventorySummary, error) {
	list, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	sum := &InventorySummary{TotalProducts: len(list)}
	cats := map[string]struct{}{}
	for _, p := range list {
		sum.TotalValue += p.StockValue()
		if p.LowStock() {
			sum.LowStockCount++
		}
		cats[p.Category] = struct{}{}
	}
	sum.Categories = len(cats)
	return sum, nil
}

// LowStock returns the products whose stock quantity is at or below their
// minimum stock level.
func (s *InventoryService) LowStock(ctx context.Context) ([]models.Product, error) {
	list, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.Product, 0)
	for _, p := range list {
		if p.LowStock() {
			out = append(out, p)
		}
	}
	return out, nil
}
