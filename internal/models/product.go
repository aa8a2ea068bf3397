package models

import (
	"fmt"
	"strings"

	"github.com/binayakpanigrahi011-debug/Invoicor/internal/common"
)

// DefaultMinStockLevel is applied when a product is created without an
// explicit reorder threshold.
const DefaultMinStockLevel = 5

// Product is one inventory record.
type Product struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	SKU           string  `json:"sku"`
	Category      string  `json:"category"`
	Description   string  `json:"description"`
	Price         float64 `json:"price"`
	StockQuantity int     `json:"stockQuantity"`
	MinStockLevel int     `json:"minStockLevel"`
}

// LowStock reports whether the product needs restocking. Derived on every
// call, never stored.
func (p *Product) LowStock() bool {
	return p.StockQuantity <= p.MinStockLevel
}

// StockValue is the product's contribution to total inventory value.
func (p *Product) StockValue() float64 {
	return p.Price * float64(p.StockQuantity)
}

func (p *Product) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: product name is required", common.ErrorValidation)
	}
	if strings.TrimSpace(p.SKU) == "" {
		return fmt.Errorf("%w: sku is required", common.ErrorValidation)
	}
	if p.Price < 0 {
		return fmt.Errorf("%w: price cannot be negative", common.ErrorValidation)
	}
	if p.StockQuantity < 0 {
		return fmt.Errorf("%w: stock quantity cannot be negative", common.ErrorValidation)
	}
	if p.MinStockLevel < 0 {
		return fmt.Errorf("%w: minimum stock level cannot be negative", common.ErrorValidation)
	}
	return nil
}

func (p *Product) Normalize() {
	p.Name = strings.TrimSpace(p.Name)
	p.SKU = strings.TrimSpace(p.SKU)
	p.Category = strings.TrimSpace(p.Category)
	p.Description = strings.TrimSpace(p.Description)
	if p.MinStockLevel == 0 {
		p.MinStockLevel = DefaultMinStockLevel
	}
}
