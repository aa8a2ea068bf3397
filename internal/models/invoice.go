package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/binayakpanigrahi011-debug/Invoicor/internal/common"
)

// TaxRate is the flat tax applied to every invoice subtotal.
const TaxRate = 0.10

// Invoice statuses. AnyStatus is the list-filter value that disables
// status filtering.
const (
	StatusPaid    = "Paid"
	StatusPending = "Pending"
	StatusOverdue = "Overdue"
	AnyStatus     = "All Status"
)

// InvoiceItem is one line of an invoice. Name and price are copied from the
// product catalog when the line is added; no link is maintained after save.
type InvoiceItem struct {
	ProductID   int64   `json:"productId"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

// Total is the line amount, price times quantity.
func (it *InvoiceItem) Total() float64 {
	return it.Price * float64(it.Quantity)
}

// Invoice is one invoice record. Customer fields are denormalized copies
// taken when the invoice was created.
type Invoice struct {
	ID              int64         `json:"id"`
	InvoiceNumber   string        `json:"invoiceNumber"`
	CustomerName    string        `json:"customerName"`
	CustomerEmail   string        `json:"customerEmail"`
	CustomerAddress string        `json:"customerAddress"`
	InvoiceDate     string        `json:"invoiceDate"`
	DueDate         string        `json:"dueDate"`
	Status          string        `json:"status"`
	Notes           string        `json:"notes"`
	TotalAmount     float64       `json:"totalAmount"`
	Items           []InvoiceItem `json:"items"`
}

// InvoiceTotals is the derived money summary of a set of invoice lines.
type InvoiceTotals struct {
	Subtotal float64
	Tax      float64
	Total    float64
}

// CalculateTotals derives subtotal, flat tax, and grand total from the given
// line items.
func CalculateTotals(items []InvoiceItem) InvoiceTotals {
	var subtotal float64
	for _, it := range items {
		subtotal += it.Total()
	}
	tax := subtotal * TaxRate
	return InvoiceTotals{Subtotal: subtotal, Tax: tax, Total: subtotal + tax}
}

// Totals derives the money summary from the invoice's current line items.
func (inv *Invoice) Totals() InvoiceTotals {
	return CalculateTotals(inv.Items)
}

func (inv *Invoice) Validate() error {
	if strings.TrimSpace(inv.CustomerName) == "" {
		return fmt.Errorf("%w: customer name is required", common.ErrorValidation)
	}
	if inv.InvoiceDate == "" || inv.DueDate == "" {
		return fmt.Errorf("%w: invoice date and due date are required", common.ErrorValidation)
	}
	invDate, err := time.Parse(DateLayout, inv.InvoiceDate)
	if err != nil {
		return fmt.Errorf("%w: invalid invoice date", common.ErrorValidation)
	}
	dueDate, err := time.Parse(DateLayout, inv.DueDate)
	if err != nil {
		return fmt.Errorf("%w: invalid due date", common.ErrorValidation)
	}
	if invDate.After(dueDate) {
		return fmt.Errorf("%w: due date cannot precede invoice date", common.ErrorValidation)
	}
	switch inv.Status {
	case StatusPaid, StatusPending, StatusOverdue:
	default:
		return fmt.Errorf("%w: unknown status %q", common.ErrorValidation, inv.Status)
	}
	for i, it := range inv.Items {
		if it.Quantity < 1 {
			return fmt.Errorf("%w: item %d quantity must be at least 1", common.ErrorValidation, i+1)
		}
		if it.Price < 0 {
			return fmt.Errorf("%w: item %d price cannot be negative", common.ErrorValidation, i+1)
		}
	}
	return nil
}
