// Package services contains the application services of Invoicor: the
// authentication gate and the customer, inventory, invoice, and reporting
// services. Services own validation, id and number generation, search, and
// derived figures; persistence stays in the repositories.
package services

import (
	"strings"

	"github.com/binayakpanigrahi011-debug/Invoicor/internal/models"
)

// The filters are pure functions over in-memory collections. Debouncing of
// interactive input is a caller concern and never happens here.

func matches(query string, fields ...string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), query) {
			return true
		}
	}
	return false
}

// FilterCustomers returns the customers whose name, company, email, address,
// or phone contains query, case-insensitively. An empty query matches all.
func FilterCustomers(query string, list []models.Customer) []models.Customer {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return list
	}
	out := make([]models.Customer, 0, len(list))
	for _, c := range list {
		if matches(query, c.Name, c.Company, c.Email, c.Address, c.Phone) {
			out = append(out, c)
		}
	}
	return out
}

// FilterProducts returns the products whose name, SKU, or category contains
// query, case-insensitively. An empty query matches all.
func FilterProducts(query string, list []models.Product) []models.Product {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return list
	}
	out := make([]models.Product, 0, len(list))
	for _, p := range list {
		if matches(query, p.Name, p.SKU, p.Category) {
			out = append(out, p)
		}
	}
	return out
}

// FilterInvoices returns the invoices whose customer name or invoice number
// contains query, further narrowed to an exact status unless status is empty
// or models.AnyStatus.
func FilterInvoices(query, status string, list []models.Invoice) []models.Invoice {
	query = strings.ToLower(strings.TrimSpace(query))
	out := make([]models.Invoice, 0, len(list))
	for _, inv := range list {
		if query != "" && !matches(query, inv.CustomerName, inv.InvoiceNumber) {
			continue
		}
		if status != "" && status != models.AnyStatus && inv.Status != status {
			continue
		}
		out = append(out, inv)
	}
	return out
}
