package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/binayakpanigrahi011-debug/Invoicor/internal/common"
	"github.com/binayakpanigrahi011-debug/Invoicor/internal/models"
)

// ListInvoices prints the invoices matching query across all statuses.
func (a *App) ListInvoices(ctx context.Context, query string) error {
	list, err := a.invoices.List(ctx, query, models.AnyStatus)
	if err != nil {
		a.logger.Error(ctx, "listing invoices", "error", err)
		return err
	}
	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNUMBER\tCUSTOMER\tDATE\tDUE\tSTATUS\tTOTAL")
	for _, inv := range list {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%.2f\n",
			inv.ID, inv.InvoiceNumber, inv.CustomerName, inv.InvoiceDate, inv.DueDate, inv.Status, inv.TotalAmount)
	}
	return w.Flush()
}

// promptItems collects invoice lines until the user enters an empty product
// id, showing the running totals after each line. Each line is a product
// picked from the catalog; its id, name, and price are copied onto the item
// at that moment, so later catalog edits leave existing invoices alone.
func (a *App) promptItems(ctx context.Context, base []models.InvoiceItem) ([]models.InvoiceItem, error) {
	items := base
	if len(items) > 0 {
		keep, err := GetYesNo(a.reader, fmt.Sprintf("Keep the current %d item(s)?", len(items)), os.Stdout)
		if err != nil {
			return nil, err
		}
		if !keep {
			items = nil
		}
	}

	catalog, err := a.inventory.List(ctx, "")
	if err != nil {
		a.logger.Error(ctx, "listing products", "error", err)
		return nil, err
	}
	if len(catalog) == 0 && len(items) == 0 {
		printlnFn("No products in the catalog; add one first.")
		return nil, nil
	}
	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPRODUCT\tPRICE")
	for _, p := range catalog {
		fmt.Fprintf(w, "%d\t%s\t%.2f\n", p.ID, p.Name, p.Price)
	}
	if err := w.Flush(); err != nil {
		return nil, err
	}

	for {
		line, err := GetSimpleText(a.reader, "Product id (empty to finish)", os.Stdout)
		if err != nil {
			return nil, err
		}
		if line == "" {
			break
		}
		id, err := strconv.ParseInt(line, 10, 64)
		if err != nil {
			printlnFn("Not a valid id:", line)
			continue
		}
		product, err := a.inventory.Get(ctx, id)
		if err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				printlnFn("No product with id", id)
				continue
			}
			a.logger.Error(ctx, "loading product", "error", err)
			return nil, err
		}
		qty, err := GetInt(a.reader, "Quantity", os.Stdout)
		if err != nil {
			return nil, err
		}
		items = append(items, models.InvoiceItem{
			ProductID:   product.ID,
			ProductName: product.Name,
			Quantity:    qty,
			Price:       product.Price,
		})

		t := models.CalculateTotals(items)
		fmt.Fprintf(a.out, "Subtotal %.2f, tax %.2f, total %.2f\n", t.Subtotal, t.Tax, t.Total)
	}
	return items, nil
}

// promptInvoice collects the invoice header and items. An existing customer
// can be picked to fill in the name, email, and address; the values are
// copied onto the invoice and stay editable, so the invoice keeps what was
// billed even if the customer record changes later.
func (a *App) promptInvoice(ctx context.Context, base models.Invoice) (*models.Invoice, error) {
	line, err := GetSimpleText(a.reader, "Existing customer id to fill from (empty to skip)", os.Stdout)
	if err != nil {
		return nil, err
	}
	if line != "" {
		id, convErr := strconv.ParseInt(line, 10, 64)
		if convErr != nil {
			printlnFn("Not a valid id:", line)
		} else if c, getErr := a.customers.Get(ctx, id); getErr != nil {
			if !errors.Is(getErr, common.ErrorNotFound) {
				a.logger.Error(ctx, "loading customer", "error", getErr)
				return nil, getErr
			}
			printlnFn("No customer with id", id)
		} else {
			base.CustomerName = c.Name
			base.CustomerEmail = c.Email
			base.CustomerAddress = c.Address
		}
	}

	inv := base
	if inv.CustomerName, err = GetDefaultedText(a.reader, "Customer name", base.CustomerName, os.Stdout); err != nil {
		return nil, err
	}
	if inv.CustomerEmail, err = GetDefaultedText(a.reader, "Customer email", base.CustomerEmail, os.Stdout); err != nil {
		return nil, err
	}
	if inv.CustomerAddress, err = GetDefaultedText(a.reader, "Customer address", base.CustomerAddress, os.Stdout); err != nil {
		return nil, err
	}
	if inv.InvoiceDate, err = GetDefaultedText(a.reader, "Invoice date (YYYY-MM-DD)", base.InvoiceDate, os.Stdout); err != nil {
		return nil, err
	}
	if inv.DueDate, err = GetDefaultedText(a.reader, "Due date (YYYY-MM-DD)", base.DueDate, os.Stdout); err != nil {
		return nil, err
	}
	status := base.Status
	if status == "" {
		status = models.StatusPending
	}
	if inv.Status, err = GetDefaultedText(a.reader, "Status (Paid/Pending/Overdue)", status, os.Stdout); err != nil {
		return nil, err
	}
	if inv.Notes, err = GetDefaultedText(a.reader, "Notes", base.Notes, os.Stdout); err != nil {
		return nil, err
	}
	if inv.Items, err = a.promptItems(ctx, base.Items); err != nil {
		return nil, err
	}
	return &inv, nil
}

func (a *App) NewInvoice(ctx context.Context) error {
	inv, err := a.promptInvoice(ctx, models.Invoice{})
	if err != nil {
		return err
	}
	created, err := a.invoices.Create(ctx, inv)
	if err != nil {
		if errors.Is(err, common.ErrorValidation) {
			printlnFn("Not saved:", err.Error())
			return err
		}
		a.logger.Error(ctx, "creating invoice", "error", err)
		return err
	}
	printlnFn("Invoice", created.InvoiceNumber, "saved, total", strconv.FormatFloat(created.TotalAmount, 'f', 2, 64))
	return nil
}

func (a *App) EditInvoice(ctx context.Context) error {
	id, err := GetInt(a.reader, "Invoice id", os.Stdout)
	if err != nil {
		return err
	}
	current, err := a.invoices.Get(ctx, int64(id))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			printlnFn("No invoice with id", id)
			return err
		}
		a.logger.Error(ctx, "loading invoice", "error", err)
		return err
	}

	edited, err := a.promptInvoice(ctx, *current)
	if err != nil {
		return err
	}
	if err := a.invoices.Update(ctx, current.ID, edited); err != nil {
		if errors.Is(err, common.ErrorValidation) {
			printlnFn("Not saved:", err.Error())
			return err
		}
		a.logger.Error(ctx, "updating invoice", "error", err)
		return err
	}
	printlnFn("Invoice", current.InvoiceNumber, "updated.")
	return nil
}

func (a *App) DeleteInvoice(ctx context.Context) error {
	id, err := GetInt(a.reader, "Invoice id", os.Stdout)
	if err != nil {
		return err
	}
	ok, err := GetYesNo(a.reader, "Delete this invoice?", os.Stdout)
	if err != nil {
		return err
	}
	if !ok {
		printlnFn("Cancelled.")
		return nil
	}
	if err := a.invoices.Delete(ctx, int64(id)); err != nil {
		a.logger.Error(ctx, "deleting invoice", "error", err)
		return err
	}
	printlnFn("Invoice deleted.")
	return nil
}
