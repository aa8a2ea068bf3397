package cli

import (
	"context"
	"os"

	"github.com/binayakpanigrahi011-debug/Invoicor/internal/models"
)

// Search runs an incremental search session over one of the collections.
// Each refinement the user types re-runs the filter after the configured
// quiet interval, so a quick burst of corrections results in a single
// lookup. An empty line ends the session.
func (a *App) Search(ctx context.Context) error {
	kind, err := getSimpleText(a.reader, "Search what? (customers/products/invoices)", os.Stdout)
	if err != nil {
		return err
	}

	var run func(query string)
	switch kind {
	case "customers":
		run = func(query string) { _ = a.ListCustomers(ctx, query) }
	case "products":
		run = func(query string) { _ = a.ListProducts(ctx, query) }
	case "invoices":
		status, err := getSimpleText(a.reader, "Status filter (Paid/Pending/Overdue, empty for all)", os.Stdout)
		if err != nil {
			return err
		}
		if status == "" {
			status = models.AnyStatus
		}
		run = func(query string) {
			list, err := a.invoices.List(ctx, query, status)
			if err != nil {
				a.logger.Error(ctx, "searching invoices", "error", err)
				return
			}
			for _, inv := range list {
				printlnFn(inv.InvoiceNumber, inv.CustomerName, inv.Status)
			}
		}
	default:
		printlnFn("Unknown collection:", kind)
		return nil
	}

	debouncer := NewDebouncer(a.config.SearchDebounce)
	defer debouncer.Stop()

	for {
		query, err := getSimpleText(a.reader, "Query (empty to finish)", os.Stdout)
		if err != nil {
			return err
		}
		if query == "" {
			return nil
		}
		debouncer.Trigger(func() { run(query) })
	}
}
