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

// ListCustomers prints the customers matching query, preceded by the
// dashboard figures.
func (a *App) ListCustomers(ctx context.Context, query string) error {
	stats, err := a.customers.Stats(ctx)
	if err != nil {
		a.logger.Error(ctx, "computing customer stats", "error", err)
		return err
	}
	list, err := a.customers.List(ctx, query)
	if err != nil {
		a.logger.Error(ctx, "listing customers", "error", err)
		return err
	}

	fmt.Fprintf(a.out, "Customers: %d total, %d active this month, %.1f avg orders\n",
		stats.Total, stats.ActiveThisMonth, stats.AvgOrders)

	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tCOMPANY\tEMAIL\tPHONE\tORDERS\tLAST ORDER")
	for _, c := range list {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%d\t%s\n",
			c.ID, c.Name, c.Company, c.Email, c.Phone, c.TotalOrders, c.LastOrder)
	}
	return w.Flush()
}

func (a *App) promptCustomer(base models.Customer) (*models.Customer, error) {
	var err error
	c := base
	if c.Name, err = GetDefaultedText(a.reader, "Name", base.Name, os.Stdout); err != nil {
		return nil, err
	}
	if c.Company, err = GetDefaultedText(a.reader, "Company", base.Company, os.Stdout); err != nil {
		return nil, err
	}
	if c.Email, err = GetDefaultedText(a.reader, "Email", base.Email, os.Stdout); err != nil {
		return nil, err
	}
	if c.Phone, err = GetDefaultedText(a.reader, "Phone (10 digits)", base.Phone, os.Stdout); err != nil {
		return nil, err
	}
	if c.Address, err = GetDefaultedText(a.reader, "Address", base.Address, os.Stdout); err != nil {
		return nil, err
	}
	orders, err := GetDefaultedText(a.reader, "Total orders", strconv.Itoa(base.TotalOrders), os.Stdout)
	if err != nil {
		return nil, err
	}
	if c.TotalOrders, err = strconv.Atoi(orders); err != nil {
		return nil, err
	}
	if c.LastOrder, err = GetDefaultedText(a.reader, "Last order date (YYYY-MM-DD, empty for none)", base.LastOrder, os.Stdout); err != nil {
		return nil, err
	}
	return &c, nil
}

func (a *App) AddCustomer(ctx context.Context) error {
	c, err := a.promptCustomer(models.Customer{})
	if err != nil {
		return err
	}
	created, err := a.customers.Create(ctx, c)
	if err != nil {
		if errors.Is(err, common.ErrorValidation) {
			printlnFn("Not saved:", err.Error())
			return err
		}
		a.logger.Error(ctx, "creating customer", "error", err)
		return err
	}
	printlnFn("Customer saved with id", created.ID)
	return nil
}

func (a *App) EditCustomer(ctx context.Context) error {
	id, err := GetInt(a.reader, "Customer id", os.Stdout)
	if err != nil {
		return err
	}
	current, err := a.customers.Get(ctx, int64(id))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			printlnFn("No customer with id", id)
			return err
		}
		a.logger.Error(ctx, "loading customer", "error", err)
		return err
	}

	edited, err := a.promptCustomer(*current)
	if err != nil {
		return err
	}
	if err := a.customers.Update(ctx, current.ID, edited); err != nil {
		if errors.Is(err, common.ErrorValidation) {
			printlnFn("Not saved:", err.Error())
			return err
		}
		a.logger.Error(ctx, "updating customer", "error", err)
		return err
	}
	printlnFn("Customer updated.")
	return nil
}

func (a *App) DeleteCustomer(ctx context.Context) error {
	id, err := GetInt(a.reader, "Customer id", os.Stdout)
	if err != nil {
		return err
	}
	ok, err := GetYesNo(a.reader, "Delete this customer?", os.Stdout)
	if err != nil {
		return err
	}
	if !ok {
		printlnFn("Cancelled.")
		return nil
	}
	if err := a.customers.Delete(ctx, int64(id)); err != nil {
		a.logger.Error(ctx, "deleting customer", "error", err)
		return err
	}
	printlnFn("Customer deleted.")
	return nil
}
