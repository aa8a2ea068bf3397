package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
)

// ShowReport prints the invoice report: status counts, the monthly revenue
// series, recent activity, and the outgoing reminder list.
func (a *App) ShowReport(ctx context.Context) error {
	sum := a.report.Summary()
	fmt.Fprintf(a.out, "Invoices: %d total, %d paid, %d pending, %d overdue\n",
		sum.Total, sum.Paid, sum.Pending, sum.Overdue)

	months, revenue := a.report.RevenueSeries()
	printlnFn("Revenue by month:")
	for i, m := range months {
		fmt.Fprintf(a.out, "  %s  %.0f\n", m, revenue[i])
	}

	printlnFn("Recent activity:")
	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCUSTOMER\tDATE\tAMOUNT\tSTATUS")
	for _, inv := range a.report.Recent(10) {
		fmt.Fprintf(w, "%d\t%s\t%s\t%.2f\t%s\n", inv.ID, inv.Customer, inv.Date, inv.Amount, inv.Status)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	printlnFn("Mail reminders:")
	for _, m := range a.report.Reminders() {
		fmt.Fprintf(a.out, "  %s  %s  (%s)\n", m.To, m.Subject, m.Status)
	}
	return nil
}

// ExportReport writes the report sample set as CSV to a file of the user's
// choosing, invoices.csv by default.
func (a *App) ExportReport(ctx context.Context) error {
	path, err := GetDefaultedText(a.reader, "Write CSV to", "invoices.csv", os.Stdout)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(a.report.ExportCSV()), 0o644); err != nil {
		a.logger.Error(ctx, "writing csv", "path", path, "error", err)
		return err
	}
	printlnFn("Wrote", path)
	return nil
}
