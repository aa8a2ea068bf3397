package services

import (
	"strconv"
	"strings"
)

// ReportInvoice is one row of the reporting sample set. The set is fixed and
// independent of the stored invoice collection.
type ReportInvoice struct {
	ID       int
	Customer string
	Date     string
	Amount   float64
	Status   string
}

// ReportSummary carries the status counts shown at the top of the report.
type ReportSummary struct {
	Total   int
	Paid    int
	Pending int
	Overdue int
}

// MailReminder is one entry of the outgoing reminder list.
type MailReminder struct {
	To      string
	Subject string
	Status  string
}

// ReportService aggregates the fixed reporting sample set: status counts, the
// monthly revenue series, recent activity, reminders, and the CSV export.
// Rendering charts and printing are caller concerns.
type ReportService struct {
	invoices  []ReportInvoice
	months    []string
	revenue   []float64
	reminders []MailReminder
}

func NewReportService() *ReportService {
	return &ReportService{
		invoices: []ReportInvoice{
			{ID: 101, Customer: "Acme Corp", Date: "2025-10-01", Amount: 1200, Status: "Paid"},
			{ID: 102, Customer: "Beta LLC", Date: "2025-10-05", Amount: 550, Status: "Pending"},
			{ID: 103, Customer: "Gamma Inc", Date: "2025-09-20", Amount: 320, Status: "Paid"},
			{ID: 104, Customer: "Delta Co", Date: "2025-11-01", Amount: 780, Status: "Pending"},
			{ID: 105, Customer: "Epsilon", Date: "2025-08-15", Amount: 220, Status: "Overdue"},
		},
		months:  []string{"Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov"},
		revenue: []float64{2400, 2800, 2600, 3000, 3200, 3100, 3500, 4200},
		reminders: []MailReminder{
			{To: "client1@acme.com", Subject: "Invoice #102 - Reminder", Status: "Pending"},
			{To: "client2@beta.com", Subject: "Invoice #104 - Reminder", Status: "Pending"},
			{To: "client3@gamma.com", Subject: "Invoice #103 - Paid", Status: "Sent"},
		},
	}
}

// Invoices returns the full sample set in its fixed order.
func (s *ReportService) Invoices() []ReportInvoice {
	return s.invoices
}

// Summary counts the sample invoices by status, case-insensitively.
func (s *ReportService) Summary() ReportSummary {
	sum := ReportSummary{Total: len(s.invoices)}
	for _, inv := range s.invoices {
		switch strings.ToLower(inv.Status) {
		case "paid":
			sum.Paid++
		case "pending":
			sum.Pending++
		case "overdue":
			sum.Overdue++
		}
	}
	return sum
}

// RevenueSeries returns the month labels and the revenue value for each.
func (s *ReportService) RevenueSeries() ([]string, []float64) {
	return s.months, s.revenue
}

// Recent returns the first n sample invoices, or all of them when fewer
// exist.
func (s *ReportService) Recent(n int) []ReportInvoice {
	if n > len(s.invoices) {
		n = len(s.invoices)
	}
	return s.invoices[:n]
}

// Reminders returns the outgoing mail reminder list.
func (s *ReportService) Reminders() []MailReminder {
	return s.reminders
}

// ExportCSV renders the sample set as CSV: a header line followed by one row
// per invoice, fields joined with commas and rows with newlines. Values are
// written as-is, without quoting or escaping; amounts use the shortest exact
// decimal form.
func (s *ReportService) ExportCSV() string {
	lines := make([]string, 0, len(s.invoices)+1)
	lines = append(lines, "id,customer,date,amount,status")
	for _, inv := range s.invoices {
		lines = append(lines, strings.Join([]string{
			strconv.Itoa(inv.ID),
			inv.Customer,
			inv.Date,
			strconv.FormatFloat(inv.Amount, 'f', -1, 64),
			inv.Status,
		}, ","))
	}
	return strings.Join(lines, "\n")
}
