package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// execIface is the command surface the REPL dispatches to. App satisfies it;
// tests substitute a stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	ListCustomers(ctx context.Context, query string) error
	AddCustomer(ctx context.Context) error
	EditCustomer(ctx context.Context) error
	DeleteCustomer(ctx context.Context) error
	ListProducts(ctx context.Context, query string) error
	AddProduct(ctx context.Context) error
	EditProduct(ctx context.Context) error
	DeleteProduct(ctx context.Context) error
	LowStock(ctx context.Context) error
	ListInvoices(ctx context.Context, query string) error
	NewInvoice(ctx context.Context) error
	EditInvoice(ctx context.Context) error
	DeleteInvoice(ctx context.Context) error
	Search(ctx context.Context) error
	ShowReport(ctx context.Context) error
	ExportReport(ctx context.Context) error
}

const helpAnonymous = "Available commands: register, login, exit"
const helpLoggedIn = `Available commands:
  customers [query]   addcustomer   editcustomer   delcustomer
  products [query]    addproduct    editproduct    delproduct    lowstock
  invoices [query]    newinvoice    editinvoice    delinvoice
  search   report   export   logout   exit`

// runREPL reads lines from scanner, parses the first token as the command,
// and dispatches to a. It exits on EOF or when the user types exit or quit.
// Commands that need an account are refused until login succeeds. Handler
// errors are ignored here; handlers report their own failures.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("invoicor %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := strings.Join(parts[1:], " ")

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpLoggedIn)
			} else {
				printlnFn(helpAnonymous)
			}
			continue
		case "register":
			_ = a.Register(ctx)
			continue
		case "login":
			_ = a.Login(ctx)
			continue
		case "exit", "quit":
			printlnFn("Bye!")
			return
		}

		if !a.isLoggedIn() {
			printlnFn("Please log in first (type 'login').")
			continue
		}

		switch cmd {
		case "customers":
			_ = a.ListCustomers(ctx, args)
		case "addcustomer":
			_ = a.AddCustomer(ctx)
		case "editcustomer":
			_ = a.EditCustomer(ctx)
		case "delcustomer":
			_ = a.DeleteCustomer(ctx)
		case "products":
			_ = a.ListProducts(ctx, args)
		case "addproduct":
			_ = a.AddProduct(ctx)
		case "editproduct":
			_ = a.EditProduct(ctx)
		case "delproduct":
			_ = a.DeleteProduct(ctx)
		case "lowstock":
			_ = a.LowStock(ctx)
		case "invoices":
			_ = a.ListInvoices(ctx, args)
		case "newinvoice":
			_ = a.NewInvoice(ctx)
		case "editinvoice":
			_ = a.EditInvoice(ctx)
		case "delinvoice":
			_ = a.DeleteInvoice(ctx)
		case "search":
			_ = a.Search(ctx)
		case "report":
			_ = a.ShowReport(ctx)
		case "export":
			_ = a.ExportReport(ctx)
		case "logout":
			_ = a.Logout(ctx)
		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
