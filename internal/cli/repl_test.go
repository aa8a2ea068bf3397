package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"
)

type fakeExec struct {
	loggedIn bool
	calls    []string
	lastArg  string
}

func (f *fakeExec) record(name string) error {
	f.calls = append(f.calls, name)
	return nil
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Register(ctx context.Context) error {
	return f.record("register")
}
func (f *fakeExec) Login(ctx context.Context) error {
	f.loggedIn = true
	return f.record("login")
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.loggedIn = false
	return f.record("logout")
}
func (f *fakeExec) ListCustomers(ctx context.Context, query string) error {
	f.lastArg = query
	return f.record("customers")
}
func (f *fakeExec) AddCustomer(ctx context.Context) error    { return f.record("addcustomer") }
func (f *fakeExec) EditCustomer(ctx context.Context) error   { return f.record("editcustomer") }
func (f *fakeExec) DeleteCustomer(ctx context.Context) error { return f.record("delcustomer") }
func (f *fakeExec) ListProducts(ctx context.Context, query string) error {
	f.lastArg = query
	return f.record("products")
}
func (f *fakeExec) AddProduct(ctx context.Context) error    { return f.record("addproduct") }
func (f *fakeExec) EditProduct(ctx context.Context) error   { return f.record("editproduct") }
func (f *fakeExec) DeleteProduct(ctx context.Context) error { return f.record("delproduct") }
func (f *fakeExec) LowStock(ctx context.Context) error      { return f.record("lowstock") }
func (f *fakeExec) ListInvoices(ctx context.Context, query string) error {
	f.lastArg = query
	return f.record("invoices")
}
func (f *fakeExec) NewInvoice(ctx context.Context) error    { return f.record("newinvoice") }
func (f *fakeExec) EditInvoice(ctx context.Context) error   { return f.record("editinvoice") }
func (f *fakeExec) DeleteInvoice(ctx context.Context) error { return f.record("delinvoice") }
func (f *fakeExec) Search(ctx context.Context) error        { return f.record("search") }
func (f *fakeExec) ShowReport(ctx context.Context) error    { return f.record("report") }
func (f *fakeExec) ExportReport(ctx context.Context) error  { return f.record("export") }

func silencePrintln(t *testing.T) {
	t.Helper()
	orig := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = orig })
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	silencePrintln(t)

	input := strings.NewReader(strings.Join([]string{
		"help",
		"login",
		"help",
		"customers acme corp",
		"addproduct",
		"invoices",
		"report",
		"foobar",
		"exit",
	}, "\n"))

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "s" }, bufio.NewScanner(input))

	want := []string{"login", "customers", "addproduct", "invoices", "report"}
	idx := 0
	for _, c := range exec.calls {
		if idx < len(want) && c == want[idx] {
			idx++
		}
	}
	if idx != len(want) {
		t.Fatalf("commands order mismatch: got %v, want subseq %v", exec.calls, want)
	}
}

func TestRunREPL_QueryArgsJoined(t *testing.T) {
	silencePrintln(t)

	input := strings.NewReader("customers acme corp\nexit\n")
	exec := &fakeExec{loggedIn: true}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewScanner(input))

	if exec.lastArg != "acme corp" {
		t.Fatalf("got query %q", exec.lastArg)
	}
}

func TestRunREPL_CommandsGatedUntilLogin(t *testing.T) {
	silencePrintln(t)

	input := strings.NewReader("customers\ninvoices\nexport\nquit\n")
	exec := &fakeExec{loggedIn: false}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewScanner(input))

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls before login: %v", exec.calls)
	}
}

func TestRunREPL_ExitsOnEOF(t *testing.T) {
	silencePrintln(t)

	input := strings.NewReader("lowstock\n")
	exec := &fakeExec{loggedIn: true}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewScanner(input))

	if len(exec.calls) != 1 || exec.calls[0] != "lowstock" {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}
