package cli

import (
	"bufio"
	"context"
	"errors"
	"io"
	"os"

	"github.com/binayakpanigrahi011-debug/Invoicor/internal/common"
	"github.com/binayakpanigrahi011-debug/Invoicor/internal/config"
	"github.com/binayakpanigrahi011-debug/Invoicor/internal/logging"
	"github.com/binayakpanigrahi011-debug/Invoicor/internal/repositories/customers"
	"github.com/binayakpanigrahi011-debug/Invoicor/internal/repositories/invoices"
	"github.com/binayakpanigrahi011-debug/Invoicor/internal/repositories/products"
	"github.com/binayakpanigrahi011-debug/Invoicor/internal/repositories/users"
	"github.com/binayakpanigrahi011-debug/Invoicor/internal/services"
	"github.com/binayakpanigrahi011-debug/Invoicor/internal/storage"
)

// App wires the stores, services, and interactive input together. One App
// runs one terminal session; the in-memory store plays the role of the
// session scope and dies with the process.
type App struct {
	config    *config.Config
	logger    logging.Logger
	auth      *services.AuthService
	customers *services.CustomerService
	inventory *services.InventoryService
	invoices  *services.InvoiceService
	report    *services.ReportService
	durable   *storage.SQLiteStore
	reader    *bufio.Reader
	out       io.Writer
	userName  string
}

func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	durable, err := storage.OpenSQLite(ctx, c.DatabasePath)
	if err != nil {
		logger.Error(ctx, "opening database", "path", c.DatabasePath, "error", err)
		return nil, err
	}
	session := storage.NewMemoryStore()

	secret, err := tokenSecret(ctx, durable, c.TokenSecret)
	if err != nil {
		logger.Error(ctx, "resolving token secret", "error", err)
		_ = durable.Close()
		return nil, err
	}

	userRepo := users.NewStoreRepository(durable)
	customerRepo := customers.NewStoreRepository(durable)
	productRepo := products.NewStoreRepository(durable)
	invoiceRepo := invoices.NewStoreRepository(durable)

	return &App{
		config:    c,
		logger:    logger,
		auth:      services.NewAuthService(userRepo, durable, session, []byte(secret), c.SessionTTL),
		customers: services.NewCustomerService(customerRepo),
		inventory: services.NewInventoryService(productRepo),
		invoices:  services.NewInvoiceService(invoiceRepo),
		report:    services.NewReportService(),
		durable:   durable,
		reader:    bufio.NewReader(os.Stdin),
		out:       os.Stdout,
	}, nil
}

// tokenSecret returns the configured signing secret, or the per-install one
// kept in the durable store, generating and persisting it on first run.
func tokenSecret(ctx context.Context, store storage.Store, configured string) (string, error) {
	if configured != "" {
		return configured, nil
	}
	raw, err := store.Get(ctx, storage.KeyTokenSecret)
	if err != nil {
		return "", err
	}
	if raw != nil {
		return string(raw), nil
	}
	secret, err := common.MakeRandHexString(32)
	if err != nil {
		return "", err
	}
	if err := store.Set(ctx, storage.KeyTokenSecret, []byte(secret)); err != nil {
		return "", err
	}
	return secret, nil
}

func (a *App) Run(ctx context.Context) {
	defer func() {
		if err := a.durable.Close(); err != nil {
			a.logger.Error(ctx, "closing database", "error", err)
		}
	}()
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.userName != ""
}

// refreshSession syncs the signed-in name with the stored session; a
// remembered session survives restarts, an expired one greets the user with
// the reason it ended.
func (a *App) refreshSession(ctx context.Context) {
	sess, err := a.auth.CurrentSession(ctx)
	switch {
	case err == nil:
		a.userName = sess.Name
	case errors.Is(err, common.ErrSessionExpired):
		a.userName = ""
		printlnFn("Your session has expired, please log in again.")
	case errors.Is(err, common.ErrNotAuthenticated):
		a.userName = ""
	default:
		a.logger.Error(ctx, "reading session", "error", err)
		a.userName = ""
	}
}
