package storage

// Storage keys. The values are part of the on-disk contract and must not
// change without a migration.
const (
	// KeyProducts is the current product collection key.
	KeyProducts = "inventoryProducts:v1"

	// KeyProductsLegacy is the pre-rename product key, read as a fallback
	// when KeyProducts is absent, never written.
	KeyProductsLegacy = "inventoryProducts"

	KeyCustomers = "customers"
	KeyInvoices  = "invoicesData"

	// KeyInvoiceCounter holds the monotonic invoice-number counter. Kept
	// next to the collection so both commit in one SetMulti.
	KeyInvoiceCounter = "invoicesData:counter"

	// KeyUsers holds the user registry, a JSON object keyed by email.
	KeyUsers = "users"

	// KeyAuthState holds the singleton session record.
	KeyAuthState = "authState"

	// KeyTokenSecret holds the generated per-install token signing secret,
	// used when no secret is configured explicitly.
	KeyTokenSecret = "authState:secret"
)
