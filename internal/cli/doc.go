// Package cli provides the interactive Invoicor command-line client.
//
// It wires configuration, the durable and session stores, the application
// services, and an interactive REPL. Typical flow: restore a remembered
// session if one is still valid, then execute user commands.
//
// Key features:
//   - Register / Login with an optional remembered session / Logout
//   - Customer, product, and invoice management with validation
//   - Incremental debounced search over any collection
//   - Invoice report with CSV export
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
