// Package invoices provides the persistence layer for invoice records.
//
// Invoice numbers ("INV-NNN") come from a monotonic counter stored next to
// the collection, not from the last array entry: numbers freed by deletion
// are never reissued, and the collection plus counter commit in a single
// atomic write. On a store that predates the counter key, the counter is
// initialized from the highest number already present.
package invoices
