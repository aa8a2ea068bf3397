// Package customers provides the persistence layer for customer records.
//
// # Overview
//
// The package defines a Repository interface for CRUD operations on Customer
// models and a store-backed implementation (StoreRepository) persisting the
// whole collection as one JSON array under the customers key.
//
// # Schema migration
//
// Two incompatible customer schemas historically shared the customers key:
// the canonical one with an explicit numeric id, and an abandoned one that
// identified records by array position and spelled the order count "orders".
// StoreRepository migrates the abandoned shape at load time: missing ids are
// assigned and the canonical shape is written back, so every caller only
// ever sees canonical records.
//
// # Seeding
//
// When the customers key is entirely absent (first run), the repository
// seeds the collection with a pair of demo records.
// An existing empty array is respected and stays empty.
package customers
