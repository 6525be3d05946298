// Package pgstore implements the name ledger on PostgreSQL via pgx.
//
// The schema ships as embedded goose migrations; call Migrate once at
// startup before using the store.
package pgstore
