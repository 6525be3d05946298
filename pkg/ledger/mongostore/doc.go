// Package mongostore implements the name ledger on MongoDB.
//
// Entries live in a single collection with a unique index on the key field;
// EnsureIndexes must run once before concurrent writers share the store.
package mongostore
