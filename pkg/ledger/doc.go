// Package ledger defines the durable uniqueness ledger the name engine
// checks before returning any candidate.
//
// An Entry claims one key (normalized slug plus extension). The Store
// contract is intentionally small — Get, duplicate-detecting Add, and bulk
// soft-Release — so it maps onto any key-value capable backend. This package
// ships an in-memory implementation; MongoDB, PostgreSQL, and Redis backends
// live in the mongostore, pgstore, and redisstore subpackages.
//
// Entries are soft-deleted: Release flips a flag instead of removing the row,
// preserving the audit trail while letting a released slug be issued again.
package ledger
