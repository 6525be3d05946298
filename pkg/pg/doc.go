// Package pg connects to PostgreSQL via pgx with retry and
// environment-driven configuration, and exposes the error predicates the
// ledger's pgstore relies on for duplicate-key and not-found detection.
package pg
