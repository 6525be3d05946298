// Package redisstore implements the name ledger on Redis.
//
// Entries are stored as JSON under a configurable key prefix. SetNX gives
// Add its duplicate-key detection. Release is a read-modify-write per key
// without a transaction, which is safe under the engine's single-writer
// assumption; callers sharing a ledger across processes already need
// external serialization for generate-and-register.
package redisstore
