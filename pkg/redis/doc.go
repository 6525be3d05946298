// Package redis connects to a Redis server with retry and
// environment-driven configuration. It backs the ledger's redisstore.
package redis
