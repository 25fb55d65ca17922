// Package persistence provides database repository implementations.
// It uses GORM to store RSA key pairs in SQLite or PostgreSQL.
package persistence
