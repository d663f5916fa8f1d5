// Package postgres provides PostgreSQL-specific implementations for the data
// storage interfaces defined in the internal/store package.
//
// It also owns the schema: migrations are embedded in the binary and applied
// with goose through Migrate.
package postgres
