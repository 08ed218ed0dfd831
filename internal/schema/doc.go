// Package schema provides the field catalog a binder resolves column
// references against, plus loaders for the two catalog sources: YAML schema
// files and live SQLite tables.
//
// The catalog itself is immutable after construction and safe for concurrent
// readers. The loaders do file and database I/O; they run at setup time,
// outside the pure semantic core.
package schema
