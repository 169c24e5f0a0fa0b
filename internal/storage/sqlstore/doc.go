// Package sqlstore provides database/sql storage implementations.
//
// The schema is created on Open and the bootstrap administrator is
// seeded when the administrators table is empty. The SQL dialect is
// kept to the portable subset understood by SQLite; the actual driver
// is registered by the caller (the server binary links
// modernc.org/sqlite).
package sqlstore
