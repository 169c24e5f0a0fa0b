// Package memory provides in-memory storage implementations.
//
// Records live in mutex-guarded maps with sequential IDs. Listings are
// ordered by ID so pagination is stable across calls.
package memory
