// Package storage defines the shared pagination contract for FleetDesk
// repositories.
//
// Two implementations exist:
//
//   - memory: mutex-guarded maps, used by default and in tests
//   - sqlstore: database/sql over a relational driver
//
// Both stores assign sequential numeric IDs and seed the bootstrap
// administrator so a fresh deployment is immediately usable.
package storage
