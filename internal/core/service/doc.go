// Package service provides domain services for FleetDesk.
//
// Domain services contain pure business logic and orchestrate operations
// on domain models. They define interfaces for storage dependencies,
// allowing for dependency injection and testability.
//
// This package contains:
//
//   - AuthService: credential authentication against the administrator store
//   - TokenService: JWT issuance, verification and role authorization
//   - AdministratorService: administrator creation and queries
//   - VehicleService: vehicle CRUD
//
// Services are stateless and thread-safe. Authorization is deliberately
// uniform: every authentication or authorization failure surfaces the
// same way so a caller cannot probe which check rejected it.
package service
