// Package domain defines the core domain models for FleetDesk:
// administrators, vehicles, roles, draft validation, and the structured
// error type shared by all layers.
package domain
