// Package handler implements the HTTP handlers for the FleetDesk API.
package handler
