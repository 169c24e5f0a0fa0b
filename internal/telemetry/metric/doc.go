// Package metric provides Prometheus metrics for FleetDesk.
//
// It exposes metrics in Prometheus format for monitoring request
// rates, latencies, login outcomes and fleet size.
package metric
