// Package httpserver provides the HTTP server for FleetDesk.
//
// It wires the middleware chain (panic recovery, request IDs, metrics,
// rate limiting, audit logging, role-gated authorization) around the
// route table and manages the listener lifecycle.
package httpserver
