package httpserver

import (
	"net/http"

	"github.com/fleetdesk/fleetdesk-go/internal/core/domain"
	"github.com/fleetdesk/fleetdesk-go/internal/core/service"
	"github.com/fleetdesk/fleetdesk-go/internal/server/httpserver/handler"
	"github.com/fleetdesk/fleetdesk-go/internal/telemetry/logger"
	"github.com/fleetdesk/fleetdesk-go/internal/telemetry/metric"
)

// RouterConfig holds the dependencies for building the route table.
type RouterConfig struct {
	Handler *handler.Handler
	Tokens  *service.TokenService
	Metrics *metric.Registry

	// Limiters enables per-IP rate limiting when non-nil.
	Limiters *service.RateLimiterRegistry

	Logger logger.Logger
}

// NewRouter builds the route table with its middleware chains.
//
// Route access levels:
//
//	public        GET /, GET /health, GET /metrics, POST /administradores/login
//	Adm only      POST/GET /administradores, GET /administradores/{id},
//	              PUT/DELETE /veiculos/{id}
//	Adm or Editor POST/GET /veiculos, GET /veiculos/{id}
func NewRouter(cfg RouterConfig) http.Handler {
	log := cfg.Logger
	if log == nil {
		log = logger.Default()
	}

	h := cfg.Handler
	mux := http.NewServeMux()

	admOnly := RequireRoles(cfg.Tokens, domain.RoleAdmin)
	anyRole := RequireRoles(cfg.Tokens, domain.RoleAdmin, domain.RoleEditor)

	// Public routes
	mux.Handle("GET /{$}", http.HandlerFunc(h.Home))
	mux.Handle("GET /health", http.HandlerFunc(h.Health))
	if cfg.Metrics != nil {
		mux.Handle("GET /metrics", cfg.Metrics.Handler())
	}
	mux.Handle("POST /administradores/login", http.HandlerFunc(h.Login))

	// Administrator management (Adm only)
	mux.Handle("POST /administradores", admOnly(http.HandlerFunc(h.CreateAdministrator)))
	mux.Handle("GET /administradores", admOnly(http.HandlerFunc(h.ListAdministrators)))
	mux.Handle("GET /administradores/{id}", admOnly(http.HandlerFunc(h.GetAdministrator)))

	// Vehicle reads and creation (Adm or Editor)
	mux.Handle("POST /veiculos", anyRole(http.HandlerFunc(h.CreateVehicle)))
	mux.Handle("GET /veiculos", anyRole(http.HandlerFunc(h.ListVehicles)))
	mux.Handle("GET /veiculos/{id}", anyRole(http.HandlerFunc(h.GetVehicle)))

	// Vehicle mutation (Adm only)
	mux.Handle("PUT /veiculos/{id}", admOnly(http.HandlerFunc(h.UpdateVehicle)))
	mux.Handle("DELETE /veiculos/{id}", admOnly(http.HandlerFunc(h.DeleteVehicle)))

	// Outer chain, applied to every route. Order matters: recovery
	// outermost, then request IDs so everything downstream logs them.
	middlewares := []Middleware{
		Recover(log),
		RequestID(),
	}
	if cfg.Limiters != nil {
		middlewares = append(middlewares, RateLimit(cfg.Limiters, cfg.Metrics))
	}
	if cfg.Metrics != nil {
		middlewares = append(middlewares, Metrics(cfg.Metrics))
	}
	middlewares = append(middlewares, Audit(log))

	return Chain(mux, middlewares...)
}
