// Command fleetdesk-server runs the FleetDesk HTTP API.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	_ "modernc.org/sqlite"

	"github.com/fleetdesk/fleetdesk-go/internal/core/domain"
	"github.com/fleetdesk/fleetdesk-go/internal/core/service"
	"github.com/fleetdesk/fleetdesk-go/internal/infra/buildinfo"
	"github.com/fleetdesk/fleetdesk-go/internal/infra/confloader"
	"github.com/fleetdesk/fleetdesk-go/internal/infra/shutdown"
	"github.com/fleetdesk/fleetdesk-go/internal/server/config"
	"github.com/fleetdesk/fleetdesk-go/internal/server/httpserver"
	"github.com/fleetdesk/fleetdesk-go/internal/server/httpserver/handler"
	"github.com/fleetdesk/fleetdesk-go/internal/storage/memory"
	"github.com/fleetdesk/fleetdesk-go/internal/storage/sqlstore"
	"github.com/fleetdesk/fleetdesk-go/internal/telemetry/logger"
	"github.com/fleetdesk/fleetdesk-go/internal/telemetry/metric"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "fleetdesk-server:", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		configPath  = flag.String("config", "", "path to YAML config file")
		showVersion = flag.Bool("version", false, "print version and exit")
	)
	flag.Parse()

	if *showVersion {
		fmt.Println(buildinfo.String())
		return nil
	}

	cfg := config.Default()
	loader := confloader.NewLoader(confloader.WithConfigFile(*configPath))
	if err := loader.Load(cfg); err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}
	if err := config.Verify(cfg); err != nil {
		if errors.Is(err, domain.ErrMissingSigningKey) {
			return fmt.Errorf("refusing to start: %w (set FLEETDESK_AUTH__SECRET_KEY)", err)
		}
		return fmt.Errorf("invalid configuration: %w", err)
	}

	log, err := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	logger.SetDefault(log)

	log.Info("starting fleetdesk-server",
		"version", buildinfo.Version,
		"commit", buildinfo.Commit,
		"addr", cfg.Server.Addr,
		"storage_driver", cfg.Storage.Driver,
	)
	log.Debug("configuration loaded", "config", config.Sanitize(cfg))

	shutdownHandler := shutdown.NewHandler(cfg.Server.ShutdownTimeout)

	// Storage
	var (
		adminRepo   service.AdministratorRepository
		vehicleRepo service.VehicleRepository
	)
	switch cfg.Storage.Driver {
	case "sqlite":
		store, err := sqlstore.Open(context.Background(), "sqlite", cfg.Storage.DSN)
		if err != nil {
			return fmt.Errorf("open sqlite storage: %w", err)
		}
		shutdownHandler.OnShutdown(func(context.Context) error {
			return store.Close()
		})
		adminRepo = store.Administrators
		vehicleRepo = store.Vehicles
	default:
		adminRepo = memory.NewAdministratorStore()
		vehicleRepo = memory.NewVehicleStore()
	}

	// Services
	var comparer service.CredentialComparer
	if cfg.Auth.PasswordScheme == "bcrypt" {
		comparer = service.BcryptComparer{}
	}

	tokens, err := service.NewTokenService(cfg.Auth.SecretKey, cfg.Auth.TokenTTL)
	if err != nil {
		return fmt.Errorf("init token service: %w", err)
	}

	authSvc := service.NewAuthService(adminRepo, comparer)
	adminSvc := service.NewAdministratorService(adminRepo)
	vehicleSvc := service.NewVehicleService(vehicleRepo)

	// HTTP
	metrics := metric.NewRegistry()

	var limiters *service.RateLimiterRegistry
	if cfg.Server.RateLimit.Enabled {
		limiters = service.NewRateLimiterRegistry(cfg.Server.RateLimit.RPS, cfg.Server.RateLimit.Burst)
	}

	h := handler.New(authSvc, tokens, adminSvc, vehicleSvc, metrics, log)
	router := httpserver.NewRouter(httpserver.RouterConfig{
		Handler:  h,
		Tokens:   tokens,
		Metrics:  metrics,
		Limiters: limiters,
		Logger:   log,
	})

	server := httpserver.New(httpserver.Config{
		Addr:         cfg.Server.Addr,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}, router, log)

	shutdownHandler.OnShutdown(server.Shutdown)

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	waitErr := make(chan error, 1)
	go func() {
		waitErr <- shutdownHandler.Wait()
	}()

	select {
	case err := <-serverErr:
		// The listener stopped on its own, or Shutdown (the first hook)
		// completed during a signal-driven drain. Either way the
		// remaining hooks, storage close included, must still run.
		shutdownHandler.Trigger()
		if shutdownErr := <-waitErr; shutdownErr != nil {
			log.Error("shutdown finished with error", "error", shutdownErr)
		}
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case err := <-waitErr:
		if err != nil {
			log.Error("shutdown finished with error", "error", err)
			return err
		}
		log.Info("shutdown complete")
		return nil
	}
}
