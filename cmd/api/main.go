package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	_ "github.com/ghuser/cartshop/docs/swagger"
	"github.com/ghuser/cartshop/pkg/app"
	"github.com/ghuser/cartshop/pkg/config"
	"github.com/ghuser/cartshop/pkg/httpx"
	"github.com/ghuser/cartshop/pkg/logger"
	"github.com/ghuser/cartshop/pkg/telemetry"
	billingApi "github.com/ghuser/cartshop/services/billing/application/api"
	billingServices "github.com/ghuser/cartshop/services/billing/application/services"
	billingSubscribers "github.com/ghuser/cartshop/services/billing/application/subscribers"
	catalogApi "github.com/ghuser/cartshop/services/catalog/application/api"
	catalogServices "github.com/ghuser/cartshop/services/catalog/application/services"
	customerApi "github.com/ghuser/cartshop/services/customer/application/api"
	customerServices "github.com/ghuser/cartshop/services/customer/application/services"
)

// @title					Cart Shop API
// @version				1.0
// @description			Golf-cart repair shop point of sale: customers, catalog, active bill and bill ledger.
// @contact.name			Shop Support
// @license.name			MIT
// @license.url			https://opensource.org/licenses/MIT
// @host					localhost:8080
// @BasePath				/api
// @schemes				http https
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := config.ValidateForProduction(cfg); err != nil {
		slog.Error("production config validation failed", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg)

	// Telemetry: OTel tracing + metrics
	ctx, stop := context.WithCancel(context.Background())
	defer stop()
	otelShutdown, metricsHandler, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(context.Background()) //nolint:errcheck

	// Crash reporting: Sentry (optional; log and continue on failure)
	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	a, err := app.New(ctx, cfg, log)
	if err != nil {
		log.Error("failed to initialize shop", "error", err)
		os.Exit(1) //nolint:gocritic // intentional: startup failure, deferred flushes are best-effort
	}
	defer a.Close() //nolint:errcheck

	// The active bill lives in the billing container, so build it exactly once.
	billing, err := billingServices.New(a)
	if err != nil {
		log.Error("failed to initialize billing", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	if err := billingSubscribers.Register(ctx, a.EventBus, billing, log); err != nil {
		log.Error("failed to register subscribers", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	r := httpx.NewRouter(
		httpx.ServerConfig{
			ServiceName:        cfg.ServiceName,
			IsDevelopment:      cfg.Environment == config.EnvDevelopment,
			CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		},
		logger.Middleware(log),
		logger.Recovery(log),
		telemetry.SentryMiddleware(),
		otelhttp.NewMiddleware(cfg.ServiceName),
	)

	r.Get("/health", httpx.HealthHandler(healthChecks(a)...))
	r.Get("/metrics", metricsHandler.ServeHTTP)
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	r.Route("/api", func(r chi.Router) {
		registerRoutes(r, a, billing)
	})

	srv := httpx.NewServer(cfg.HTTPAddr, r)

	go func() {
		log.Info("server listening", "addr", srv.Addr, "env", cfg.Environment,
			"customer_switch", cfg.CustomerSwitchPolicy)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("forced shutdown", "error", err)
		os.Exit(1)
	}
	stop()
	log.Info("server stopped")
}

// healthChecks probes the event bus and, when configured, Redis.
func healthChecks(a *app.Application) []httpx.HealthCheck {
	checks := []httpx.HealthCheck{{Name: "event_bus", Checker: a.EventBus}}
	redis := httpx.HealthCheck{Name: "redis"}
	if a.Redis != nil {
		redis.Checker = a.Redis
	}
	return append(checks, redis)
}

// registerRoutes mounts all service routes under /api.
// Add each new service's route function here.
func registerRoutes(r chi.Router, a *app.Application, billing *billingServices.Services) {
	customerApi.CustomerRoutes(r, customerServices.New(a))
	catalogApi.CatalogRoutes(r, catalogServices.New(a))
	billingApi.BillingRoutes(r, billing)
}
