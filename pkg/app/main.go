package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ghuser/cartshop/pkg/cache"
	"github.com/ghuser/cartshop/pkg/config"
	"github.com/ghuser/cartshop/pkg/events"
	"github.com/ghuser/cartshop/pkg/idgen"
	"github.com/ghuser/cartshop/pkg/logger"
)

// Application holds shared infrastructure dependencies for all services.
// Build it once per process with New and pass it to each service container.
//
// Logging: app.Logger is backed by a trace-aware handler; use slog's context methods
// and trace_id, span_id, and request_id are injected automatically:
//
//	app.Logger.InfoContext(ctx, "bill committed", "bill_id", id)
//	app.Logger.ErrorContext(ctx, "failed to publish", "error", err)
//
// Use app.Logger.Info/Error (no context) only for startup and shutdown messages.
type Application struct {
	Config   *config.Config
	Logger   logger.Logger
	EventBus *events.EventBus
	Redis    *cache.RedisClient // nil when REDIS_URL is empty
	IDs      idgen.Generator
	Stores   *Stores
}

// New builds the shop: ID generator, in-memory stores (seeded when
// cfg.SeedSampleData is set), event bus and, if cfg.RedisURL is set, Redis.
func New(ctx context.Context, cfg *config.Config, log logger.Logger) (*Application, error) {
	ids, err := idgen.NewSnowflake(cfg.NodeID)
	if err != nil {
		return nil, err
	}

	stores := NewStores()
	if cfg.SeedSampleData {
		if err := Seed(ctx, stores, ids, time.Now()); err != nil {
			return nil, fmt.Errorf("seed sample data: %w", err)
		}
		log.Info("sample data loaded")
	}

	a := &Application{
		Config:   cfg,
		Logger:   log,
		EventBus: events.NewEventBus(log),
		IDs:      ids,
		Stores:   stores,
	}

	if cfg.RedisURL != "" {
		rc, err := cache.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			_ = a.EventBus.Close()
			return nil, err
		}
		a.Redis = rc
		log.Info("redis connected")
	} else {
		log.Info("REDIS_URL not set, bill summary cache disabled")
	}

	return a, nil
}

// Close releases the event bus and Redis connections.
func (a *Application) Close() error {
	return errors.Join(a.EventBus.Close(), a.Redis.Close())
}
