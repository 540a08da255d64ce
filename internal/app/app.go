// Package app wires the client together: config loading, observability init,
// session persistence, navigation state, and the transport chain. The cmd
// binary delegates to app.Bootstrap so startup and shutdown order live in
// one place.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/staffihq/staffi-go/internal/api"
	"github.com/staffihq/staffi-go/internal/config"
	"github.com/staffihq/staffi-go/internal/domain"
	"github.com/staffihq/staffi-go/internal/guard"
	"github.com/staffihq/staffi-go/internal/nav"
	"github.com/staffihq/staffi-go/internal/notify"
	"github.com/staffihq/staffi-go/internal/observability"
	"github.com/staffihq/staffi-go/internal/session"
	"github.com/staffihq/staffi-go/internal/translate"
	"github.com/staffihq/staffi-go/internal/transport"
)

// Version is stamped at build time via -ldflags.
var Version = "0.1.0"

// App bundles everything a front end needs to talk to the backend.
type App struct {
	Config   *config.Config
	Logger   *slog.Logger
	Session  *session.Session
	History  *nav.History
	Notifier notify.Notifier
	Router   *guard.Router
	Client   *api.Client
}

// Bootstrap loads config, initializes observability, opens the session store,
// and composes the transport chain. The returned shutdown function flushes
// OTEL providers in reverse startup order and must be called on exit.
func Bootstrap(ctx context.Context) (*App, func(context.Context) error, error) {
	cfg, err := config.Load(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	logger := observability.InitLogger(observability.LogConfig{
		Level:       cfg.LogLevel,
		Format:      cfg.LogFormat,
		ServiceName: cfg.OTEL.ServiceName,
		Environment: cfg.Environment,
	})

	tracerProvider, err := observability.InitTracer(ctx, observability.TracerConfig{
		ServiceName:    cfg.OTEL.ServiceName,
		ServiceVersion: Version,
		Environment:    cfg.Environment,
		OTLPEndpoint:   cfg.OTEL.Endpoint,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("initialize tracer: %w", err)
	}

	metricsProvider, err := observability.InitMetrics(ctx, observability.MetricsConfig{
		ServiceName:    cfg.OTEL.ServiceName,
		ServiceVersion: Version,
		Environment:    cfg.Environment,
		OTLPEndpoint:   cfg.OTEL.Endpoint,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("initialize metrics: %w", err)
	}

	var store session.Store
	if cfg.Session.Path != "" {
		fileStore, err := session.OpenFileStore(cfg.Session.Path)
		if err != nil {
			return nil, nil, fmt.Errorf("open session store: %w", err)
		}
		store = fileStore
	} else {
		store = session.NewMemStore()
	}
	sess := session.New(store, domain.RealClock{})

	history := nav.NewHistory("/")
	notifier := notify.NewLogNotifier(logger)

	handler := transport.New(transport.Options{
		HTTPClient:     &http.Client{Timeout: cfg.API.Timeout},
		Session:        sess,
		Navigator:      history,
		Catalog:        translate.Default(),
		Notifier:       notifier,
		PublicPaths:    cfg.Guard.PublicPaths,
		LoginEndpoint:  api.LoginEndpoint,
		NotifyDuration: cfg.Notify.Duration,
	})

	app := &App{
		Config:   cfg,
		Logger:   logger,
		Session:  sess,
		History:  history,
		Notifier: notifier,
		Router:   guard.NewRouter(guard.DefaultTable(), sess, history),
		Client:   api.NewClient(cfg.API.BaseURL, handler, sess),
	}

	// Shutdown order is the explicit reverse of startup: metrics first,
	// then tracer.
	shutdown := func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()

		if err := metricsProvider.Shutdown(ctx); err != nil {
			logger.Error("failed to shutdown metrics", slog.String("error", err.Error()))
		}
		if err := tracerProvider.Shutdown(ctx); err != nil {
			logger.Error("failed to shutdown tracer", slog.String("error", err.Error()))
		}
		return nil
	}

	return app, shutdown, nil
}
