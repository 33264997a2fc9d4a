package app

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/yungbote/agencyhub-backend/internal/data/store"
	httpserver "github.com/yungbote/agencyhub-backend/internal/http"
	"github.com/yungbote/agencyhub-backend/internal/observability"
	"github.com/yungbote/agencyhub-backend/internal/platform/logger"
)

type App struct {
	Log      *logger.Logger
	Store    store.Store
	Server   *httpserver.Server
	Cfg      Config
	Services Services

	otelShutdown func(context.Context) error
}

func New() (*App, error) {
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	log.Info("Loading environment variables...")
	cfg, err := LoadConfig(log)
	if err != nil {
		log.Sync()
		return nil, fmt.Errorf("load config: %w", err)
	}
	return NewWithConfig(cfg, log)
}

// NewWithConfig wires the app from an already loaded config.
func NewWithConfig(cfg Config, log *logger.Logger) (*App, error) {
	otelShutdown := observability.InitOTel(context.Background(), log, cfg.Otel)

	st, err := OpenStore(cfg, log)
	if err != nil {
		_ = otelShutdown(context.Background())
		log.Sync()
		return nil, fmt.Errorf("init store: %w", err)
	}

	serviceset := wireServices(st, log, cfg)
	handlerset := wireHandlers(log, st, serviceset)
	middleware := wireMiddleware(log, cfg)
	server := wireRouter(log, cfg, handlerset, middleware)

	return &App{
		Log:          log,
		Store:        st,
		Server:       server,
		Cfg:          cfg,
		Services:     serviceset,
		otelShutdown: otelShutdown,
	}, nil
}

func (a *App) Run(addr string) error {
	if a == nil || a.Server == nil {
		return fmt.Errorf("app not initialized")
	}
	a.Log.Info("Server listening", "addr", addr, "store", a.Cfg.StoreDriver)
	return a.Server.Run(addr)
}

// Shutdown stops accepting requests and waits for in-flight ones until ctx expires.
func (a *App) Shutdown(ctx context.Context) error {
	if a == nil || a.Server == nil {
		return nil
	}
	return a.Server.Shutdown(ctx)
}

func (a *App) Close() {
	if a == nil {
		return
	}
	if a.Store != nil {
		if err := a.Store.Close(); err != nil {
			a.Log.Warn("Store close failed", "error", err)
		}
		a.Store = nil
	}
	if a.otelShutdown != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := a.otelShutdown(ctx); err != nil {
			a.Log.Warn("OTel shutdown failed", "error", err)
		}
		cancel()
		a.otelShutdown = nil
	}
	if a.Log != nil {
		a.Log.Sync()
	}
}
