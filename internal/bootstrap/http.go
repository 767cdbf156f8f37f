package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/ahsan-sami-turzo/BagBank-Admin-Panel-Frontend/config"
	httpx "github.com/ahsan-sami-turzo/BagBank-Admin-Panel-Frontend/internal/http"
)

// compressionMinSize keeps tiny fragments uncompressed.
const compressionMinSize = 1024

// HTTPServerConfig contains configuration for HTTP server.
type HTTPServerConfig struct {
	Config   *config.AppConfig
	Services ServiceContainer
	Logger   *slog.Logger
}

// StartHTTPServer creates and starts the HTTP server.
// Returns the server instance for graceful shutdown.
func StartHTTPServer(cfg *HTTPServerConfig) (*http.Server, error) {
	if cfg == nil {
		return nil, errors.New("http server config is required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	appCfg := cfg.Config
	if appCfg == nil {
		appCfg = &config.AppConfig{}
	}

	handler, err := buildHTTPHandler(appCfg, cfg.Services, logger)
	if err != nil {
		return nil, err
	}

	// Start server (logs "starting HTTP server" internally)
	return startServer(logger, handler, appCfg.HTTP.Addr), nil
}

func buildHTTPHandler(cfg *config.AppConfig, svcs ServiceContainer, logger *slog.Logger) (http.Handler, error) {
	var compression *httpx.CompressionConfig
	if cfg.HTTP.CompressionEnabled {
		logger.Info("HTTP compression enabled", "level", cfg.HTTP.CompressionLevel)
		compression = &httpx.CompressionConfig{
			Level:   cfg.HTTP.CompressionLevel,
			MinSize: compressionMinSize,
			Logger:  logger,
		}
	}

	h, err := httpx.NewRouter(httpx.RouterServices{
		Auth:         svcs.Auth,
		Attributes:   svcs.Attributes,
		Suppliers:    svcs.Suppliers,
		Products:     svcs.Products,
		CookieName:   cfg.HTTP.SessionCookie,
		CookieDomain: cfg.HTTP.CookieDomain,
		DurableTTL:   cfg.Session.DurableTTL,
		Compression:  compression,
		IsDev:        cfg.IsDev,
		Logger:       logger,
	})
	if err != nil {
		return nil, fmt.Errorf("build router: %w", err)
	}
	return h, nil
}

func startServer(logger *slog.Logger, handler http.Handler, addr string) *http.Server {
	// Guard against empty addr to avoid listening on Go default
	if addr == "" {
		addr = ":8080"
	}

	// WriteTimeout stays zero: the session event stream is long-lived.
	server := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadTimeout:       30 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		logger.Info("starting HTTP server", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server failed", "error", err)
		}
	}()

	return server
}

// ShutdownConfig contains dependencies for HTTP server shutdown.
type ShutdownConfig struct {
	Context context.Context
	Server  *http.Server
	Logger  *slog.Logger
}

// ShutdownHTTPServer gracefully shuts down the HTTP server.
func ShutdownHTTPServer(cfg ShutdownConfig) error {
	if cfg.Server == nil {
		return nil
	}

	if cfg.Logger != nil {
		cfg.Logger.Info("shutting down HTTP server")
	}

	shutdownCtx, cancel := context.WithTimeout(cfg.Context, 10*time.Second)
	defer cancel()

	if err := cfg.Server.Shutdown(shutdownCtx); err != nil {
		return err
	}

	if cfg.Logger != nil {
		cfg.Logger.Info("HTTP server stopped")
	}

	return nil
}
