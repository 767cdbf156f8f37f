package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ahsan-sami-turzo/BagBank-Admin-Panel-Frontend/config"
	"github.com/ahsan-sami-turzo/BagBank-Admin-Panel-Frontend/internal/adapters/memstore"
	"github.com/ahsan-sami-turzo/BagBank-Admin-Panel-Frontend/internal/adapters/reaper"
)

const shutdownWaitTimeout = 15 * time.Second

// ServiceOrchestrationConfig contains configuration for running the admin panel.
type ServiceOrchestrationConfig struct {
	Config   *config.AppConfig
	Services ServiceContainer
	Logger   *slog.Logger
}

type serviceStartupDeps struct {
	ctx    context.Context
	cfg    *ServiceOrchestrationConfig
	logger *slog.Logger
	errCh  chan<- error
}

type backgroundService struct {
	name  string
	start func(ctx context.Context) error
}

type backgroundServiceHandle struct {
	name string
	done <-chan struct{}
}

func launchBackground(ctx context.Context, deps *serviceStartupDeps, descriptor backgroundService) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := descriptor.start(ctx); err != nil {
			errMsg := fmt.Errorf("%s failed: %w", descriptor.name, err)
			select {
			case deps.errCh <- errMsg:
			case <-ctx.Done():
			default:
				deps.logger.WarnContext(ctx, "dropping background service error", "service", descriptor.name, "error", errMsg)
			}
		}
	}()

	deps.logger.InfoContext(ctx, "background service started", "service", descriptor.name)
	return done
}

func startBackgroundServices(deps *serviceStartupDeps, services []backgroundService) []backgroundServiceHandle {
	handles := make([]backgroundServiceHandle, 0, len(services))
	for _, svc := range services {
		handles = append(handles, backgroundServiceHandle{
			name: svc.name,
			done: launchBackground(deps.ctx, deps, svc),
		})
	}
	return handles
}

// newReaperRunner sweeps idle session stores and expired in-memory keys.
func newReaperRunner(cfg *config.AppConfig, svcs ServiceContainer, logger *slog.Logger) (*reaper.Runner, error) {
	sweepers := map[string]reaper.Sweeper{}
	if svcs.Sessions != nil {
		sweepers["sessions"] = svcs.Sessions
	}
	if svcs.Ephemeral != nil {
		sweepers["ephemeral"] = memstoreSweeper(svcs.Ephemeral)
	}
	if svcs.MemoryDurable != nil {
		sweepers["durable"] = memstoreSweeper(svcs.MemoryDurable)
	}
	return reaper.NewRunner(reaper.RunnerOptions{
		Sweepers: sweepers,
		Interval: cfg.Session.SweepInterval,
		Logger:   logger,
	})
}

func memstoreSweeper(a *memstore.Area) reaper.SweepFunc {
	return func(context.Context) (int, error) { return a.Sweep(), nil }
}

func newReaperBackgroundService(deps *serviceStartupDeps) (backgroundService, error) {
	runner, err := newReaperRunner(deps.cfg.Config, deps.cfg.Services, deps.logger)
	if err != nil {
		return backgroundService{}, fmt.Errorf("create reaper: %w", err)
	}
	return backgroundService{name: "session reaper", start: runner.Run}, nil
}

// RunServicesWithShutdown starts the HTTP server and the session reaper and manages
// their lifecycle. It blocks until a shutdown signal arrives or a service fails.
func RunServicesWithShutdown(cfg *ServiceOrchestrationConfig) error {
	if cfg == nil {
		return errors.New("service orchestration config is required")
	}
	if cfg.Config == nil {
		return errors.New("service orchestration config missing AppConfig")
	}
	serviceCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	// One slot per background service plus one for the HTTP server.
	errCh := make(chan error, 2)
	deps := &serviceStartupDeps{ctx: serviceCtx, cfg: cfg, logger: logger, errCh: errCh}

	reaperSvc, err := newReaperBackgroundService(deps)
	if err != nil {
		return err
	}

	server, err := StartHTTPServer(&HTTPServerConfig{Config: cfg.Config, Services: cfg.Services, Logger: logger})
	if err != nil {
		return err
	}
	backgrounds := startBackgroundServices(deps, []backgroundService{reaperSvc})

	return waitForShutdown(shutdownConfig{
		ctx:         serviceCtx,
		cancel:      cancel,
		errCh:       errCh,
		httpServer:  server,
		logger:      logger,
		backgrounds: backgrounds,
	})
}

// shutdownConfig contains dependencies for graceful shutdown.
type shutdownConfig struct {
	ctx         context.Context
	cancel      context.CancelFunc
	errCh       <-chan error
	httpServer  *http.Server
	logger      *slog.Logger
	backgrounds []backgroundServiceHandle
	// signals overrides the shutdown signal source (tests).
	signals <-chan os.Signal
}

// waitForShutdown waits for shutdown signal or service error.
func waitForShutdown(cfg shutdownConfig) error {
	quit := cfg.signals
	if quit == nil {
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(ch)
		quit = ch
	}

	select {
	case <-quit:
		cfg.logger.Info("shutting down services...")
		cfg.cancel()
		return gracefulStop(cfg)
	case err := <-cfg.errCh:
		cfg.logger.Error("service error", "error", err)
		cfg.cancel()
		if stopErr := gracefulStop(cfg); stopErr != nil {
			cfg.logger.Error("graceful stop failed", "error", stopErr)
		}
		return err
	}
}

// gracefulStop attempts to gracefully stop all services.
func gracefulStop(cfg shutdownConfig) error {
	if cfg.httpServer != nil {
		// The service context is already cancelled; shut down on a fresh one.
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownWaitTimeout)
		defer cancel()

		if err := ShutdownHTTPServer(ShutdownConfig{
			Context: shutdownCtx,
			Server:  cfg.httpServer,
			Logger:  cfg.logger,
		}); err != nil {
			return err
		}
	}

	for _, svc := range cfg.backgrounds {
		waitForService(svc.done, svc.name, cfg.logger)
	}
	return nil
}

// waitForService waits for a service to finish with timeout.
func waitForService(done <-chan struct{}, name string, logger *slog.Logger) {
	if done == nil {
		return
	}
	select {
	case <-done:
		logger.Info(name + " stopped")
	case <-time.After(shutdownWaitTimeout):
		logger.Warn("timeout waiting for " + name + " to stop")
	}
}
