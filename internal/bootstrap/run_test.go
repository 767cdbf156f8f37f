package bootstrap

import (
	"context"
	"errors"
	"os"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLaunchBackground_ReportsFailure(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	errCh := make(chan error, 1)
	deps := &serviceStartupDeps{ctx: ctx, logger: discardLogger(), errCh: errCh}
	done := launchBackground(ctx, deps, backgroundService{
		name:  "session reaper",
		start: func(context.Context) error { return errors.New("boom") },
	})

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("background service did not finish")
	}
	err := <-errCh
	assert.EqualError(t, err, "session reaper failed: boom")
}

func TestWaitForShutdown_Signal(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	deps := &serviceStartupDeps{ctx: ctx, logger: discardLogger(), errCh: make(chan error, 1)}
	handles := startBackgroundServices(deps, []backgroundService{{
		name: "session reaper",
		start: func(ctx context.Context) error {
			<-ctx.Done()
			return nil
		},
	}})

	signals := make(chan os.Signal, 1)
	signals <- syscall.SIGTERM

	err := waitForShutdown(shutdownConfig{
		ctx:         ctx,
		cancel:      cancel,
		errCh:       make(chan error),
		logger:      discardLogger(),
		backgrounds: handles,
		signals:     signals,
	})
	require.NoError(t, err)
	assert.ErrorIs(t, ctx.Err(), context.Canceled)
	for _, h := range handles {
		select {
		case <-h.done:
		default:
			t.Fatalf("%s still running", h.name)
		}
	}
}

func TestWaitForShutdown_ServiceError(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	errCh <- errors.New("session reaper failed: boom")

	err := waitForShutdown(shutdownConfig{
		ctx:     ctx,
		cancel:  cancel,
		errCh:   errCh,
		logger:  discardLogger(),
		signals: make(chan os.Signal),
	})
	assert.EqualError(t, err, "session reaper failed: boom")
	assert.ErrorIs(t, ctx.Err(), context.Canceled)
}

func TestRunServicesWithShutdown_RequiresConfig(t *testing.T) {
	require.Error(t, RunServicesWithShutdown(nil))
	require.Error(t, RunServicesWithShutdown(&ServiceOrchestrationConfig{}))
}
