// Package reaper provides the loop that sweeps idle operator sessions and expired
// ephemeral keys.
package reaper

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

// Sweeper drops whatever has outlived its TTL and reports how many entries went.
type Sweeper interface {
	Sweep(ctx context.Context) (int, error)
}

// SweepFunc adapts a function to Sweeper.
type SweepFunc func(ctx context.Context) (int, error)

// Sweep implements Sweeper.
func (f SweepFunc) Sweep(ctx context.Context) (int, error) { return f(ctx) }

// Runner runs every registered sweeper on a fixed interval.
type Runner struct {
	sweepers map[string]Sweeper
	interval time.Duration
	logger   *slog.Logger
}

// RunnerOptions holds the dependencies for creating a Runner.
type RunnerOptions struct {
	// Sweepers are keyed by a name used in logs.
	Sweepers map[string]Sweeper
	Interval time.Duration
	Logger   *slog.Logger
}

// NewRunner creates a new reaper runner with the given options.
func NewRunner(opts RunnerOptions) (*Runner, error) {
	if err := validateRunnerOptions(&opts); err != nil {
		return nil, err
	}
	return &Runner{
		sweepers: opts.Sweepers,
		interval: opts.Interval,
		logger:   opts.Logger.With("component", "reaper"),
	}, nil
}

func validateRunnerOptions(opts *RunnerOptions) error {
	if len(opts.Sweepers) == 0 {
		return errors.New("at least one sweeper is required")
	}
	if opts.Interval <= 0 {
		return errors.New("sweep interval must be positive")
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return nil
}

// Run sweeps until the context is cancelled.
func (r *Runner) Run(ctx context.Context) error {
	r.logger.InfoContext(ctx, "starting reaper runner", "interval", r.interval)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			r.RunOnce(ctx)
		}
	}
}

// RunOnce runs every sweeper a single time. Failures are logged and do not stop the others.
func (r *Runner) RunOnce(ctx context.Context) {
	for name, s := range r.sweepers {
		n, err := s.Sweep(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			r.logger.WarnContext(ctx, "sweep failed", "sweeper", name, "error", err)
			continue
		}
		if n > 0 {
			r.logger.DebugContext(ctx, "sweep complete", "sweeper", name, "removed", n)
		}
	}
}
