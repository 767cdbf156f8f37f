package reaper

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRunnerValidation(t *testing.T) {
	_, err := NewRunner(RunnerOptions{Interval: time.Second})
	require.Error(t, err)

	_, err = NewRunner(RunnerOptions{
		Sweepers: map[string]Sweeper{"noop": SweepFunc(func(context.Context) (int, error) { return 0, nil })},
	})
	require.Error(t, err)
}

func TestRunOnce_ContinuesAfterFailure(t *testing.T) {
	var ok atomic.Int32
	r, err := NewRunner(RunnerOptions{
		Interval: time.Minute,
		Sweepers: map[string]Sweeper{
			"broken": SweepFunc(func(context.Context) (int, error) { return 0, errors.New("boom") }),
			"fine": SweepFunc(func(context.Context) (int, error) {
				ok.Add(1)
				return 2, nil
			}),
		},
	})
	require.NoError(t, err)

	r.RunOnce(context.Background())
	assert.Equal(t, int32(1), ok.Load())
}

func TestRun_StopsOnCancel(t *testing.T) {
	var calls atomic.Int32
	r, err := NewRunner(RunnerOptions{
		Interval: 5 * time.Millisecond,
		Sweepers: map[string]Sweeper{"count": SweepFunc(func(context.Context) (int, error) {
			calls.Add(1)
			return 0, nil
		})},
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- r.Run(ctx) }()

	require.Eventually(t, func() bool { return calls.Load() >= 2 }, time.Second, 5*time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("runner did not stop")
	}
}
