package background_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"meetslot/shared/background"
)

func TestRunner_OutlivesCallerContext(t *testing.T) {
	runner := background.New()
	ctx, cancel := context.WithCancel(context.Background())

	var sawCancel atomic.Bool

	runner.Go(ctx, "detached", func(ctx context.Context) error {
		time.Sleep(10 * time.Millisecond)
		sawCancel.Store(ctx.Err() != nil)

		return nil
	})

	cancel()

	assert.NoError(t, runner.Wait(context.Background()))
	assert.False(t, sawCancel.Load())
}

func TestRunner_ErrorsAndPanicsAreContained(t *testing.T) {
	runner := background.New()

	runner.Go(context.Background(), "fails", func(context.Context) error {
		return errors.New("boom")
	})
	runner.Go(context.Background(), "panics", func(context.Context) error {
		panic("unexpected")
	})

	assert.NoError(t, runner.Wait(context.Background()))
}

func TestRunner_WaitHonoursDeadline(t *testing.T) {
	runner := background.New()
	release := make(chan struct{})

	runner.Go(context.Background(), "slow", func(context.Context) error {
		<-release

		return nil
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	assert.ErrorIs(t, runner.Wait(ctx), context.DeadlineExceeded)

	close(release)
	assert.NoError(t, runner.Wait(context.Background()))
}
