// Package background runs best-effort work that must outlive the request which
// started it. Jobs get a context detached from the caller's cancellation, and
// their errors are logged instead of returned.
package background

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"
)

type Runner struct {
	wg sync.WaitGroup
}

func New() *Runner {
	return &Runner{}
}

// Go starts fn detached from ctx cancellation but keeping its values (trace, request id).
func (r *Runner) Go(ctx context.Context, name string, fn func(ctx context.Context) error) {
	detached := context.WithoutCancel(ctx)

	r.wg.Add(1)

	go func() {
		defer r.wg.Done()
		defer func() {
			if rec := recover(); rec != nil {
				log.Error().Str("job", name).Str("panic", fmt.Sprint(rec)).Msg("background job panicked")
			}
		}()

		if err := fn(detached); err != nil {
			log.Error().Err(err).Str("job", name).Msg("background job failed")
		}
	}()
}

// Wait blocks until every started job returned or ctx is done.
func (r *Runner) Wait(ctx context.Context) error {
	done := make(chan struct{})

	go func() {
		r.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("background jobs still running: %w", ctx.Err())
	}
}
