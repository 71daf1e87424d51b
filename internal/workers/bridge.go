package workers

import (
	"context"
	"fmt"
	"runtime/debug"

	"github.com/MKhiriev/go-users-api/internal/logger"
)

type result[T any] struct {
	value T
	err   error
}

// Do runs fn on p and waits for its outcome or for ctx to finish, whichever
// comes first.
//
// fn receives a context that carries ctx's values (request logger, trace id)
// but not its cancellation: once a worker picks fn up it runs to completion
// even if the caller has gone away. A panic in fn is recovered and reported
// as [ErrWorkerPanicked].
func Do[T any](ctx context.Context, p *Pool, fn func(context.Context) (T, error)) (T, error) {
	var zero T

	// buffered so a worker never blocks on a caller that stopped listening
	done := make(chan result[T], 1)

	j := job{
		ctx: context.WithoutCancel(ctx),
		run: func(workCtx context.Context) {
			defer func() {
				if r := recover(); r != nil {
					logger.FromContext(workCtx).Error().
						Str("func", "workers.Do").
						Str("pool", p.name).
						Interface("panic", r).
						Bytes("stack", debug.Stack()).
						Msg("unit of work panicked")
					done <- result[T]{err: fmt.Errorf("%w: %v", ErrWorkerPanicked, r)}
				}
			}()

			value, err := fn(workCtx)
			done <- result[T]{value: value, err: err}
		},
	}

	if err := p.submit(ctx, j); err != nil {
		return zero, err
	}

	select {
	case res := <-done:
		return res.value, res.err
	case <-ctx.Done():
		logger.FromContext(ctx).Warn().
			Str("func", "workers.Do").
			Str("pool", p.name).
			Msg("caller stopped waiting; unit of work keeps running")
		return zero, ctx.Err()
	}
}
