package workers

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/MKhiriev/go-shift-keeper/internal/logger"
)

// ErrTaskPanicked is returned in place of the value of a task that panicked.
var ErrTaskPanicked = errors.New("task panicked")

// Go runs task in a new goroutine. The returned channel receives the result
// once and is closed afterwards; it is buffered, so the goroutine finishes
// even if nobody reads it.
func Go[T any](ctx context.Context, task Task[T]) <-chan Result[T] {
	out := make(chan Result[T], 1)

	go func() {
		defer close(out)
		out <- run(ctx, task)
	}()

	return out
}

// Wait returns the result of a task started with [Go]. The task must observe
// the same ctx: once ctx is done Wait keeps waiting for the task to return
// and reports the task's own error.
func Wait[T any](ctx context.Context, results <-chan Result[T]) Result[T] {
	select {
	case res, ok := <-results:
		if !ok {
			return Result[T]{Err: fmt.Errorf("%w: result channel closed", ErrTaskPanicked)}
		}
		return res
	case <-ctx.Done():
		logger.FromContext(ctx).Debug().
			Str("func", "workers.Wait").
			Msg("context done, waiting for the task to stop")
		res, ok := <-results
		if !ok {
			return Result[T]{Err: ctx.Err()}
		}
		return res
	}
}

func run[T any](ctx context.Context, task Task[T]) (res Result[T]) {
	defer func() {
		if r := recover(); r != nil {
			logger.FromContext(ctx).Error().
				Str("func", "workers.run").
				Str("stack", string(debug.Stack())).
				Msgf("task panicked: %v", r)
			res = Result[T]{Err: fmt.Errorf("%w: %v", ErrTaskPanicked, r)}
		}
	}()

	if err := ctx.Err(); err != nil {
		return Result[T]{Err: err}
	}

	v, err := task(ctx)
	return Result[T]{Value: v, Err: err}
}
