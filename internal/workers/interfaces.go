// Package workers runs backup engine operations in the background.
//
// An operation is a single-shot [Task]: [Go] starts it in its own goroutine
// and hands back a channel that delivers exactly one [Result] and is then
// closed. Cancellation flows through the context passed to the task, so a
// caller may stop waiting and cancel without leaking the goroutine.
package workers

import "context"

// Task is a unit of work producing a value of type T.
//
// Implementations must honour ctx and return promptly once it is done.
type Task[T any] func(ctx context.Context) (T, error)

// Result carries the outcome of a [Task].
type Result[T any] struct {
	Value T
	Err   error
}
