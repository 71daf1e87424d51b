// Package workers runs blocking units of work on a bounded set of
// goroutines and hands their results back to the waiting callers.
//
// Request handlers never touch the database themselves: they submit a
// function through [Do] and park until the pool reports its outcome.
package workers

// Worker is the interface that must be implemented by any background worker.
// Run starts the worker's execution and must not block the caller for the
// worker's lifetime; long-running workers spawn goroutines internally.
type Worker interface {
	Run()
}
