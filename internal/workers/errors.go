package workers

import "errors"

var (
	// ErrPoolClosed is returned by [Do] once the pool has stopped accepting work.
	ErrPoolClosed = errors.New("worker pool is closed")

	// ErrWorkerPanicked is returned by [Do] when the unit of work panicked.
	ErrWorkerPanicked = errors.New("unit of work panicked")
)
