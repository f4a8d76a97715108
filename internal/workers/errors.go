package workers

import "errors"

var (
	// ErrEmptyWorkSet is returned when a dispatch is asked to run no workers.
	ErrEmptyWorkSet = errors.New("work set is empty")
	// ErrWorkerFailed wraps a panic recovered from a unit of work.
	ErrWorkerFailed = errors.New("worker failed")
)
