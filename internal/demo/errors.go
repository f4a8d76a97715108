package demo

import "errors"

var (
	// ErrIntervalIsNotSpecified is returned by NewApp for a non-positive
	// homework interval.
	ErrIntervalIsNotSpecified = errors.New("homework interval is not specified")
	// ErrNoOutput is returned by NewApp when no output writer is given.
	ErrNoOutput = errors.New("output writer is not specified")
)
