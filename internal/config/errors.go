package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidWorkerConfigs indicates invalid homework worker settings
	// (for example, a non-positive interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
	// ErrInvalidLogConfigs indicates an unknown log level name.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
)
