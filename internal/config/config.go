// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// DefaultInterval is the pause every homework iteration makes when no
// source overrides it.
const DefaultInterval = time.Second

// DefaultLogLevel is the zerolog level used when no source overrides it.
const DefaultLogLevel = "info"

// StructuredConfig is the top-level configuration container for the
// homework dispatch demo. It aggregates all sub-configurations and is
// populated by merging built-in defaults, environment variables,
// command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Workers holds the settings of the homework units of work.
	Workers Workers `envPrefix:"WORKERS_"`

	// Log holds diagnostic logging settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Workers holds configuration for the homework workers.
type Workers struct {
	// Interval is how long a worker sleeps after printing each progress
	// line (e.g. "1s", "250ms"). Zero means unset; negative values fail
	// validation.
	// Env: WORKERS_INTERVAL
	Interval time.Duration `env:"INTERVAL"`
}

// Log holds configuration for the diagnostic logger.
type Log struct {
	// Level is the minimal zerolog level name ("debug", "info", ...).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
}

// defaults returns the configuration used when no source sets a field.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		Workers: Workers{Interval: DefaultInterval},
		Log:     Log{Level: DefaultLogLevel},
	}
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  0. Built-in defaults
//  1. Environment variables
//  2. Command-line flags parsed from args (without the program name)
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
