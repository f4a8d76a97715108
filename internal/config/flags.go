package config

import (
	"flag"
	"fmt"
)

// ParseFlags parses the configuration flags found in args.
//
// Flags:
//
//	-interval pause after each homework iteration (e.g. "1s", "250ms")
//	-log-level diagnostic log level (debug, info, warn, error)
//	-c/-config json file path with configs
//
// Unset flags leave the corresponding fields zero so they do not override
// other sources during the merge.
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("homework", flag.ContinueOnError)

	cfg := &StructuredConfig{}
	fs.DurationVar(&cfg.Workers.Interval, "interval", 0, "Pause after each homework iteration (e.g., 1s, 250ms)")
	fs.StringVar(&cfg.Log.Level, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return cfg, nil
}
