// Package config assembles the runtime configuration from command-line
// arguments, an optional YAML file, and environment variables, in that
// order of precedence.
package config

import (
	"fmt"
)

// Options holds the parsed command-line configuration.
type Options struct {
	// UsePipe selects the named-pipe transport; the default is reading
	// pre-split lines from stdin.
	UsePipe bool
	// PipePath overrides the well-known pipe address.
	PipePath string
	// Filter is an optional event-match expression.
	Filter string
	// ConfigFile is an optional YAML configuration file path.
	ConfigFile string
	// Trace enables per-event OpenTelemetry spans.
	Trace bool
}

// ParseArgs parses command-line arguments.
// Expected format: program_name [--pipe] [--pipe-path <path>] [--filter <expr>] [--config <file>] [--trace]
func ParseArgs(args []string) (*Options, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("no arguments provided")
	}

	programName := args[0]
	opts := &Options{}

	for i := 1; i < len(args); i++ {
		switch args[i] {
		case "--pipe", "-p":
			opts.UsePipe = true
		case "--pipe-path":
			if i+1 >= len(args) {
				return nil, fmt.Errorf("--pipe-path requires a value")
			}
			opts.PipePath = args[i+1]
			i++
		case "--filter", "-f":
			if i+1 >= len(args) {
				return nil, fmt.Errorf("--filter requires a value")
			}
			opts.Filter = args[i+1]
			i++
		case "--config", "-c":
			if i+1 >= len(args) {
				return nil, fmt.Errorf("--config requires a value")
			}
			opts.ConfigFile = args[i+1]
			i++
		case "--trace":
			opts.Trace = true
		default:
			return nil, fmt.Errorf("unknown flag %q\nUsage: %s [--pipe] [--pipe-path <path>] [--filter <expr>] [--config <file>] [--trace]",
				args[i], programName)
		}
	}

	return opts, nil
}
