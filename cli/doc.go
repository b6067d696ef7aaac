// Package cli contains the command line interface for lightfetch.
//
// # Usage
//
//	lightfetch                  # fetch, the default command
//	lightfetch init --force     # rewrite the default configuration
//	lightfetch dump ART IMAGE   # print parsed sections as YAML
//	lightfetch get FETCH gap -t int
//	lightfetch symbols          # list template symbols for this system
//
// The configuration file defaults to $XDG_CONFIG_HOME/lightfetch/config.ini
// and is selected with --config.
//
// # Configuration Loader
//
// Logger flags take their defaults from the [ LOG ] section of the
// configuration file ([resolve]). Keys are flag names without the log-
// prefix, with hyphens written as spaces:
//
//	[ LOG ]
//	level = info
//	time layout = rfc3339
//
// Flags given on the command line override the file.
//
// # Logging Options
//
//   - --log-level: Set minimum log level (debug, info, warn, error)
//   - --log-format: Set log output format (json, text)
//   - --log-time-layout: Set timestamp layout (kitchen, rfc3339, none, ...)
//   - --[no-]log-caller: Include caller information in log output
//   - --[no-]log-pretty: Colorize text output
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof .
//
//   - --pprof-mode: Enable profiling (allocs, block, clock, cpu, goroutine,
//     heap, mem, mutex, thread, trace)
//   - --pprof-dir: Set profile output directory (default:
//     ~/.cache/lightfetch/pprof)
package cli
