// Package log provides a simplified structured logging interface based on
// [log/slog].
//
// Loggers are immutable values configured with functional options at
// creation time. Text output is colorized with lipgloss when the destination
// is a terminal.
//
// # Basic Usage
//
//	logger := log.Make(os.Stderr)
//	logger.Warn("placeholder unresolved", slog.String("name", "GPU"))
//
// # Configuration
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelDebug),
//		log.WithTimeLayout("RFC3339"),
//		log.WithCaller(true))
//
// The package-level functions ([Debug], [Info], [Warn], [Error] and their
// Context variants) write through a default logger on [os.Stderr] that can be
// reconfigured with [Config].
//
// # Supported Levels
//
// [LevelTrace], [LevelDebug], [LevelInfo], [LevelWarn] (default), and
// [LevelError]. Messages below the configured level are discarded.
//
// # Output Formats
//
// [FormatText] (default) and [FormatJSON].
package log
