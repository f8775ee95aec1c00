package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Setup builds the process logger.
//   - level: trace, debug, info, warn, error, fatal, panic (defaults to info)
//   - format: "pretty" for console output, anything else for JSON
func Setup(service, level, format string) zerolog.Logger {
	return New(os.Stdout, service, level, format)
}

// New is Setup with an explicit destination.
func New(out io.Writer, service, level, format string) zerolog.Logger {
	writer := out
	if format == "pretty" {
		writer = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.RFC3339,
		}
	}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}

	return zerolog.New(writer).
		Level(lvl).
		With().
		Timestamp().
		Str("service", service).
		Logger()
}
