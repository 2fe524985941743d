// Package logging builds the zerolog logger used by data-mirror.
package logging

import (
	"io"
	"strings"

	"github.com/fgeck/data-mirror/internal/models"
	"github.com/rs/zerolog"
)

// New creates a logger writing to w. Standard output is reserved for the
// command's status line, so callers pass standard error.
func New(w io.Writer, s models.LogSettings) zerolog.Logger {
	var logger zerolog.Logger

	// Set output format
	if s.JSON {
		logger = zerolog.New(w).With().Timestamp().Logger()
	} else {
		output := zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05", NoColor: true}
		output.FormatLevel = func(i interface{}) string {
			if str, ok := i.(string); ok {
				return strings.ToUpper(str)
			}
			return ""
		}
		logger = zerolog.New(output).With().Timestamp().Logger()
	}

	return logger.Level(Level(s))
}

// Level returns the minimum level for the given settings.
func Level(s models.LogSettings) zerolog.Level {
	switch {
	case s.Quiet:
		return zerolog.ErrorLevel
	case s.Verbose:
		return zerolog.DebugLevel
	default:
		return zerolog.WarnLevel
	}
}
