// Package logging builds the application's zerolog logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Formats accepted by Options.Format.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Options describes logger configuration supplied at creation time.
type Options struct {
	Level  string
	Format string
	Writer io.Writer
}

// New creates a logger writing at the given level. The console format is
// meant for terminals; json suits log collectors.
func New(opts Options) (zerolog.Logger, error) {
	writer := opts.Writer
	if writer == nil {
		writer = os.Stderr
	}

	level := zerolog.InfoLevel
	if opts.Level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return zerolog.Nop(), fmt.Errorf("parsing log level: %w", err)
		}
		level = parsed
	}

	var output io.Writer
	switch strings.ToLower(opts.Format) {
	case "", FormatConsole:
		console := zerolog.NewConsoleWriter()
		console.Out = writer
		console.TimeFormat = time.RFC3339
		output = console
	case FormatJSON:
		output = writer
	default:
		return zerolog.Nop(), fmt.Errorf("unknown log format %q: must be console or json", opts.Format)
	}

	return zerolog.New(output).Level(level).With().Timestamp().Logger(), nil
}
