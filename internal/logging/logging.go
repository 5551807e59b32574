// Package logging configures zerolog for the loxo CLI and adapts it to the
// client's request logger.
package logging

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Options selects the log level and output format.
type Options struct {
	Level  string // debug, info, warn or error
	Format string // console or json
	Color  bool
}

// New returns a zerolog logger writing to w.
func New(w io.Writer, opts Options) zerolog.Logger {
	level := ParseLevel(opts.Level)

	if opts.Format == "json" {
		return zerolog.New(w).Level(level).With().Timestamp().Logger()
	}

	output := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
		NoColor:    !opts.Color,
	}

	return zerolog.New(output).Level(level).With().Timestamp().Logger()
}

// ParseLevel maps a level name onto zerolog. Unknown names mean info.
func ParseLevel(name string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	}
	return zerolog.InfoLevel
}

// RequestLogger forwards client log lines to a zerolog logger. It satisfies
// loxo.RequestLogger and resty.Logger.
type RequestLogger struct {
	logger zerolog.Logger
}

// NewRequestLogger tags every entry with component=loxo.
func NewRequestLogger(l zerolog.Logger) *RequestLogger {
	return &RequestLogger{logger: l.With().Str("component", "loxo").Logger()}
}

func (r *RequestLogger) Errorf(format string, v ...any) {
	r.logger.Error().Msg(message(format, v...))
}

func (r *RequestLogger) Warnf(format string, v ...any) {
	r.logger.Warn().Msg(message(format, v...))
}

func (r *RequestLogger) Debugf(format string, v ...any) {
	r.logger.Debug().Msg(message(format, v...))
}

// resty terminates its lines with a newline.
func message(format string, v ...any) string {
	return strings.TrimRight(fmt.Sprintf(format, v...), "\n")
}
