// Package log builds [slog.Handler] values from the log level and format
// strings accepted on the command line.
package log

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	charmlog "github.com/charmbracelet/log"
)

const (
	JSONFormat   = "json"
	TextFormat   = "text"
	LogfmtFormat = "logfmt"
)

var (
	ErrInvalidLevel  = errors.New("invalid log level")
	ErrInvalidFormat = errors.New("invalid log format")
)

// CreateHandler creates a [slog.Handler] writing to w.
func CreateHandler(w io.Writer, logLevel, logFormat string) (slog.Handler, error) {
	level, err := GetLevel(logLevel)
	if err != nil {
		return nil, err
	}

	formatter, err := GetFormatter(logFormat)
	if err != nil {
		return nil, err
	}

	return charmlog.NewWithOptions(w, charmlog.Options{
		Level:           level,
		Formatter:       formatter,
		ReportTimestamp: formatter != charmlog.TextFormatter,
	}), nil
}

// GetLevel parses a log level. "warning" and "trace" are accepted as aliases
// for "warn" and "debug".
func GetLevel(level string) (charmlog.Level, error) {
	level = strings.ToLower(level)

	switch level {
	case "warning":
		level = "warn"
	case "trace":
		level = "debug"
	}

	l, err := charmlog.ParseLevel(level)
	if err != nil {
		return 0, fmt.Errorf("%w %q", ErrInvalidLevel, level)
	}

	return l, nil
}

// GetFormatter parses a log format. An empty format selects text.
func GetFormatter(format string) (charmlog.Formatter, error) {
	switch strings.ToLower(format) {
	case TextFormat, "":
		return charmlog.TextFormatter, nil
	case LogfmtFormat:
		return charmlog.LogfmtFormatter, nil
	case JSONFormat:
		return charmlog.JSONFormatter, nil
	default:
		return 0, fmt.Errorf("%w %q", ErrInvalidFormat, format)
	}
}
