// Package logging configures the process-wide logrus logger.
package logging

import (
	"io"
	"strings"

	log "github.com/sirupsen/logrus"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

// ParseLevel returns the logrus level matching name.
// Unknown names fall back to info, the second value is then false.
func ParseLevel(name string) (log.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "fatal":
		return log.FatalLevel, true
	case "error":
		return log.ErrorLevel, true
	case "warn", "warning":
		return log.WarnLevel, true
	case "info":
		return log.InfoLevel, true
	case "debug":
		return log.DebugLevel, true
	case "trace":
		return log.TraceLevel, true
	default:
		return log.InfoLevel, false
	}
}

// Setup configures the standard logger to write to out with the given level and format.
func Setup(level, format string, out io.Writer) {
	if strings.ToLower(format) == FormatJSON {
		log.SetFormatter(&log.JSONFormatter{ //nolint:exhaustruct
			TimestampFormat: "2006-01-02 15:04:05",
		})
	} else {
		log.SetFormatter(&log.TextFormatter{ //nolint:exhaustruct
			DisableQuote:    true,
			DisableColors:   true,
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})
	}

	log.SetOutput(out)

	lvl, ok := ParseLevel(level)
	log.SetLevel(lvl)

	if !ok {
		log.Warnf("Unknown log level %q, using %v", level, lvl)
	}
}
