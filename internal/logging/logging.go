package logging

import (
	"io"
	"strings"

	log "github.com/sirupsen/logrus"
)

// Configure sets up the standard logrus logger.
//
// level: trace, debug, info, warn, error (anything else falls back to info)
// format: "text" (human-readable) or "json"
func Configure(level, format string, w io.Writer) {
	log.SetOutput(w)
	log.SetLevel(ParseLevel(level))

	switch strings.ToLower(format) {
	case "json":
		log.SetFormatter(&log.JSONFormatter{
			TimestampFormat: "2006-01-02T15:04:05.999",
		})
	default:
		log.SetFormatter(&log.TextFormatter{
			TimestampFormat: "2006-01-02T15:04:05.999",
			FullTimestamp:   true,
		})
	}
}

func ParseLevel(s string) log.Level {
	switch strings.ToLower(s) {
	case "trace":
		return log.TraceLevel
	case "debug":
		return log.DebugLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}
