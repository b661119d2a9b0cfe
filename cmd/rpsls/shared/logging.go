package shared

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// SetupLogger builds the CLI logger. debug forces debug level; otherwise
// level comes from configuration.
func SetupLogger(w io.Writer, level log.Level, debug bool) *log.Logger {
	if debug {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: debug,
		TimeFormat:      time.TimeOnly,
		Prefix:          "rpsls",
	})
}
