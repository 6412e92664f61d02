package config

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// NewLogger builds the application logger. An unknown level falls back to info.
func NewLogger(cfg LogConfig, w io.Writer) *log.Logger {
	if w == nil {
		w = os.Stderr
	}
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		level = log.InfoLevel
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "t2048",
		Level:           level,
	})
}
