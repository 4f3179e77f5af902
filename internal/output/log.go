// Package output provides terminal output utilities.
package output

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// LogConfig controls how a logger is constructed.
type LogConfig struct {
	// Verbose enables debug level, caller reporting and forces timestamps on.
	Verbose bool

	// Timestamps controls whether timestamps are shown. Nil means on.
	Timestamps *bool

	// Writer is the log destination. Defaults to os.Stderr.
	Writer io.Writer
}

// NewLogger builds the logger handle that is passed to every component of a
// single CLI invocation.
func NewLogger(cfg LogConfig) *log.Logger {
	level := log.InfoLevel
	if cfg.Verbose {
		level = log.DebugLevel
	}

	w := cfg.Writer
	if w == nil {
		w = os.Stderr
	}

	return log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: cfg.timestamps(),
		ReportCaller:    cfg.Verbose,
		TimeFormat:      "15:04:05",
	})
}

// timestamps resolves the timestamp setting: verbose > explicit > default on.
func (c LogConfig) timestamps() bool {
	if c.Verbose {
		return true
	}
	if c.Timestamps != nil {
		return *c.Timestamps
	}
	return true
}

// AppLogger returns a child logger prefixed with the application name.
func AppLogger(base *log.Logger, appName string) *log.Logger {
	child := base.With()
	child.SetPrefix(StyleNoun.Render("a:" + appName))
	return child
}

// Discard returns a logger that drops everything. Useful in tests.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}

// BoolPtr returns a pointer to b.
func BoolPtr(b bool) *bool {
	return &b
}
