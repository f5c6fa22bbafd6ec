// Package logger builds the hclog logger used by the tzconv command.
package logger

import (
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
)

// DefaultLevel applies when the configured level is empty or unknown.
const DefaultLevel = hclog.Warn

// Setup returns a logger named tzconv writing to w at level.
// If w is nil, os.Stderr is used.
func Setup(w io.Writer, level string, json bool) hclog.Logger {
	if w == nil {
		w = os.Stderr
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:       "tzconv",
		Level:      ParseLevel(level),
		Output:     w,
		JSONFormat: json,
	})
}

// ParseLevel maps a level name such as "debug" to an hclog level.
func ParseLevel(level string) hclog.Level {
	l := hclog.LevelFromString(level)
	if l == hclog.NoLevel {
		return DefaultLevel
	}
	return l
}
