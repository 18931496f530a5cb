// Package logging builds the structured logger shared by the CLI and the
// registry.
package logging

import (
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/agentx-labs/libreg/internal/branding"
)

// New returns a logger writing to w at the named level ("debug", "info",
// "warn", "error"). Unknown or empty levels fall back to warn.
func New(w io.Writer, level string) *log.Logger {
	lvl, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		lvl = log.WarnLevel
	}
	return log.NewWithOptions(w, log.Options{
		Prefix: branding.CLIName(),
		Level:  lvl,
	})
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}
