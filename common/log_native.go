//go:build !js
// +build !js

package common

import (
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// NewCLILogger builds a charmbracelet logger for the native binaries and
// installs it as the package logger. An unknown level falls back to info.
func NewCLILogger(w io.Writer, prefix, level string) *log.Logger {
	lvl, err := log.ParseLevel(strings.ToLower(level))
	if err != nil {
		lvl = log.InfoLevel
	}
	l := log.NewWithOptions(w, log.Options{
		Prefix:          prefix,
		Level:           lvl,
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
	})
	EnableDebug = lvl <= log.DebugLevel
	SetLogger(l)
	if err != nil && level != "" {
		l.Warn("unknown log level, using info", "level", level)
	}
	return l
}
