package common

import "os"

// Logger is the logging surface used across the module. It is satisfied by
// *github.com/charmbracelet/log.Logger and by the browser console logger.
type Logger interface {
	Debug(msg interface{}, keyvals ...interface{})
	Info(msg interface{}, keyvals ...interface{})
	Warn(msg interface{}, keyvals ...interface{})
	Error(msg interface{}, keyvals ...interface{})
}

type nopLogger struct{}

func (nopLogger) Debug(interface{}, ...interface{}) {}
func (nopLogger) Info(interface{}, ...interface{})  {}
func (nopLogger) Warn(interface{}, ...interface{})  {}
func (nopLogger) Error(interface{}, ...interface{}) {}

var (
	logger Logger = nopLogger{}

	// EnableDebug gates Debug output.
	EnableDebug = false
)

// SetLogger installs the logger used by Debug, Info, Warn and Error.
// A nil logger silences all output.
func SetLogger(l Logger) {
	if l == nil {
		l = nopLogger{}
	}
	logger = l
}

// Debug logs a message if debug mode is enabled.
func Debug(msg interface{}, keyvals ...interface{}) {
	if EnableDebug {
		logger.Debug(msg, keyvals...)
	}
}

// Info logs an informational message.
func Info(msg interface{}, keyvals ...interface{}) {
	logger.Info(msg, keyvals...)
}

// Warn logs a warning.
func Warn(msg interface{}, keyvals ...interface{}) {
	logger.Warn(msg, keyvals...)
}

// Error logs an error.
func Error(msg interface{}, keyvals ...interface{}) {
	logger.Error(msg, keyvals...)
}

// GetEnv returns the value of the environment variable named by the key,
// or fallback if the variable is not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
