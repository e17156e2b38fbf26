//go:build !js
// +build !js

package common

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewCLILogger(t *testing.T) {
	defer SetLogger(nil)
	defer func() { EnableDebug = false }()

	var buf bytes.Buffer
	NewCLILogger(&buf, "test", "debug")

	if !EnableDebug {
		t.Error("Expected debug enabled at debug level")
	}
	Debug("hello", "key", 1)
	if !strings.Contains(buf.String(), "hello") {
		t.Errorf("Expected debug output, got %q", buf.String())
	}
}

func TestNewCLILogger_UnknownLevel(t *testing.T) {
	defer SetLogger(nil)

	var buf bytes.Buffer
	NewCLILogger(&buf, "test", "loud")

	if EnableDebug {
		t.Error("Expected debug disabled for unknown level")
	}
	if !strings.Contains(buf.String(), "unknown log level") {
		t.Errorf("Expected a warning, got %q", buf.String())
	}
	Debug("hidden")
	if strings.Contains(buf.String(), "hidden") {
		t.Error("Expected debug output suppressed")
	}
}

func TestSetLogger_Nil(t *testing.T) {
	SetLogger(nil)
	Info("discarded")
	Warn("discarded")
	Error("discarded")
}
