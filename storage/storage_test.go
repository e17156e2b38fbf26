package storage

import (
	"errors"
	"testing"
)

func TestParseScore(t *testing.T) {
	tests := []struct {
		raw     string
		want    int
		wantErr error
	}{
		{"42", 42, nil},
		{" 7\n", 7, nil},
		{"0", 0, nil},
		{"", 0, ErrNotFound},
		{"abc", 0, ErrCorrupt},
		{"-5", 0, ErrCorrupt},
	}
	for _, tt := range tests {
		got, err := parseScore(tt.raw)
		if !errors.Is(err, tt.wantErr) {
			t.Errorf("parseScore(%q): expected error %v, got %v", tt.raw, tt.wantErr, err)
		}
		if got != tt.want {
			t.Errorf("parseScore(%q): expected %d, got %d", tt.raw, tt.want, got)
		}
	}
}

func TestMemory(t *testing.T) {
	m := NewMemory()
	if _, err := m.Load(); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
	if err := m.Save(120); err != nil {
		t.Fatalf("Unexpected error %v", err)
	}
	if got, err := m.Load(); err != nil || got != 120 {
		t.Errorf("Expected 120, got %d (%v)", got, err)
	}
}
