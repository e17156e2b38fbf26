// Package storage persists the high score.
package storage

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
)

// ErrNotFound is returned when no score has been stored yet.
var ErrNotFound = errors.New("storage: no stored score")

// ErrCorrupt is returned when the stored value is not a non-negative integer.
var ErrCorrupt = errors.New("storage: corrupt score")

// parseScore decodes a stored decimal score.
func parseScore(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, ErrNotFound
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: %q", ErrCorrupt, raw)
	}
	return n, nil
}

func formatScore(score int) string {
	return strconv.Itoa(score)
}

// Memory is an in-process store.
type Memory struct {
	mu    sync.Mutex
	score int
	set   bool
}

// NewMemory creates an empty memory store.
func NewMemory() *Memory {
	return &Memory{}
}

// Load returns the stored score.
func (m *Memory) Load() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.set {
		return 0, ErrNotFound
	}
	return m.score, nil
}

// Save stores score.
func (m *Memory) Save(score int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.score = score
	m.set = true
	return nil
}
