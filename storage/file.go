//go:build !js
// +build !js

package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// File stores the score as a decimal integer in a file.
type File struct {
	Path string
}

// NewFile creates a store backed by path.
func NewFile(path string) *File {
	return &File{Path: path}
}

// DefaultPath returns the score file location under the user config dir.
func DefaultPath(key string) (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("storage: config dir: %w", err)
	}
	return filepath.Join(dir, "pop-bubbles", key), nil
}

// Load reads the stored score.
func (f *File) Load() (int, error) {
	data, err := os.ReadFile(f.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("storage: read %s: %w", f.Path, err)
	}
	return parseScore(string(data))
}

// Save writes score, replacing the file atomically.
func (f *File) Save(score int) error {
	if err := os.MkdirAll(filepath.Dir(f.Path), 0o755); err != nil {
		return fmt.Errorf("storage: mkdir: %w", err)
	}
	tmp := f.Path + ".tmp"
	if err := os.WriteFile(tmp, []byte(formatScore(score)+"\n"), 0o644); err != nil {
		return fmt.Errorf("storage: write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, f.Path); err != nil {
		return fmt.Errorf("storage: rename: %w", err)
	}
	return nil
}
