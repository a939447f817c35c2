package fileutil

// Package fileutil implements the idempotent artifact update used by the
// schema writer: an unchanged serialization must not touch the target file.

import (
	"bytes"
	"os"
	"path/filepath"
)

// MkParents creates the parent directories of path.
func MkParents(path string) error {
	dir := filepath.Dir(path)
	if dir == "" || dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}

// UpdateFile writes content to path unless the file already holds exactly
// those bytes. It reports whether a write happened.
func UpdateFile(path string, content []byte) (bool, error) {
	existing, err := os.ReadFile(path)
	if err == nil && bytes.Equal(existing, content) {
		return false, nil
	}
	if err != nil && !os.IsNotExist(err) {
		return false, err
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return false, err
	}
	return true, nil
}
