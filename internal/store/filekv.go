package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileKV persists each key as a JSON document under a base directory.
// It is the production binding for single-machine deployments, where an
// embedded database would be overkill for six small collections.
type FileKV struct {
	basePath string
}

// NewFileKV initializes a FileKV rooted at basePath, creating the
// directory when missing.
func NewFileKV(basePath string) (*FileKV, error) {
	basePath = strings.TrimSpace(basePath)
	if basePath == "" {
		return nil, errors.New("store: base path is required")
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}
	return &FileKV{basePath: basePath}, nil
}

// BasePath returns the configured root directory.
func (s *FileKV) BasePath() string {
	if s == nil {
		return ""
	}
	return s.basePath
}

func (s *FileKV) path(key string) string {
	return filepath.Join(s.basePath, key+".json")
}

func (s *FileKV) Get(key string) ([]byte, bool, error) {
	data, err := os.ReadFile(s.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("store: read %s: %w", key, err)
	}
	return data, true, nil
}

// Set writes through a temp file and renames, so a crash mid-write
// leaves the previous document intact.
func (s *FileKV) Set(key string, value []byte) error {
	target := s.path(key)
	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, value, 0o644); err != nil {
		return fmt.Errorf("store: write %s: %w", key, err)
	}
	if err := os.Rename(tmp, target); err != nil {
		return fmt.Errorf("store: commit %s: %w", key, err)
	}
	return nil
}

func (s *FileKV) Delete(key string) error {
	if err := os.Remove(s.path(key)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("store: delete %s: %w", key, err)
	}
	return nil
}

var _ KV = (*FileKV)(nil)
