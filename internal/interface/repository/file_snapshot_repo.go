package repository

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"personalityai-service/internal/domain/repository"
)

// FileSnapshotStore implements the SnapshotStore interface on the local
// filesystem, one JSON document per key
type FileSnapshotStore struct {
	dir string
}

// NewFileSnapshotStore creates a new file-backed snapshot store
func NewFileSnapshotStore(dir string) (repository.SnapshotStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create snapshot directory: %w", err)
	}
	return &FileSnapshotStore{dir: dir}, nil
}

func (s *FileSnapshotStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// Load reads the full document stored under key
func (s *FileSnapshotStore) Load(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := os.ReadFile(s.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read snapshot %s: %w", key, err)
	}
	return data, true, nil
}

// Save replaces the document stored under key. The write goes through a
// temp file so a crash never leaves a half-written snapshot behind.
func (s *FileSnapshotStore) Save(ctx context.Context, key string, data []byte) error {
	tmp := s.path(key) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write snapshot %s: %w", key, err)
	}
	if err := os.Rename(tmp, s.path(key)); err != nil {
		return fmt.Errorf("failed to replace snapshot %s: %w", key, err)
	}
	return nil
}
