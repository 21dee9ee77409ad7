package adapter

import (
	"fmt"
	"os"
	"path/filepath"

	jsoniter "github.com/json-iterator/go"
	"github.com/paulvitic/hotel-go/application"
	"github.com/paulvitic/hotel-go/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// fileStore persists the hotel snapshot as a JSON document on disk.
type fileStore struct{}

func FileStore() application.StateStore {
	return &fileStore{}
}

func (s *fileStore) Write(path string, snap domain.Snapshot) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating data directory: %w", err)
		}
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func (s *fileStore) Read(path string) (domain.Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Snapshot{}, fmt.Errorf("reading %s: %w", path, err)
	}

	var snap domain.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return domain.Snapshot{}, fmt.Errorf("decoding %s: %w", path, err)
	}
	return snap, nil
}
