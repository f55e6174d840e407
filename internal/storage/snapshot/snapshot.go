// Package snapshot persists the latest known stock levels to a single local
// file. The whole list is re-serialized on every change and read back once
// at startup.
package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/google/uuid"

	"github.com/wingscafe/inventory/internal/config"
)

type StockLevel struct {
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int       `json:"quantity"`
}

type Store interface {
	// Load reads the snapshot file. A missing file yields an empty list.
	Load() ([]StockLevel, error)
	// Save replaces the snapshot with the given levels.
	Save(levels []StockLevel) error
}

var _ Store = (*FileStore)(nil)

type FileStore struct {
	mu   sync.Mutex
	path string
}

func NewFileStore(cfg config.Snapshot) *FileStore {
	return &FileStore{path: cfg.Path}
}

func (s *FileStore) Load() ([]StockLevel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []StockLevel{}, nil
		}
		return nil, fmt.Errorf("read snapshot file: %w", err)
	}

	var levels []StockLevel
	if err := json.Unmarshal(data, &levels); err != nil {
		return nil, fmt.Errorf("unmarshal snapshot: %w", err)
	}

	return levels, nil
}

func (s *FileStore) Save(levels []StockLevel) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(levels)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write snapshot file: %w", err)
	}

	return nil
}
