package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"scratchcard-backend/internal/features/offer/models"
	"scratchcard-backend/internal/storage"
)

const (
	catalogFile = "offers.json"
	counterFile = "scratch_count.json"
)

type counterRecord struct {
	Count int64 `json:"count"`
}

// Store persists catalog and counter as two JSON documents in dataDir.
// Writes go to a temp file first and are renamed into place.
type Store struct {
	mu      sync.RWMutex
	dataDir string
}

func New(dataDir string) (*Store, error) {
	if dataDir == "" {
		dataDir = "data"
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &Store{dataDir: dataDir}, nil
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dataDir, name)
}

func (s *Store) LoadCatalog(ctx context.Context) ([]models.Offer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var offers []models.Offer
	if err := s.read(catalogFile, &offers); err != nil {
		return nil, err
	}
	return offers, nil
}

func (s *Store) SaveCatalog(ctx context.Context, offers []models.Offer) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if offers == nil {
		offers = []models.Offer{}
	}
	return s.write(catalogFile, offers)
}

func (s *Store) LoadCount(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	var rec counterRecord
	if err := s.read(counterFile, &rec); err != nil {
		return 0, err
	}
	return rec.Count, nil
}

func (s *Store) SaveCount(ctx context.Context, count int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.write(counterFile, counterRecord{Count: count})
}

// Ping checks that the data directory is still writable.
func (s *Store) Ping(context.Context) error {
	f, err := os.CreateTemp(s.dataDir, ".ping-*")
	if err != nil {
		return fmt.Errorf("data dir not writable: %w", err)
	}
	name := f.Name()
	_ = f.Close()
	return os.Remove(name)
}

func (s *Store) Close() error { return nil }

func (s *Store) read(name string, dest any) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.path(name))
	if errors.Is(err, fs.ErrNotExist) {
		return storage.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	return nil
}

// write must leave the previous file intact on any failure.
func (s *Store) write(name string, value any) error {
	data, err := json.MarshalIndent(value, "", "    ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tmp, err := os.CreateTemp(s.dataDir, name+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp for %s: %w", name, err)
	}
	tmpName := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpName) }

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		cleanup()
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		cleanup()
		return fmt.Errorf("sync %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return fmt.Errorf("close %s: %w", name, err)
	}
	if err := os.Rename(tmpName, s.path(name)); err != nil {
		cleanup()
		return fmt.Errorf("replace %s: %w", name, err)
	}
	return nil
}
