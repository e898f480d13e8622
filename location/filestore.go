package location

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"sync"

	"gopkg.in/yaml.v3"
)

// locationsFile is the YAML shape of the location data file.
type locationsFile struct {
	Locations []Record `yaml:"locations"`
}

// FileStore is a Repository backed by a YAML file. The file is parsed into
// an in-memory snapshot; Reload swaps the snapshot atomically so a watcher
// can refresh it while renders are in flight.
type FileStore struct {
	path   string
	logger *slog.Logger

	mu      sync.RWMutex
	records []Record
}

// NewFileStore creates a FileStore and performs the initial load.
func NewFileStore(path string, logger *slog.Logger) (*FileStore, error) {
	if logger == nil {
		logger = slog.Default()
	}

	s := &FileStore{
		path:   path,
		logger: logger,
	}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Reload re-reads the backing file and replaces the snapshot.
func (s *FileStore) Reload() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return fmt.Errorf("read locations file: %w", err)
	}

	var file locationsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("parse locations file: %w", err)
	}

	s.mu.Lock()
	s.records = file.Locations
	s.mu.Unlock()

	s.logger.Debug("Loaded locations", "path", s.path, "count", len(file.Locations))
	return nil
}

// Get implements Repository.
func (s *FileStore) Get(_ context.Context, f Filter) ([]Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []Record
	if len(f.IDs) > 0 {
		// Preserve the order of the requested ids.
		for _, id := range f.IDs {
			for i := range s.records {
				if s.records[i].ID == id && matches(&s.records[i], f) {
					out = append(out, s.records[i])
					break
				}
			}
		}
	} else {
		for i := range s.records {
			if matches(&s.records[i], f) {
				out = append(out, s.records[i])
			}
		}
	}

	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out, nil
}

// ByID implements Repository.
func (s *FileStore) ByID(_ context.Context, id string) (*Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.records {
		if s.records[i].ID == id {
			rec := s.records[i]
			return &rec, nil
		}
	}
	return nil, nil
}

func matches(r *Record, f Filter) bool {
	if f.Status != "" && r.Status != f.Status {
		return false
	}
	if f.Category != "" && !slices.Contains(r.Categories, f.Category) {
		return false
	}
	return true
}
