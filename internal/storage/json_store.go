package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/julianstephens/habitual/internal/logger"
	"github.com/julianstephens/habitual/internal/models"
	"github.com/julianstephens/habitual/internal/prefs"
)

// JSONStore persists the habit collection as a single JSON array file.
type JSONStore struct {
	path     string
	seedPath string
	prefs    *prefs.Store
}

// NewJSONStore creates a store over the given data file. seedPath names the
// bundled template applied on first run; it may point at a file that does
// not exist.
func NewJSONStore(path, seedPath string, p *prefs.Store) *JSONStore {
	return &JSONStore{
		path:     path,
		seedPath: seedPath,
		prefs:    p,
	}
}

func (s *JSONStore) DataPath() string {
	return s.path
}

// InitializeIfNeeded copies the bundled seed file into the data file
// location on the first ever run. The run is tracked by a persisted flag
// rather than file existence alone, and the flag is only set after a
// successful copy. Every failure path is non-fatal: the store starts empty.
func (s *JSONStore) InitializeIfNeeded() error {
	if s.prefs.Seeded() {
		return nil
	}

	if _, err := os.Stat(s.path); err == nil {
		logger.Debug("Data file already exists, skipping seed", "path", s.path)
		return nil
	}

	seed, err := os.ReadFile(s.seedPath)
	if err != nil {
		logger.Debug("No seed data available", "path", s.seedPath, "error", err)
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		logger.Warn("Failed to create data directory for seed", "error", err)
		return nil
	}
	if err := os.WriteFile(s.path, seed, 0600); err != nil {
		logger.Warn("Failed to copy seed data", "error", err)
		return nil
	}

	if err := s.prefs.SetSeeded(true); err != nil {
		logger.Warn("Failed to record seed flag", "error", err)
	}
	logger.Info("Applied seed data", "path", s.path)
	return nil
}

// Load reads and decodes the whole collection. Missing, unreadable, or
// corrupt files all yield an empty collection.
func (s *JSONStore) Load() []models.Habit {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("Failed to read data file", "path", s.path, "error", err)
		}
		return []models.Habit{}
	}

	var habits []models.Habit
	if err := json.Unmarshal(data, &habits); err != nil {
		logger.Warn("Failed to parse data file", "path", s.path, "error", err)
		return []models.Habit{}
	}
	if habits == nil {
		habits = []models.Habit{}
	}
	return habits
}

// Save encodes the collection and atomically replaces the data file via a
// temp file and rename, so a crash mid-write never leaves a torn document.
func (s *JSONStore) Save(habits []models.Habit) error {
	if habits == nil {
		habits = []models.Habit{}
	}
	data, err := json.MarshalIndent(habits, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize habits: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return fmt.Errorf("failed to write data file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace data file: %w", err)
	}
	return nil
}

// Update loads the collection, replaces the element at the given position
// when in range, and saves. Out-of-range positions leave the stored
// collection untouched.
func (s *JSONStore) Update(habit models.Habit, at int) error {
	habits := s.Load()
	if at < 0 || at >= len(habits) {
		logger.Debug("Update position out of range", "position", at, "count", len(habits))
		return nil
	}
	habits[at] = habit
	return s.Save(habits)
}

var _ Provider = (*JSONStore)(nil)
