package prefs

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/julianstephens/habitual/internal/logger"
)

// Store persists small process-wide flags that live outside the habit data
// file: whether first-run seeding has been applied, and the last calendar
// day the app was known to be active. A missing file is a fresh install and
// reads as zero values.
type Store struct {
	path   string
	values values
}

type values struct {
	Seeded      bool   `json:"seeded"`
	LastSeenDay string `json:"last_seen_day,omitempty"`
}

func New(path string) *Store {
	s := &Store{path: path}
	s.load()
	return s
}

func (s *Store) load() {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("Failed to read prefs file", "path", s.path, "error", err)
		}
		s.values = values{}
		return
	}
	if err := json.Unmarshal(data, &s.values); err != nil {
		logger.Warn("Failed to parse prefs file", "path", s.path, "error", err)
		s.values = values{}
	}
}

func (s *Store) save() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("failed to create prefs directory: %w", err)
	}
	data, err := json.MarshalIndent(s.values, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize prefs: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return fmt.Errorf("failed to write prefs: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace prefs: %w", err)
	}
	return nil
}

// Seeded reports whether first-run seeding has already been applied.
func (s *Store) Seeded() bool {
	return s.values.Seeded
}

// SetSeeded records that first-run seeding has been applied.
func (s *Store) SetSeeded(seeded bool) error {
	s.values.Seeded = seeded
	return s.save()
}

// LastSeenDay returns the day key of the last known activation, or the
// empty string when one has never been recorded.
func (s *Store) LastSeenDay() string {
	return s.values.LastSeenDay
}

// SetLastSeenDay records the day key of the current activation.
func (s *Store) SetLastSeenDay(key string) error {
	s.values.LastSeenDay = key
	return s.save()
}
