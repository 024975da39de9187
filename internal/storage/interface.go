package storage

import "github.com/julianstephens/habitual/internal/models"

// Provider owns the authoritative habit collection. The collection is the
// unit of persistence: every Save replaces the whole document, and Load
// always returns a usable (possibly empty) collection — a missing or
// corrupt data file is indistinguishable from "no habits" by design.
type Provider interface {
	// InitializeIfNeeded applies first-run seeding. It runs at most once
	// per install and never overwrites an existing data file.
	InitializeIfNeeded() error

	// Load decodes the whole collection. It never fails the caller:
	// read or decode errors degrade to an empty collection.
	Load() []models.Habit

	// Save atomically replaces the data file with the encoded collection.
	// On failure the caller's in-memory copy stays the source of truth.
	Save(habits []models.Habit) error

	// Update replaces the element at the given position and saves. An
	// out-of-range position is a no-op, not an error.
	Update(habit models.Habit, at int) error

	// DataPath returns the location of the backing data file.
	DataPath() string
}
