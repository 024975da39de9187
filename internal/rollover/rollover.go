package rollover

import (
	"time"

	"github.com/julianstephens/habitual/internal/logger"
	"github.com/julianstephens/habitual/internal/models"
	"github.com/julianstephens/habitual/internal/prefs"
	"github.com/julianstephens/habitual/internal/storage"
	"github.com/julianstephens/habitual/internal/utils"
)

// Roller clears per-day completion state when a new calendar day has begun
// since the app last ran. It is meant to run once per activation, before
// habits are read for display, and is idempotent within a calendar day.
type Roller struct {
	Store storage.Provider
	Prefs *prefs.Store

	// Now is the time source; it defaults to time.Now and is overridable
	// for deterministic tests.
	Now func() time.Time
}

func New(store storage.Provider, p *prefs.Store) *Roller {
	return &Roller{
		Store: store,
		Prefs: p,
		Now:   time.Now,
	}
}

func (r *Roller) now() time.Time {
	if r.Now != nil {
		return r.Now()
	}
	return time.Now()
}

// Run applies the rollover policy and returns the collection as persisted
// afterward. On a new day every habit's checked dates are cleared and
// saved, then the last-seen marker is advanced; on the same day the
// collection is simply reloaded to pick up edits made elsewhere.
func (r *Roller) Run() []models.Habit {
	todayKey := utils.DayKey(r.now())
	lastKey := r.Prefs.LastSeenDay()

	if lastKey == todayKey {
		return r.Store.Load()
	}

	habits := r.Store.Load()
	for i := range habits {
		habits[i].CheckedDates = []string{}
	}
	if err := r.Store.Save(habits); err != nil {
		// Keep the in-memory copy authoritative and retry on the next
		// activation by leaving the marker untouched.
		logger.Error("Failed to persist daily rollover", "error", err)
		return habits
	}
	if err := r.Prefs.SetLastSeenDay(todayKey); err != nil {
		logger.Error("Failed to persist last-seen day", "day", todayKey, "error", err)
	}
	logger.Info("Rolled over to a new day", "day", todayKey, "previous", lastKey)

	return r.Store.Load()
}
