package cli

import (
	"time"

	"github.com/julianstephens/habitual/internal/backup"
	"github.com/julianstephens/habitual/internal/logger"
	"github.com/julianstephens/habitual/internal/models"
	"github.com/julianstephens/habitual/internal/prefs"
	"github.com/julianstephens/habitual/internal/reminder"
	"github.com/julianstephens/habitual/internal/rollover"
	"github.com/julianstephens/habitual/internal/storage"
)

// Context carries the wired application services into every command.
type Context struct {
	Store     storage.Provider
	Prefs     *prefs.Store
	Scheduler *reminder.Scheduler

	// Now is the time source; it defaults to time.Now and is overridable
	// for deterministic tests.
	Now func() time.Time
}

func (c *Context) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

// Refresh runs the daily rollover, then brings the pending reminders in
// line with the surviving collection. Data-facing commands call it before
// reading habits for display.
func (c *Context) Refresh() []models.Habit {
	roller := rollover.New(c.Store, c.Prefs)
	roller.Now = c.now
	habits := roller.Run()
	c.Scheduler.RescheduleAll(habits)
	return habits
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors.
// Mutation commands call it before touching the data file.
func (c *Context) PerformAutomaticBackup() {
	path := c.Store.DataPath()
	if path == "" {
		// Nothing on disk to back up (in-memory store).
		return
	}
	mgr := backup.NewManager(path)
	if _, err := mgr.CreateBackup(); err != nil {
		// Log warning but don't interrupt user workflow
		logger.Warn("Automatic backup failed", "error", err)
	}
}
