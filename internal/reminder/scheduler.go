package reminder

import (
	"fmt"

	"github.com/julianstephens/habitual/internal/logger"
	"github.com/julianstephens/habitual/internal/models"
)

// AlarmService is the external recurring-alarm capability. Alarms are
// keyed by id: scheduling an id that already exists replaces its alarm.
type AlarmService interface {
	Schedule(id string, hour, minute int, message string) error
	CancelAll() error
}

// Scheduler decides what gets scheduled. The policy is cancel-all then
// reschedule every surviving habit, so deleted habits lose their alarms
// transitively and the set of pending alarms always mirrors the current
// collection exactly.
type Scheduler struct {
	Alarms AlarmService
}

func New(alarms AlarmService) *Scheduler {
	return &Scheduler{Alarms: alarms}
}

// RescheduleAll replaces all pending reminders with one daily recurring
// alarm per habit, firing at the hour and minute of the habit's reminder
// time in local time. Delivery is fire-and-forget: per-alarm failures are
// logged and skipped.
func (s *Scheduler) RescheduleAll(habits []models.Habit) {
	if err := s.Alarms.CancelAll(); err != nil {
		logger.Warn("Failed to cancel pending reminders", "error", err)
	}

	for _, h := range habits {
		local := h.ReminderTime.Local()
		msg := fmt.Sprintf("Time for %q!", h.Name)
		if err := s.Alarms.Schedule(h.ID, local.Hour(), local.Minute(), msg); err != nil {
			logger.Warn("Failed to schedule reminder", "habit", h.Name, "error", err)
			continue
		}
		logger.Debug("Scheduled reminder", "habit", h.Name, "hour", local.Hour(), "minute", local.Minute())
	}
}
