package models

import (
	"slices"
	"time"

	"github.com/julianstephens/habitual/internal/utils"
)

// Habit represents a recurring practice to track. CheckedDates holds one
// day key (YYYY-MM-DD) per calendar day the habit was completed, in
// insertion order, with no duplicates.
type Habit struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	ColorHex     string    `json:"colorHex"`
	ReminderTime time.Time `json:"reminderTime"`
	CheckedDates []string  `json:"checkedDates"`
}

// IsChecked reports whether the habit was completed on the given date's
// calendar day.
func (h Habit) IsChecked(date time.Time) bool {
	return slices.Contains(h.CheckedDates, utils.DayKey(date))
}

// Toggled returns a copy of the habit with the date's day key added if
// absent, removed if present. Applying it twice for the same date returns
// the original set.
func (h Habit) Toggled(date time.Time) Habit {
	key := utils.DayKey(date)
	updated := make([]string, 0, len(h.CheckedDates)+1)
	found := false
	for _, k := range h.CheckedDates {
		if k == key {
			found = true
			continue
		}
		updated = append(updated, k)
	}
	if !found {
		updated = append(updated, key)
	}
	h.CheckedDates = updated
	return h
}

// TotalCheckCount returns the number of days the habit was ever completed.
func (h Habit) TotalCheckCount() int {
	return len(h.CheckedDates)
}

// ThisWeekCheckCount returns how many checked days fall in the same ISO week
// as now. Malformed day keys are skipped.
func (h Habit) ThisWeekCheckCount(now time.Time) int {
	count := 0
	for _, key := range h.CheckedDates {
		d, err := utils.ParseDayKey(key)
		if err != nil {
			continue
		}
		if utils.SameWeek(d, now) {
			count++
		}
	}
	return count
}

// ConsecutiveDaysCount returns the habit's streak: the number of checked
// days walking backward day by day with no gap. The walk cursor starts at
// now's calendar day whether or not that day is checked, so a habit checked
// only yesterday still reports a streak of 1.
func (h Habit) ConsecutiveDaysCount(now time.Time) int {
	dates := make([]time.Time, 0, len(h.CheckedDates))
	for _, key := range h.CheckedDates {
		d, err := utils.ParseDayKey(key)
		if err != nil {
			continue
		}
		dates = append(dates, d)
	}
	slices.SortFunc(dates, func(a, b time.Time) int {
		return b.Compare(a)
	})

	count := 0
	cursor := now
	for _, d := range dates {
		if utils.SameDay(d, cursor) {
			count++
		} else if utils.SameDay(d, cursor.AddDate(0, 0, -1)) {
			count++
			cursor = cursor.AddDate(0, 0, -1)
		} else {
			break
		}
	}
	return count
}

// Color returns the habit's decoded color, or DefaultColor when ColorHex
// is malformed.
func (h Habit) Color() Color {
	c, err := ParseHex(h.ColorHex)
	if err != nil {
		return DefaultColor
	}
	return c
}
