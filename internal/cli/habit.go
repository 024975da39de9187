package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/google/uuid"

	"github.com/julianstephens/habitual/internal/models"
	"github.com/julianstephens/habitual/internal/utils"
)

func validateName(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("name cannot be empty")
	}
	return nil
}

func validateColor(s string) error {
	if _, err := models.ParseHex(s); err != nil {
		return fmt.Errorf("expected a #rrggbb color")
	}
	return nil
}

func validateRemind(s string) error {
	if !utils.ValidateTimeFormat(s) {
		return fmt.Errorf("expected HH:MM")
	}
	return nil
}

// reminderAt combines today's date with an HH:MM string. Only the
// hour/minute component is ever read back by the scheduler.
func reminderAt(now time.Time, timeStr string) (time.Time, error) {
	t, err := utils.ParseTime(timeStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid reminder time %q (expected HH:MM)", timeStr)
	}
	return time.Date(now.Year(), now.Month(), now.Day(), t.Hour(), t.Minute(), 0, 0, now.Location()), nil
}

type AddCmd struct {
	Name   string `arg:"" optional:"" help:"Habit name."`
	Color  string `help:"Habit color as #rrggbb." default:""`
	Remind string `help:"Daily reminder time (HH:MM)." default:""`
}

func (c *AddCmd) Run(ctx *Context) error {
	ctx.PerformAutomaticBackup()
	habits := ctx.Refresh()

	name := c.Name
	color := c.Color
	remind := c.Remind

	if name == "" || color == "" || remind == "" {
		if color == "" {
			color = "#007aff"
		}
		if remind == "" {
			remind = "09:00"
		}
		form := huh.NewForm(huh.NewGroup(
			huh.NewInput().Title("Name").Value(&name).Validate(validateName),
			huh.NewInput().Title("Color (#rrggbb)").Value(&color).Validate(validateColor),
			huh.NewInput().Title("Reminder time (HH:MM)").Value(&remind).Validate(validateRemind),
		))
		if err := form.Run(); err != nil {
			return err
		}
	}

	if err := validateName(name); err != nil {
		return err
	}
	parsed, err := models.ParseHex(color)
	if err != nil {
		return err
	}
	reminderTime, err := reminderAt(ctx.now(), remind)
	if err != nil {
		return err
	}

	habit := models.Habit{
		ID:           uuid.New().String(),
		Name:         name,
		ColorHex:     parsed.Hex(),
		ReminderTime: reminderTime,
		CheckedDates: []string{},
	}

	if err := ctx.Store.Save(append(habits, habit)); err != nil {
		return err
	}
	ctx.Scheduler.RescheduleAll(ctx.Store.Load())

	fmt.Printf("Added habit: %s\n", name)
	return nil
}

type EditCmd struct {
	Position int    `arg:"" help:"Habit position as shown by 'habitual list'."`
	Name     string `help:"New habit name." default:""`
	Color    string `help:"New color as #rrggbb." default:""`
	Remind   string `help:"New daily reminder time (HH:MM)." default:""`
}

func (c *EditCmd) Run(ctx *Context) error {
	ctx.PerformAutomaticBackup()
	habits := ctx.Refresh()

	idx := c.Position - 1
	if idx < 0 || idx >= len(habits) {
		fmt.Printf("No habit at position %d.\n", c.Position)
		return nil
	}
	habit := habits[idx]

	if c.Name == "" && c.Color == "" && c.Remind == "" {
		name := habit.Name
		color := habit.ColorHex
		remind := habit.ReminderTime.Local().Format("15:04")
		form := huh.NewForm(huh.NewGroup(
			huh.NewInput().Title("Name").Value(&name).Validate(validateName),
			huh.NewInput().Title("Color (#rrggbb)").Value(&color).Validate(validateColor),
			huh.NewInput().Title("Reminder time (HH:MM)").Value(&remind).Validate(validateRemind),
		))
		if err := form.Run(); err != nil {
			return err
		}
		c.Name, c.Color, c.Remind = name, color, remind
	}

	if c.Name != "" {
		if err := validateName(c.Name); err != nil {
			return err
		}
		habit.Name = c.Name
	}
	if c.Color != "" {
		parsed, err := models.ParseHex(c.Color)
		if err != nil {
			return err
		}
		habit.ColorHex = parsed.Hex()
	}
	if c.Remind != "" {
		reminderTime, err := reminderAt(ctx.now(), c.Remind)
		if err != nil {
			return err
		}
		habit.ReminderTime = reminderTime
	}

	if err := ctx.Store.Update(habit, idx); err != nil {
		return err
	}
	ctx.Scheduler.RescheduleAll(ctx.Store.Load())

	fmt.Printf("Updated habit: %s\n", habit.Name)
	return nil
}

type DeleteCmd struct {
	Position int `arg:"" help:"Habit position as shown by 'habitual list'."`
}

func (c *DeleteCmd) Run(ctx *Context) error {
	ctx.PerformAutomaticBackup()
	habits := ctx.Refresh()

	idx := c.Position - 1
	if idx < 0 || idx >= len(habits) {
		fmt.Printf("No habit at position %d.\n", c.Position)
		return nil
	}
	name := habits[idx].Name

	habits = append(habits[:idx], habits[idx+1:]...)
	if err := ctx.Store.Save(habits); err != nil {
		return err
	}
	// Cancel-all-then-reschedule drops the deleted habit's alarm.
	ctx.Scheduler.RescheduleAll(habits)

	fmt.Printf("Deleted habit: %s\n", name)
	return nil
}

type ToggleCmd struct {
	Position int    `arg:"" help:"Habit position as shown by 'habitual list'."`
	Date     string `help:"Day to toggle in YYYY-MM-DD format (default: today)." default:""`
}

func (c *ToggleCmd) Run(ctx *Context) error {
	ctx.PerformAutomaticBackup()
	habits := ctx.Refresh()

	idx := c.Position - 1
	if idx < 0 || idx >= len(habits) {
		fmt.Printf("No habit at position %d.\n", c.Position)
		return nil
	}

	date := ctx.now()
	if c.Date != "" {
		parsed, err := utils.ParseDayKey(c.Date)
		if err != nil {
			return err
		}
		date = parsed
	}

	toggled := habits[idx].Toggled(date)
	if err := ctx.Store.Update(toggled, idx); err != nil {
		return err
	}

	if toggled.IsChecked(date) {
		fmt.Printf("Checked %q for %s\n", toggled.Name, utils.DayKey(date))
	} else {
		fmt.Printf("Unchecked %q for %s\n", toggled.Name, utils.DayKey(date))
	}
	return nil
}
