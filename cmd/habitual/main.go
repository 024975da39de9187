package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/habitual/internal/cli"
	"github.com/julianstephens/habitual/internal/constants"
	"github.com/julianstephens/habitual/internal/errors"
	"github.com/julianstephens/habitual/internal/logger"
	"github.com/julianstephens/habitual/internal/prefs"
	"github.com/julianstephens/habitual/internal/reminder"
	"github.com/julianstephens/habitual/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Config directory holding the data file, prefs, and backups." default:"~/.config/habitual"`
	Seed    string `help:"Path to a seed data file applied on first run." default:""`
	Debug   bool   `help:"Enable debug logging to stderr."`

	Init   cli.InitCmd   `cmd:"" help:"Initialize habitual storage and apply seed data."`
	List   cli.ListCmd   `cmd:"" help:"List habits with today's status." default:"1"`
	Add    cli.AddCmd    `cmd:"" help:"Add a new habit."`
	Edit   cli.EditCmd   `cmd:"" help:"Edit a habit by its list position."`
	Delete cli.DeleteCmd `cmd:"" help:"Delete a habit by its list position."`
	Toggle cli.ToggleCmd `cmd:"" help:"Toggle a habit's completion for a day."`
	Log    cli.LogCmd    `cmd:"" help:"Show habit history (ASCII grid)."`
	Remind cli.RemindCmd `cmd:"" help:"Reschedule daily reminders."`
	Backup struct {
		Create  cli.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    cli.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore cli.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage data file backups."`
}

func expandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Personal habit tracker with daily reminders"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	configDir := expandHome(CLI.Config)
	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: configDir}); err != nil {
		errors.Fatal(err)
	}

	seedPath := expandHome(CLI.Seed)
	if seedPath == "" {
		seedPath = filepath.Join(configDir, constants.SeedFileName)
	}

	p := prefs.New(filepath.Join(configDir, constants.PrefsFileName))
	store := storage.NewJSONStore(filepath.Join(configDir, constants.DataFileName), seedPath, p)

	if err := store.InitializeIfNeeded(); err != nil {
		errors.Fatal(err)
	}

	appCtx := &cli.Context{
		Store:     store,
		Prefs:     p,
		Scheduler: reminder.New(reminder.NewTrayService()),
	}

	if err := ctx.Run(appCtx); err != nil {
		errors.Fatal(err)
	}
}
