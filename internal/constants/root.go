package constants

import "time"

const (
	AppName = "habitual"
	Version = "v0.1.0"

	// DateFormat is the standard day-key format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// Storage file names, resolved relative to the config directory
	DataFileName  = "habits.json"
	SeedFileName  = "seed.json"
	PrefsFileName = "prefs.json"

	DefaultConfigDir = "~/.config/habitual"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "habitual-"
	BackupFileSuffix = ".json"

	// Tray daemon constants
	NotifierLockfileName   = "habitual-notifier.lock"
	NotificationDurationMs = 5000
	TrayAppIdentifier      = "com.julianstephens.habitual"
	TrayRequestTimeout     = 2 * time.Second
)
