package backup

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/julianstephens/habitual/internal/constants"
)

const sampleData = `[{"id":"a","name":"Read","colorHex":"#ff0000","reminderTime":"2024-01-01T09:00:00Z","checkedDates":["2024-01-01"]}]`

func newTestManager(t *testing.T) (*Manager, string) {
	t.Helper()
	dir := t.TempDir()
	dataPath := filepath.Join(dir, "habits.json")
	if err := os.WriteFile(dataPath, []byte(sampleData), 0600); err != nil {
		t.Fatal(err)
	}
	return NewManager(dataPath), dataPath
}

func TestCreateBackup(t *testing.T) {
	m, _ := newTestManager(t)

	path, err := m.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading backup: %v", err)
	}
	if string(got) != sampleData {
		t.Error("backup content does not match data file")
	}
}

func TestCreateBackupMissingDataFile(t *testing.T) {
	m := NewManager(filepath.Join(t.TempDir(), "habits.json"))
	if _, err := m.CreateBackup(); err == nil {
		t.Error("expected error for missing data file")
	}
}

func TestCreateBackupCorruptDataFile(t *testing.T) {
	dir := t.TempDir()
	dataPath := filepath.Join(dir, "habits.json")
	if err := os.WriteFile(dataPath, []byte("{broken"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := NewManager(dataPath).CreateBackup(); err == nil {
		t.Error("expected error for corrupt data file")
	}
}

func TestListBackupsSortedNewestFirst(t *testing.T) {
	m, _ := newTestManager(t)
	if err := os.MkdirAll(m.GetBackupDir(), 0700); err != nil {
		t.Fatal(err)
	}

	times := []time.Time{
		time.Date(2024, 1, 1, 10, 0, 0, 0, time.Local),
		time.Date(2024, 1, 3, 10, 0, 0, 0, time.Local),
		time.Date(2024, 1, 2, 10, 0, 0, 0, time.Local),
	}
	for _, ts := range times {
		name := fmt.Sprintf("%s%s%s", constants.BackupFilePrefix, ts.Format("20060102-1504"), constants.BackupFileSuffix)
		if err := os.WriteFile(filepath.Join(m.GetBackupDir(), name), []byte(sampleData), 0600); err != nil {
			t.Fatal(err)
		}
	}

	backups, err := m.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups: %v", err)
	}
	if len(backups) != 3 {
		t.Fatalf("got %d backups, want 3", len(backups))
	}
	for i := 1; i < len(backups); i++ {
		if backups[i].Timestamp.After(backups[i-1].Timestamp) {
			t.Error("backups not sorted newest first")
		}
	}
}

func TestRotationKeepsNewest(t *testing.T) {
	m, _ := newTestManager(t)
	if err := os.MkdirAll(m.GetBackupDir(), 0700); err != nil {
		t.Fatal(err)
	}

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local)
	for i := 0; i < constants.MaxBackups+3; i++ {
		ts := base.AddDate(0, 0, i)
		name := fmt.Sprintf("%s%s%s", constants.BackupFilePrefix, ts.Format("20060102-1504"), constants.BackupFileSuffix)
		if err := os.WriteFile(filepath.Join(m.GetBackupDir(), name), []byte(sampleData), 0600); err != nil {
			t.Fatal(err)
		}
	}

	// Creating one more triggers rotation.
	if _, err := m.CreateBackup(); err != nil {
		t.Fatalf("CreateBackup: %v", err)
	}

	backups, err := m.ListBackups()
	if err != nil {
		t.Fatal(err)
	}
	if len(backups) > constants.MaxBackups {
		t.Errorf("rotation left %d backups, want at most %d", len(backups), constants.MaxBackups)
	}
}

func TestRestoreBackup(t *testing.T) {
	m, dataPath := newTestManager(t)

	backupPath, err := m.CreateBackup()
	if err != nil {
		t.Fatal(err)
	}

	// Change the live data, then restore.
	if err := os.WriteFile(dataPath, []byte("[]"), 0600); err != nil {
		t.Fatal(err)
	}
	if err := m.RestoreBackup(backupPath); err != nil {
		t.Fatalf("RestoreBackup: %v", err)
	}

	got, err := os.ReadFile(dataPath)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != sampleData {
		t.Error("restore did not bring back the backed-up content")
	}

	// The pre-restore state must have been captured as a safety backup.
	backups, err := m.ListBackups()
	if err != nil {
		t.Fatal(err)
	}
	if len(backups) < 2 {
		t.Errorf("expected a pre-restore safety backup, found %d backups", len(backups))
	}
}

func TestRestoreBackupRejectsCorruptBackup(t *testing.T) {
	m, _ := newTestManager(t)
	if err := os.MkdirAll(m.GetBackupDir(), 0700); err != nil {
		t.Fatal(err)
	}
	bad := filepath.Join(m.GetBackupDir(), constants.BackupFilePrefix+"20240101-1000"+constants.BackupFileSuffix)
	if err := os.WriteFile(bad, []byte("{broken"), 0600); err != nil {
		t.Fatal(err)
	}
	if err := m.RestoreBackup(bad); err == nil {
		t.Error("expected error restoring a corrupt backup")
	}
}

func TestRestoreBackupMissingFile(t *testing.T) {
	m, _ := newTestManager(t)
	if err := m.RestoreBackup(filepath.Join(m.GetBackupDir(), "nope.json")); err == nil {
		t.Error("expected error for missing backup file")
	}
}
