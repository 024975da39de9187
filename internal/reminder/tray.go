package reminder

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/mitchellh/go-ps"

	"github.com/julianstephens/habitual/internal/constants"
)

var (
	userConfigDirFunc = os.UserConfigDir
	findProcessFunc   = ps.FindProcess
)

// TrayService registers recurring alarms with the local habitual-tray
// daemon, which owns the OS notification surface. Discovery goes through
// the daemon's lockfile (port|pid|secret), with the pid validated against
// the running process table before anything is sent.
type TrayService struct {
	client *http.Client
}

type alarmPayload struct {
	ID         string `json:"id"`
	Hour       int    `json:"hour"`
	Minute     int    `json:"minute"`
	Text       string `json:"text"`
	DurationMs uint32 `json:"duration_ms"`
}

func NewTrayService() *TrayService {
	return &TrayService{
		client: &http.Client{Timeout: constants.TrayRequestTimeout},
	}
}

func (t *TrayService) Schedule(id string, hour, minute int, message string) error {
	payload := alarmPayload{
		ID:         id,
		Hour:       hour,
		Minute:     minute,
		Text:       message,
		DurationMs: constants.NotificationDurationMs,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return t.post("/alarms", body)
}

func (t *TrayService) CancelAll() error {
	return t.post("/alarms/clear", []byte("{}"))
}

func (t *TrayService) post(path string, body []byte) error {
	configDir, err := GetTrayAppConfigDir()
	if err != nil {
		return err
	}

	port, secret, err := findAndValidateTrayProcess(filepath.Join(configDir, constants.NotifierLockfileName))
	if err != nil {
		return err
	}

	url := fmt.Sprintf("http://127.0.0.1:%s%s", port, path)
	req, err := http.NewRequest("POST", url, bytes.NewBuffer(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Habitual-Secret", secret)

	res, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusOK {
		return nil
	}
	resBody, _ := io.ReadAll(res.Body)
	return fmt.Errorf("tray request failed with status %d: %s", res.StatusCode, string(resBody))
}

// GetTrayAppConfigDir returns the configuration directory used by the tray
// application, honoring a lockfile_dir override in its settings.json.
func GetTrayAppConfigDir() (string, error) {
	configDir, err := userConfigDirFunc()
	if err != nil {
		return "", fmt.Errorf("failed to get user config dir: %w", err)
	}

	trayConfigDir := filepath.Join(configDir, constants.TrayAppIdentifier)

	settingsPath := filepath.Join(trayConfigDir, "settings.json")
	if _, err := os.Stat(settingsPath); err == nil {
		data, err := os.ReadFile(settingsPath)
		if err == nil {
			var store struct {
				Settings struct {
					LockfileDir *string `json:"lockfile_dir"`
				} `json:"settings"`
			}
			if err := json.Unmarshal(data, &store); err == nil {
				if store.Settings.LockfileDir != nil && *store.Settings.LockfileDir != "" {
					return *store.Settings.LockfileDir, nil
				}
			}
		}
	}

	return trayConfigDir, nil
}

func findAndValidateTrayProcess(lockfilePath string) (string, string, error) {
	content, err := os.ReadFile(lockfilePath)
	if err != nil {
		return "", "", errors.New("habitual-tray is not running")
	}

	parts := strings.Split(strings.TrimSpace(string(content)), "|")
	if len(parts) != 3 {
		return "", "", errors.New("lockfile is malformed")
	}

	port := parts[0]
	if strings.TrimSpace(port) == "" {
		return "", "", errors.New("port in lockfile is empty")
	}
	portNum, err := strconv.Atoi(port)
	if err != nil {
		return "", "", errors.New("invalid port number in lockfile")
	}
	if portNum < 1 || portNum > 65535 {
		return "", "", fmt.Errorf("port number %d is outside valid range (1-65535)", portNum)
	}

	pid, err := strconv.Atoi(parts[1])
	if err != nil {
		return "", "", errors.New("invalid process ID in lockfile")
	}
	secret := parts[2]
	if strings.TrimSpace(secret) == "" {
		return "", "", errors.New("secret in lockfile is empty")
	}

	process, err := findProcessFunc(pid)
	if err != nil || process == nil {
		return "", "", errors.New("habitual-tray process not running")
	}

	if !strings.HasPrefix(process.Executable(), "habitual-tray") {
		return "", "", fmt.Errorf("process with PID %d is not habitual-tray (is %s)", pid, process.Executable())
	}

	return port, secret, nil
}

var _ AlarmService = (*TrayService)(nil)
