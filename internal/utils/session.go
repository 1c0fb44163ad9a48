package utils

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/soumzer/ferro/internal/models"
)

const sessionFileName = "current_session.toml"

func sessionPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("Failed to resolve home directory: %w", err)
	}

	dir := filepath.Join(home, ".config", "ferro")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("Failed to create config directory: %w", err)
	}

	return filepath.Join(dir, sessionFileName), nil
}

// SaveSessionState persists the live session between CLI invocations.
// The state is encoded in memory first so a failed encode cannot truncate
// the file already on disk.
func SaveSessionState(state *models.SessionState) error {
	path, err := sessionPath()
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(state); err != nil {
		return fmt.Errorf("Failed to encode session state: %w", err)
	}

	return os.WriteFile(path, buf.Bytes(), 0644)
}

func LoadSessionState() (*models.SessionState, error) {
	path, err := sessionPath()
	if err != nil {
		return nil, err
	}

	var state models.SessionState
	if _, err := toml.DecodeFile(path, &state); err != nil {
		return nil, fmt.Errorf("Failed to decode session state: %w", err)
	}

	return &state, nil
}

func ClearSessionState() error {
	path, err := sessionPath()
	if err != nil {
		return err
	}
	return os.Remove(path)
}

func SessionExists() bool {
	path, err := sessionPath()
	if err != nil {
		return false
	}
	_, err = os.Stat(path)
	return err == nil
}
