package config

import (
	"os"
	"path/filepath"
)

const appDirName = ".stagehand"

// DataDir returns the base data directory for Stagehand.
func DataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, appDirName), nil
}

// ConfigPath returns the path to the settings file.
func ConfigPath() (string, error) {
	dataDir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataDir, "config.toml"), nil
}

// SessionStatePath returns the path to the persisted session state file
// used by the file backend.
func SessionStatePath() (string, error) {
	dataDir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataDir, "session.json"), nil
}

// SessionDBPath returns the path to the bbolt database used by the bbolt
// backend.
func SessionDBPath() (string, error) {
	dataDir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataDir, "session.db"), nil
}

// KeymapPath returns the path to the keymap override file.
func KeymapPath() (string, error) {
	dataDir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataDir, "keymap.json"), nil
}
