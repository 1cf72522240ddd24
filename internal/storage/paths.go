// Package storage persists named board snapshots and cached move lists.
package storage

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog/log"
)

const appName = "chessmoves"

// dataHome returns the per-user base directory for application data:
// $XDG_DATA_HOME or ~/.local/share on Unix, ~/Library/Application Support
// on macOS, %APPDATA% on Windows.
func dataHome() (string, error) {
	switch runtime.GOOS {
	case "darwin":
		return underHome("Library", "Application Support")
	case "windows":
		if dir := os.Getenv("APPDATA"); dir != "" {
			return dir, nil
		}
		return underHome("AppData", "Roaming")
	}

	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return dir, nil
	}
	return underHome(".local", "share")
}

func underHome(elem ...string) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(append([]string{home}, elem...)...), nil
}

// appDir creates and returns <dataHome>/chessmoves/<elem...>.
func appDir(elem ...string) (string, error) {
	base, err := dataHome()
	if err != nil {
		return "", err
	}

	dir := filepath.Join(append([]string{base, appName}, elem...)...)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return dir, nil
}

// GetDataDir returns the application data directory, creating it if needed.
func GetDataDir() (string, error) {
	return appDir()
}

// GetDatabaseDir returns the BadgerDB directory inside the data directory.
func GetDatabaseDir() (string, error) {
	dir, err := appDir("db")
	if err != nil {
		return "", err
	}
	log.Debug().Str("dir", dir).Msg("database directory")
	return dir, nil
}
