package config

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
)

// AppDataDir returns the per-user local application data directory:
// %LOCALAPPDATA% on Windows, ~/Library/Application Support on macOS and
// $XDG_DATA_HOME or ~/.local/share elsewhere.
func AppDataDir() (string, error) {
	return appDataDir(runtime.GOOS, os.Getenv, os.UserHomeDir)
}

func appDataDir(goos string, getenv func(string) string, home func() (string, error)) (string, error) {
	switch goos {
	case "windows":
		if dir := getenv("LOCALAPPDATA"); dir != "" {
			return dir, nil
		}
		if dir := getenv("APPDATA"); dir != "" {
			return dir, nil
		}
		return "", errors.New("neither %LOCALAPPDATA% nor %APPDATA% is set")
	case "darwin", "ios":
		h, err := home()
		if err != nil {
			return "", err
		}
		return filepath.Join(h, "Library", "Application Support"), nil
	default:
		if dir := getenv("XDG_DATA_HOME"); dir != "" && filepath.IsAbs(dir) {
			return dir, nil
		}
		h, err := home()
		if err != nil {
			return "", err
		}
		return filepath.Join(h, ".local", "share"), nil
	}
}
