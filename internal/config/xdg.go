// Package config provides XDG path helpers.
package config

import (
	"os"
	"path/filepath"
)

const appName = "typefall"

// XDGConfigHome returns the XDG config home or a default fallback.
func XDGConfigHome() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".config")
}

// XDGStateHome returns the XDG state home or a default fallback.
func XDGStateHome() string {
	if v := os.Getenv("XDG_STATE_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".local", "state")
}

// DefaultConfigPath returns the default TOML config path.
func DefaultConfigPath() string {
	return filepath.Join(XDGConfigHome(), appName, "config.toml")
}

// DefaultSongDir returns the directory scanned for user song files.
func DefaultSongDir() string {
	return filepath.Join(XDGConfigHome(), appName, "songs")
}

// DefaultWordListDir returns the default directory for word lists.
func DefaultWordListDir() string {
	return filepath.Join(XDGConfigHome(), appName, "wordlists")
}

// WordListPath resolves a word list argument. A bare name refers to
// <name>.txt in the word list directory; anything with a path separator or
// extension is used as is.
func WordListPath(name string) string {
	if name == "" {
		return ""
	}
	if filepath.Base(name) != name || filepath.Ext(name) != "" {
		return name
	}
	return filepath.Join(DefaultWordListDir(), name+".txt")
}

// DefaultLogPath returns the default debug log path.
func DefaultLogPath() string {
	return filepath.Join(XDGStateHome(), appName, appName+".log")
}
