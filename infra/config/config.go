package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// Config holds application-level configuration.
type Config struct {
	OriginURL   string // e.g. "https://www.reddit.com"
	StateDir    string // Holds the session database and preferences file
	SessionPath string
	PrefsPath   string
}

// Load reads configuration from environment variables.
//
//	THREADBARE_ORIGIN: origin site URL (default: https://www.reddit.com)
//	THREADBARE_STATE: state directory (default: ~/.config/threadbare)
func Load() (Config, error) {
	origin := os.Getenv("THREADBARE_ORIGIN")
	if origin == "" {
		origin = "https://www.reddit.com"
	}
	parsed, err := url.Parse(origin)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return Config{}, fmt.Errorf("invalid THREADBARE_ORIGIN: must be an absolute URL")
	}
	if parsed.Scheme != "https" {
		return Config{}, fmt.Errorf("invalid THREADBARE_ORIGIN: only https is allowed")
	}
	origin = strings.TrimRight(parsed.String(), "/")

	stateDir := os.Getenv("THREADBARE_STATE")
	if stateDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("cannot determine home directory: %w", err)
		}
		stateDir = filepath.Join(home, ".config", "threadbare")
	}
	if err := os.MkdirAll(stateDir, 0o755); err != nil {
		return Config{}, fmt.Errorf("creating state directory: %w", err)
	}

	return Config{
		OriginURL:   origin,
		StateDir:    stateDir,
		SessionPath: filepath.Join(stateDir, "sessions.db"),
		PrefsPath:   filepath.Join(stateDir, "prefs.yaml"),
	}, nil
}
