package config

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// WatchSeed pre-registers one watchlist entry at startup.
type WatchSeed struct {
	Path           string  `json:"path"`
	AlertThreshold float64 `json:"alert_threshold"` // bytes/s; 0 disables
}

// Config holds user-configurable defaults.
type Config struct {
	Root              string      `json:"root"`
	IntervalSec       int         `json:"interval_sec"`
	ScanIntervalSec   int         `json:"scan_interval_sec"`
	EntropySampleSize int         `json:"entropy_sample_size"`
	Watchlist         []WatchSeed `json:"watchlist"`
	WatchFs           bool        `json:"watch_fs"` // inotify touch hints between scans
}

// Default returns a config with sensible defaults.
func Default() Config {
	return Config{
		Root:              ".",
		IntervalSec:       1,
		ScanIntervalSec:   30,
		EntropySampleSize: 2048,
		WatchFs:           true,
	}
}

// Path returns ~/.config/statgrid/config.json (or XDG_CONFIG_HOME).
// Returns empty string if home directory cannot be determined.
func Path() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "statgrid", "config.json")
}

// Load loads config from disk; returns defaults on error.
func Load() Config {
	cfg := Default()
	p := Path()
	if p == "" {
		return cfg
	}
	data, err := os.ReadFile(p)
	if err != nil {
		return cfg
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		log.Printf("statgrid: warning: config parse error: %v", err)
	}
	return cfg
}

// Save writes the config to disk.
func Save(cfg Config) error {
	path := Path()
	if path == "" {
		return fmt.Errorf("cannot determine config directory")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
