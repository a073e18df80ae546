// Package store owns the settings and config files. Both follow the
// same lazy-create pattern: the first read of a missing or unreadable
// file writes the defaults back to disk and returns them, so the files
// always exist after first use.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/awsf-cli/awsf/internal/models"
)

const appDirName = "awsf"

// Store reads and writes settings.json and config.json under a single
// base directory. Pass it explicitly into collector and query entry
// points; nothing else touches these files.
type Store struct {
	baseDir string
}

// New creates a store rooted at baseDir.
func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

// NewDefault roots the store at the user config directory
// (~/.config/awsf on Linux).
func NewDefault() (*Store, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("error locating user config directory: %w", err)
	}
	return New(filepath.Join(configDir, appDirName)), nil
}

// DefaultCachePath returns the resource cache location under the user
// cache directory (~/.cache/awsf on Linux).
func DefaultCachePath() (string, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("error locating user cache directory: %w", err)
	}
	return filepath.Join(cacheDir, appDirName, "resources.json"), nil
}

// SettingsPath returns the settings file location.
func (s *Store) SettingsPath() string {
	return filepath.Join(s.baseDir, "settings.json")
}

// ConfigPath returns the config file location.
func (s *Store) ConfigPath() string {
	return filepath.Join(s.baseDir, "config.json")
}

// LoadSettings returns the persisted settings, creating the default
// all-enabled settings file on first read.
func (s *Store) LoadSettings() (models.Settings, error) {
	var settings models.Settings
	if err := s.readJSON(s.SettingsPath(), &settings); err != nil {
		settings = models.DefaultSettings()
		if saveErr := s.SaveSettings(settings); saveErr != nil {
			return settings, saveErr
		}
		return settings, nil
	}
	if settings.EnabledServices == nil {
		settings.EnabledServices = models.DefaultSettings().EnabledServices
	}
	return settings, nil
}

// SaveSettings persists settings immediately.
func (s *Store) SaveSettings(settings models.Settings) error {
	return s.writeJSON(s.SettingsPath(), settings)
}

// LoadConfig returns the persisted config, creating the default config
// file on first read. Keys missing from an existing file are merged
// from the defaults.
func (s *Store) LoadConfig() (models.Config, error) {
	var config models.Config
	if err := s.readJSON(s.ConfigPath(), &config); err != nil {
		config = models.DefaultConfig()
		if saveErr := s.SaveConfig(config); saveErr != nil {
			return config, saveErr
		}
		return config, nil
	}
	defaults := models.DefaultConfig()
	if config.AWSRegion == "" {
		config.AWSRegion = defaults.AWSRegion
	}
	if config.ConsoleBaseURL == "" {
		config.ConsoleBaseURL = defaults.ConsoleBaseURL
	}
	return config, nil
}

// SaveConfig persists config immediately.
func (s *Store) SaveConfig(config models.Config) error {
	return s.writeJSON(s.ConfigPath(), config)
}

func (s *Store) readJSON(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

func (s *Store) writeJSON(path string, v interface{}) error {
	if err := os.MkdirAll(s.baseDir, 0o755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding %s: %w", filepath.Base(path), err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("error writing %s: %w", filepath.Base(path), err)
	}
	return nil
}
