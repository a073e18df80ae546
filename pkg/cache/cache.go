// Package cache persists the resource cache as a single JSON document.
// Writes are all-or-nothing: the new cache is staged in a temp file and
// renamed over the old one, so a failed write leaves the previous cache
// authoritative.
package cache

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/awsf-cli/awsf/internal/models"
)

var (
	// ErrNotFound means no cache file exists yet.
	ErrNotFound = errors.New("resource cache not found")

	// ErrCorrupt means the cache file exists but is not valid JSON.
	ErrCorrupt = errors.New("resource cache is not valid JSON")
)

// Save writes the cache to path, replacing any previous file.
func Save(path string, resources models.ResourceCache) error {
	data, err := json.MarshalIndent(resources, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding resource cache: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("error creating cache directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".resources-*.json")
	if err != nil {
		return fmt.Errorf("error staging resource cache: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("error writing resource cache: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("error writing resource cache: %w", err)
	}

	// CreateTemp defaults to 0600; match the settings/config file mode.
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("error writing resource cache: %w", err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("error replacing resource cache: %w", err)
	}
	return nil
}

// Load reads the cache from path. Missing and corrupt caches return
// ErrNotFound and ErrCorrupt respectively so callers can print the
// matching hint and continue with an empty set.
func Load(path string) (models.ResourceCache, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("error reading resource cache: %w", err)
	}

	var resources models.ResourceCache
	if err := json.Unmarshal(data, &resources); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrCorrupt, path)
	}

	// Hand-edited or older cache files may miss required fields; degrade
	// them to placeholders instead of rendering blanks downstream.
	for name, record := range resources {
		resources[name] = record.Normalize()
	}
	return resources, nil
}

// Age returns how long ago the cache was written, or ok=false when no
// cache exists.
func Age(path string) (time.Duration, bool) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, false
	}
	return time.Since(info.ModTime()), true
}
