// Package registry keeps the list of followed artist pages in a JSON file.
package registry

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
)

// Registry is a file backed, append-only list of artist page URLs
type Registry struct {
	path string
}

// New creates a registry stored at the given path
func New(path string) *Registry {
	return &Registry{path: path}
}

// Path returns location of the registry file
func (r *Registry) Path() string {
	return r.path
}

// Load returns all artist URLs in stored order.
// Missing file is an empty registry, malformed content is an error.
func (r *Registry) Load() ([]string, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("read registry %s: %w", r.path, err)
	}

	artists := []string{}
	if err := json.Unmarshal(data, &artists); err != nil {
		return nil, fmt.Errorf("parse registry %s: %w", r.path, err)
	}
	return artists, nil
}

// Contains checks if the exact artist URL is already registered
func (r *Registry) Contains(artistURL string) (bool, error) {
	artists, err := r.Load()
	if err != nil {
		return false, err
	}
	return slices.Contains(artists, artistURL), nil
}

// Add appends artist URL and persists the whole list.
// Returns false without touching the file if the URL is already present.
func (r *Registry) Add(artistURL string) (bool, error) {
	artists, err := r.Load()
	if err != nil {
		return false, err
	}
	if slices.Contains(artists, artistURL) {
		return false, nil
	}

	artists = append(artists, artistURL)
	if err := r.save(artists); err != nil {
		return false, err
	}
	return true, nil
}

// save writes the list via temp file and rename, so readers never see a partial file
func (r *Registry) save(artists []string) error {
	data, err := json.MarshalIndent(artists, "", "    ")
	if err != nil {
		return fmt.Errorf("marshal registry: %w", err)
	}

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("create registry dir %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(r.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp registry file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) //nolint:errcheck // no-op after successful rename

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write registry: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close registry: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil { //nolint:gosec // registry is not sensitive
		return fmt.Errorf("chmod registry: %w", err)
	}
	if err := os.Rename(tmpName, r.path); err != nil {
		return fmt.Errorf("replace registry %s: %w", r.path, err)
	}
	return nil
}
