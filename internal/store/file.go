// Package store holds the persistence backends behind the tasks.Store
// contract: the whole mapping is loaded and saved as one document.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"taskflow-backend/internal/tasks"
)

// File keeps the mapping in a single pretty-printed JSON file.
// There is no write-ahead or atomic rename: a crash mid-save can leave
// the file corrupted, and recovering it is the operator's job.
type File struct {
	path string
}

func NewFile(path string) *File {
	return &File{path: path}
}

func (f *File) Path() string {
	return f.path
}

// ensure creates the file (and any missing parent directory) with an
// empty document when it does not exist yet.
func (f *File) ensure() error {
	_, err := os.Stat(f.path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return err
	}
	if dir := filepath.Dir(f.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(f.path, []byte("{}"), 0o644)
}

func (f *File) Load() (map[string]tasks.Fields, error) {
	if err := f.ensure(); err != nil {
		return nil, fmt.Errorf("store: %w", err)
	}

	raw, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("store: %w", err)
	}

	data := make(map[string]tasks.Fields)
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("store: parse %s: %w", f.path, err)
	}
	return data, nil
}

func (f *File) Save(data map[string]tasks.Fields) error {
	if err := f.ensure(); err != nil {
		return fmt.Errorf("store: %w", err)
	}

	raw, err := json.MarshalIndent(data, "", "    ")
	if err != nil {
		return fmt.Errorf("store: %w", err)
	}
	if err := os.WriteFile(f.path, raw, 0o644); err != nil {
		return fmt.Errorf("store: %w", err)
	}
	return nil
}
