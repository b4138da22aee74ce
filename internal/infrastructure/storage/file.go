package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileDriver stores each collection as <key>.json inside a directory.
// Writes go through a temp file and rename so a crash mid-write cannot
// truncate a collection.
type FileDriver struct {
	dir string
}

// NewFileDriver creates the directory if needed and returns the driver.
func NewFileDriver(dir string) (*FileDriver, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	return &FileDriver{dir: dir}, nil
}

func (d *FileDriver) path(key string) string {
	return filepath.Join(d.dir, key+".json")
}

func (d *FileDriver) Load(key string) ([]byte, bool, error) {
	data, err := os.ReadFile(d.path(key))
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to load collection %s: %w", key, err)
	}
	return data, true, nil
}

func (d *FileDriver) Save(key string, data []byte) error {
	tmp := d.path(key) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write collection %s: %w", key, err)
	}
	if err := os.Rename(tmp, d.path(key)); err != nil {
		return fmt.Errorf("failed to replace collection %s: %w", key, err)
	}
	return nil
}

func (d *FileDriver) Close() error {
	return nil
}
