package repository

import (
	"context"
	"os"
	"path/filepath"
)

// FileStore keeps the snapshot in a single JSON file, the on-device
// analogue of a browser's local storage slot.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (f *FileStore) Load(ctx context.Context) ([]byte, bool, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return data, true, nil
}

// Save writes through a temp file and renames so a crash mid-write
// cannot leave a truncated snapshot behind.
func (f *FileStore) Save(ctx context.Context, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return err
	}
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, f.path)
}
