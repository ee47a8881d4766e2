package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// File stores each slot as a JSON file under a root directory. Writes go
// through a temp file and rename so a crash mid-write never leaves a
// half-written slot behind.
type File struct {
	root string
}

// NewFile returns a file-backed slot store rooted at the given directory,
// creating it if necessary.
func NewFile(root string) (*File, error) {
	if root == "" {
		return nil, fmt.Errorf("file storage: root directory is required")
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("file storage: create root: %w", err)
	}
	return &File{root: root}, nil
}

func (f *File) Load(slot string) ([]byte, bool, error) {
	path, err := f.slotPath(slot)
	if err != nil {
		return nil, false, err
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("file storage: read slot %q: %w", slot, err)
	}
	return data, true, nil
}

func (f *File) Save(slot string, data []byte) error {
	path, err := f.slotPath(slot)
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("file storage: write slot %q: %w", slot, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("file storage: commit slot %q: %w", slot, err)
	}
	return nil
}

func (f *File) Delete(slot string) error {
	path, err := f.slotPath(slot)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("file storage: delete slot %q: %w", slot, err)
	}
	return nil
}

func (f *File) Close() error { return nil }

func (f *File) slotPath(slot string) (string, error) {
	if slot == "" || strings.ContainsAny(slot, `/\`) || slot != filepath.Base(slot) {
		return "", fmt.Errorf("file storage: invalid slot name %q", slot)
	}
	return filepath.Join(f.root, slot+".json"), nil
}
