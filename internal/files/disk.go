package files

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	dErrors "rentora/pkg/domain-errors"
	"rentora/pkg/platform/sentinel"
)

// Disk stores files under a root directory. Every path handed to it is
// treated as relative to the root and checked against traversal.
type Disk struct {
	root string
}

func NewDisk(root string) (*Disk, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve storage root: %w", err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("create storage root: %w", err)
	}
	return &Disk{root: abs}, nil
}

// Root returns the absolute storage root.
func (d *Disk) Root() string { return d.root }

// resolve rejects any path that escapes the root.
func (d *Disk) resolve(name string) (string, error) {
	cleaned := filepath.Clean(filepath.Join(d.root, filepath.FromSlash(name)))
	if cleaned != d.root && !strings.HasPrefix(cleaned, d.root+string(filepath.Separator)) {
		return "", dErrors.New(dErrors.CodeBadRequest, "invalid file path")
	}
	return cleaned, nil
}

// Save writes data under the root and returns the normalized relative path.
func (d *Disk) Save(name string, data []byte) (string, error) {
	path, err := d.resolve(name)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("create file dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write file: %w", err)
	}
	rel, err := filepath.Rel(d.root, path)
	if err != nil {
		return "", fmt.Errorf("relativize path: %w", err)
	}
	return filepath.ToSlash(rel), nil
}

// Open reads a file previously saved under the root.
func (d *Disk) Open(name string) ([]byte, error) {
	path, err := d.resolve(name)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("read file: %w", err)
	}
	return data, nil
}

// Remove deletes a file if it exists.
func (d *Disk) Remove(name string) error {
	path, err := d.resolve(name)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove file: %w", err)
	}
	return nil
}
