// Package stores manages the planner files in a planner directory.
//
// Each planner is a single <name>.pln file. The Catalog lists, locates, and
// deletes those files; reading and writing their contents belongs to the
// planner package.
package stores

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/danieljhkim/planner/internal/fsops"
	"github.com/danieljhkim/planner/internal/planner"
)

// Catalog provides an interface for managing planner files.
type Catalog interface {
	// Dir returns the planner directory.
	Dir() string

	// List returns the names of all planners, sorted.
	List() ([]string, error)

	// Exists reports whether the named planner file exists.
	Exists(name string) (bool, error)

	// Path returns the file path of the named planner.
	Path(name string) (string, error)

	// Delete removes the named planner file.
	Delete(name string) error
}

// FileCatalog implements Catalog over a directory on disk.
type FileCatalog struct {
	fs  fsops.FS
	dir string
}

// NewFileCatalog creates a new FileCatalog.
func NewFileCatalog(fs fsops.FS, dir string) *FileCatalog {
	return &FileCatalog{
		fs:  fs,
		dir: dir,
	}
}

// Dir returns the planner directory.
func (c *FileCatalog) Dir() string {
	return c.dir
}

// List returns the names of all planners, sorted.
// A missing directory holds no planners.
func (c *FileCatalog) List() ([]string, error) {
	entries, err := c.fs.ReadDir(c.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to read planner directory: %w", err)
	}

	names := []string{}
	ext := "." + planner.Extension
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ext {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), ext))
	}
	slices.Sort(names)

	return names, nil
}

// Exists reports whether the named planner file exists. A directory with
// a planner's file name does not count, matching how planners are loaded.
func (c *FileCatalog) Exists(name string) (bool, error) {
	path, err := c.Path(name)
	if err != nil {
		return false, err
	}
	return c.fs.IsFile(path)
}

// Path returns the file path of the named planner.
func (c *FileCatalog) Path(name string) (string, error) {
	if err := c.fs.ValidateIdentifier(name); err != nil {
		return "", fmt.Errorf("invalid planner name: %w", err)
	}
	return planner.Path(c.dir, name), nil
}

// Delete removes the named planner file. Deleting a planner that does not
// exist returns an error wrapping ErrPlannerNotFound.
func (c *FileCatalog) Delete(name string) error {
	path, err := c.Path(name)
	if err != nil {
		return err
	}

	if err := c.fs.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrPlannerNotFound, name)
		}
		return fmt.Errorf("failed to delete planner: %w", err)
	}

	return nil
}
