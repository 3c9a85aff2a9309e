// Package config resolves where planners live and loads user settings.
//
// The planner directory defaults to a per-user data location and can be
// overridden with the PLANNER_ROOT environment variable or the
// --planner-directory flag. The same directory holds config.yaml.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// AppName names the application directory and the binary.
const AppName = "planner"

// Paths contains all the filesystem paths used by planner.
type Paths struct {
	// Root is the directory holding planner files (default: per-user data dir)
	Root string

	// Config is the path to the settings file
	Config string
}

// DefaultPaths returns the default paths for planner.
// Resolution order:
//   - PLANNER_ROOT
//   - $XDG_DATA_HOME/planner
//   - the OS data directory (~/.local/share/planner on Unix,
//     os.UserConfigDir()/planner on macOS and Windows)
func DefaultPaths() (*Paths, error) {
	root := os.Getenv("PLANNER_ROOT")
	if root == "" {
		dataDir, err := userDataDir()
		if err != nil {
			return nil, err
		}
		root = filepath.Join(dataDir, AppName)
	}
	return PathsAt(root), nil
}

// PathsAt returns the paths rooted at an explicit directory.
func PathsAt(root string) *Paths {
	return &Paths{
		Root:   root,
		Config: filepath.Join(root, "config.yaml"),
	}
}

func userDataDir() (string, error) {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return xdg, nil
	}

	switch runtime.GOOS {
	case "darwin", "windows":
		dir, err := os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("failed to get user data directory: %w", err)
		}
		return dir, nil
	default:
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get user home directory: %w", err)
		}
		return filepath.Join(home, ".local", "share"), nil
	}
}

// EnsureDirectories creates the planner directory if it doesn't exist.
func (p *Paths) EnsureDirectories() error {
	if err := os.MkdirAll(p.Root, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", p.Root, err)
	}
	return nil
}
