package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/danieljhkim/planner/internal/clock"
	"github.com/danieljhkim/planner/internal/config"
	"github.com/danieljhkim/planner/internal/fsops"
	"github.com/danieljhkim/planner/internal/planner"
	"github.com/danieljhkim/planner/internal/stores"
)

// appClock supplies "today"; tests replace it with a FakeClock.
var appClock clock.Clock = &clock.RealClock{}

// session is the resolved context of one command invocation.
type session struct {
	fs       fsops.FS
	paths    *config.Paths
	settings *config.Settings
	catalog  stores.Catalog
	name     string
}

// newSession resolves the planner directory, settings, and planner name
// from flags, environment, and config.yaml.
func newSession() (*session, error) {
	var paths *config.Paths
	if plannerDir != "" {
		paths = config.PathsAt(plannerDir)
	} else {
		p, err := config.DefaultPaths()
		if err != nil {
			return nil, fmt.Errorf("failed to get config paths: %w", err)
		}
		paths = p
	}

	settings, err := config.LoadSettings(paths.Config)
	if err != nil {
		return nil, err
	}
	if noColor || settings.NoColor {
		color.NoColor = true
	}

	name := plannerName
	if name == "" {
		name = settings.DefaultPlanner
	}

	fs := fsops.NewRealFS()
	return &session{
		fs:       fs,
		paths:    paths,
		settings: settings,
		catalog:  stores.NewFileCatalog(fs, paths.Root),
		name:     name,
	}, nil
}

// load reads the session's planner; a missing file yields an empty one.
func (s *session) load() (*planner.Planner, error) {
	return planner.LoadFS(s.fs, s.catalog.Dir(), s.name)
}

// save writes the session's planner, creating the directory on first use.
func (s *session) save(p *planner.Planner) error {
	if err := s.paths.EnsureDirectories(); err != nil {
		return fmt.Errorf("failed to ensure directories: %w", err)
	}
	return p.SaveFS(s.fs, s.catalog.Dir(), s.name)
}

// FormatError formats an error for display.
func FormatError(err error) string {
	return errorColor.Sprintf("Error: %v", err)
}

// outputJSON outputs a value as JSON to stdout.
func outputJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
