package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultPlannerName is used when no planner name is given.
	DefaultPlannerName = "default_planner"

	// DefaultDateLayout renders dates in view output, e.g. "Sunday, 21 June, 2020".
	DefaultDateLayout = "Monday, 2 January, 2006"
)

// Settings holds user preferences read from config.yaml.
type Settings struct {
	// DefaultPlanner is the planner used when --planner-name is not given
	DefaultPlanner string `yaml:"default_planner"`

	// DateLayout is a Go time layout for dates in the view command
	DateLayout string `yaml:"date_layout"`

	// NoColor disables colored output
	NoColor bool `yaml:"no_color"`
}

// DefaultSettings returns the built-in settings.
func DefaultSettings() *Settings {
	return &Settings{
		DefaultPlanner: DefaultPlannerName,
		DateLayout:     DefaultDateLayout,
	}
}

// Normalize fills zero values with defaults so partial files still work.
func (s *Settings) Normalize() {
	if s.DefaultPlanner == "" {
		s.DefaultPlanner = DefaultPlannerName
	}
	if s.DateLayout == "" {
		s.DateLayout = DefaultDateLayout
	}
}

// LoadSettings reads settings from path. A missing file yields the defaults.
func LoadSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return DefaultSettings(), nil
		}
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}

	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse settings %s: %w", path, err)
	}
	s.Normalize()
	return &s, nil
}
