// Package config loads the algostep settings file.
//
// The file is YAML, by default ~/.algostep/config.yaml:
//
//	speed: 50
//	seed: 7
//	log_level: info
//	sizes:
//	  sorting: 50
//	  searching: 50
//	  graph: 5
//	  tree: 7
//	theme:
//	  compare: "#f1c40f"
//	  swap: "#e74c3c"
//	  sorted: "#2ecc71"
//	  visit: "#3498db"
//	  muted: "#7f8c8d"
//
// Missing fields keep their defaults; a missing file is not an error.
package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/goccy/go-yaml"

	"github.com/katalvlaran/algostep/algorithms"
)

const (
	// DefaultBaseDir is the configuration directory under the home directory.
	DefaultBaseDir = ".algostep"
	// DefaultConfigFile is the configuration filename.
	DefaultConfigFile = "config.yaml"

	// MinSpeed and MaxSpeed bound the playback speed setting.
	MinSpeed = 1
	MaxSpeed = 100
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid value")

// Config is the full settings file.
type Config struct {
	// Speed is the playback speed, 1 (slowest) to 100.
	Speed int `yaml:"speed"`

	// Seed feeds the random input generators; 0 picks a time-based seed.
	Seed uint64 `yaml:"seed,omitempty"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// Sizes are the default generated input sizes per family.
	Sizes Sizes `yaml:"sizes"`

	// Theme holds terminal colours.
	Theme Theme `yaml:"theme"`

	path string
}

// Sizes are per-family input sizes: array length for sorting and
// searching, node count for graphs, value count for trees.
type Sizes struct {
	Sorting   int `yaml:"sorting"`
	Searching int `yaml:"searching"`
	Graph     int `yaml:"graph"`
	Tree      int `yaml:"tree"`
}

// Theme colours are lipgloss colour strings (hex or ANSI numbers).
type Theme struct {
	Compare string `yaml:"compare"`
	Swap    string `yaml:"swap"`
	Sorted  string `yaml:"sorted"`
	Visit   string `yaml:"visit"`
	Muted   string `yaml:"muted"`
}

// SizeRange is the inclusive range accepted for one family's size.
type SizeRange struct{ Min, Max int }

// Ranges are the accepted size ranges per family.
var Ranges = map[algorithms.Family]SizeRange{
	algorithms.FamilySorting:   {5, 100},
	algorithms.FamilySearching: {5, 100},
	algorithms.FamilyGraph:     {3, 10},
	algorithms.FamilyTree:      {3, 15},
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Speed:    50,
		LogLevel: "info",
		Sizes:    Sizes{Sorting: 50, Searching: 50, Graph: 5, Tree: 7},
		Theme: Theme{
			Compare: "#f1c40f",
			Swap:    "#e74c3c",
			Sorted:  "#2ecc71",
			Visit:   "#3498db",
			Muted:   "#7f8c8d",
		},
	}
}

// DefaultPath returns ~/.algostep/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "failed to get home directory")
	}
	return filepath.Join(home, DefaultBaseDir, DefaultConfigFile), nil
}

// Load reads path over the defaults and validates the result. An empty
// path means DefaultPath. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	cfg := Default()
	cfg.path = path

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, errors.Wrap(err, "failed to read config")
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.WithHint(
			errors.Wrapf(err, "failed to parse config %s", path),
			"the config file is YAML; see `algostep config` for the defaults")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

// Save writes the configuration to its path, creating the directory.
func (c *Config) Save() error {
	if c.path == "" {
		p, err := DefaultPath()
		if err != nil {
			return err
		}
		c.path = p
	}
	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return errors.Wrap(err, "failed to create config directory")
	}
	data, err := c.Marshal()
	if err != nil {
		return err
	}
	return errors.Wrap(os.WriteFile(c.path, data, 0o644), "failed to write config")
}

// Marshal encodes the configuration as YAML.
func (c *Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	return data, errors.Wrap(err, "failed to marshal config")
}

// Path returns where the configuration was loaded from or will be saved.
func (c *Config) Path() string { return c.path }

// SetPath changes where Save writes.
func (c *Config) SetPath(path string) { c.path = path }

// Validate checks speed, log level and sizes.
func (c *Config) Validate() error {
	if c.Speed < MinSpeed || c.Speed > MaxSpeed {
		return errors.Wrapf(ErrInvalid, "speed %d outside %d..%d", c.Speed, MinSpeed, MaxSpeed)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	for f, n := range map[algorithms.Family]int{
		algorithms.FamilySorting:   c.Sizes.Sorting,
		algorithms.FamilySearching: c.Sizes.Searching,
		algorithms.FamilyGraph:     c.Sizes.Graph,
		algorithms.FamilyTree:      c.Sizes.Tree,
	} {
		r := Ranges[f]
		if n < r.Min || n > r.Max {
			return errors.Wrapf(ErrInvalid, "%s size %d outside %d..%d", f, n, r.Min, r.Max)
		}
	}
	return nil
}

// Size returns the default input size for a family.
func (c *Config) Size(f algorithms.Family) int {
	switch f {
	case algorithms.FamilySearching:
		return c.Sizes.Searching
	case algorithms.FamilyGraph:
		return c.Sizes.Graph
	case algorithms.FamilyTree:
		return c.Sizes.Tree
	default:
		return c.Sizes.Sorting
	}
}

// Level returns the slog level for LogLevel. Validate has already
// rejected unknown names.
func (c *Config) Level() slog.Level {
	l, _ := ParseLevel(c.LogLevel)
	return l
}

// ParseLevel maps debug, info, warn and error to slog levels. The empty
// string is info.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, errors.Wrapf(ErrInvalid, "log level %q", s)
}
