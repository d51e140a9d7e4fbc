package cli

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
)

// ErrInvalidConfig is returned by Load when a value fails validation.
var ErrInvalidConfig = errors.New("invalid config")

// Config is the TOML-backed configuration of the CLI.
//
//	[output]
//	header = true        # print "fromNode,toNode,truss" first
//	delimiter = ","      # single-character field separator
//	summary = false      # render the per-level table on stderr
//
//	[log]
//	level = "info"       # debug | info | warn | error
//
//	[limits]
//	max_edges = 0        # 0 = unlimited
//	max_triangles = 16777216  # triangle instances, 0 = unlimited
//	max_vertices = 16777216
type Config struct {
	Output Output `toml:"output"`
	Log    Log    `toml:"log"`
	Limits Limits `toml:"limits"`
}

// Output controls how decomposition results are written.
type Output struct {
	Header    bool   `toml:"header"`
	Delimiter string `toml:"delimiter"`
	Summary   bool   `toml:"summary"`
}

// Log selects the verbosity of the stderr logger.
type Log struct {
	Level string `toml:"level"`
}

// Limits bounds the input size. Exceeding max_edges or max_triangles fails
// with truss.ErrResourceExhausted; max_vertices is enforced while reading.
type Limits struct {
	MaxEdges     int `toml:"max_edges"`
	MaxTriangles int `toml:"max_triangles"`
	MaxVertices  int `toml:"max_vertices"`
}

const (
	defaultMaxVertices  = 1 << 24
	defaultMaxTriangles = 1 << 24
)

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Output: Output{Header: true, Delimiter: ","},
		Log:    Log{Level: "info"},
		Limits: Limits{MaxTriangles: defaultMaxTriangles, MaxVertices: defaultMaxVertices},
	}
}

// Load reads the TOML file at path over Default() and validates the result.
// Keys absent from the file keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if _, err := toml.Decode(string(data), cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// validate checks ranges and enumerations.
func (c *Config) validate() error {
	if utf8.RuneCountInString(c.Output.Delimiter) != 1 {
		return fmt.Errorf("%w: output.delimiter must be one character, got %q", ErrInvalidConfig, c.Output.Delimiter)
	}
	if c.Output.Delimiter == "\n" || c.Output.Delimiter == "\r" || c.Output.Delimiter == `"` {
		return fmt.Errorf("%w: output.delimiter %q is not usable in CSV", ErrInvalidConfig, c.Output.Delimiter)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %v", ErrInvalidConfig, err)
	}
	if c.Limits.MaxEdges < 0 {
		return fmt.Errorf("%w: limits.max_edges cannot be negative (%d)", ErrInvalidConfig, c.Limits.MaxEdges)
	}
	if c.Limits.MaxTriangles < 0 {
		return fmt.Errorf("%w: limits.max_triangles cannot be negative (%d)", ErrInvalidConfig, c.Limits.MaxTriangles)
	}
	if c.Limits.MaxVertices <= 0 {
		return fmt.Errorf("%w: limits.max_vertices must be positive (%d)", ErrInvalidConfig, c.Limits.MaxVertices)
	}

	return nil
}

// level returns the parsed log level; validate guarantees it parses.
func (c *Config) level() log.Level {
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}
