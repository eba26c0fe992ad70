// Package config holds runtime configuration: defaults, CLI flag binding, the
// optional YAML config file, normalization and validation.
package config

import (
	"errors"
	"fmt"
	"strings"
)

// --- Enum types for validated string fields ---

// OutputMode selects how the report is written to stdout.
type OutputMode string

const (
	OutputTable  OutputMode = "table"  // Column table (default).
	OutputPlayer OutputMode = "player" // One player command per sequence (--rv).
	OutputJSON   OutputMode = "json"   // Single JSON document (--json).
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

const (
	DefaultPathWidth = 30
	DefaultPlayer    = "rv"
	MaxJobs          = 64
	minPathWidth     = 4
)

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("invalid configuration")

// Config holds all runtime settings. It is populated by [DefaultConfig], then
// by the config file and CLI flags, then passed through [Config.Normalize]
// and [Config.Validate].
type Config struct {
	// Scan scope.
	Root      string // Default: ".".
	Recursive bool
	Depth     int // Root counts as 1. Forced to 1 unless Recursive.

	// Columns and metadata.
	Resolution bool // Read width x height from headers. Off in player mode.
	Size       bool
	Count      bool

	// Output.
	Output    OutputMode // Default: "table".
	Player    string     // Default: "rv".
	PathWidth int        // Cap of the path column. Default: 30.

	// Behavior.
	Jobs   int  // Parallel metadata reads, clamped to [1, MaxJobs]. Default: 1.
	Strict bool // Abort on unreadable directories or headers.

	// Display and logging.
	Verbose    bool
	ColorMode  ColorMode // Default: "auto".
	LogFile    string    // Optional log file path.
	ConfigFile string    // Explicit --config path; empty means xdg search.
	CheckOnly  bool      // Run --check diagnostics and exit.
}

// DefaultConfig returns a Config with every default filled in.
func DefaultConfig() Config {
	return Config{
		Root:      ".",
		Depth:     1,
		Output:    OutputTable,
		Player:    DefaultPlayer,
		PathWidth: DefaultPathWidth,
		Jobs:      1,
		ColorMode: ColorAuto,
	}
}

// NormalizeDirArg strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an empty string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}

// Normalize applies the derived settings: player output never reads
// resolution, a non-recursive scan has depth 1, and Jobs is clamped.
func (c *Config) Normalize() {
	c.Root = NormalizeDirArg(c.Root)
	if c.Root == "" {
		c.Root = "."
	}
	if c.Output == OutputPlayer {
		c.Resolution = false
	}
	if !c.Recursive {
		c.Depth = 1
	}
	if c.Jobs < 1 {
		c.Jobs = 1
	}
	if c.Jobs > MaxJobs {
		c.Jobs = MaxJobs
	}
	c.Player = strings.TrimSpace(c.Player)
}

// Validate checks enum fields and numeric bounds. Call after Normalize.
func (c *Config) Validate() error {
	switch c.Output {
	case OutputTable, OutputPlayer, OutputJSON:
		// valid
	default:
		return fmt.Errorf("%w: output mode %q (use 'table', 'player' or 'json')", ErrInvalid, c.Output)
	}

	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return fmt.Errorf("%w: color %q (use 'auto', 'always' or 'never')", ErrInvalid, c.ColorMode)
	}

	if c.Depth < 1 {
		return fmt.Errorf("%w: depth must be at least 1 (got %d)", ErrInvalid, c.Depth)
	}
	if c.PathWidth < minPathWidth {
		return fmt.Errorf("%w: path width must be at least %d (got %d)", ErrInvalid, minPathWidth, c.PathWidth)
	}
	if c.Output == OutputPlayer && c.Player == "" {
		return fmt.Errorf("%w: player command must not be empty", ErrInvalid)
	}
	return nil
}

// ParseColorMode maps a user string onto a ColorMode.
func ParseColorMode(s string) (ColorMode, error) {
	switch m := ColorMode(strings.ToLower(strings.TrimSpace(s))); m {
	case ColorAuto, ColorAlways, ColorNever:
		return m, nil
	}
	return "", fmt.Errorf("%w: color %q (use 'auto', 'always' or 'never')", ErrInvalid, s)
}
