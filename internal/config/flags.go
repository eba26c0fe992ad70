package config

// This file binds CLI flags onto Config with pflag.
// Flags are grouped into scan, output, behavior and display.
// Mode switches (--rv, --json) and color overrides are applied after Parse
// so Config defaults and config-file values hold unless the flag is set.

import (
	"errors"

	"github.com/spf13/pflag"
)

// Flags captures flag values that do not map one-to-one onto Config fields.
// Create with [BindFlags] and fold into Config with [Flags.Apply].
type Flags struct {
	rv      bool
	json    bool
	color   bool
	noColor bool

	set *pflag.FlagSet
}

// BindFlags registers every lss flag on fs, writing straight into cfg where a
// field maps one-to-one. cfg's current values become the flag defaults.
func BindFlags(fs *pflag.FlagSet, cfg *Config) *Flags {
	f := &Flags{set: fs}
	defineScanFlags(fs, cfg)
	defineOutputFlags(fs, cfg, f)
	defineBehaviorFlags(fs, cfg)
	defineDisplayFlags(fs, cfg, f)
	return f
}

// defineScanFlags registers -r/--recursive and -d/--depth.
func defineScanFlags(fs *pflag.FlagSet, cfg *Config) {
	fs.BoolVarP(&cfg.Recursive, "recursive", "r", cfg.Recursive, "Walk subdirectories")
	fs.IntVarP(&cfg.Depth, "depth", "d", cfg.Depth, "Maximum depth with the root as 1 (needs --recursive)")
}

// defineOutputFlags registers columns and output modes.
func defineOutputFlags(fs *pflag.FlagSet, cfg *Config, f *Flags) {
	fs.BoolVar(&cfg.Resolution, "resolution", cfg.Resolution, "Read width x height from each frame header")
	fs.BoolVar(&cfg.Size, "size", cfg.Size, "Show total and average size")
	fs.BoolVar(&cfg.Count, "count", cfg.Count, "Show frame count")
	fs.BoolVar(&f.rv, "rv", false, "Print one player command per sequence")
	fs.StringVar(&cfg.Player, "player", cfg.Player, "Player command used by --rv")
	fs.BoolVar(&f.json, "json", false, "Print the report as JSON")
	fs.IntVar(&cfg.PathWidth, "path-width", cfg.PathWidth, "Maximum width of the path column")
}

// defineBehaviorFlags registers --jobs and --strict.
func defineBehaviorFlags(fs *pflag.FlagSet, cfg *Config) {
	fs.IntVarP(&cfg.Jobs, "jobs", "j", cfg.Jobs, "Parallel header and size reads")
	fs.BoolVar(&cfg.Strict, "strict", cfg.Strict, "Abort on the first unreadable directory or header")
}

// defineDisplayFlags registers logging, color, --config and --check.
func defineDisplayFlags(fs *pflag.FlagSet, cfg *Config, f *Flags) {
	fs.StringVar(&cfg.ConfigFile, "config", "", "YAML config file (default: $XDG_CONFIG_HOME/lss/config.yaml)")
	fs.BoolVarP(&cfg.Verbose, "verbose", "v", false, "Verbose output")
	fs.BoolVar(&f.color, "color", false, "Force colored output")
	fs.BoolVar(&f.noColor, "no-color", false, "Disable colored output")
	fs.StringVarP(&cfg.LogFile, "log", "l", cfg.LogFile, "Append logs to file")
	fs.BoolVarP(&cfg.CheckOnly, "check", "c", false, "Run diagnostics and exit")
}

// Changed reports whether the named flag was set on the command line.
func (f *Flags) Changed(name string) bool {
	return f.set != nil && f.set.Changed(name)
}

// Apply folds mode switches and color overrides into cfg.
func (f *Flags) Apply(cfg *Config) error {
	if f.rv && f.json {
		return errors.New("--rv and --json are mutually exclusive")
	}
	switch {
	case f.rv:
		cfg.Output = OutputPlayer
	case f.json:
		cfg.Output = OutputJSON
	}
	if f.noColor {
		cfg.ColorMode = ColorNever
	} else if f.color {
		cfg.ColorMode = ColorAlways
	}
	return nil
}
