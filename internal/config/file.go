package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/adrg/xdg"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// configRelPath is searched for under the XDG config directories.
const configRelPath = "lss/config.yaml"

// fileConfig mirrors the YAML file. Pointer fields distinguish "absent"
// from a zero value.
type fileConfig struct {
	Player     *string `yaml:"player"`
	PathWidth  *int    `yaml:"path_width"`
	Jobs       *int    `yaml:"jobs"`
	Strict     *bool   `yaml:"strict"`
	Color      *string `yaml:"color"`
	LogFile    *string `yaml:"log_file"`
	Count      *bool   `yaml:"count"`
	Size       *bool   `yaml:"size"`
	Resolution *bool   `yaml:"resolution"`
}

// FindFile returns explicit when set, otherwise the first lss/config.yaml in
// the XDG config directories. It returns "" when there is none.
func FindFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	path, err := xdg.SearchConfigFile(configRelPath)
	if err != nil {
		return ""
	}
	return path
}

// LoadFile reads the YAML file at path and copies every present key into cfg
// unless changed reports that the matching flag was set on the command line.
// A missing file is not an error unless required is true.
func LoadFile(fsys afero.Fs, path string, required bool, cfg *Config, changed func(flag string) bool) error {
	if path == "" {
		return nil
	}
	f, err := fsys.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !required {
			return nil
		}
		return fmt.Errorf("open config %s: %w", path, err)
	}
	defer f.Close()

	var fc fileConfig
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	if changed == nil {
		changed = func(string) bool { return false }
	}
	return fc.apply(cfg, changed)
}

func (fc *fileConfig) apply(cfg *Config, changed func(string) bool) error {
	set(&cfg.Player, fc.Player, changed("player"))
	set(&cfg.LogFile, fc.LogFile, changed("log"))
	set(&cfg.PathWidth, fc.PathWidth, changed("path-width"))
	set(&cfg.Jobs, fc.Jobs, changed("jobs"))
	set(&cfg.Strict, fc.Strict, changed("strict"))
	set(&cfg.Count, fc.Count, changed("count"))
	set(&cfg.Size, fc.Size, changed("size"))
	set(&cfg.Resolution, fc.Resolution, changed("resolution"))

	if fc.Color != nil && !changed("color") && !changed("no-color") {
		mode, err := ParseColorMode(*fc.Color)
		if err != nil {
			return err
		}
		cfg.ColorMode = mode
	}
	return nil
}

func set[T any](dst *T, v *T, flagSet bool) {
	if v != nil && !flagSet {
		*dst = *v
	}
}
