package config

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDirArg(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no trailing slash", "/shows/ep101", "/shows/ep101"},
		{"single trailing slash", "/shows/ep101/", "/shows/ep101"},
		{"multiple trailing slashes", "/shows/ep101///", "/shows/ep101"},
		{"root path", "/", "/"},
		{"relative path", "renders", "renders"},
		{"relative with slash", "renders/", "renders"},
		{"empty string", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeDirArg(tt.in)
			if got != tt.want {
				t.Errorf("NormalizeDirArg(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestDefaultConfig_SaneDefaults(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, ".", cfg.Root)
	assert.Equal(t, 1, cfg.Depth)
	assert.Equal(t, OutputTable, cfg.Output)
	assert.Equal(t, "rv", cfg.Player)
	assert.Equal(t, 30, cfg.PathWidth)
	assert.Equal(t, 1, cfg.Jobs)
	assert.Equal(t, ColorAuto, cfg.ColorMode)
	assert.False(t, cfg.Recursive)
	assert.False(t, cfg.Strict)
	require.NoError(t, cfg.Validate())
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		check  func(*testing.T, Config)
	}{
		{
			"player mode drops resolution",
			func(c *Config) { c.Output = OutputPlayer; c.Resolution = true },
			func(t *testing.T, c Config) { assert.False(t, c.Resolution) },
		},
		{
			"table mode keeps resolution",
			func(c *Config) { c.Resolution = true },
			func(t *testing.T, c Config) { assert.True(t, c.Resolution) },
		},
		{
			"non-recursive forces depth 1",
			func(c *Config) { c.Depth = 7 },
			func(t *testing.T, c Config) { assert.Equal(t, 1, c.Depth) },
		},
		{
			"recursive keeps depth",
			func(c *Config) { c.Recursive = true; c.Depth = 7 },
			func(t *testing.T, c Config) { assert.Equal(t, 7, c.Depth) },
		},
		{
			"jobs clamped low",
			func(c *Config) { c.Jobs = -3 },
			func(t *testing.T, c Config) { assert.Equal(t, 1, c.Jobs) },
		},
		{
			"jobs clamped high",
			func(c *Config) { c.Jobs = 1000 },
			func(t *testing.T, c Config) { assert.Equal(t, MaxJobs, c.Jobs) },
		},
		{
			"root trailing slash",
			func(c *Config) { c.Root = "plates/" },
			func(t *testing.T, c Config) { assert.Equal(t, "plates", c.Root) },
		},
		{
			"empty root is cwd",
			func(c *Config) { c.Root = "" },
			func(t *testing.T, c Config) { assert.Equal(t, ".", c.Root) },
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			cfg.Normalize()
			tt.check(t, cfg)
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"json output", func(c *Config) { c.Output = OutputJSON }, false},
		{"unknown output", func(c *Config) { c.Output = "xml" }, true},
		{"unknown color", func(c *Config) { c.ColorMode = "sometimes" }, true},
		{"zero depth", func(c *Config) { c.Recursive = true; c.Depth = 0 }, true},
		{"tiny path width", func(c *Config) { c.PathWidth = 2 }, true},
		{"player without command", func(c *Config) { c.Output = OutputPlayer; c.Player = "  " }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			cfg.Normalize()
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				assert.ErrorIs(t, err, ErrInvalid)
			}
		})
	}
}

func TestFlags_Apply(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		check   func(*testing.T, Config)
		wantErr bool
	}{
		{
			name: "rv selects player output",
			args: []string{"--rv", "--player", "djv"},
			check: func(t *testing.T, c Config) {
				assert.Equal(t, OutputPlayer, c.Output)
				assert.Equal(t, "djv", c.Player)
			},
		},
		{
			name:  "json output",
			args:  []string{"--json"},
			check: func(t *testing.T, c Config) { assert.Equal(t, OutputJSON, c.Output) },
		},
		{
			name:    "rv and json conflict",
			args:    []string{"--rv", "--json"},
			wantErr: true,
		},
		{
			name:  "no-color wins over color",
			args:  []string{"--color", "--no-color"},
			check: func(t *testing.T, c Config) { assert.Equal(t, ColorNever, c.ColorMode) },
		},
		{
			name: "short flags",
			args: []string{"-r", "-d", "3", "-j", "4", "-v"},
			check: func(t *testing.T, c Config) {
				assert.True(t, c.Recursive)
				assert.Equal(t, 3, c.Depth)
				assert.Equal(t, 4, c.Jobs)
				assert.True(t, c.Verbose)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			fs := pflag.NewFlagSet("lss", pflag.ContinueOnError)
			f := BindFlags(fs, &cfg)
			require.NoError(t, fs.Parse(tt.args))
			err := f.Apply(&cfg)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestLoadFile_FlagsWinOverFile(t *testing.T) {
	mem := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(mem, "/etc/lss.yaml", []byte(`
player: djv
path_width: 50
jobs: 8
size: true
color: never
`), 0o644))

	cfg := DefaultConfig()
	fs := pflag.NewFlagSet("lss", pflag.ContinueOnError)
	f := BindFlags(fs, &cfg)
	require.NoError(t, fs.Parse([]string{"--jobs", "2"}))
	require.NoError(t, f.Apply(&cfg))

	require.NoError(t, LoadFile(mem, "/etc/lss.yaml", true, &cfg, f.Changed))

	assert.Equal(t, "djv", cfg.Player)
	assert.Equal(t, 50, cfg.PathWidth)
	assert.Equal(t, 2, cfg.Jobs, "explicit flag beats file")
	assert.True(t, cfg.Size)
	assert.Equal(t, ColorNever, cfg.ColorMode)
	assert.False(t, cfg.Count, "absent key keeps default")
}

func TestLoadFile_ColorFlagBeatsFile(t *testing.T) {
	mem := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(mem, "/c.yaml", []byte("color: never\n"), 0o644))

	cfg := DefaultConfig()
	fs := pflag.NewFlagSet("lss", pflag.ContinueOnError)
	f := BindFlags(fs, &cfg)
	require.NoError(t, fs.Parse([]string{"--color"}))
	require.NoError(t, f.Apply(&cfg))
	require.NoError(t, LoadFile(mem, "/c.yaml", true, &cfg, f.Changed))

	assert.Equal(t, ColorAlways, cfg.ColorMode)
}

func TestLoadFile_Errors(t *testing.T) {
	mem := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(mem, "/unknown.yaml", []byte("colour: never\n"), 0o644))
	require.NoError(t, afero.WriteFile(mem, "/badcolor.yaml", []byte("color: pink\n"), 0o644))
	require.NoError(t, afero.WriteFile(mem, "/empty.yaml", nil, 0o644))

	tests := []struct {
		name     string
		path     string
		required bool
		wantErr  bool
	}{
		{"unknown key", "/unknown.yaml", true, true},
		{"bad color", "/badcolor.yaml", true, true},
		{"empty file", "/empty.yaml", true, false},
		{"missing optional", "/none.yaml", false, false},
		{"missing required", "/none.yaml", true, true},
		{"no path", "", true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			err := LoadFile(mem, tt.path, tt.required, &cfg, nil)
			if (err != nil) != tt.wantErr {
				t.Errorf("LoadFile() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestFindFile_Explicit(t *testing.T) {
	assert.Equal(t, "/tmp/x.yaml", FindFile("/tmp/x.yaml"))
}

func TestParseColorMode(t *testing.T) {
	m, err := ParseColorMode(" Always ")
	require.NoError(t, err)
	assert.Equal(t, ColorAlways, m)

	_, err = ParseColorMode("rainbow")
	assert.ErrorIs(t, err, ErrInvalid)
}
