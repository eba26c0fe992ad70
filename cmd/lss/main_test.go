package main

import (
	"bytes"
	"context"
	"encoding/json"
	"image"
	"image/png"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func shotTree(t *testing.T) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	for _, f := range []string{
		"/shots/plate.0001.exr",
		"/shots/plate.0002.exr",
		"/shots/plate.0004.exr",
		"/shots/plate.depth.0001.exr",
		"/shots/readme.txt",
		"/shots/comp/comp.1001.dpx",
		"/shots/comp/comp.1002.dpx",
	} {
		require.NoError(t, fs.MkdirAll(filepath.Dir(f), 0o755))
		require.NoError(t, afero.WriteFile(fs, f, []byte("x"), 0o644))
	}
	return fs
}

func runLss(t *testing.T, fs afero.Fs, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := execute(context.Background(), append([]string{"--no-color"}, args...), &stdout, &stderr, fs)
	return code, stdout.String(), stderr.String()
}

func TestExecute_Table(t *testing.T) {
	code, out, _ := runLss(t, shotTree(t), "/shots")
	require.Equal(t, exitOK, code)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "path"))
	// "[1-1]" sorts before "[1-4]" as text.
	assert.Contains(t, lines[2], "plate.depth")
	assert.Contains(t, lines[3], "[1-4]")
	assert.Contains(t, lines[3], "[3]")
	assert.NotContains(t, out, "comp", "non-recursive scan stays at the root")
}

func TestExecute_RecursivePlayer(t *testing.T) {
	code, out, _ := runLss(t, shotTree(t), "-r", "-d", "2", "--rv", "--resolution", "/shots")
	require.Equal(t, exitOK, code)
	assert.Equal(t, "rv plate.depth.*.exr\nrv plate.*.exr\n\nrv comp/comp.*.dpx\n", out)
}

func TestExecute_JSON(t *testing.T) {
	code, out, _ := runLss(t, shotTree(t), "--json", "--size", "/shots")
	require.Equal(t, exitOK, code)

	var doc struct {
		Root      string `json:"root"`
		Sequences []struct {
			Name      string   `json:"name"`
			Missing   []string `json:"missing"`
			TotalSize int64    `json:"total_size"`
		} `json:"sequences"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "/shots", doc.Root)
	require.Len(t, doc.Sequences, 2)
	assert.Equal(t, "plate.depth", doc.Sequences[0].Name)
	assert.Equal(t, "plate", doc.Sequences[1].Name)
	assert.Equal(t, []string{"3"}, doc.Sequences[1].Missing)
	assert.Equal(t, int64(3), doc.Sequences[1].TotalSize)
}

func TestExecute_ConfigFile(t *testing.T) {
	fs := shotTree(t)
	require.NoError(t, afero.WriteFile(fs, "/cfg/lss.yaml", []byte("player: djv\n"), 0o644))

	code, out, _ := runLss(t, fs, "--config", "/cfg/lss.yaml", "--rv", "/shots")
	require.Equal(t, exitOK, code)
	assert.Contains(t, out, "djv plate.*.exr\n")

	code, out, _ = runLss(t, fs, "--config", "/cfg/lss.yaml", "--rv", "--player", "mplay", "/shots")
	require.Equal(t, exitOK, code)
	assert.Contains(t, out, "mplay plate.*.exr\n")
}

func TestExecute_StrictResolution(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/s/a.0001.png", pngFrame(t), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/s/a.0002.png", []byte("broken"), 0o644))

	code, out, _ := runLss(t, fs, "--resolution", "/s")
	require.Equal(t, exitOK, code)
	assert.Contains(t, out, "6x4")

	code, _, _ = runLss(t, fs, "--resolution", "--strict", "/s")
	assert.Equal(t, exitError, code)
}

func TestExecute_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want int
	}{
		{"unknown flag", []string{"--bogus"}, exitUsage},
		{"too many args", []string{"/a", "/b"}, exitUsage},
		{"rv and json", []string{"--rv", "--json", "/shots"}, exitUsage},
		{"bad depth value", []string{"-d", "deep", "/shots"}, exitUsage},
		{"missing root", []string{"/nowhere"}, exitError},
		{"root is a file", []string{"/shots/readme.txt"}, exitError},
		{"path width too small", []string{"--path-width", "1", "/shots"}, exitError},
		{"missing explicit config", []string{"--config", "/none.yaml", "/shots"}, exitError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, out, _ := runLss(t, shotTree(t), tt.args...)
			assert.Equal(t, tt.want, code)
			assert.Empty(t, out)
		})
	}
}

func TestExecute_Version(t *testing.T) {
	code, out, _ := runLss(t, afero.NewMemMapFs(), "--version")
	require.Equal(t, exitOK, code)
	assert.Contains(t, out, version)
}

func TestExecute_EmptyDirectory(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/empty", 0o755))

	code, out, _ := runLss(t, fs, "/empty")
	require.Equal(t, exitOK, code)
	assert.Empty(t, out)
}

func pngFrame(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewGray(image.Rect(0, 0, 6, 4))))
	return buf.Bytes()
}
