// Package check provides system diagnostics (--check mode) and pre-scan
// validation of the scan root (CheckRoot).
package check

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"os/exec"
	"strings"

	"github.com/spf13/afero"

	"github.com/backmassage/lss/internal/config"
	"github.com/backmassage/lss/internal/probe"
)

// Sentinel errors returned by CheckRoot.
var (
	ErrRootNotFound = errors.New("directory not found")
	ErrRootNotDir   = errors.New("not a directory")
)

// Logger is the minimal logging interface needed by RunCheck.
// Defined here (rather than importing the logging package) so that check
// remains dependency-light and testable with a mock logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
	Debug(bool, string, ...interface{})
}

// RunCheck runs the --check flow: config file in use, player command on
// PATH, supported header formats and a header read self-test.
// This is informational only; it does not stop on failure.
func RunCheck(cfg *config.Config, log Logger) {
	log.Info("=== System Check ===")

	checkConfigFile(cfg, log)
	checkPlayer(cfg, log)
	checkFormats(log)
	checkProber(log)
}

// checkConfigFile reports which YAML file, if any, was loaded.
func checkConfigFile(cfg *config.Config, log Logger) {
	if cfg.ConfigFile == "" {
		log.Info("Config file: none (defaults and flags only)")
		return
	}
	log.Info("Config file: %s", cfg.ConfigFile)
}

// checkPlayer verifies the player command used by --rv is on PATH.
func checkPlayer(cfg *config.Config, log Logger) {
	name := playerBinary(cfg.Player)
	if name == "" {
		log.Warn("No player command configured")
		return
	}
	path, err := exec.LookPath(name)
	if err != nil {
		log.Warn("Player %q not found on PATH (--rv output still works)", name)
		return
	}
	log.Success("Player: %s", path)
}

// checkFormats lists the header formats ReadResolution understands.
func checkFormats(log Logger) {
	log.Info("Resolution formats: %s", strings.Join(probe.Formats(), ", "))
}

// checkProber encodes a tiny PNG in memory and reads its header back.
func checkProber(log Logger) {
	log.Info("Testing header reader...")
	if err := proberSelfTest(); err != nil {
		log.Error("Header read failed: %v", err)
		return
	}
	log.Success("Header reader works")
}

// CheckRoot is the pre-scan validation: root must exist and be a directory.
func CheckRoot(fsys afero.Fs, root string) error {
	fi, err := fsys.Stat(root)
	if err != nil {
		return fmt.Errorf("%s: %w", root, ErrRootNotFound)
	}
	if !fi.IsDir() {
		return fmt.Errorf("%s: %w", root, ErrRootNotDir)
	}
	return nil
}

// --- internal helpers ---

// playerBinary returns the executable of a player command line such as
// "rv -fullscreen".
func playerBinary(player string) string {
	fields := strings.Fields(player)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

const selfTestPath = "/selftest.0001.png"

func proberSelfTest() error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewGray(image.Rect(0, 0, 4, 3))); err != nil {
		return err
	}
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, selfTestPath, buf.Bytes(), 0o644); err != nil {
		return err
	}
	res, err := probe.ReadResolution(fs, selfTestPath)
	if err != nil {
		return err
	}
	if res.String() != "4x3" {
		return fmt.Errorf("read %s, want 4x3", res)
	}
	return nil
}
