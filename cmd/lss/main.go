// Command lss lists the image sequences in a directory tree: one row per
// sequence with its frame range, padding and missing frames, or one player
// command per sequence with --rv.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/backmassage/lss/internal/check"
	"github.com/backmassage/lss/internal/config"
	"github.com/backmassage/lss/internal/display"
	"github.com/backmassage/lss/internal/logging"
	"github.com/backmassage/lss/internal/pipeline"
	"github.com/backmassage/lss/internal/term"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "1.0.0-dev"

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// usageError marks bad flags or arguments (exit 2).
type usageError struct{ error }

func (e usageError) Unwrap() error { return e.error }

// loggedError marks an error the logger has already reported.
type loggedError struct{ error }

func (e loggedError) Unwrap() error { return e.error }

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := execute(ctx, os.Args[1:], os.Stdout, os.Stderr, afero.NewOsFs())
	stop()
	os.Exit(code)
}

// execute runs the root command and maps its error onto an exit code.
func execute(ctx context.Context, args []string, stdout, stderr io.Writer, fsys afero.Fs) int {
	cmd := newRootCmd(stdout, fsys)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return exitOK
	}
	var ue usageError
	if errors.As(err, &ue) {
		fmt.Fprintf(stderr, "lss: %v\nRun 'lss --help' for usage.\n", err)
		return exitUsage
	}
	var le loggedError
	if !errors.As(err, &le) {
		fmt.Fprintf(stderr, "lss: %v\n", err)
	}
	return exitError
}

func newRootCmd(stdout io.Writer, fsys afero.Fs) *cobra.Command {
	cfg := config.DefaultConfig()

	cmd := &cobra.Command{
		Use:           "lss [flags] [directory]",
		Short:         "List image sequences with frame ranges and missing frames",
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.MaximumNArgs(1)(cmd, args); err != nil {
				return usageError{err}
			}
			return nil
		},
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{err}
	})

	flags := config.BindFlags(cmd.Flags(), &cfg)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			cfg.Root = args[0]
		}
		if err := flags.Apply(&cfg); err != nil {
			return usageError{err}
		}
		path := config.FindFile(cfg.ConfigFile)
		if err := config.LoadFile(fsys, path, cfg.ConfigFile != "", &cfg, flags.Changed); err != nil {
			return err
		}
		cfg.ConfigFile = path
		cfg.Normalize()
		if err := cfg.Validate(); err != nil {
			return err
		}
		return run(cmd.Context(), &cfg, stdout, fsys)
	}
	return cmd
}

// run executes one lss invocation with a validated config.
func run(ctx context.Context, cfg *config.Config, stdout io.Writer, fsys afero.Fs) error {
	log, err := logging.NewLogger(cfg)
	if err != nil {
		return err
	}
	defer log.Close()

	if cfg.CheckOnly {
		check.RunCheck(cfg, log)
		return nil
	}

	if err := check.CheckRoot(fsys, cfg.Root); err != nil {
		log.Error("%v", err)
		return loggedError{err}
	}

	log.Debug(cfg.Verbose, "Scanning %s (recursive=%t depth=%d jobs=%d)", cfg.Root, cfg.Recursive, cfg.Depth, cfg.Jobs)
	res, err := pipeline.Scan(ctx, fsys, pipeline.ScanOptions{
		Root:       cfg.Root,
		Recursive:  cfg.Recursive,
		Depth:      cfg.Depth,
		Resolution: cfg.Resolution,
		Size:       cfg.Size,
		Jobs:       cfg.Jobs,
		Strict:     cfg.Strict,
		Verbose:    cfg.Verbose,
	}, log)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			log.Warn("Interrupted")
		} else {
			log.Error("Scan failed: %v", err)
		}
		return loggedError{err}
	}

	st := res.Stats
	log.Debug(cfg.Verbose, "%d dirs, %d files, %d matched, %d unmatched, %d sequences, %d warnings",
		st.Dirs, st.Files, st.Matched, st.Unmatched(), st.Sequences, st.Warnings)
	if len(res.Summaries) == 0 && cfg.Output != config.OutputJSON {
		log.Warn("No image sequences found in %s", cfg.Root)
		return nil
	}

	return display.Render(stdout, cfg.Output, res.Summaries, display.Options{
		Count:      cfg.Count,
		Resolution: cfg.Resolution,
		Size:       cfg.Size,
		PathWidth:  cfg.PathWidth,
		Player:     cfg.Player,
		Root:       cfg.Root,
		Color:      term.Enabled(),
	})
}
