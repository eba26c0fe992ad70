package pipeline

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"

	"github.com/backmassage/lss/internal/probe"
	"github.com/backmassage/lss/internal/sequence"
)

// Logger is the subset of logging.Logger the scan needs.
type Logger interface {
	Warn(string, ...interface{})
	Debug(bool, string, ...interface{})
}

// ScanOptions controls one Scan.
type ScanOptions struct {
	Root       string
	Recursive  bool
	Depth      int
	Resolution bool // Read width x height from each matched file's header.
	Size       bool // Stat each matched file.
	Jobs       int  // Parallel metadata reads; <= 1 is sequential.
	Strict     bool // Abort on unreadable directories or metadata.
	Verbose    bool
}

// Result is the outcome of a Scan. Summaries are unordered.
type Result struct {
	Root      string
	Summaries []sequence.Summary
	Stats     ScanStats
}

// pending is a matched file waiting for its metadata.
type pending struct {
	key   sequence.Key
	path  string
	frame sequence.Frame
}

// Scan runs walk → match → metadata → aggregate → summarize. Metadata is
// read only for files that matched the sequence pattern. Without Strict,
// unreadable directories and headers are logged and skipped; with Strict the
// first such error aborts the scan.
func Scan(ctx context.Context, fsys afero.Fs, opts ScanOptions, log Logger) (Result, error) {
	res := Result{Root: opts.Root}
	var queue []pending

	walkOpts := WalkOptions{
		Recursive: opts.Recursive,
		MaxDepth:  opts.Depth,
		OnDir:     func(string) { res.Stats.Dirs++ },
		OnError: func(path string, err error) error {
			if opts.Strict {
				return fmt.Errorf("read directory %s: %w", path, err)
			}
			res.Stats.Warnings++
			log.Warn("Skipping unreadable directory %s: %v", path, err)
			return nil
		},
	}

	err := Walk(fsys, opts.Root, walkOpts, func(c Candidate) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		res.Stats.Files++
		m, ok := sequence.Parse(c.Name)
		if !ok {
			return nil
		}
		res.Stats.Matched++
		queue = append(queue, pending{
			key:   m.Key(c.Dir),
			path:  c.Path,
			frame: sequence.Frame{Number: m.Frame()},
		})
		return nil
	})
	if err != nil {
		return res, err
	}
	log.Debug(opts.Verbose, "Walked %d dirs: %d files, %d matched", res.Stats.Dirs, res.Stats.Files, res.Stats.Matched)

	if opts.Resolution || opts.Size {
		warned, err := readMetadata(ctx, fsys, opts, queue, log)
		res.Stats.Warnings += warned
		if err != nil {
			return res, err
		}
	}

	entries := make([]sequence.Entry, len(queue))
	for i, p := range queue {
		entries[i] = sequence.Entry{Key: p.key, Frame: p.frame}
	}
	res.Summaries = sequence.Group(entries).Summaries()
	res.Stats.Sequences = len(res.Summaries)
	return res, nil
}

// readMetadata fills Resolution and Size on each queued frame. With
// opts.Jobs > 1 the reads run on an errgroup; every goroutine owns one slot
// of queue, so no locking is needed.
func readMetadata(ctx context.Context, fsys afero.Fs, opts ScanOptions, queue []pending, log Logger) (int, error) {
	var warned atomic.Int32

	read := func(i int) error {
		p := &queue[i]
		if opts.Resolution {
			r, err := probe.ReadResolution(fsys, p.path)
			switch {
			case err == nil:
				p.frame.Resolution = r.String()
			case opts.Strict:
				return fmt.Errorf("read resolution: %w", err)
			default:
				warned.Add(1)
				log.Warn("Resolution unknown: %v", err)
			}
		}
		if opts.Size {
			fi, err := fsys.Stat(p.path)
			switch {
			case err == nil:
				p.frame.Size = fi.Size()
				p.frame.HasSize = true
			case opts.Strict:
				return fmt.Errorf("stat: %w", err)
			default:
				warned.Add(1)
				log.Warn("Size unknown: %v", err)
			}
		}
		return nil
	}

	if opts.Jobs <= 1 {
		for i := range queue {
			if err := ctx.Err(); err != nil {
				return int(warned.Load()), err
			}
			if err := read(i); err != nil {
				return int(warned.Load()), err
			}
		}
		return int(warned.Load()), nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Jobs)
	for i := range queue {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return read(i)
		})
	}
	err := g.Wait()
	if err == nil {
		err = ctx.Err()
	}
	return int(warned.Load()), err
}
