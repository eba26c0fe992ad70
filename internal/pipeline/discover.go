package pipeline

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
)

// Candidate is a non-directory entry found by Walk.
type Candidate struct {
	Path string // root joined with Dir and Name.
	Dir  string // Directory relative to root; "." for root itself.
	Name string
}

// WalkOptions bounds a Walk.
type WalkOptions struct {
	Recursive bool
	// MaxDepth counts root as depth 1. Forced to 1 when Recursive is false.
	MaxDepth int
	// OnError is called for directories that cannot be read. Returning nil
	// skips the directory; returning an error aborts the walk. A nil OnError
	// skips silently.
	OnError func(path string, err error) error
	// OnDir, when set, is called with the relative path of every directory
	// that was read.
	OnDir func(rel string)
}

type dirItem struct {
	path  string
	rel   string
	depth int
}

// Walk visits every non-directory entry under root within the depth bound.
// Directories are kept on an explicit stack and pruned before they are read,
// so depth never depends on recursion or on the absolute path of root.
// Visit order is unspecified. An unreadable root is always returned as an
// error; visit errors abort the walk.
func Walk(fsys afero.Fs, root string, opts WalkOptions, visit func(Candidate) error) error {
	maxDepth := opts.MaxDepth
	if !opts.Recursive || maxDepth < 1 {
		maxDepth = 1
	}

	stack := []dirItem{{path: root, rel: ".", depth: 1}}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		entries, err := afero.ReadDir(fsys, cur.path)
		if err != nil {
			if cur.rel == "." {
				return fmt.Errorf("read %s: %w", root, err)
			}
			if opts.OnError == nil {
				continue
			}
			if err := opts.OnError(cur.path, err); err != nil {
				return err
			}
			continue
		}
		if opts.OnDir != nil {
			opts.OnDir(cur.rel)
		}

		for _, e := range entries {
			if e.IsDir() {
				if cur.depth < maxDepth {
					stack = append(stack, dirItem{
						path:  filepath.Join(cur.path, e.Name()),
						rel:   relJoin(cur.rel, e.Name()),
						depth: cur.depth + 1,
					})
				}
				continue
			}
			c := Candidate{
				Path: filepath.Join(cur.path, e.Name()),
				Dir:  cur.rel,
				Name: e.Name(),
			}
			if err := visit(c); err != nil {
				return err
			}
		}
	}
	return nil
}

func relJoin(rel, name string) string {
	if rel == "." {
		return name
	}
	return filepath.Join(rel, name)
}
