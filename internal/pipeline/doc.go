// Package pipeline walks a directory tree, classifies files into frame
// sequences, reads per-file metadata, and returns sequence summaries.
//
// Types:
//   - Candidate, WalkOptions (Walk input/output)
//   - ScanOptions, Result, ScanStats
//
// Functions:
//   - Walk(fs, root, opts, visit)
//     Depth-bounded worklist traversal; root is depth 1. Non-recursive
//     walks only read root.
//   - Scan(ctx, fs, opts, log) → Result
//     walk → match → metadata (resolution, size) → group → summarize.
//     Metadata reads optionally run in parallel (Jobs); summaries are
//     unordered and sorted by the display package.
package pipeline
