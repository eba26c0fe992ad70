// Package sequence classifies filenames into numbered frame sequences and
// derives per-sequence summaries (frame range, missing frames, sizes).
//
// Types:
//   - Match (Base, SubCategory, Digits, Ext) from [Parse]
//   - Key identifies a sequence; Frame is one matched file
//   - Set groups frames by Key; Summary is the derived read-only view
//   - Range is a closed run of frame numbers
//
// Functions:
//   - Parse(name) → (Match, bool)
//   - Group(entries) → Set
//   - MissingRanges(sorted) → []Range
//   - Summarize(key, frames) → Summary
//
// Everything here is pure: no filesystem access, no logging. Walking and
// metadata reads live in the pipeline and probe packages.
package sequence
