// Package display renders scan results: the column table, player command
// lines and the JSON report. Every renderer is deterministic for a given
// input order; [Render] applies the canonical sort first.
package display
