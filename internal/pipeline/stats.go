package pipeline

// ScanStats tracks counters across one scan.
type ScanStats struct {
	Dirs      int // Directories read successfully.
	Files     int // Non-directory entries seen.
	Matched   int // Entries that matched the sequence pattern.
	Sequences int
	Warnings  int // Skipped directories and unreadable metadata.
}

// Unmatched returns how many files were skipped as non-sequence names.
func (s *ScanStats) Unmatched() int {
	return s.Files - s.Matched
}
