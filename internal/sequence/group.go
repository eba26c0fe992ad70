package sequence

// Set maps each sequence key to its frames. Frame order inside a bucket is
// insertion order and carries no meaning.
type Set map[Key][]Frame

// Add appends f to the bucket for k. Duplicate frame numbers are kept; they
// show up in counts and size totals as a data-quality signal.
func (s Set) Add(k Key, f Frame) {
	s[k] = append(s[k], f)
}

// Group folds entries into a Set.
func Group(entries []Entry) Set {
	s := make(Set, 16)
	for _, e := range entries {
		s.Add(e.Key, e.Frame)
	}
	return s
}

// Summaries maps every non-empty bucket through [Summarize]. The result is
// unordered; callers that print it sort explicitly.
func (s Set) Summaries() []Summary {
	out := make([]Summary, 0, len(s))
	for k, frames := range s {
		if len(frames) == 0 {
			continue
		}
		out = append(out, Summarize(k, frames))
	}
	return out
}
