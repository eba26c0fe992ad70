package display

import (
	"encoding/json"
	"io"

	"github.com/backmassage/lss/internal/sequence"
)

type jsonReport struct {
	Root      string         `json:"root"`
	Sequences []jsonSequence `json:"sequences"`
}

type jsonSequence struct {
	Dir         string   `json:"dir"`
	Name        string   `json:"name"`
	Base        string   `json:"base"`
	SubCategory string   `json:"sub_category"`
	Padding     int      `json:"padding"`
	Ext         string   `json:"ext"`
	First       int      `json:"first"`
	Last        int      `json:"last"`
	Range       string   `json:"range"`
	Missing     []string `json:"missing"`
	Count       int      `json:"count"`
	Resolutions []string `json:"resolutions,omitempty"`
	TotalSize   *int64   `json:"total_size,omitempty"`
	AverageSize *int64   `json:"average_size,omitempty"`
}

// RenderJSON writes sums as one indented JSON document. Optional fields
// appear only when the scan collected them.
func RenderJSON(w io.Writer, root string, sums []sequence.Summary) error {
	report := jsonReport{Root: root, Sequences: make([]jsonSequence, 0, len(sums))}
	for i := range sums {
		s := &sums[i]
		js := jsonSequence{
			Dir:         s.Dir,
			Name:        s.Name(),
			Base:        s.Base,
			SubCategory: s.SubCategory,
			Padding:     s.Padding,
			Ext:         s.Ext,
			First:       s.First,
			Last:        s.Last,
			Range:       s.RangeText(),
			Missing:     s.MissingStrings(),
			Count:       s.Count,
			Resolutions: s.Resolutions,
		}
		if s.HasSize {
			total, avg := s.TotalSize, s.AverageSize
			js.TotalSize, js.AverageSize = &total, &avg
		}
		report.Sequences = append(report.Sequences, js)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
