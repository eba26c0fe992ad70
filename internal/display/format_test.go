package display

import (
	"testing"
)

func TestFormatSize(t *testing.T) {
	tests := []struct {
		name  string
		bytes int64
		want  string
	}{
		{"zero", 0, "0.0 B"},
		{"small bytes", 512, "512.0 B"},
		{"just under 1 KB", 1023, "1023.0 B"},
		{"exactly 1 KB", 1024, "1.0 KB"},
		{"1.5 KB", 1536, "1.5 KB"},
		{"1 MB", 1024 * 1024, "1.0 MB"},
		{"1 GB", 1024 * 1024 * 1024, "1.0 GB"},
		{"typical exr frame", 12_582_912, "12.0 MB"},
		{"1 TB", 1 << 40, "1.0 TB"},
		{"TB is the ceiling", 2048 << 40, "2048.0 TB"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatSize(tt.bytes)
			if got != tt.want {
				t.Errorf("FormatSize(%d) = %q, want %q", tt.bytes, got, tt.want)
			}
		})
	}
}
