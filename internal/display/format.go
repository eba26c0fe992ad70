package display

import (
	"fmt"
)

var sizeUnits = []string{"B", "KB", "MB", "GB", "TB"}

// FormatSize returns a human-readable size with one decimal place. The value
// is divided by 1024 until it drops below 1024 or the unit reaches TB
// ("512.0 B", "1.5 KB", "2048.0 TB").
func FormatSize(n int64) string {
	v := float64(n)
	unit := 0
	for v >= 1024 && unit < len(sizeUnits)-1 {
		v /= 1024
		unit++
	}
	return fmt.Sprintf("%.1f %s", v, sizeUnits[unit])
}
