package ui

import "fmt"

var byteUnits = []string{"B", "KB", "MB", "GB"}

// FormatBytes scales n by 1024 until it drops below 1024, e.g. 2048 -> "2.0 KB".
// Anything past GB is reported in TB.
func FormatBytes(n int64) string {
	value := float64(n)
	for _, unit := range byteUnits {
		if value < 1024 {
			return fmt.Sprintf("%.1f %s", value, unit)
		}
		value /= 1024
	}
	return fmt.Sprintf("%.1f TB", value)
}
