package domain

import (
	"fmt"
	"math"
)

// UnitLabel names the canonical unit for a format. Unknown formats fall back
// to page semantics.
func UnitLabel(f Format) string {
	if f == FormatAudio {
		return "minutes"
	}
	return "pages"
}

// FormatQuantity renders a canonical quantity for display. Audio minutes
// become "Xh Ym" ("0m" for zero, "Nh" for exact hours); page formats become
// an integer page count. Minutes and pages are rounded to the nearest
// integer before formatting.
func FormatQuantity(f Format, value float64) string {
	if f == FormatAudio {
		return formatMinutes(value)
	}
	return fmt.Sprintf("%d pages", int(math.Round(value)))
}

func formatMinutes(value float64) string {
	total := int(math.Round(value))
	if total <= 0 {
		return "0m"
	}
	hours := total / 60
	minutes := total % 60
	switch {
	case hours == 0:
		return fmt.Sprintf("%dm", minutes)
	case minutes == 0:
		return fmt.Sprintf("%dh", hours)
	default:
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
}
