// Package display holds the pure formatting and threshold-coloring policy.
// Everything here is a function of its arguments alone.
package display

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"deskwatch/internal/core/model"
)

// Palette used for the elapsed-time label.
var (
	ColorNeutral = color.NRGBA{R: 0, G: 0, B: 0, A: 255}
	ColorGreen   = color.NRGBA{R: 0, G: 255, B: 0, A: 255}
	ColorYellow  = color.NRGBA{R: 255, G: 255, B: 0, A: 255}
	ColorRed     = color.NRGBA{R: 255, G: 0, B: 0, A: 255}
)

// FormatElapsed renders seconds as MM:SS, switching to HH:MM:SS once a full
// hour has passed or when forceHours is set. Fields are zero-padded to two
// digits. Negative input is treated as zero.
func FormatElapsed(seconds int64, forceHours bool) string {
	if seconds < 0 {
		seconds = 0
	}
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	seconds = seconds % 60

	if hours != 0 || forceHours {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

// HighlightColor maps an elapsed duration to its label color. With both
// thresholds at zero the feature is disabled and the neutral color is
// returned. Comparisons are strictly greater-than: sitting exactly on a
// boundary does not escalate yet.
func HighlightColor(seconds int64, thresholds model.Thresholds) color.NRGBA {
	if thresholds.Disabled() {
		return ColorNeutral
	}
	if seconds > thresholds.DangerAfter {
		return ColorRed
	}
	if seconds > thresholds.WarnAfter {
		return ColorYellow
	}
	return ColorGreen
}

// ParseElapsed converts a MM:SS or HH:MM:SS string back into seconds.
func ParseElapsed(text string) (int64, error) {
	parts := strings.Split(strings.TrimSpace(text), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, fmt.Errorf("parse elapsed %q: expected MM:SS or HH:MM:SS", text)
	}

	var total int64
	for _, part := range parts {
		field, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("parse elapsed %q: %w", text, err)
		}
		if field < 0 {
			return 0, fmt.Errorf("parse elapsed %q: negative field", text)
		}
		total = total*60 + field
	}
	return total, nil
}
