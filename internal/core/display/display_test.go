package display_test

import (
	"image/color"
	"testing"

	"deskwatch/internal/core/display"
	"deskwatch/internal/core/model"
)

func TestFormatElapsed(t *testing.T) {
	tests := []struct {
		seconds    int64
		forceHours bool
		want       string
	}{
		{0, false, "00:00"},
		{5, false, "00:05"},
		{5, true, "00:00:05"},
		{59, false, "00:59"},
		{60, false, "01:00"},
		{125, false, "02:05"},
		{3599, false, "59:59"},
		{3600, false, "01:00:00"},
		{3725, false, "01:02:05"},
		{3725, true, "01:02:05"},
		{-1, false, "00:00"},
	}
	for _, tt := range tests {
		got := display.FormatElapsed(tt.seconds, tt.forceHours)
		if got != tt.want {
			t.Errorf("FormatElapsed(%d, %v) = %q, want %q", tt.seconds, tt.forceHours, got, tt.want)
		}
	}
}

func TestParseElapsedRoundTrip(t *testing.T) {
	for _, seconds := range []int64{0, 5, 59, 60, 125, 3599, 3600, 3725, 86399} {
		text := display.FormatElapsed(seconds, false)
		got, err := display.ParseElapsed(text)
		if err != nil {
			t.Fatalf("ParseElapsed(%q): %v", text, err)
		}
		if got != seconds {
			t.Errorf("ParseElapsed(%q) = %d, want %d", text, got, seconds)
		}
	}
}

func TestParseElapsedInvalid(t *testing.T) {
	for _, text := range []string{"", "12", "1:2:3:4", "aa:bb", "-1:00"} {
		if _, err := display.ParseElapsed(text); err == nil {
			t.Errorf("ParseElapsed(%q): expected error", text)
		}
	}
}

func TestHighlightColorDisabled(t *testing.T) {
	thresholds := model.Thresholds{}
	for _, seconds := range []int64{0, 1, 3600, 1 << 30} {
		if got := display.HighlightColor(seconds, thresholds); got != display.ColorNeutral {
			t.Errorf("HighlightColor(%d, disabled) = %v, want neutral", seconds, got)
		}
	}
}

func TestHighlightColorBoundaries(t *testing.T) {
	// warn at 45 minutes, danger at 60 minutes
	thresholds := model.Thresholds{WarnAfter: 2700, DangerAfter: 3600}

	tests := []struct {
		seconds int64
		want    string
	}{
		{0, "green"},
		{2699, "green"},
		{2700, "green"}, // boundary itself is not escalated
		{2701, "yellow"},
		{3600, "yellow"},
		{3601, "red"},
		{100000, "red"},
	}
	names := map[string]color.NRGBA{
		"green":  display.ColorGreen,
		"yellow": display.ColorYellow,
		"red":    display.ColorRed,
	}
	for _, tt := range tests {
		got := display.HighlightColor(tt.seconds, thresholds)
		if got != names[tt.want] {
			t.Errorf("HighlightColor(%d) = %v, want %s", tt.seconds, got, tt.want)
		}
	}
}
