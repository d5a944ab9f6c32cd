package stopwatch

import (
	"image/color"
	"time"
)

// EventType defines the type of Stopwatch event.
type EventType string

const (
	EventToggle EventType = "toggle"
	EventTick   EventType = "tick"
)

// Display is everything the render layer needs for one frame.
type Display struct {
	Text       string
	Color      color.NRGBA
	PauseCount int
	Paused     bool
}

// Event represents a Stopwatch update for observers.
type Event struct {
	Type    EventType
	Display Display
	At      time.Time
}
