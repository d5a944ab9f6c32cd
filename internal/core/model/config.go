package model

// Thresholds holds the elapsed-time boundaries, in seconds, that trigger
// color escalation. Both zero disables highlighting entirely.
type Thresholds struct {
	WarnAfter   int64
	DangerAfter int64
}

// Disabled reports whether highlighting is turned off.
func (t Thresholds) Disabled() bool {
	return t.WarnAfter == 0 && t.DangerAfter == 0
}

// Config contains all user-editable settings for the widget.
type Config struct {
	WarnAfterMinutes   int
	DangerAfterMinutes int

	WindowSize     [2]float32
	WindowPosition [2]float32
	AlwaysOnTop    bool

	StartUnpaused    bool
	StoreLastSession bool
}

// DefaultConfig returns the settings used when no config file exists.
func DefaultConfig() Config {
	return Config{
		WarnAfterMinutes:   45,
		DangerAfterMinutes: 60,
		WindowSize:         [2]float32{150, 80},
		WindowPosition:     [2]float32{40, 40},
		AlwaysOnTop:        false,
		StartUnpaused:      false,
		StoreLastSession:   true,
	}
}

// Thresholds converts the configured minutes into second-granularity bounds.
func (config Config) Thresholds() Thresholds {
	return Thresholds{
		WarnAfter:   int64(config.WarnAfterMinutes) * 60,
		DangerAfter: int64(config.DangerAfterMinutes) * 60,
	}
}
