package stopwatch

import (
	"log"
	"sync"
	"time"

	"deskwatch/internal/core/display"
	"deskwatch/internal/core/model"
)

// Recorder persists the full session history after each toggle.
type Recorder interface {
	Record(sessions []Session) error
}

// NopRecorder discards session history. Selected when persistence is
// disabled in the configuration.
type NopRecorder struct{}

// Record implements Recorder.
func (NopRecorder) Record([]Session) error { return nil }

// Session is one closed interval of either active tracking or pause.
// Timestamps are unix seconds. Sessions are immutable once appended.
type Session struct {
	Pause bool
	Start int64
	End   int64
}

// Duration returns the session length in seconds.
func (session Session) Duration() int64 {
	if session.End < session.Start {
		return 0
	}
	return session.End - session.Start
}

// Config contains runtime options for the Stopwatch.
type Config struct {
	Thresholds    model.Thresholds
	StartUnpaused bool

	// Tick cadence. Running ticks fast to keep the clock smooth, paused
	// ticks slowly since the label is static.
	RunningInterval time.Duration
	PausedInterval  time.Duration
}

// Stopwatch is the timer state machine. It owns the paused flag, the anchor
// of the currently open interval and the append-only session history.
type Stopwatch struct {
	mu       sync.Mutex
	config   Config
	paused   bool
	anchor   time.Time
	sessions []Session
	recorder Recorder
	clock    func() time.Time
	events   []chan Event
	stopCh   chan struct{}
	retuneCh chan struct{}
	running  bool
}

// New creates a Stopwatch with the provided configuration. A nil recorder
// disables persistence.
func New(config Config, recorder Recorder) *Stopwatch {
	if config.RunningInterval <= 0 {
		config.RunningInterval = 500 * time.Millisecond
	}
	if config.PausedInterval <= 0 {
		config.PausedInterval = 2 * time.Second
	}
	if recorder == nil {
		recorder = NopRecorder{}
	}

	watch := &Stopwatch{
		config:   config,
		paused:   !config.StartUnpaused,
		recorder: recorder,
		clock:    time.Now,
		stopCh:   make(chan struct{}),
		retuneCh: make(chan struct{}, 1),
	}
	watch.anchor = watch.clock()
	return watch
}

// SetClock injects a clock source, used by tests.
func (watch *Stopwatch) SetClock(clock func() time.Time) {
	watch.mu.Lock()
	defer watch.mu.Unlock()
	watch.clock = clock
	watch.anchor = clock()
}

// SetThresholds updates the highlight thresholds at runtime.
func (watch *Stopwatch) SetThresholds(thresholds model.Thresholds) {
	watch.mu.Lock()
	watch.config.Thresholds = thresholds
	watch.mu.Unlock()
}

// Subscribe registers a new observer channel.
func (watch *Stopwatch) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	watch.mu.Lock()
	watch.events = append(watch.events, ch)
	watch.mu.Unlock()
	return ch
}

// Start launches the ticking loop.
func (watch *Stopwatch) Start() {
	watch.mu.Lock()
	if watch.running {
		watch.mu.Unlock()
		return
	}
	watch.running = true
	watch.mu.Unlock()

	go watch.run()
}

// Stop terminates the ticking loop and closes observers.
func (watch *Stopwatch) Stop() {
	watch.mu.Lock()
	if !watch.running {
		watch.mu.Unlock()
		return
	}
	close(watch.stopCh)
	watch.running = false
	events := watch.events
	watch.events = nil
	watch.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

// Toggle closes the in-progress interval, appends it to the history and
// flips between paused and running. A fresh run starts timing from zero.
// The recorder is invoked with the full updated history; its failure is
// logged and never blocks the toggle.
func (watch *Stopwatch) Toggle() {
	watch.mu.Lock()
	now := watch.clock()
	session := Session{
		Pause: watch.paused,
		Start: watch.anchor.Unix(),
		End:   now.Unix(),
	}
	if session.End < session.Start {
		session.End = session.Start
	}
	watch.sessions = append(watch.sessions, session)
	if watch.paused {
		watch.anchor = now
	}
	watch.paused = !watch.paused
	recorder := watch.recorder
	history := append([]Session(nil), watch.sessions...)
	watch.mu.Unlock()

	if err := recorder.Record(history); err != nil {
		log.Printf("store sessions: %v", err)
	}

	watch.emit(Event{Type: EventToggle, Display: watch.Snapshot(), At: now})
	watch.retune()
}

// Paused reports whether the stopwatch is paused.
func (watch *Stopwatch) Paused() bool {
	watch.mu.Lock()
	defer watch.mu.Unlock()
	return watch.paused
}

// Elapsed returns the seconds since the current run started. Clock
// adjustments that move now before the anchor clamp to zero.
func (watch *Stopwatch) Elapsed() int64 {
	watch.mu.Lock()
	defer watch.mu.Unlock()
	return watch.elapsedLocked()
}

// PauseCount returns how many completed sessions were pauses.
func (watch *Stopwatch) PauseCount() int {
	watch.mu.Lock()
	defer watch.mu.Unlock()
	count := 0
	for _, session := range watch.sessions {
		if session.Pause {
			count++
		}
	}
	return count
}

// Sessions returns a copy of the session history.
func (watch *Stopwatch) Sessions() []Session {
	watch.mu.Lock()
	defer watch.mu.Unlock()
	return append([]Session(nil), watch.sessions...)
}

// Snapshot computes the current display state. It is a pure read: nothing
// is mutated, so ticks may come at any cadence.
func (watch *Stopwatch) Snapshot() Display {
	watch.mu.Lock()
	defer watch.mu.Unlock()

	count := 0
	for _, session := range watch.sessions {
		if session.Pause {
			count++
		}
	}

	if watch.paused {
		return Display{
			Text:       "PAUSED",
			Color:      display.ColorNeutral,
			PauseCount: count,
			Paused:     true,
		}
	}

	elapsed := watch.elapsedLocked()
	return Display{
		Text:       display.FormatElapsed(elapsed, false),
		Color:      display.HighlightColor(elapsed, watch.config.Thresholds),
		PauseCount: count,
	}
}

func (watch *Stopwatch) elapsedLocked() int64 {
	elapsed := int64(watch.clock().Sub(watch.anchor) / time.Second)
	if elapsed < 0 {
		return 0
	}
	return elapsed
}

func (watch *Stopwatch) run() {
	for {
		select {
		case <-watch.stopCh:
			return
		case <-watch.retuneCh:
		case <-time.After(watch.tickInterval()):
			watch.emit(Event{Type: EventTick, Display: watch.Snapshot(), At: watch.clock()})
		}
	}
}

func (watch *Stopwatch) tickInterval() time.Duration {
	watch.mu.Lock()
	defer watch.mu.Unlock()
	if watch.paused {
		return watch.config.PausedInterval
	}
	return watch.config.RunningInterval
}

// retune wakes the tick loop so the new cadence takes effect immediately.
func (watch *Stopwatch) retune() {
	select {
	case watch.retuneCh <- struct{}{}:
	default:
	}
}

func (watch *Stopwatch) emit(event Event) {
	watch.mu.Lock()
	events := append([]chan Event(nil), watch.events...)
	watch.mu.Unlock()
	for _, ch := range events {
		select {
		case ch <- event:
		default:
		}
	}
}
