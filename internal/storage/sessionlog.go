package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"deskwatch/internal/core/display"
	"deskwatch/internal/core/stopwatch"
)

const sessionLogFileName = "sessions.log"

// LogWriter persists the session history as newline-separated
// "<HH:MM:SS> <active|pause>" records at a fixed path. It implements
// stopwatch.Recorder.
type LogWriter struct {
	path string
}

// NewLogWriter creates a LogWriter storing at the given path.
func NewLogWriter(path string) *LogWriter {
	return &LogWriter{path: path}
}

// Record implements stopwatch.Recorder by rewriting the whole log.
func (writer *LogWriter) Record(sessions []stopwatch.Session) error {
	if err := os.MkdirAll(filepath.Dir(writer.path), 0o755); err != nil {
		return fmt.Errorf("create log directory: %w", err)
	}

	lines := make([]string, 0, len(sessions))
	for _, session := range sessions {
		lines = append(lines, fmt.Sprintf("%s %s",
			display.FormatElapsed(session.Duration(), true), sessionKind(session)))
	}

	if err := os.WriteFile(writer.path, []byte(strings.Join(lines, "\n")), 0o644); err != nil {
		return fmt.Errorf("write session log: %w", err)
	}
	return nil
}

// LoggedSession is one parsed session-log record.
type LoggedSession struct {
	Seconds int64
	Pause   bool
}

// ReadSessions parses the stored session log. A missing file yields an
// empty history.
func ReadSessions(path string) ([]LoggedSession, error) {
	rawData, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read session log: %w", err)
	}

	var sessions []LoggedSession
	for _, line := range strings.Split(string(rawData), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("parse session log: malformed record %q", line)
		}
		seconds, err := display.ParseElapsed(fields[0])
		if err != nil {
			return nil, fmt.Errorf("parse session log: %w", err)
		}
		switch fields[1] {
		case "active":
			sessions = append(sessions, LoggedSession{Seconds: seconds})
		case "pause":
			sessions = append(sessions, LoggedSession{Seconds: seconds, Pause: true})
		default:
			return nil, fmt.Errorf("parse session log: unknown kind %q", fields[1])
		}
	}
	return sessions, nil
}

// SessionLogPath returns the well-known location of the session log.
func SessionLogPath(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, sessionLogFileName), nil
}

func sessionKind(session stopwatch.Session) string {
	if session.Pause {
		return "pause"
	}
	return "active"
}
