package storage_test

import (
	"os"
	"path/filepath"
	"testing"

	"deskwatch/internal/storage"
)

func TestLoadConfigWritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")

	config, err := storage.LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig on missing file: %v", err)
	}
	if config.WarnAfterMinutes != 45 || config.DangerAfterMinutes != 60 {
		t.Errorf("default thresholds = %d/%d, want 45/60",
			config.WarnAfterMinutes, config.DangerAfterMinutes)
	}
	if config.StartUnpaused {
		t.Error("default start_unpaused = true, want false")
	}
	if !config.StoreLastSession {
		t.Error("default store_last_session = false, want true")
	}

	// First load must have created the file with defaults.
	if _, err := os.Stat(path); err != nil {
		t.Errorf("config file not written: %v", err)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	raw := `warn_after_minutes: 30
danger_after_minutes: 50
window_size: [200, 100]
window_position: [0, 0]
always_on_top: true
start_unpaused: true
store_last_session: false
`
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatal(err)
	}

	config, err := storage.LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if config.WarnAfterMinutes != 30 || config.DangerAfterMinutes != 50 {
		t.Errorf("thresholds = %d/%d, want 30/50",
			config.WarnAfterMinutes, config.DangerAfterMinutes)
	}
	if config.WindowSize != [2]float32{200, 100} {
		t.Errorf("window size = %v, want [200 100]", config.WindowSize)
	}
	if config.WindowPosition != [2]float32{0, 0} {
		t.Errorf("window position = %v, want [0 0]", config.WindowPosition)
	}
	if !config.AlwaysOnTop || !config.StartUnpaused || config.StoreLastSession {
		t.Errorf("flags = %v/%v/%v, want true/true/false",
			config.AlwaysOnTop, config.StartUnpaused, config.StoreLastSession)
	}

	thresholds := config.Thresholds()
	if thresholds.WarnAfter != 1800 || thresholds.DangerAfter != 3000 {
		t.Errorf("thresholds in seconds = %d/%d, want 1800/3000",
			thresholds.WarnAfter, thresholds.DangerAfter)
	}
}

func TestLoadConfigZeroThresholdsDisable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	raw := "warn_after_minutes: 0\ndanger_after_minutes: 0\n"
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatal(err)
	}

	config, err := storage.LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if !config.Thresholds().Disabled() {
		t.Error("explicit zero thresholds should disable highlighting")
	}
}

func TestLoadConfigParseFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(path, []byte("warn_after_minutes: [not a number"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := storage.LoadConfig(path); err == nil {
		t.Error("LoadConfig on invalid yaml: expected error")
	}
}

func TestSaveConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")

	want, err := storage.LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	want.WarnAfterMinutes = 20
	want.AlwaysOnTop = true
	if err := storage.SaveConfig(path, want); err != nil {
		t.Fatalf("SaveConfig: %v", err)
	}

	got, err := storage.LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig after save: %v", err)
	}
	if got != want {
		t.Errorf("round-trip config = %+v, want %+v", got, want)
	}
}
