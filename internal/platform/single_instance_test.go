package platform_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"deskwatch/internal/platform"
)

func setConfigDir(t *testing.T) string {
	if runtime.GOOS != "linux" {
		t.Skip("config dir override relies on XDG_CONFIG_HOME")
	}
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	return dir
}

func TestAcquireAndRelease(t *testing.T) {
	setConfigDir(t)

	guard, err := platform.AcquireSingleInstance("deskwatch-test")
	if err != nil {
		t.Fatalf("AcquireSingleInstance: %v", err)
	}
	if guard.Path() == "" {
		t.Error("guard path is empty")
	}

	if _, err := platform.AcquireSingleInstance("deskwatch-test"); err != platform.ErrAlreadyRunning {
		t.Errorf("second acquire err = %v, want ErrAlreadyRunning", err)
	}

	if err := guard.Release(); err != nil {
		t.Fatalf("Release: %v", err)
	}

	guard, err = platform.AcquireSingleInstance("deskwatch-test")
	if err != nil {
		t.Fatalf("acquire after release: %v", err)
	}
	_ = guard.Release()
}

func TestStaleLockReclaimed(t *testing.T) {
	dir := setConfigDir(t)

	lockPath := filepath.Join(dir, "deskwatch-test", "deskwatch-test.lock")
	if err := os.MkdirAll(filepath.Dir(lockPath), 0o755); err != nil {
		t.Fatal(err)
	}
	// Write a pid that cannot be alive.
	if err := os.WriteFile(lockPath, []byte("999999999"), 0o644); err != nil {
		t.Fatal(err)
	}

	guard, err := platform.AcquireSingleInstance("deskwatch-test")
	if err != nil {
		t.Fatalf("acquire over stale lock: %v", err)
	}
	_ = guard.Release()
}

func TestGarbageLockReclaimed(t *testing.T) {
	dir := setConfigDir(t)

	lockPath := filepath.Join(dir, "deskwatch-test", "deskwatch-test.lock")
	if err := os.MkdirAll(filepath.Dir(lockPath), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(lockPath, []byte("not-a-pid"), 0o644); err != nil {
		t.Fatal(err)
	}

	guard, err := platform.AcquireSingleInstance("deskwatch-test")
	if err != nil {
		t.Fatalf("acquire over garbage lock: %v", err)
	}
	_ = guard.Release()
}
