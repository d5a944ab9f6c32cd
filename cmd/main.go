package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
	"github.com/spf13/cobra"

	"deskwatch/internal/core/display"
	"deskwatch/internal/core/model"
	"deskwatch/internal/core/stopwatch"
	"deskwatch/internal/platform"
	"deskwatch/internal/storage"
	"deskwatch/internal/ui/mainwindow"
	"deskwatch/internal/ui/preferences"
	"deskwatch/internal/ui/tray"
	"deskwatch/resources"
)

const appName = "Deskwatch"

var rootCmd = &cobra.Command{
	Use:   "deskwatch",
	Short: "A minimal always-visible desktop stopwatch",
	Long: `deskwatch shows a small elapsed-time widget, color-coded by
configurable warn/danger thresholds. Click the widget to pause and resume;
completed intervals are kept as a session history.`,
	Args: cobra.NoArgs,
	RunE: runWidget,
}

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "Print the stored session history",
	Args:  cobra.NoArgs,
	RunE:  runSessions,
}

var configPathCmd = &cobra.Command{
	Use:   "config-path",
	Short: "Print the resolved settings file location",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, err := storage.ConfigPath(appName)
		if err != nil {
			return err
		}
		fmt.Println(configPath)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sessionsCmd)
	rootCmd.AddCommand(configPathCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runWidget(cmd *cobra.Command, args []string) error {
	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		return fmt.Errorf("single instance: %w", err)
	}
	defer func() {
		_ = guard.Release()
	}()

	configPath, err := storage.ConfigPath(appName)
	if err != nil {
		return err
	}
	config, err := storage.LoadConfig(configPath)
	if err != nil {
		// Config problems are fatal at startup only.
		log.Fatalf("load config: %v", err)
	}

	var recorder stopwatch.Recorder = stopwatch.NopRecorder{}
	if config.StoreLastSession {
		logPath, err := storage.SessionLogPath(appName)
		if err != nil {
			return err
		}
		recorder = storage.NewLogWriter(logPath)
	}

	watch := stopwatch.New(stopwatch.Config{
		Thresholds:      config.Thresholds(),
		StartUnpaused:   config.StartUnpaused,
		RunningInterval: 500 * time.Millisecond,
		PausedInterval:  2 * time.Second,
	}, recorder)

	fyneApp := app.NewWithID("io.deskwatch.app")
	activeIcon := resources.MustIcon("active.png")
	pausedIcon := resources.MustIcon("paused.png")
	fyneApp.SetIcon(activeIcon)

	mainWin := mainwindow.New(fyneApp, mainwindow.Config{
		Size:        config.WindowSize,
		Position:    config.WindowPosition,
		AlwaysOnTop: config.AlwaysOnTop,
	}, func() {
		watch.Toggle()
	})

	prefsWin := preferences.New(fyneApp, config, func(updated model.Config) {
		config = updated
		watch.SetThresholds(updated.Thresholds())
		if err := storage.SaveConfig(configPath, updated); err != nil {
			log.Printf("save config: %v", err)
		}
	})

	var trayManager *tray.Manager
	if desktopApp, ok := fyneApp.(desktop.App); ok {
		trayManager = tray.New(desktopApp, tray.Icons{Active: activeIcon, Paused: pausedIcon}, tray.Callbacks{
			OnShowWidget: func() {
				mainWin.Show()
			},
			OnTogglePause: func() {
				watch.Toggle()
			},
			OnPreferences: func() {
				prefsWin.Show()
			},
			OnQuit: func() {
				watch.Stop()
				fyneApp.Quit()
			},
		})
		trayManager.SetPaused(watch.Paused())
	}

	events := watch.Subscribe(8)
	go func() {
		for event := range events {
			mainWin.Render(event.Display)
			if trayManager != nil {
				updateTray(trayManager, event)
			}
		}
	}()

	watch.Start()
	mainWin.Render(watch.Snapshot())
	mainWin.ShowAndRun()
	watch.Stop()
	return nil
}

func updateTray(trayManager *tray.Manager, event stopwatch.Event) {
	fyne.Do(func() {
		if event.Type == stopwatch.EventToggle {
			trayManager.SetPaused(event.Display.Paused)
		}
		if !event.Display.Paused {
			trayManager.SetStatus(event.Display.Text)
		}
	})
}

func runSessions(cmd *cobra.Command, args []string) error {
	logPath, err := storage.SessionLogPath(appName)
	if err != nil {
		return err
	}
	sessions, err := storage.ReadSessions(logPath)
	if err != nil {
		return err
	}
	if len(sessions) == 0 {
		fmt.Println("No stored sessions.")
		return nil
	}

	var activeTotal, pauseTotal int64
	breaks := 0
	for i, session := range sessions {
		kind := "active"
		if session.Pause {
			kind = "pause"
			pauseTotal += session.Seconds
			breaks++
		} else {
			activeTotal += session.Seconds
		}
		fmt.Printf("%3d  %s  %s\n", i+1, display.FormatElapsed(session.Seconds, true), kind)
	}

	fmt.Printf("\nactive %s, paused %s, breaks %d\n",
		display.FormatElapsed(activeTotal, true),
		display.FormatElapsed(pauseTotal, true),
		breaks)
	return nil
}
