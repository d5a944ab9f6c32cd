package tray

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnShowWidget  func()
	OnTogglePause func()
	OnPreferences func()
	OnQuit        func()
}

// Icons holds the tray icons for both stopwatch modes.
type Icons struct {
	Active fyne.Resource
	Paused fyne.Resource
}

// Manager handles system tray state.
type Manager struct {
	app         desktop.App
	statusItem  *fyne.MenuItem
	toggleItem  *fyne.MenuItem
	callbacks   Callbacks
	icons       Icons
	paused      bool
	statusLabel string
}

// New creates a tray manager with the provided callbacks.
func New(app desktop.App, icons Icons, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:       app,
		icons:     icons,
		callbacks: callbacks,
	}

	manager.statusItem = fyne.NewMenuItem("Status: starting...", nil)
	manager.statusItem.Disabled = true

	manager.toggleItem = fyne.NewMenuItem("Resume", func() {
		if manager.callbacks.OnTogglePause != nil {
			manager.callbacks.OnTogglePause()
		}
	})

	app.SetSystemTrayMenu(manager.buildMenu())
	if icons.Paused != nil {
		app.SetSystemTrayIcon(icons.Paused)
	}

	return manager
}

// SetStatus updates the status label.
func (manager *Manager) SetStatus(status string) {
	manager.statusLabel = status
	manager.refresh()
}

// SetPaused updates the pause state, menu labels and tray icon.
func (manager *Manager) SetPaused(paused bool) {
	manager.paused = paused
	if paused {
		manager.toggleItem.Label = "Resume"
		if manager.icons.Paused != nil {
			manager.app.SetSystemTrayIcon(manager.icons.Paused)
		}
	} else {
		manager.toggleItem.Label = "Pause"
		if manager.icons.Active != nil {
			manager.app.SetSystemTrayIcon(manager.icons.Active)
		}
	}
	manager.refresh()
}

func (manager *Manager) refresh() {
	status := manager.statusLabel
	if manager.paused {
		status = "paused"
	}
	manager.statusItem.Label = fmt.Sprintf("Status: %s", status)
	manager.app.SetSystemTrayMenu(manager.buildMenu())
}

func (manager *Manager) buildMenu() *fyne.Menu {
	return fyne.NewMenu("Deskwatch",
		manager.statusItem,
		fyne.NewMenuItem("Show widget", func() {
			if manager.callbacks.OnShowWidget != nil {
				manager.callbacks.OnShowWidget()
			}
		}),
		manager.toggleItem,
		fyne.NewMenuItem("Preferences", func() {
			if manager.callbacks.OnPreferences != nil {
				manager.callbacks.OnPreferences()
			}
		}),
		fyne.NewMenuItem("Quit", func() {
			if manager.callbacks.OnQuit != nil {
				manager.callbacks.OnQuit()
			}
		}),
	)
}
