// Package preferences provides the settings window for the widget.
package preferences

import (
	"fmt"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"deskwatch/internal/core/model"
)

// Window handles the preferences UI.
type Window struct {
	window        fyne.Window
	config        model.Config
	onSave        func(model.Config)
	warnEntry     *widget.Entry
	dangerEntry   *widget.Entry
	alwaysOnTop   *widget.Check
	startUnpaused *widget.Check
	storeSessions *widget.Check
	errorLabel    *widget.Label
}

// New creates a preferences window.
func New(app fyne.App, config model.Config, onSave func(model.Config)) *Window {
	window := app.NewWindow("Deskwatch Settings")

	warnEntry := widget.NewEntry()
	dangerEntry := widget.NewEntry()
	warnEntry.SetText(strconv.Itoa(config.WarnAfterMinutes))
	dangerEntry.SetText(strconv.Itoa(config.DangerAfterMinutes))

	alwaysOnTop := widget.NewCheck("Keep window on top", nil)
	alwaysOnTop.SetChecked(config.AlwaysOnTop)

	startUnpaused := widget.NewCheck("Start running", nil)
	startUnpaused.SetChecked(config.StartUnpaused)

	storeSessions := widget.NewCheck("Store session history", nil)
	storeSessions.SetChecked(config.StoreLastSession)

	errorLabel := widget.NewLabel("")
	errorLabel.Hide()

	form := container.NewVBox(
		widget.NewLabelWithStyle("Highlighting", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(widget.NewLabel("Warn after"), warnEntry, widget.NewLabel("min")),
		container.NewHBox(widget.NewLabel("Danger after"), dangerEntry, widget.NewLabel("min")),
		widget.NewLabelWithStyle("Behavior", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		alwaysOnTop,
		startUnpaused,
		storeSessions,
		errorLabel,
	)

	saveButton := widget.NewButton("Save", nil)
	cancelButton := widget.NewButton("Cancel", nil)
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	window.SetContent(container.NewBorder(nil, buttons, nil, nil, form))
	window.Resize(fyne.NewSize(360, 320))
	window.SetCloseIntercept(func() {
		window.Hide()
	})

	prefs := &Window{
		window:        window,
		config:        config,
		onSave:        onSave,
		warnEntry:     warnEntry,
		dangerEntry:   dangerEntry,
		alwaysOnTop:   alwaysOnTop,
		startUnpaused: startUnpaused,
		storeSessions: storeSessions,
		errorLabel:    errorLabel,
	}

	saveButton.OnTapped = prefs.handleSave
	cancelButton.OnTapped = func() {
		prefs.reset()
		window.Hide()
	}

	return prefs
}

// Show displays the preferences window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

func (prefs *Window) handleSave() {
	warnMinutes, err := parseMinutes(prefs.warnEntry.Text)
	if err != nil {
		prefs.showError(fmt.Sprintf("Warn threshold: %v", err))
		return
	}
	dangerMinutes, err := parseMinutes(prefs.dangerEntry.Text)
	if err != nil {
		prefs.showError(fmt.Sprintf("Danger threshold: %v", err))
		return
	}

	prefs.config.WarnAfterMinutes = warnMinutes
	prefs.config.DangerAfterMinutes = dangerMinutes
	prefs.config.AlwaysOnTop = prefs.alwaysOnTop.Checked
	prefs.config.StartUnpaused = prefs.startUnpaused.Checked
	prefs.config.StoreLastSession = prefs.storeSessions.Checked

	prefs.errorLabel.Hide()
	prefs.window.Hide()
	if prefs.onSave != nil {
		prefs.onSave(prefs.config)
	}
}

func (prefs *Window) reset() {
	prefs.warnEntry.SetText(strconv.Itoa(prefs.config.WarnAfterMinutes))
	prefs.dangerEntry.SetText(strconv.Itoa(prefs.config.DangerAfterMinutes))
	prefs.alwaysOnTop.SetChecked(prefs.config.AlwaysOnTop)
	prefs.startUnpaused.SetChecked(prefs.config.StartUnpaused)
	prefs.storeSessions.SetChecked(prefs.config.StoreLastSession)
	prefs.errorLabel.Hide()
}

func (prefs *Window) showError(message string) {
	prefs.errorLabel.SetText(message)
	prefs.errorLabel.Show()
}

func parseMinutes(text string) (int, error) {
	minutes, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("not a number")
	}
	if minutes < 0 {
		return 0, fmt.Errorf("must not be negative")
	}
	return minutes, nil
}
