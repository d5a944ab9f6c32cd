package mainwindow

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"deskwatch/internal/core/stopwatch"
)

// Config defines the widget window geometry.
type Config struct {
	Size        [2]float32
	Position    [2]float32
	AlwaysOnTop bool
}

var pausedTextColor = color.NRGBA{R: 255, G: 255, B: 255, A: 255}

// Window is the always-visible stopwatch widget. The whole content area is
// tappable and toggles the stopwatch.
type Window struct {
	app         fyne.App
	window      fyne.Window
	config      Config
	timeLabel   *canvas.Text
	breaksLabel *canvas.Text
	onToggle    func()
}

// New creates the widget window. onToggle fires on any tap inside it.
func New(app fyne.App, config Config, onToggle func()) *Window {
	window := app.NewWindow("Deskwatch")
	window.SetPadded(false)

	timeLabel := canvas.NewText("--:--", pausedTextColor)
	timeLabel.Alignment = fyne.TextAlignCenter
	timeLabel.TextStyle = fyne.TextStyle{Monospace: true, Bold: true}
	timeLabel.TextSize = 32

	breaksLabel := canvas.NewText("", pausedTextColor)
	breaksLabel.Alignment = fyne.TextAlignCenter
	breaksLabel.TextSize = 14
	breaksLabel.Hide()

	win := &Window{
		app:         app,
		window:      window,
		config:      config,
		timeLabel:   timeLabel,
		breaksLabel: breaksLabel,
		onToggle:    onToggle,
	}

	content := container.NewCenter(container.NewVBox(timeLabel, breaksLabel))
	window.SetContent(newTapArea(content, func() {
		if win.onToggle != nil {
			win.onToggle()
		}
	}))

	win.applyGeometry()
	return win
}

// Render updates the widget from a display snapshot. Safe to call from any
// goroutine.
func (win *Window) Render(state stopwatch.Display) {
	fyne.Do(func() {
		win.timeLabel.Text = state.Text
		if state.Paused {
			win.timeLabel.Color = pausedTextColor
			win.breaksLabel.Text = fmt.Sprintf("breaks: %d", state.PauseCount)
			win.breaksLabel.Show()
			win.breaksLabel.Refresh()
		} else {
			win.timeLabel.Color = state.Color
			win.breaksLabel.Hide()
		}
		win.timeLabel.Refresh()
	})
}

// Show displays the widget window.
func (win *Window) Show() {
	win.window.Show()
	win.window.RequestFocus()
}

// ShowAndRun displays the widget and enters the UI main loop.
func (win *Window) ShowAndRun() {
	win.window.ShowAndRun()
}

func (win *Window) applyGeometry() {
	width, height := win.config.Size[0], win.config.Size[1]
	if width <= 0 || height <= 0 {
		width, height = 150, 80
	}
	win.window.Resize(fyne.NewSize(width, height))
	// Window placement and always-on-top are not exposed by the toolkit.
}

// tapArea wraps arbitrary content and reports taps anywhere inside it.
type tapArea struct {
	widget.BaseWidget
	content  fyne.CanvasObject
	onTapped func()
}

func newTapArea(content fyne.CanvasObject, onTapped func()) *tapArea {
	area := &tapArea{content: content, onTapped: onTapped}
	area.ExtendBaseWidget(area)
	return area
}

// Tapped implements fyne.Tappable.
func (area *tapArea) Tapped(*fyne.PointEvent) {
	if area.onTapped != nil {
		area.onTapped()
	}
}

// CreateRenderer implements fyne.Widget.
func (area *tapArea) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(area.content)
}
