package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// busyBlocker covers the browser while a query runs and swallows taps
// so the list underneath cannot start another navigation.
type busyBlocker struct {
	widget.BaseWidget
	content *fyne.Container
}

func newBusyBlocker(content *fyne.Container) *busyBlocker {
	b := &busyBlocker{content: content}
	b.ExtendBaseWidget(b)
	return b
}

func (b *busyBlocker) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(b.content)
}

func (b *busyBlocker) Tapped(_ *fyne.PointEvent)          {}
func (b *busyBlocker) TappedSecondary(_ *fyne.PointEvent) {}

// BusyOverlay shows an indeterminate progress bar and a message
type BusyOverlay struct {
	spinner *widget.ProgressBarInfinite
	label   *widget.Label
	root    *fyne.Container
	visible bool
}

func NewBusyOverlay() *BusyOverlay {
	spinner := widget.NewProgressBarInfinite()
	spinner.Stop()

	lbl := widget.NewLabel("Working...")
	lbl.Alignment = fyne.TextAlignCenter
	lbl.Importance = widget.HighImportance

	bg := canvas.NewRectangle(color.NRGBA{R: 0, G: 0, B: 0, A: 96})
	panel := container.NewCenter(container.NewPadded(container.NewVBox(spinner, lbl)))

	root := container.NewStack(newBusyBlocker(container.NewStack(bg, panel)))
	root.Hide()

	return &BusyOverlay{
		spinner: spinner,
		label:   lbl,
		root:    root,
	}
}

func (bo *BusyOverlay) GetContainer() *fyne.Container { return bo.root }

// Show displays the overlay with text, or keeps the last text when empty
func (bo *BusyOverlay) Show(text string) {
	if text != "" {
		bo.label.SetText(text)
	}
	if bo.visible {
		return
	}
	bo.visible = true
	bo.spinner.Start()
	bo.root.Show()
}

func (bo *BusyOverlay) Hide() {
	if !bo.visible {
		return
	}
	bo.visible = false
	bo.spinner.Stop()
	bo.root.Hide()
}

func (bo *BusyOverlay) IsVisible() bool { return bo.visible }
