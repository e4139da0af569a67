package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"

	"lcars/internal/constants"
)

// CursorRenderer draws the keyboard cursor over a list row
type CursorRenderer interface {
	RenderCursor(bounds fyne.Size) fyne.CanvasObject
}

func cursorColor() color.Color {
	c := constants.SelectionBackgroundColor
	return color.NRGBA{R: c[0], G: c[1], B: c[2], A: c[3]}
}

// UnderlineCursorRenderer renders cursor as an underline
type UnderlineCursorRenderer struct{}

func (r *UnderlineCursorRenderer) RenderCursor(bounds fyne.Size) fyne.CanvasObject {
	thickness := float32(constants.DefaultCursorThickness)

	underline := canvas.NewRectangle(cursorColor())
	underline.Resize(fyne.NewSize(bounds.Width, thickness))
	underline.Move(fyne.NewPos(0, bounds.Height-thickness))

	return container.NewWithoutLayout(underline)
}

// BorderCursorRenderer renders cursor as a border
type BorderCursorRenderer struct{}

func (r *BorderCursorRenderer) RenderCursor(bounds fyne.Size) fyne.CanvasObject {
	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = cursorColor()
	border.StrokeWidth = float32(constants.DefaultCursorThickness)
	border.Resize(bounds)
	return border
}

// BackgroundCursorRenderer renders cursor as background highlight
type BackgroundCursorRenderer struct{}

func (r *BackgroundCursorRenderer) RenderCursor(bounds fyne.Size) fyne.CanvasObject {
	background := canvas.NewRectangle(cursorColor())
	background.Resize(bounds)
	return background
}

// NewCursorRenderer picks a renderer by style name. Unknown names fall
// back to the background highlight.
func NewCursorRenderer(style string) CursorRenderer {
	switch style {
	case "underline":
		return &UnderlineCursorRenderer{}
	case "border":
		return &BorderCursorRenderer{}
	default:
		return &BackgroundCursorRenderer{}
	}
}
