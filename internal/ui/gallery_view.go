package ui

import (
	"context"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"lcars/internal/fileinfo"
)

// PhotoSource supplies the gallery
type PhotoSource interface {
	RecentPhotos(ctx context.Context) ([]fileinfo.Item, error)
}

// GalleryView shows recently modified pictures as a grid of cards.
// Clicking a card shows the photo's details; images are never opened.
type GalleryView struct {
	ctx    context.Context
	window fyne.Window
	source PhotoSource
	logger *zap.Logger

	photos  []fileinfo.Item
	loaded  bool
	loading bool

	grid    *widget.GridWrap
	empty   *widget.Label
	status  *widget.Label
	content fyne.CanvasObject
}

// NewGalleryView creates the gallery pane
func NewGalleryView(ctx context.Context, window fyne.Window, source PhotoSource, logger *zap.Logger) *GalleryView {
	if logger == nil {
		logger = zap.NewNop()
	}
	v := &GalleryView{ctx: ctx, window: window, source: source, logger: logger}

	v.grid = widget.NewGridWrap(
		func() int { return len(v.photos) },
		func() fyne.CanvasObject { return newPhotoCard() },
		func(id widget.GridWrapItemID, obj fyne.CanvasObject) {
			if id < len(v.photos) {
				obj.(*photoCard).set(v.photos[id])
			}
		},
	)
	v.grid.OnSelected = func(id widget.GridWrapItemID) {
		v.grid.UnselectAll()
		if id < len(v.photos) {
			v.showPhoto(v.photos[id])
		}
	}

	v.empty = widget.NewLabel("No photos found in your Pictures folder")
	v.empty.Alignment = fyne.TextAlignCenter
	v.empty.Hide()

	v.status = widget.NewLabel("")
	v.status.Truncation = fyne.TextTruncateEllipsis

	toolbar := widget.NewToolbar(widget.NewToolbarAction(theme.ViewRefreshIcon(), v.Reload))
	v.content = container.NewBorder(toolbar, v.status, nil, nil, container.NewStack(v.grid, container.NewCenter(v.empty)))
	return v
}

// Content returns the view's root object
func (v *GalleryView) Content() fyne.CanvasObject { return v.content }

// EnsureLoaded scans once, the first time the pane is shown
func (v *GalleryView) EnsureLoaded() {
	if !v.loaded {
		v.Reload()
	}
}

// Reload rescans the pictures folder
func (v *GalleryView) Reload() {
	if v.loading {
		return
	}
	v.loading = true
	v.loaded = true
	v.status.SetText("Loading recent photos...")

	go func() {
		photos, err := v.source.RecentPhotos(v.ctx)
		fyne.Do(func() {
			v.loading = false
			if err != nil {
				v.logger.Error("gallery scan failed", zap.Error(err))
				v.status.SetText("Error loading photos: " + err.Error())
				return
			}
			v.show(photos)
		})
	}()
}

func (v *GalleryView) show(photos []fileinfo.Item) {
	v.photos = photos
	if len(photos) == 0 {
		v.empty.Show()
	} else {
		v.empty.Hide()
	}
	v.status.SetText(fmt.Sprintf("%d photo(s) found", len(photos)))
	v.grid.Refresh()
}

func (v *GalleryView) showPhoto(photo fileinfo.Item) {
	info := PhotoInfo(photo)
	v.status.SetText(FirstLine(info))
	ShowMessageDialog(v.window, photo.Name, info)
}

// photoCard is one gallery cell: icon, name, size and date
type photoCard struct {
	widget.BaseWidget
	icon    *widget.Icon
	name    *widget.Label
	details *widget.Label
}

func newPhotoCard() *photoCard {
	c := &photoCard{
		icon:    widget.NewIcon(theme.FileImageIcon()),
		name:    widget.NewLabel(""),
		details: widget.NewLabel(""),
	}
	c.name.Truncation = fyne.TextTruncateEllipsis
	c.name.Alignment = fyne.TextAlignCenter
	c.details.Alignment = fyne.TextAlignCenter
	c.details.SizeName = theme.SizeNameCaptionText
	c.ExtendBaseWidget(c)
	return c
}

func (c *photoCard) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewBorder(nil, container.NewVBox(c.name, c.details), nil, nil, c.icon))
}

// MinSize keeps every cell the same size so the grid stays regular
func (c *photoCard) MinSize() fyne.Size {
	return fyne.NewSize(160, 140)
}

func (c *photoCard) set(photo fileinfo.Item) {
	c.name.SetText(photo.Name)
	c.details.SetText(fileinfo.FormatFileSize(photo.Size) + "  " + fileinfo.FormatTimestamp(photo.ModifiedAt))
}
