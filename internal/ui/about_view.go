package ui

import (
	"context"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"lcars/internal/sysinfo"
)

// AboutView shows device, OS, status and application details
type AboutView struct {
	ctx       context.Context
	collector *sysinfo.Collector

	loaded  bool
	body    *fyne.Container
	content fyne.CanvasObject
}

// NewAboutView creates the about pane
func NewAboutView(ctx context.Context, collector *sysinfo.Collector) *AboutView {
	v := &AboutView{ctx: ctx, collector: collector}
	v.body = container.NewVBox(widget.NewLabel("Loading system information..."))

	toolbar := widget.NewToolbar(widget.NewToolbarAction(theme.ViewRefreshIcon(), v.Reload))
	v.content = container.NewBorder(toolbar, nil, nil, nil, container.NewVScroll(v.body))
	return v
}

// Content returns the view's root object
func (v *AboutView) Content() fyne.CanvasObject { return v.content }

// EnsureLoaded collects once, the first time the pane is shown
func (v *AboutView) EnsureLoaded() {
	if !v.loaded {
		v.Reload()
	}
}

// Reload collects a fresh snapshot
func (v *AboutView) Reload() {
	v.loaded = true
	go func() {
		rows := AboutRows(v.collector.Snapshot(v.ctx))
		fyne.Do(func() { v.show(rows) })
	}()
}

func (v *AboutView) show(rows []InfoRow) {
	v.body.RemoveAll()

	var form *fyne.Container
	section := ""
	for _, r := range rows {
		if r.Section != section {
			section = r.Section
			form = container.New(layout.NewFormLayout())
			v.body.Add(widget.NewCard(section, "", form))
		}
		label := widget.NewLabelWithStyle(r.Label, fyne.TextAlignTrailing, fyne.TextStyle{Bold: true})
		value := widget.NewLabel(r.Value)
		if r.Value == errorLoadingInfo {
			value.Importance = widget.DangerImportance
		}
		form.Add(label)
		form.Add(value)
	}
	v.body.Refresh()
}
