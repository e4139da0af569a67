package ui

import (
	"context"
	"errors"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"lcars/internal/browser"
	"lcars/internal/constants"
	"lcars/internal/fileinfo"
	"lcars/internal/keymanager"
)

// busyDelay keeps the overlay from flashing on fast listings
const busyDelay = 250 * time.Millisecond

// BrowserOptions tunes a BrowserView
type BrowserOptions struct {
	ShowHidden  bool
	CursorStyle string
	OnQuit      func()
	Modifiers   func() fyne.KeyModifier
}

// BrowserView shows a location bar, the current items and a status
// line. Navigation runs off the UI goroutine through the controller;
// state changes come back through fyne.Do.
type BrowserView struct {
	ctx            context.Context
	window         fyne.Window
	controller     *browser.Controller
	keyManager     *keymanager.KeyManager
	logger         *zap.Logger
	opts           BrowserOptions
	cursorRenderer CursorRenderer

	// UI-goroutine state
	items       []fileinfo.Item
	location    fileinfo.Location
	cursor      int
	busy        bool
	busySeq     int
	attached    bool
	handler     *keymanager.BrowserKeyHandler
	busyHandler *keymanager.BusyKeyHandler

	list      *widget.List
	sink      *KeySink
	pathEntry *PathEntry
	status    *widget.Label
	overlay   *BusyOverlay
	content   fyne.CanvasObject
}

// NewBrowserView builds the view. Call Start to subscribe to the
// controller and load the first location.
func NewBrowserView(ctx context.Context, window fyne.Window, controller *browser.Controller, km *keymanager.KeyManager, logger *zap.Logger, opts BrowserOptions) *BrowserView {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.Modifiers == nil {
		opts.Modifiers = CurrentModifiers
	}

	v := &BrowserView{
		ctx:            ctx,
		window:         window,
		controller:     controller,
		keyManager:     km,
		logger:         logger,
		opts:           opts,
		cursorRenderer: NewCursorRenderer(opts.CursorStyle),
		busyHandler:    keymanager.NewBusyKeyHandler(),
	}
	v.handler = keymanager.NewBrowserKeyHandler(v, opts.Modifiers)
	v.setupUI()
	return v
}

func (v *BrowserView) setupUI() {
	v.pathEntry = NewPathEntry(v.navigate, func(err error) { ShowErrorDialog(v.window, err) }, v.FocusList)

	v.list = widget.NewList(
		func() int { return len(v.items) },
		func() fyne.CanvasObject { return newBrowserRow() },
		v.updateRow,
	)
	v.list.OnSelected = func(id widget.ListItemID) {
		v.list.UnselectAll()
		v.SetCursor(id)
		v.Activate(id)
	}
	v.sink = NewKeySink(v.list, v.keyManager)

	v.status = widget.NewLabel("")
	v.status.Truncation = fyne.TextTruncateEllipsis

	toolbar := widget.NewToolbar(
		widget.NewToolbarAction(theme.MoveUpIcon(), v.Up),
		widget.NewToolbarAction(theme.HomeIcon(), v.Home),
		widget.NewToolbarAction(theme.ComputerIcon(), func() { v.navigate(fileinfo.Root()) }),
		widget.NewToolbarAction(theme.ViewRefreshIcon(), v.Refresh),
	)
	if v.opts.OnQuit != nil {
		toolbar.Append(widget.NewToolbarSpacer())
		toolbar.Append(widget.NewToolbarAction(theme.CancelIcon(), v.Quit))
	}

	v.overlay = NewBusyOverlay()
	v.content = container.NewStack(
		container.NewBorder(container.NewVBox(toolbar, v.pathEntry), v.status, nil, nil, v.sink),
		v.overlay.GetContainer(),
	)
}

// Content returns the view's root object
func (v *BrowserView) Content() fyne.CanvasObject { return v.content }

// Start subscribes to the controller and loads initial, or the root
// view when initial is the zero location
func (v *BrowserView) Start(initial fileinfo.Location) {
	v.controller.OnChange(func(s browser.State) {
		fyne.Do(func() { v.apply(s) })
	})
	v.Attach()
	if initial.IsZero() {
		initial = fileinfo.Root()
	}
	v.navigate(initial)
}

// Attach gives the browser the keyboard
func (v *BrowserView) Attach() {
	if v.attached {
		return
	}
	v.attached = true
	v.keyManager.PushHandler(v.handler)
	v.FocusList()
}

// Detach takes the keyboard away while another pane is shown
func (v *BrowserView) Detach() {
	if !v.attached {
		return
	}
	v.attached = false
	v.keyManager.RemoveHandler(v.handler)
}

// FocusList moves keyboard focus to the item list
func (v *BrowserView) FocusList() {
	if v.window != nil {
		v.window.Canvas().Focus(v.sink)
	}
}

func (v *BrowserView) apply(s browser.State) {
	v.items = visibleItems(s.Items, v.opts.ShowHidden)
	if s.Location != v.location {
		v.location = s.Location
		v.cursor = 0
		v.pathEntry.ShowLocation(s.Location)
		v.window.SetTitle(constants.ApplicationTitle + " - " + LocationText(s.Location))
		v.list.ScrollToTop()
	}
	v.cursor = clampCursor(v.cursor, len(v.items))
	v.status.SetText(FirstLine(s.Status))
	v.setBusy(s.Busy, s.Status)
	v.list.Refresh()
}

func (v *BrowserView) setBusy(busy bool, text string) {
	if busy == v.busy {
		if busy && v.overlay.IsVisible() {
			v.overlay.Show(text)
		}
		return
	}
	v.busy = busy
	v.busySeq++

	if !busy {
		v.keyManager.RemoveHandler(v.busyHandler)
		v.overlay.Hide()
		return
	}

	v.keyManager.PushHandler(v.busyHandler)
	seq := v.busySeq
	time.AfterFunc(busyDelay, func() {
		fyne.Do(func() {
			if v.busy && v.busySeq == seq {
				v.overlay.Show(text)
			}
		})
	})
}

func (v *BrowserView) updateRow(id widget.ListItemID, obj fyne.CanvasObject) {
	if id < 0 || id >= len(v.items) {
		return
	}
	row := obj.(*browserRow)
	var cursor CursorRenderer
	if id == v.cursor {
		cursor = v.cursorRenderer
	}
	row.set(v.items[id], cursor, func() {
		v.SetCursor(id)
		v.Activate(id)
	})
}

func (v *BrowserView) navigate(loc fileinfo.Location) {
	v.run("load", func(ctx context.Context) error { return v.controller.Load(ctx, loc) })
	v.FocusList()
}

func (v *BrowserView) run(action string, fn func(ctx context.Context) error) {
	go func() {
		if err := fn(v.ctx); err != nil && !errors.Is(err, browser.ErrSuperseded) {
			v.logger.Debug("browser action failed", zap.String("action", action), zap.Error(err))
		}
	}()
}

// BrowserActions implementation

// CursorIndex returns the row under the keyboard cursor, -1 when empty
func (v *BrowserView) CursorIndex() int {
	if len(v.items) == 0 {
		return -1
	}
	return v.cursor
}

// SetCursor moves the keyboard cursor and scrolls it into view
func (v *BrowserView) SetCursor(index int) {
	v.cursor = clampCursor(index, len(v.items))
	v.list.ScrollTo(v.cursor)
	v.list.Refresh()
}

// ItemCount returns the number of visible rows
func (v *BrowserView) ItemCount() int { return len(v.items) }

// Activate opens the item at index. Files show their details.
func (v *BrowserView) Activate(index int) {
	if index < 0 || index >= len(v.items) {
		return
	}
	item := v.items[index]

	go func() {
		err := v.controller.Open(v.ctx, item)
		if err != nil || item.Kind.Navigable() {
			return
		}
		info := v.controller.State().Status
		fyne.Do(func() { ShowMessageDialog(v.window, item.Name, info) })
	}()
}

func (v *BrowserView) Up() {
	v.run("up", v.controller.Up)
}

func (v *BrowserView) Home() {
	v.run("home", v.controller.Home)
}

func (v *BrowserView) Refresh() {
	v.run("refresh", v.controller.Refresh)
}

func (v *BrowserView) Quit() {
	if v.opts.OnQuit != nil {
		v.opts.OnQuit()
	}
}

// CurrentModifiers reports the modifier keys held on desktop drivers
func CurrentModifiers() fyne.KeyModifier {
	app := fyne.CurrentApp()
	if app == nil {
		return 0
	}
	if d, ok := app.Driver().(desktop.Driver); ok {
		return d.CurrentKeyModifiers()
	}
	return 0
}

func visibleItems(items []fileinfo.Item, showHidden bool) []fileinfo.Item {
	if showHidden {
		return items
	}
	out := make([]fileinfo.Item, 0, len(items))
	for _, item := range items {
		if fileinfo.ShouldDisplay(item, false) {
			out = append(out, item)
		}
	}
	return out
}

func clampCursor(cursor, count int) int {
	if count == 0 || cursor < 0 {
		return 0
	}
	if cursor >= count {
		return count - 1
	}
	return cursor
}

// browserRow is one list row: cursor layer, icon, name and detail
type browserRow struct {
	widget.BaseWidget
	cursor *fyne.Container
	icon   *TappableIcon
	name   *widget.Label
	detail *widget.Label
}

func newBrowserRow() *browserRow {
	r := &browserRow{
		cursor: container.NewStack(),
		icon:   NewTappableIcon(theme.FileIcon(), nil),
		name:   widget.NewLabel(""),
		detail: widget.NewLabel(""),
	}
	r.name.Truncation = fyne.TextTruncateEllipsis
	r.ExtendBaseWidget(r)
	return r
}

func (r *browserRow) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewStack(
		r.cursor,
		container.NewBorder(nil, nil, r.icon, r.detail, r.name),
	))
}

func (r *browserRow) set(item fileinfo.Item, cursor CursorRenderer, onTapped func()) {
	r.icon.SetResource(ItemIcon(item))
	r.icon.SetOnTapped(onTapped)
	r.name.SetText(item.Name)
	r.detail.SetText(ItemDetail(item))

	if cursor != nil {
		r.cursor.Objects = []fyne.CanvasObject{cursor.RenderCursor(r.Size())}
	} else {
		r.cursor.Objects = nil
	}
	r.cursor.Refresh()
}
