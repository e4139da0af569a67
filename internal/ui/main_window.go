package ui

import (
	"context"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"go.uber.org/zap"

	"lcars/internal/browser"
	"lcars/internal/fileinfo"
	"lcars/internal/keymanager"
	"lcars/internal/netinfo"
	"lcars/internal/sysinfo"
)

// Dependencies wires the panes to their data sources
type Dependencies struct {
	Controller    *browser.Controller
	Photos        PhotoSource
	Checker       *netinfo.Checker
	CheckInterval time.Duration
	Interfaces    InterfaceSource
	System        *sysinfo.Collector
	Logger        *zap.Logger

	ShowHidden  bool
	CursorStyle string

	// OnClose runs once before the window closes, with its final size
	OnClose func(size fyne.Size)
}

// MainWindow hosts the browser, gallery, network and about panes
type MainWindow struct {
	window     fyne.Window
	cancel     context.CancelFunc
	keyManager *keymanager.KeyManager
	logger     *zap.Logger
	onClose    func(fyne.Size)
	closing    bool

	tabs       *container.AppTabs
	browserTab *container.TabItem
	galleryTab *container.TabItem
	networkTab *container.TabItem
	aboutTab   *container.TabItem

	browser *BrowserView
	gallery *GalleryView
	network *NetworkView
	about   *AboutView
}

// NewMainWindow builds the panes into window. Work started by the panes
// is bound to ctx and cancelled when the window closes.
func NewMainWindow(ctx context.Context, window fyne.Window, deps Dependencies) *MainWindow {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	ctx, cancel := context.WithCancel(ctx)

	mw := &MainWindow{
		window:     window,
		cancel:     cancel,
		keyManager: keymanager.NewKeyManager(logger.Named("keys")),
		logger:     logger,
		onClose:    deps.OnClose,
	}

	mw.browser = NewBrowserView(ctx, window, deps.Controller, mw.keyManager, logger.Named("browser"), BrowserOptions{
		ShowHidden:  deps.ShowHidden,
		CursorStyle: deps.CursorStyle,
		OnQuit:      mw.RequestQuit,
	})
	mw.gallery = NewGalleryView(ctx, window, deps.Photos, logger.Named("gallery"))
	mw.network = NewNetworkView(ctx, deps.Checker, deps.CheckInterval, deps.Interfaces, logger.Named("network"))
	mw.about = NewAboutView(ctx, deps.System)

	mw.browserTab = container.NewTabItemWithIcon("Browser", theme.FolderOpenIcon(), mw.browser.Content())
	mw.galleryTab = container.NewTabItemWithIcon("Gallery", theme.MediaPhotoIcon(), mw.gallery.Content())
	mw.networkTab = container.NewTabItemWithIcon("Network", theme.UploadIcon(), mw.network.Content())
	mw.aboutTab = container.NewTabItemWithIcon("About", theme.InfoIcon(), mw.about.Content())

	mw.tabs = container.NewAppTabs(mw.browserTab, mw.galleryTab, mw.networkTab, mw.aboutTab)
	mw.tabs.SetTabLocation(container.TabLocationLeading)
	mw.tabs.OnSelected = mw.tabSelected
	mw.tabs.OnUnselected = mw.tabUnselected

	window.SetContent(mw.tabs)
	window.SetCloseIntercept(mw.Close)
	mw.setupKeys()
	return mw
}

// Start shows initial in the browser; the zero location means the root view
func (mw *MainWindow) Start(initial fileinfo.Location) {
	mw.browser.Start(initial)
}

func (mw *MainWindow) setupKeys() {
	canvas := mw.window.Canvas()
	if dc, ok := canvas.(desktop.Canvas); ok {
		dc.SetOnKeyDown(mw.keyManager.HandleKeyDown)
		dc.SetOnKeyUp(mw.keyManager.HandleKeyUp)
	}
	canvas.SetOnTypedKey(mw.keyManager.HandleTypedKey)
	canvas.SetOnTypedRune(mw.keyManager.HandleTypedRune)
}

func (mw *MainWindow) tabSelected(tab *container.TabItem) {
	mw.logger.Debug("pane selected", zap.String("pane", tab.Text))
	switch tab {
	case mw.browserTab:
		mw.browser.Attach()
	case mw.galleryTab:
		mw.gallery.EnsureLoaded()
	case mw.networkTab:
		mw.network.Start()
	case mw.aboutTab:
		mw.about.EnsureLoaded()
	}
}

func (mw *MainWindow) tabUnselected(tab *container.TabItem) {
	switch tab {
	case mw.browserTab:
		mw.browser.Detach()
	case mw.networkTab:
		mw.network.Stop()
	}
}

// RequestQuit asks for confirmation before closing
func (mw *MainWindow) RequestQuit() {
	NewQuitConfirmDialog(mw.keyManager).ShowDialog(mw.window, func(confirmed bool) {
		if confirmed {
			mw.Close()
		}
	})
}

// Close stops background work, reports the final size and closes the window
func (mw *MainWindow) Close() {
	if mw.closing {
		return
	}
	mw.closing = true

	mw.network.Stop()
	mw.cancel()
	if mw.onClose != nil {
		mw.onClose(mw.window.Canvas().Size())
	}
	mw.logger.Debug("closing window")
	mw.window.Close()
}
