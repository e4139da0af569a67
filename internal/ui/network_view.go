package ui

import (
	"context"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"lcars/internal/netinfo"
)

// InterfaceSource lists network interfaces
type InterfaceSource func(ctx context.Context) ([]netinfo.Interface, error)

// NetworkView shows internet connectivity and the local interfaces. The
// connectivity check repeats while the pane is visible.
type NetworkView struct {
	ctx        context.Context
	checker    *netinfo.Checker
	monitor    *netinfo.Monitor
	interfaces InterfaceSource
	logger     *zap.Logger

	indicator *widget.Label
	title     *widget.Label
	details   *widget.Label
	ifaceList *fyne.Container
	content   fyne.CanvasObject
}

// NewNetworkView creates the pane. interval is the re-check period.
func NewNetworkView(ctx context.Context, checker *netinfo.Checker, interval time.Duration, interfaces InterfaceSource, logger *zap.Logger) *NetworkView {
	if logger == nil {
		logger = zap.NewNop()
	}
	if interfaces == nil {
		interfaces = netinfo.Interfaces
	}
	v := &NetworkView{
		ctx:        ctx,
		checker:    checker,
		interfaces: interfaces,
		logger:     logger,
	}
	v.monitor = netinfo.NewMonitor(checker, interval, func(s netinfo.Snapshot) {
		fyne.Do(func() { v.showConnection(s) })
	})

	v.indicator = widget.NewLabelWithStyle("?", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	v.indicator.SizeName = theme.SizeNameHeadingText
	v.title = widget.NewLabelWithStyle("Checking connection...", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	v.details = widget.NewLabel("")
	v.ifaceList = container.NewVBox()

	status := container.NewBorder(nil, nil, v.indicator, nil, container.NewVBox(v.title, v.details))
	toolbar := widget.NewToolbar(widget.NewToolbarAction(theme.ViewRefreshIcon(), v.Refresh))

	v.content = container.NewBorder(
		container.NewVBox(toolbar, widget.NewCard("Connection Status", "", status)),
		nil, nil, nil,
		widget.NewCard("Network Interfaces", "", container.NewVScroll(v.ifaceList)),
	)
	return v
}

// Content returns the view's root object
func (v *NetworkView) Content() fyne.CanvasObject { return v.content }

// Start begins the periodic check and loads the interface list
func (v *NetworkView) Start() {
	v.monitor.Start(v.ctx)
	v.loadInterfaces()
}

// Stop ends the periodic check
func (v *NetworkView) Stop() {
	v.monitor.Stop()
}

// Refresh checks once now and reloads the interface list
func (v *NetworkView) Refresh() {
	go func() {
		s := v.checker.CheckConnection(v.ctx)
		fyne.Do(func() { v.showConnection(s) })
	}()
	v.loadInterfaces()
}

func (v *NetworkView) showConnection(s netinfo.Snapshot) {
	title, details := ConnectionSummary(s)
	if s.Connected {
		v.indicator.SetText("✓")
		v.title.Importance = widget.SuccessImportance
	} else {
		v.indicator.SetText("✗")
		v.title.Importance = widget.DangerImportance
	}
	v.title.SetText(title)
	v.details.SetText(details)
}

func (v *NetworkView) loadInterfaces() {
	go func() {
		ifaces, err := v.interfaces(v.ctx)
		fyne.Do(func() { v.showInterfaces(ifaces, err) })
	}()
}

func (v *NetworkView) showInterfaces(ifaces []netinfo.Interface, err error) {
	v.ifaceList.RemoveAll()

	switch {
	case err != nil:
		v.logger.Error("cannot list network interfaces", zap.Error(err))
		msg := widget.NewLabel("Error loading network interfaces")
		msg.Importance = widget.DangerImportance
		v.ifaceList.Add(msg)
	case len(ifaces) == 0:
		v.ifaceList.Add(widget.NewLabel("No network interfaces found"))
	default:
		for _, iface := range ifaces {
			v.ifaceList.Add(widget.NewLabelWithStyle(iface.Name, fyne.TextAlignLeading, fyne.TextStyle{Bold: true}))
			for _, line := range InterfaceLines(iface) {
				v.ifaceList.Add(widget.NewLabel(line))
			}
		}
	}
	v.ifaceList.Refresh()
}
