package browser

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"lcars/internal/fileinfo"
)

// ErrSuperseded is returned when a newer navigation was issued before
// this one finished. Its result has been discarded.
var ErrSuperseded = errors.New("navigation superseded by a newer request")

// Navigator is the query surface the controller drives
type Navigator interface {
	RootView(ctx context.Context) ([]fileinfo.Item, error)
	ThisPC(ctx context.Context) ([]fileinfo.Item, error)
	ListDirectory(ctx context.Context, dir string) ([]fileinfo.Item, error)
	RecentFiles(ctx context.Context) ([]fileinfo.Item, error)
	RecentPhotos(ctx context.Context) ([]fileinfo.Item, error)
	Parent(ctx context.Context, path string) (string, bool, error)
	HomeDir(ctx context.Context) (string, error)
	Info(ctx context.Context, path string) (fileinfo.Info, error)
}

// State is a snapshot of what the browser shows
type State struct {
	Location fileinfo.Location
	Items    []fileinfo.Item
	Status   string
	Busy     bool
}

// Controller tracks the current location and its items. Every
// navigation replaces the items wholesale; a failed query only changes
// the status line. When navigations overlap, the most recently issued
// one wins.
type Controller struct {
	nav    Navigator
	logger *zap.Logger

	mu         sync.Mutex
	state      State
	generation uint64
	listeners  []func(State)
}

// NewController creates a controller positioned at the root view. Call
// Load or Refresh to populate it.
func NewController(nav Navigator, logger *zap.Logger) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controller{
		nav:    nav,
		logger: logger,
		state:  State{Location: fileinfo.Root()},
	}
}

// OnChange registers fn to receive every state change. fn runs on the
// goroutine that made the change.
func (c *Controller) OnChange(fn func(State)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listeners = append(c.listeners, fn)
}

// State returns a copy of the current state
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// Load navigates to loc
func (c *Controller) Load(ctx context.Context, loc fileinfo.Location) error {
	if loc.IsZero() {
		return fmt.Errorf("load: empty location")
	}

	c.mu.Lock()
	c.generation++
	gen := c.generation
	c.state.Busy = true
	c.state.Status = loadingStatus(loc)
	snap := c.snapshotLocked()
	c.mu.Unlock()
	c.notify(snap)

	items, err := c.query(ctx, loc)

	c.mu.Lock()
	if gen != c.generation {
		c.mu.Unlock()
		c.logger.Debug("discarding superseded result", zap.Stringer("location", loc))
		return ErrSuperseded
	}
	c.state.Busy = false
	if err != nil {
		c.state.Status = "Error: " + err.Error()
		snap = c.snapshotLocked()
		c.mu.Unlock()
		c.logger.Error("navigation failed", zap.Stringer("location", loc), zap.Error(err))
		c.notify(snap)
		return err
	}
	c.state.Location = loc
	c.state.Items = items
	c.state.Status = resultStatus(loc, len(items))
	snap = c.snapshotLocked()
	c.mu.Unlock()

	c.logger.Debug("navigated", zap.Stringer("location", loc), zap.Int("items", len(items)))
	c.notify(snap)
	return nil
}

// Open activates an item. Folders, drives and virtual entries navigate;
// files only report their details on the status line.
func (c *Controller) Open(ctx context.Context, item fileinfo.Item) error {
	if item.Kind.Navigable() {
		return c.Load(ctx, item.Location())
	}
	return c.showInfo(ctx, item)
}

// Up moves to the parent of the current location. Virtual folders and
// filesystem roots lead back to the root view.
func (c *Controller) Up(ctx context.Context) error {
	loc := c.State().Location

	switch loc.Kind() {
	case fileinfo.LocationRoot:
		return nil
	case fileinfo.LocationThisPC, fileinfo.LocationGallery, fileinfo.LocationRecent:
		return c.Load(ctx, fileinfo.Root())
	}

	current := loc.Path()
	parent, ok, err := c.nav.Parent(ctx, current)
	if err != nil {
		c.setStatus("Error: " + err.Error())
		return err
	}
	if !ok || parent == current {
		return c.Load(ctx, fileinfo.Root())
	}
	return c.Load(ctx, fileinfo.RealPath(parent))
}

// Home navigates to the user's home directory
func (c *Controller) Home(ctx context.Context) error {
	home, err := c.nav.HomeDir(ctx)
	if err != nil {
		c.setStatus("Error: " + err.Error())
		return err
	}
	return c.Load(ctx, fileinfo.RealPath(home))
}

// Refresh re-runs the query for the current location
func (c *Controller) Refresh(ctx context.Context) error {
	return c.Load(ctx, c.State().Location)
}

func (c *Controller) query(ctx context.Context, loc fileinfo.Location) ([]fileinfo.Item, error) {
	switch loc.Kind() {
	case fileinfo.LocationRoot:
		return c.nav.RootView(ctx)
	case fileinfo.LocationThisPC:
		return c.nav.ThisPC(ctx)
	case fileinfo.LocationGallery:
		return c.nav.RecentPhotos(ctx)
	case fileinfo.LocationRecent:
		return c.nav.RecentFiles(ctx)
	case fileinfo.LocationPath:
		return c.nav.ListDirectory(ctx, loc.Path())
	default:
		return nil, fmt.Errorf("unknown location %q", loc.String())
	}
}

func (c *Controller) showInfo(ctx context.Context, item fileinfo.Item) error {
	c.mu.Lock()
	gen := c.generation
	c.mu.Unlock()

	info, err := c.nav.Info(ctx, item.Path)

	c.mu.Lock()
	if gen != c.generation {
		c.mu.Unlock()
		return ErrSuperseded
	}
	if err != nil {
		c.state.Status = "Error getting info: " + err.Error()
	} else {
		c.state.Status = FormatInfo(info)
	}
	snap := c.snapshotLocked()
	c.mu.Unlock()

	c.notify(snap)
	return err
}

func (c *Controller) setStatus(status string) {
	c.mu.Lock()
	c.state.Status = status
	snap := c.snapshotLocked()
	c.mu.Unlock()
	c.notify(snap)
}

func (c *Controller) snapshotLocked() State {
	snap := c.state
	snap.Items = append([]fileinfo.Item(nil), c.state.Items...)
	return snap
}

func (c *Controller) notify(snap State) {
	c.mu.Lock()
	listeners := append([]func(State){}, c.listeners...)
	c.mu.Unlock()
	for _, fn := range listeners {
		fn(snap)
	}
}

func loadingStatus(loc fileinfo.Location) string {
	switch loc.Kind() {
	case fileinfo.LocationRoot:
		return "Loading drives..."
	case fileinfo.LocationThisPC:
		return "Loading This PC..."
	case fileinfo.LocationGallery:
		return "Loading recent photos..."
	case fileinfo.LocationRecent:
		return "Loading recent files..."
	default:
		return fmt.Sprintf("Loading %s...", loc.Path())
	}
}

func resultStatus(loc fileinfo.Location, n int) string {
	switch loc.Kind() {
	case fileinfo.LocationRoot:
		return fmt.Sprintf("Found %d drive(s)", n)
	case fileinfo.LocationGallery:
		return fmt.Sprintf("%d photo(s)", n)
	case fileinfo.LocationRecent:
		return fmt.Sprintf("%d recent file(s)", n)
	default:
		return fmt.Sprintf("%d item(s)", n)
	}
}

// FormatInfo renders an item-info record for the status line
func FormatInfo(info fileinfo.Info) string {
	lines := []string{
		"Name: " + info.Name,
		"Type: " + info.Kind.String(),
		"Path: " + info.Path,
		"Size: " + fileinfo.FormatFileSize(info.Size),
	}
	if info.Extension != "" {
		lines = append(lines, "Extension: "+info.Extension)
	}
	lines = append(lines,
		"Modified: "+fileinfo.FormatTimestamp(info.ModifiedAt),
		"Created: "+fileinfo.FormatTimestamp(info.CreatedAt),
	)
	return strings.Join(lines, "\n")
}
