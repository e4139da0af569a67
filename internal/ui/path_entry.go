package ui

import (
	"path/filepath"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"

	apperrors "lcars/internal/errors"
	"lcars/internal/fileinfo"
)

// PathEntry is the location bar. Submitting it navigates to the typed
// path or legacy location token; Escape hands focus back to the list.
type PathEntry struct {
	widget.Entry
	onNavigate func(fileinfo.Location)
	onError    func(error)
	onEscape   func()
}

// NewPathEntry creates a location bar
func NewPathEntry(onNavigate func(fileinfo.Location), onError func(error), onEscape func()) *PathEntry {
	e := &PathEntry{onNavigate: onNavigate, onError: onError, onEscape: onEscape}
	e.ExtendBaseWidget(e)
	e.OnSubmitted = e.submit
	return e
}

func (e *PathEntry) submit(text string) {
	loc, err := ParseEntry(text)
	switch {
	case err != nil:
		if e.onError != nil {
			e.onError(err)
		}
	case !loc.IsZero() && e.onNavigate != nil:
		e.onNavigate(loc)
	}
}

// TypedKey intercepts Escape before the entry sees it
func (e *PathEntry) TypedKey(ev *fyne.KeyEvent) {
	if ev.Name == fyne.KeyEscape && e.onEscape != nil {
		e.onEscape()
		return
	}
	e.Entry.TypedKey(ev)
}

// ShowLocation displays loc without triggering navigation
func (e *PathEntry) ShowLocation(loc fileinfo.Location) {
	e.SetText(LocationText(loc))
}

// LocationText is what the location bar shows for loc
func LocationText(loc fileinfo.Location) string {
	if loc.Kind() == fileinfo.LocationPath {
		return loc.Path()
	}
	return loc.Title()
}

// ParseEntry turns location bar input into a location. Blank input is
// the zero location. Virtual folder titles and legacy tokens map to
// their virtual locations. Anything else must be an absolute path.
func ParseEntry(text string) (fileinfo.Location, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return fileinfo.Location{}, nil
	}
	for _, loc := range []fileinfo.Location{fileinfo.Root(), fileinfo.ThisPC(), fileinfo.Gallery(), fileinfo.Recent()} {
		if strings.EqualFold(text, loc.Title()) {
			return loc, nil
		}
	}

	loc := fileinfo.ParseLocation(text)
	if loc.Kind() == fileinfo.LocationPath && !filepath.IsAbs(loc.Path()) {
		return fileinfo.Location{}, apperrors.NewUIError("navigate", "not an absolute path: "+text, nil)
	}
	return loc, nil
}
