package keymanager

import (
	"fyne.io/fyne/v2"

	"lcars/internal/constants"
)

// BrowserActions is what the browser key handler drives
type BrowserActions interface {
	// Cursor management
	CursorIndex() int
	SetCursor(index int)
	ItemCount() int

	// Navigation
	Activate(index int)
	Up()
	Home()
	Refresh()

	// Window management
	Quit()
}

// BrowserKeyHandler handles keyboard events for the browser list
type BrowserKeyHandler struct {
	actions   BrowserActions
	modifiers func() fyne.KeyModifier
}

// NewBrowserKeyHandler creates a handler. modifiers reports the held
// modifier keys; nil means none are ever held.
func NewBrowserKeyHandler(actions BrowserActions, modifiers func() fyne.KeyModifier) *BrowserKeyHandler {
	if modifiers == nil {
		modifiers = func() fyne.KeyModifier { return 0 }
	}
	return &BrowserKeyHandler{actions: actions, modifiers: modifiers}
}

// GetName returns the name of this handler
func (bh *BrowserKeyHandler) GetName() string {
	return "Browser"
}

// OnKeyDown handles shortcuts that need a held modifier
func (bh *BrowserKeyHandler) OnKeyDown(ev *fyne.KeyEvent) bool {
	if ev.Name == fyne.KeyQ && bh.modifiers()&fyne.KeyModifierShortcutDefault != 0 {
		bh.actions.Quit()
		return true
	}
	return false
}

// OnKeyUp handles key release events
func (bh *BrowserKeyHandler) OnKeyUp(_ *fyne.KeyEvent) bool {
	return false
}

// OnTypedRune handles character input
func (bh *BrowserKeyHandler) OnTypedRune(r rune) bool {
	switch r {
	case '~':
		bh.actions.Home()
		return true
	case '<':
		bh.moveTo(0)
		return true
	case '>':
		bh.moveTo(bh.actions.ItemCount() - 1)
		return true
	}
	return false
}

// OnTypedKey handles typed key events
func (bh *BrowserKeyHandler) OnTypedKey(ev *fyne.KeyEvent) bool {
	shift := bh.modifiers()&fyne.KeyModifierShift != 0

	switch ev.Name {
	case fyne.KeyUp:
		step := 1
		if shift {
			step = constants.FastNavigationStep
		}
		bh.moveTo(bh.actions.CursorIndex() - step)
		return true

	case fyne.KeyDown:
		step := 1
		if shift {
			step = constants.FastNavigationStep
		}
		bh.moveTo(bh.actions.CursorIndex() + step)
		return true

	case fyne.KeyHome:
		bh.moveTo(0)
		return true

	case fyne.KeyEnd:
		bh.moveTo(bh.actions.ItemCount() - 1)
		return true

	case fyne.KeyReturn, fyne.KeyEnter:
		idx := bh.actions.CursorIndex()
		if idx >= 0 && idx < bh.actions.ItemCount() {
			bh.actions.Activate(idx)
		}
		return true

	case fyne.KeyBackspace:
		bh.actions.Up()
		return true

	case fyne.KeyF5:
		bh.actions.Refresh()
		return true
	}

	return false
}

// moveTo clamps index into the list and moves the cursor there
func (bh *BrowserKeyHandler) moveTo(index int) {
	count := bh.actions.ItemCount()
	if count == 0 {
		return
	}
	if index < 0 {
		index = 0
	}
	if index >= count {
		index = count - 1
	}
	if index != bh.actions.CursorIndex() {
		bh.actions.SetCursor(index)
	}
}
