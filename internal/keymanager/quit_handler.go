package keymanager

import (
	"unicode"

	"fyne.io/fyne/v2"
)

// QuitDialog is the confirmation dialog driven by QuitKeyHandler
type QuitDialog interface {
	ConfirmQuit()
	CancelQuit()
}

// QuitKeyHandler owns the keyboard while the quit confirmation is open.
// Every event is consumed so nothing reaches the browser underneath.
type QuitKeyHandler struct {
	dialog QuitDialog
}

// NewQuitKeyHandler creates a handler for d
func NewQuitKeyHandler(d QuitDialog) *QuitKeyHandler {
	return &QuitKeyHandler{dialog: d}
}

// GetName returns the name of this handler
func (qh *QuitKeyHandler) GetName() string {
	return "QuitConfirm"
}

func (qh *QuitKeyHandler) OnKeyDown(_ *fyne.KeyEvent) bool { return true }
func (qh *QuitKeyHandler) OnKeyUp(_ *fyne.KeyEvent) bool   { return true }

// OnTypedKey confirms on Enter and cancels on Escape
func (qh *QuitKeyHandler) OnTypedKey(ev *fyne.KeyEvent) bool {
	switch ev.Name {
	case fyne.KeyReturn, fyne.KeyEnter:
		qh.dialog.ConfirmQuit()
	case fyne.KeyEscape:
		qh.dialog.CancelQuit()
	}
	return true
}

// OnTypedRune confirms on y and cancels on n
func (qh *QuitKeyHandler) OnTypedRune(r rune) bool {
	switch unicode.ToLower(r) {
	case 'y':
		qh.dialog.ConfirmQuit()
	case 'n':
		qh.dialog.CancelQuit()
	}
	return true
}
