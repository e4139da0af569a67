package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"lcars/internal/constants"
	"lcars/internal/keymanager"
)

// QuitConfirmDialog asks before closing the overlay. While it is open
// its key handler sits on top of the stack.
type QuitConfirmDialog struct {
	keyManager *keymanager.KeyManager
	handler    *keymanager.QuitKeyHandler
	dialog     dialog.Dialog
	callback   func(bool)
	parent     fyne.Window
	closed     bool
	sink       *KeySink
}

// NewQuitConfirmDialog creates a new quit confirmation dialog
func NewQuitConfirmDialog(keyManager *keymanager.KeyManager) *QuitConfirmDialog {
	return &QuitConfirmDialog{keyManager: keyManager}
}

// ShowDialog shows the dialog and reports the answer through callback
func (qcd *QuitConfirmDialog) ShowDialog(parent fyne.Window, callback func(bool)) {
	qcd.callback = callback
	qcd.parent = parent
	qcd.closed = false

	qcd.handler = keymanager.NewQuitKeyHandler(qcd)
	qcd.keyManager.PushHandler(qcd.handler)

	message := widget.NewLabel("Close " + constants.ApplicationTitle + "?")
	message.Alignment = fyne.TextAlignCenter
	qcd.sink = NewKeySink(message, qcd.keyManager, WithTabCapture(false))

	qcd.dialog = dialog.NewCustomConfirm("Quit", "Yes", "No", qcd.sink, qcd.finish, parent)
	qcd.dialog.Show()
	parent.Canvas().Focus(qcd.sink)
}

// ConfirmQuit closes the dialog with a yes answer
func (qcd *QuitConfirmDialog) ConfirmQuit() {
	qcd.finish(true)
	qcd.hide()
}

// CancelQuit closes the dialog with a no answer
func (qcd *QuitConfirmDialog) CancelQuit() {
	qcd.finish(false)
	qcd.hide()
}

// hide runs after finish; the dialog's own callback is then a no-op
func (qcd *QuitConfirmDialog) hide() {
	if qcd.dialog != nil {
		qcd.dialog.Hide()
	}
}

func (qcd *QuitConfirmDialog) finish(confirmed bool) {
	if qcd.closed {
		return
	}
	qcd.closed = true
	qcd.keyManager.RemoveHandler(qcd.handler)
	if qcd.callback != nil {
		qcd.callback(confirmed)
	}
}
