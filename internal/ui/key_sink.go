package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"

	"lcars/internal/keymanager"
)

// KeySink makes a non-focusable object (the browser list, a dialog body)
// focusable and hands its keyboard events to the key manager. Tab is
// captured by default so it never moves focus out of the list.
type KeySink struct {
	widget.BaseWidget
	Content   fyne.CanvasObject
	km        *keymanager.KeyManager
	acceptTab bool
}

// KeySinkOption customizes a KeySink
type KeySinkOption func(*KeySink)

// WithTabCapture controls whether Tab is delivered to the key manager
func WithTabCapture(on bool) KeySinkOption { return func(k *KeySink) { k.acceptTab = on } }

// NewKeySink wraps content
func NewKeySink(content fyne.CanvasObject, km *keymanager.KeyManager, opts ...KeySinkOption) *KeySink {
	k := &KeySink{Content: content, km: km, acceptTab: true}
	for _, o := range opts {
		o(k)
	}
	k.ExtendBaseWidget(k)
	return k
}

func (k *KeySink) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(k.Content)
}

func (k *KeySink) FocusGained() {}
func (k *KeySink) FocusLost()   {}

func (k *KeySink) TypedKey(ev *fyne.KeyEvent) {
	if k.km != nil {
		k.km.HandleTypedKey(ev)
	}
}

func (k *KeySink) TypedRune(r rune) {
	if k.km != nil {
		k.km.HandleTypedRune(r)
	}
}

// KeyDown and KeyUp arrive only on desktop drivers
func (k *KeySink) KeyDown(ev *fyne.KeyEvent) {
	if k.km != nil {
		k.km.HandleKeyDown(ev)
	}
}

func (k *KeySink) KeyUp(ev *fyne.KeyEvent) {
	if k.km != nil {
		k.km.HandleKeyUp(ev)
	}
}

func (k *KeySink) AcceptsTab() bool { return k.acceptTab }
