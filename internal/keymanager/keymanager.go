package keymanager

import (
	"sync"

	"fyne.io/fyne/v2"
	"go.uber.org/zap"
)

// KeyHandler receives keyboard events while it is on top of the stack
type KeyHandler interface {
	// OnKeyDown handles key press events
	OnKeyDown(ev *fyne.KeyEvent) bool // returns true if handled

	// OnKeyUp handles key release events
	OnKeyUp(ev *fyne.KeyEvent) bool

	// OnTypedKey handles typed key events
	OnTypedKey(ev *fyne.KeyEvent) bool

	// OnTypedRune handles character input
	OnTypedRune(r rune) bool

	// GetName returns a descriptive name for this handler (for debugging)
	GetName() string
}

// KeyManager routes events to the handler on top of a stack. Views push
// a handler while they own the keyboard and pop it when they give it back.
type KeyManager struct {
	handlers []KeyHandler
	mutex    sync.RWMutex
	logger   *zap.Logger
}

// NewKeyManager creates an empty key manager
func NewKeyManager(logger *zap.Logger) *KeyManager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &KeyManager{logger: logger}
}

// PushHandler adds a handler to the top of the stack
func (km *KeyManager) PushHandler(handler KeyHandler) {
	km.mutex.Lock()
	km.handlers = append(km.handlers, handler)
	size := len(km.handlers)
	km.mutex.Unlock()

	km.logger.Debug("pushed key handler", zap.String("handler", handler.GetName()), zap.Int("depth", size))
}

// PopHandler removes and returns the top handler, or nil on an empty stack
func (km *KeyManager) PopHandler() KeyHandler {
	km.mutex.Lock()
	if len(km.handlers) == 0 {
		km.mutex.Unlock()
		km.logger.Debug("pop on empty key handler stack")
		return nil
	}
	handler := km.handlers[len(km.handlers)-1]
	km.handlers = km.handlers[:len(km.handlers)-1]
	size := len(km.handlers)
	km.mutex.Unlock()

	km.logger.Debug("popped key handler", zap.String("handler", handler.GetName()), zap.Int("depth", size))
	return handler
}

// RemoveHandler drops handler wherever it sits in the stack. It reports
// whether the handler was found.
func (km *KeyManager) RemoveHandler(handler KeyHandler) bool {
	km.mutex.Lock()
	defer km.mutex.Unlock()

	for i := len(km.handlers) - 1; i >= 0; i-- {
		if km.handlers[i] == handler {
			km.handlers = append(km.handlers[:i], km.handlers[i+1:]...)
			return true
		}
	}
	return false
}

// GetCurrentHandler returns the top handler without removing it
func (km *KeyManager) GetCurrentHandler() KeyHandler {
	km.mutex.RLock()
	defer km.mutex.RUnlock()

	if len(km.handlers) == 0 {
		return nil
	}
	return km.handlers[len(km.handlers)-1]
}

// HandleKeyDown routes key down events to the current top handler
func (km *KeyManager) HandleKeyDown(ev *fyne.KeyEvent) {
	km.dispatch("KeyDown", string(ev.Name), func(h KeyHandler) bool { return h.OnKeyDown(ev) })
}

// HandleKeyUp routes key up events to the current top handler
func (km *KeyManager) HandleKeyUp(ev *fyne.KeyEvent) {
	km.dispatch("KeyUp", string(ev.Name), func(h KeyHandler) bool { return h.OnKeyUp(ev) })
}

// HandleTypedKey routes typed key events to the current top handler
func (km *KeyManager) HandleTypedKey(ev *fyne.KeyEvent) {
	km.dispatch("TypedKey", string(ev.Name), func(h KeyHandler) bool { return h.OnTypedKey(ev) })
}

// HandleTypedRune routes typed runes to the current top handler
func (km *KeyManager) HandleTypedRune(r rune) {
	km.dispatch("TypedRune", string(r), func(h KeyHandler) bool { return h.OnTypedRune(r) })
}

func (km *KeyManager) dispatch(event, key string, fn func(KeyHandler) bool) {
	current := km.GetCurrentHandler()
	if current == nil {
		km.logger.Debug("no key handler", zap.String("event", event), zap.String("key", key))
		return
	}
	handled := fn(current)
	km.logger.Debug("key event",
		zap.String("event", event),
		zap.String("key", key),
		zap.String("handler", current.GetName()),
		zap.Bool("handled", handled))
}

// GetStackSize returns the current number of handlers in the stack
func (km *KeyManager) GetStackSize() int {
	km.mutex.RLock()
	defer km.mutex.RUnlock()
	return len(km.handlers)
}

// ListHandlers returns the names of all handlers, bottom first
func (km *KeyManager) ListHandlers() []string {
	km.mutex.RLock()
	defer km.mutex.RUnlock()

	names := make([]string, len(km.handlers))
	for i, handler := range km.handlers {
		names[i] = handler.GetName()
	}
	return names
}
