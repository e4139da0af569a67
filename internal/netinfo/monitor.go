package netinfo

import (
	"context"
	"sync"
	"time"

	"lcars/internal/constants"
)

// Monitor re-runs a connectivity check on a fixed interval and hands
// each snapshot to a callback. It runs from Start until Stop or until
// the start context is cancelled.
type Monitor struct {
	checker  *Checker
	interval time.Duration
	publish  func(Snapshot)

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewMonitor creates a stopped monitor. A non-positive interval uses the
// default of ten seconds.
func NewMonitor(checker *Checker, interval time.Duration, publish func(Snapshot)) *Monitor {
	if interval <= 0 {
		interval = constants.DefaultCheckInterval
	}
	return &Monitor{
		checker:  checker,
		interval: interval,
		publish:  publish,
	}
}

// Start checks immediately and then on every tick. Calling Start on a
// running monitor does nothing.
func (m *Monitor) Start(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	m.cancel = cancel
	m.done = done

	go func() {
		defer close(done)
		ticker := time.NewTicker(m.interval)
		defer ticker.Stop()

		m.check(ctx)
		for {
			select {
			case <-ticker.C:
				m.check(ctx)
			case <-ctx.Done():
				return
			}
		}
	}()
}

// check publishes one result unless the monitor was stopped meanwhile
func (m *Monitor) check(ctx context.Context) {
	s := m.checker.CheckConnection(ctx)
	if ctx.Err() == nil {
		m.publish(s)
	}
}

// Stop ends the periodic check, cancelling an in-flight check, and
// waits for the loop to exit. It is safe to call more than once.
func (m *Monitor) Stop() {
	m.mu.Lock()
	cancel, done := m.cancel, m.done
	m.cancel, m.done = nil, nil
	m.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

// Running reports whether the monitor has been started and not stopped
func (m *Monitor) Running() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cancel != nil
}
