package console

import (
	"sync"
	"sync/atomic"
)

var (
	tuiEnabled atomic.Bool

	shutdownMu sync.Mutex
	shutdown   func()
)

// IsTUIEnabled reports whether a full-screen program owns the terminal.
func IsTUIEnabled() bool {
	return tuiEnabled.Load()
}

// BeginTUI marks a full-screen program as running until the returned
// function is called. restore, if not nil, is run by AbortTUI.
func BeginTUI(restore func()) (end func()) {
	shutdownMu.Lock()
	shutdown = restore
	shutdownMu.Unlock()
	tuiEnabled.Store(true)

	return func() {
		shutdownMu.Lock()
		shutdown = nil
		shutdownMu.Unlock()
		tuiEnabled.Store(false)
	}
}

// AbortTUI restores the terminal after a panic inside a full-screen program.
func AbortTUI() {
	shutdownMu.Lock()
	restore := shutdown
	shutdown = nil
	shutdownMu.Unlock()

	if restore != nil {
		restore()
	}
	tuiEnabled.Store(false)
}
