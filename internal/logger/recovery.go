package logger

import (
	"HueKit/internal/console"
	"context"

	tea "charm.land/bubbletea/v2"
)

// Recover traps panics and reports them through FatalWithStackSkip.
// Usage: defer logger.Recover(ctx)
func Recover(ctx context.Context) {
	if r := recover(); r != nil {
		handlePanic(ctx, r, "panic: %v")
	}
}

// RecoverTUI wraps a tea.Cmd so a panic inside it restores the terminal before being reported.
func RecoverTUI(ctx context.Context, cmd tea.Cmd) tea.Cmd {
	if cmd == nil {
		return nil
	}
	return func() tea.Msg {
		defer func() {
			if r := recover(); r != nil {
				handlePanic(ctx, r, "TUI panic: %v")
			}
		}()
		return cmd()
	}
}

func handlePanic(ctx context.Context, r any, format string) {
	console.AbortTUI()

	// Already reported
	if _, ok := r.(FatalError); ok {
		return
	}
	// Skip handlePanic, the deferred closure and runtime.gopanic
	FatalWithStackSkip(ctx, 3, format, r)
}
