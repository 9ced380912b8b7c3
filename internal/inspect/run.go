package inspect

import (
	"HueKit/internal/config"
	"HueKit/internal/console"
	"HueKit/internal/logger"
	"context"
	"errors"
	"fmt"

	tea "charm.land/bubbletea/v2"
)

// ErrNotInteractive is returned when stdin or stdout is not a terminal.
var ErrNotInteractive = errors.New("the inspector needs an interactive terminal")

// Run starts the inspector on the terminal and blocks until the user quits.
// It returns the last valid color in the selected format, or "" if the
// input did not hold one.
func Run(ctx context.Context, initial string, conf config.AppConfig) (result string, err error) {
	if !console.IsInteractive() {
		return "", ErrNotInteractive
	}
	p := tea.NewProgram(NewModel(ctx, initial, conf), tea.WithContext(ctx))

	end := console.BeginTUI(func() {
		p.Kill()
		// Reset terminal colors so they do not bleed into the shell prompt
		fmt.Print("\x1b[0m\n")
	})
	defer end()
	defer logger.Recover(ctx)

	final, err := p.Run()
	fmt.Print("\x1b[0m")
	if err != nil {
		return "", fmt.Errorf("inspector: %w", err)
	}
	if m, ok := final.(Model); ok {
		return m.Result(), nil
	}
	return "", nil
}
