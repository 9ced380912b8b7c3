package console

import (
	"HueKit/internal/color"
	stdcolor "image/color"
	"io"
	"os"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/colorprofile"
)

// Stdout returns a writer that downsamples color sequences to what the
// terminal supports, stripping them entirely when output is redirected.
func Stdout() io.Writer {
	return colorprofile.NewWriter(os.Stdout, os.Environ())
}

// Swatch renders label centered on a block of the background color.
func Swatch(background, foreground *color.Value, width int, label string) string {
	style := lipgloss.NewStyle().
		Background(opaque(background)).
		Foreground(opaque(foreground)).
		Width(width).
		Align(lipgloss.Center)
	return style.Render(label)
}

// opaque drops alpha; terminals cannot blend cells.
func opaque(v *color.Value) stdcolor.Color {
	c := v.NRGBA()
	c.A = 255
	return c
}

// AutoSwatch renders label on the background using whichever of the
// candidates reads best. With no candidates, black or white is used.
func AutoSwatch(background *color.Value, width int, label string, candidates ...*color.Value) string {
	return Swatch(background, color.PickForeground(background, candidates...), width, label)
}
