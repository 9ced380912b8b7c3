package console

import (
	"HueKit/internal/color"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestSwatchLayout(t *testing.T) {
	got := ansi.Strip(Swatch(color.Black, color.White, 10, "Aa"))
	if got != "    Aa    " {
		t.Errorf("Swatch text = %q", got)
	}
}

func TestSwatchIgnoresAlpha(t *testing.T) {
	bg := color.MustNew("#336699")
	fg := color.MustNew("#ffcc00")
	opaque := Swatch(bg, fg, 8, "x")
	translucent := Swatch(bg.WithAlpha(0.2), fg.WithAlpha(0), 8, "x")
	if opaque != translucent {
		t.Errorf("alpha changed the rendering:\n%q\n%q", opaque, translucent)
	}
}
