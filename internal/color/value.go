package color

import (
	stdcolor "image/color"
	"math"
	"sync"
)

// luminanceThreshold is the channel value, in [0, 255], below which the
// linear segment of the sRGB transfer function applies.
// See https://www.w3.org/TR/WCAG20/#relativeluminancedef
const luminanceThreshold = 10

// LuminanceComponents holds the gamma-linearized channels of a color, each in [0, 1].
type LuminanceComponents struct {
	Red, Green, Blue float64
}

// Value is an immutable parsed color. Use pointers; a Value must not be copied.
type Value struct {
	primaries Primaries

	once       sync.Once
	components LuminanceComponents
}

var (
	Black = MustNew("#000")
	White = MustNew("#fff")
)

// New parses a CSS color expression into a Value.
func New(expression string) (*Value, error) {
	return NewWithOptions(expression, ParseOptions{})
}

// NewWithOptions is New with explicit parser options.
func NewWithOptions(expression string, opts ParseOptions) (*Value, error) {
	p, err := ParseWithOptions(expression, opts)
	if err != nil {
		return nil, err
	}
	return &Value{primaries: p}, nil
}

// MustNew is like New but panics if the expression cannot be parsed.
func MustNew(expression string) *Value {
	v, err := New(expression)
	if err != nil {
		panic(err)
	}
	return v
}

// FromPrimaries wraps an already consistent set of primaries.
func FromPrimaries(p Primaries) *Value {
	return &Value{primaries: p}
}

// WithAlpha returns a copy of v with a different alpha, clamped to [0, 1].
func (v *Value) WithAlpha(alpha float64) *Value {
	p := v.primaries
	p.Alpha = math.Max(0, math.Min(1, alpha))
	return FromPrimaries(p)
}

func (v *Value) Primaries() Primaries { return v.primaries }

func (v *Value) Red() int            { return v.primaries.Red }
func (v *Value) Green() int          { return v.primaries.Green }
func (v *Value) Blue() int           { return v.primaries.Blue }
func (v *Value) Hue() int            { return v.primaries.Hue }
func (v *Value) Saturation() float64 { return v.primaries.Saturation }
func (v *Value) Lightness() float64  { return v.primaries.Lightness }
func (v *Value) Alpha() float64      { return v.primaries.Alpha }

func (v *Value) Hex() string  { return RenderHex(v.primaries, false) }
func (v *Value) HexA() string { return RenderHex(v.primaries, true) }
func (v *Value) RGB() string  { return RenderRGB(v.primaries) }
func (v *Value) RGBA() string { return RenderRGBA(v.primaries) }
func (v *Value) HSL() string  { return RenderHSL(v.primaries) }
func (v *Value) HSLA() string { return RenderHSLA(v.primaries) }

// Format renders the color in any of the supported formats.
func (v *Value) Format(f Format) string {
	return FormatAs(v.primaries, f)
}

// String returns the hexadecimal form, with alpha only when the color is translucent.
func (v *Value) String() string {
	if v.primaries.Alpha < 1 {
		return v.HexA()
	}
	return v.Hex()
}

// NRGBA converts the color for use with image/color consumers.
func (v *Value) NRGBA() stdcolor.NRGBA {
	return stdcolor.NRGBA{
		R: uint8(v.primaries.Red),
		G: uint8(v.primaries.Green),
		B: uint8(v.primaries.Blue),
		A: uint8(math.Round(v.primaries.Alpha * 255)),
	}
}

// LuminanceComponents returns the linearized channels, computing them on first use.
func (v *Value) LuminanceComponents() LuminanceComponents {
	v.once.Do(func() {
		v.components = LuminanceComponents{
			Red:   linearize(v.primaries.Red),
			Green: linearize(v.primaries.Green),
			Blue:  linearize(v.primaries.Blue),
		}
	})
	return v.components
}

// Luminance returns the WCAG relative luminance, from 0 for black to 1 for white.
func (v *Value) Luminance() float64 {
	c := v.LuminanceComponents()
	return 0.2126*c.Red + 0.7152*c.Green + 0.0722*c.Blue
}

func linearize(channel int) float64 {
	normalized := float64(channel) / 255
	if channel < luminanceThreshold {
		return normalized / 12.92
	}
	return math.Pow((normalized+0.055)/1.055, 2.4)
}
