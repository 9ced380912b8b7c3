package color

import (
	"fmt"
	"strings"
)

// Primaries is the canonical description of a color. RGB and HSL always
// describe the same color; either triple can be regenerated from the other.
type Primaries struct {
	Red, Green, Blue int // [0, 255]

	Hue        int     // degrees in [0, 360), 0 when achromatic
	Saturation float64 // [0, 1]
	Lightness  float64 // [0, 1]

	Alpha float64 // [0, 1]
}

// Achromatic reports whether the color has no hue (R=G=B).
func (p Primaries) Achromatic() bool {
	return p.Red == p.Green && p.Green == p.Blue
}

// Format identifies one of the textual color forms.
type Format int

const (
	FormatHex Format = iota
	FormatHexA
	FormatRGB
	FormatRGBA
	FormatHSL
	FormatHSLA
)

var formatNames = map[Format]string{
	FormatHex:  "hex",
	FormatHexA: "hexa",
	FormatRGB:  "rgb",
	FormatRGBA: "rgba",
	FormatHSL:  "hsl",
	FormatHSLA: "hsla",
}

// Formats lists every format in display order.
var Formats = []Format{FormatHex, FormatHexA, FormatRGB, FormatRGBA, FormatHSL, FormatHSLA}

func (f Format) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// HasAlpha reports whether the format carries an alpha channel.
func (f Format) HasAlpha() bool {
	return f == FormatHexA || f == FormatRGBA || f == FormatHSLA
}

// ParseFormat resolves a format name such as "rgba" or "HEXA".
func ParseFormat(name string) (Format, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for f, n := range formatNames {
		if n == name {
			return f, nil
		}
	}
	return 0, fmt.Errorf("unknown color format %q", name)
}
