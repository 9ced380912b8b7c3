package color

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// RenderHex renders #rrggbb, or #rrggbbaa when withAlpha is set.
func RenderHex(p Primaries, withAlpha bool) string {
	var sb strings.Builder
	sb.WriteByte('#')
	for _, v := range []int{p.Red, p.Green, p.Blue} {
		fmt.Fprintf(&sb, "%02x", v)
	}
	if withAlpha {
		fmt.Fprintf(&sb, "%02x", int(math.Round(p.Alpha*255)))
	}
	return sb.String()
}

// RenderRGB renders rgb(r, g, b).
func RenderRGB(p Primaries) string {
	return fmt.Sprintf("rgb(%d, %d, %d)", p.Red, p.Green, p.Blue)
}

// RenderRGBA renders rgba(r, g, b, a).
func RenderRGBA(p Primaries) string {
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", p.Red, p.Green, p.Blue, formatAlpha(p.Alpha))
}

// RenderHSL renders hsl(h, s%, l%).
func RenderHSL(p Primaries) string {
	return fmt.Sprintf("hsl(%d, %s, %s)", p.Hue, percent(p.Saturation), percent(p.Lightness))
}

// RenderHSLA renders hsla(h, s%, l%, a).
func RenderHSLA(p Primaries) string {
	return fmt.Sprintf("hsla(%d, %s, %s, %s)", p.Hue, percent(p.Saturation), percent(p.Lightness), formatAlpha(p.Alpha))
}

// FormatAs renders p in the given format. Unknown formats fall back to hex.
func FormatAs(p Primaries, f Format) string {
	switch f {
	case FormatHexA:
		return RenderHex(p, true)
	case FormatRGB:
		return RenderRGB(p)
	case FormatRGBA:
		return RenderRGBA(p)
	case FormatHSL:
		return RenderHSL(p)
	case FormatHSLA:
		return RenderHSLA(p)
	default:
		return RenderHex(p, false)
	}
}

// percent renders a fraction as a percentage with at most two decimals.
func percent(v float64) string {
	return strconv.FormatFloat(math.Round(v*10000)/100, 'f', -1, 64) + "%"
}

func formatAlpha(a float64) string {
	return strconv.FormatFloat(a, 'g', -1, 64)
}
