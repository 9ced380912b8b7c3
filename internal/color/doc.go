// Package color parses CSS color expressions and derives WCAG metrics from them.
//
// # Formats
//
// Six textual forms are recognized, case-insensitively:
//
//	#rgb #rgba #rrggbb #rrggbbaa
//	rgb(r, g, b)        rgba(r, g, b, a)
//	hsl(h, s%, l%)      hsla(h, s%, l%, a)
//
// Every parsed color is stored as a set of [Primaries] holding both the RGB
// and the HSL description of the same color, plus alpha.
//
// # Strict and lenient surfaces
//
// [Parse] and [New] fail with a [*ParseError] on anything they cannot read.
// [HexToRGBA], [HSLAToRGBA] and [RGBAToHex] never fail: they report an
// absent result instead, for callers doing ad-hoc conversion.
//
// # Contrast
//
// [Value.Luminance] follows the WCAG 2.0 relative luminance definition and
// [ContrastRatio] the matching contrast ratio in [1, 21].
// [PickForeground] selects the most readable color out of a candidate list.
//
//	bg := color.MustNew("#336699")
//	fg := color.PickForeground(bg)            // black or white
//	ratio := color.ContrastRatio(fg, bg)
//	fmt.Println(fg.Hex(), color.Grade(ratio))
package color
