package color

import "strings"

// The conversions below never fail loudly: any expression the strict parser
// rejects yields ("", false).

// HexToRGBA renders a hexadecimal color as opaque rgba(). Any alpha digits
// in the input are ignored. The 0x prefix and a missing # are tolerated.
func HexToRGBA(hex string) (string, bool) {
	return HexToRGBAWithAlpha(hex, 1)
}

// HexToRGBAWithAlpha is HexToRGBA with the given alpha instead of 1.
func HexToRGBAWithAlpha(hex string, alpha float64) (string, bool) {
	v, err := New(normalizeHex(hex))
	if err != nil {
		return "", false
	}
	return v.WithAlpha(alpha).RGBA(), true
}

// HSLAToRGBA renders any supported color expression as rgba().
func HSLAToRGBA(hsla string) (string, bool) {
	v, err := New(hsla)
	if err != nil {
		return "", false
	}
	return v.RGBA(), true
}

// RGBAToHex renders any supported color expression as hexadecimal with alpha.
func RGBAToHex(rgba string) (string, bool) {
	v, err := New(normalizeHex(rgba))
	if err != nil {
		return "", false
	}
	return v.HexA(), true
}

// normalizeHex rewrites 0xRRGGBB and bare RRGGBB into #RRGGBB. Anything else
// is returned unchanged.
func normalizeHex(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		return s
	}
	if len(s) > 2 && (s[:2] == "0x" || s[:2] == "0X") {
		return "#" + s[2:]
	}
	if s != "" && isHexDigits(s) {
		return "#" + s
	}
	return s
}

func isHexDigits(s string) bool {
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}
