package color

import "math"

// RGBFromHSL returns the red, green and blue channels of an HSL color.
// See https://en.wikipedia.org/wiki/HSL_and_HSV#HSL_to_RGB_alternative
func RGBFromHSL(hue int, saturation, lightness float64) (red, green, blue int) {
	scale := saturation * math.Min(lightness, 1-lightness)
	channel := func(shift float64) int {
		movement := math.Mod(shift+float64(hue)/30, 12)
		position := math.Min(movement-3, 9-movement)
		bounded := math.Max(-1, math.Min(1, position))
		return int(math.Round((lightness - scale*bounded) * 255))
	}
	return channel(0), channel(8), channel(4)
}

// HSLFromRGB returns the hue, saturation and lightness of an RGB color.
// Achromatic colors get a hue of 0.
// See https://en.wikipedia.org/wiki/HSL_and_HSV#From_RGB
func HSLFromRGB(red, green, blue int) (hue int, saturation, lightness float64) {
	r, g, b := float64(red)/255, float64(green)/255, float64(blue)/255
	value := math.Max(r, math.Max(g, b))
	minor := math.Min(r, math.Min(g, b))
	chroma := value - minor
	lightness = (value + minor) / 2

	var h float64
	switch value {
	case minor:
		h = 0
	case r:
		h = 360 + 60*(g-b)/chroma
	case g:
		h = 120 + 60*(b-r)/chroma
	case b:
		h = 240 + 60*(r-g)/chroma
	}
	hue = int(math.Round(math.Mod(h, 360)))
	if hue == 360 {
		hue = 0
	}

	if lightness == 0 || lightness == 1 {
		saturation = 0
	} else {
		saturation = chroma / (1 - math.Abs(2*lightness-1))
	}
	return hue, saturation, lightness
}
