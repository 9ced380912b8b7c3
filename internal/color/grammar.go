package color

import (
	"regexp"
	"strconv"
	"strings"
)

const (
	numberPattern = `(\d+(?:\.\d+)?|\.\d+)`
	alphaPattern  = `(0?\.\d+|0|1(?:\.0+)?)`

	// alphaTolerance absorbs floating point noise above 1 in the saturation
	// and lightness percentages. Alpha above 1 never gets past alphaPattern.
	alphaTolerance = 0.00001
)

// grammar pairs a structural pattern with the sub-parser that reads its tokens.
type grammar struct {
	format  Format
	pattern *regexp.Regexp
	parse   func(groups []string, opts ParseOptions) parseResult
}

// grammars are evaluated in order; the first structural match wins.
var grammars = []grammar{
	{
		format:  FormatHSLA,
		pattern: regexp.MustCompile(`(?i)^hsla\( *(\d{1,3}) *, *` + numberPattern + `% *, *` + numberPattern + `% *, *` + alphaPattern + ` *\)$`),
		parse:   parseHSL,
	},
	{
		format:  FormatHSL,
		pattern: regexp.MustCompile(`(?i)^hsl\( *(\d{1,3}) *, *` + numberPattern + `% *, *` + numberPattern + `% *\)$`),
		parse:   parseHSL,
	},
	{
		format:  FormatRGBA,
		pattern: regexp.MustCompile(`(?i)^rgba\( *(\d{1,3}) *, *(\d{1,3}) *, *(\d{1,3}) *, *` + alphaPattern + ` *\)$`),
		parse:   parseRGB,
	},
	{
		format:  FormatRGB,
		pattern: regexp.MustCompile(`(?i)^rgb\( *(\d{1,3}) *, *(\d{1,3}) *, *(\d{1,3}) *\)$`),
		parse:   parseRGB,
	},
	{
		format:  FormatHex,
		pattern: regexp.MustCompile(`(?i)^#([0-9a-f]{3}|[0-9a-f]{4}|[0-9a-f]{6}|[0-9a-f]{8})$`),
		parse:   parseHex,
	},
}

// parseResult is either a complete set of primaries or the reason a
// matched expression was rejected.
type parseResult struct {
	primaries Primaries
	reason    string
}

func (r parseResult) ok() bool {
	return r.reason == ""
}

func accept(p Primaries) parseResult {
	return parseResult{primaries: p}
}

func reject(reason string) parseResult {
	return parseResult{reason: reason}
}

// inRange reports whether v lies in [a, b), whichever order a and b come in.
func inRange(v, a, b float64) bool {
	lo, hi := a, b
	if lo > hi {
		lo, hi = hi, lo
	}
	return v >= lo && v < hi
}

// fraction parses a [0, 1] value, accepting a small overshoot which is clamped away.
func fraction(token string, scale float64) (float64, bool) {
	v, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return 0, false
	}
	v /= scale
	if !inRange(v, 0, 1+alphaTolerance) {
		return 0, false
	}
	if v > 1 {
		v = 1
	}
	return v, true
}

func parseHSL(groups []string, _ ParseOptions) parseResult {
	hue, err := strconv.Atoi(groups[1])
	if err != nil || !inRange(float64(hue), 0, 360) {
		return reject("hue " + groups[1] + " is outside [0, 360)")
	}
	saturation, ok := fraction(groups[2], 100)
	if !ok {
		return reject("saturation " + groups[2] + "% is outside [0%, 100%]")
	}
	lightness, ok := fraction(groups[3], 100)
	if !ok {
		return reject("lightness " + groups[3] + "% is outside [0%, 100%]")
	}
	alpha := 1.0
	if len(groups) > 4 {
		if alpha, ok = fraction(groups[4], 1); !ok {
			return reject("alpha " + groups[4] + " is outside [0, 1]")
		}
	}

	red, green, blue := RGBFromHSL(hue, saturation, lightness)
	return accept(Primaries{
		Red: red, Green: green, Blue: blue,
		Hue: hue, Saturation: saturation, Lightness: lightness,
		Alpha: alpha,
	})
}

func parseRGB(groups []string, _ ParseOptions) parseResult {
	var channels [3]int
	for i, token := range groups[1:4] {
		v, err := strconv.Atoi(token)
		if err != nil || !inRange(float64(v), 0, 256) {
			return reject("channel " + token + " is outside [0, 256)")
		}
		channels[i] = v
	}
	alpha := 1.0
	if len(groups) > 4 {
		var ok bool
		if alpha, ok = fraction(groups[4], 1); !ok {
			return reject("alpha " + groups[4] + " is outside [0, 1]")
		}
	}

	hue, saturation, lightness := HSLFromRGB(channels[0], channels[1], channels[2])
	return accept(Primaries{
		Red: channels[0], Green: channels[1], Blue: channels[2],
		Hue: hue, Saturation: saturation, Lightness: lightness,
		Alpha: alpha,
	})
}

func parseHex(groups []string, opts ParseOptions) parseResult {
	digits := strings.ToLower(groups[1])

	var pairs []string
	switch len(digits) {
	case 3, 4:
		for _, d := range digits {
			pairs = append(pairs, strings.Repeat(string(d), 2))
		}
	case 6, 8:
		for i := 0; i < len(digits); i += 2 {
			pairs = append(pairs, digits[i:i+2])
		}
	default:
		return reject("expected 3, 4, 6 or 8 hexadecimal digits")
	}

	values := make([]int, len(pairs))
	for i, pair := range pairs {
		v, err := strconv.ParseUint(pair, 16, 8)
		if err != nil {
			return reject("invalid byte " + pair)
		}
		values[i] = int(v)
	}

	alpha := 1.0
	if len(values) == 4 {
		alpha = float64(values[3]) / 255
		if alpha == 0 && opts.LegacyZeroAlpha {
			alpha = 1
		}
	}

	hue, saturation, lightness := HSLFromRGB(values[0], values[1], values[2])
	return accept(Primaries{
		Red: values[0], Green: values[1], Blue: values[2],
		Hue: hue, Saturation: saturation, Lightness: lightness,
		Alpha: alpha,
	})
}
