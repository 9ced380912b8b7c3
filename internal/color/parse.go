package color

import "strings"

// ParseOptions tunes the strict parser.
type ParseOptions struct {
	// LegacyZeroAlpha reads a hexadecimal alpha byte of 00 as fully opaque
	// instead of fully transparent.
	LegacyZeroAlpha bool
}

// Parse converts a CSS color expression into its primaries.
func Parse(expression string) (Primaries, error) {
	return ParseWithOptions(expression, ParseOptions{})
}

// ParseWithOptions is Parse with explicit options.
func ParseWithOptions(expression string, opts ParseOptions) (Primaries, error) {
	trimmed := strings.TrimSpace(expression)
	g, groups, found := match(trimmed)
	if !found {
		return Primaries{}, &ParseError{Expression: expression, Reason: "no grammar matches", Err: ErrUnrecognized}
	}

	result := g.parse(groups, opts)
	if !result.ok() {
		return Primaries{}, &ParseError{
			Expression: expression,
			Format:     detected(g, groups),
			Detected:   true,
			Reason:     result.reason,
			Err:        ErrOutOfRange,
		}
	}
	return result.primaries, nil
}

// DetectFormat reports which grammar an expression structurally matches,
// without validating its values.
func DetectFormat(expression string) (Format, bool) {
	g, groups, found := match(strings.TrimSpace(expression))
	if !found {
		return 0, false
	}
	return detected(g, groups), true
}

func match(expression string) (grammar, []string, bool) {
	for _, g := range grammars {
		if groups := g.pattern.FindStringSubmatch(expression); groups != nil {
			return g, groups, true
		}
	}
	return grammar{}, nil, false
}

// detected refines the hex grammar into hex or hexa by digit count.
func detected(g grammar, groups []string) Format {
	if g.format == FormatHex {
		if n := len(groups[1]); n == 4 || n == 8 {
			return FormatHexA
		}
	}
	return g.format
}
