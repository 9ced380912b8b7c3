package console

import (
	"HueKit/internal/color"
	"strings"
)

type namedCode struct {
	fg, bg string
}

var namedColors = map[string]namedCode{
	"black":   {CodeBlack, CodeBlackBg},
	"red":     {CodeRed, CodeRedBg},
	"green":   {CodeGreen, CodeGreenBg},
	"yellow":  {CodeYellow, CodeYellowBg},
	"blue":    {CodeBlue, CodeBlueBg},
	"magenta": {CodeMagenta, CodeMagentaBg},
	"cyan":    {CodeCyan, CodeCyanBg},
	"white":   {CodeWhite, CodeWhiteBg},
}

var flagCodes = map[rune]string{
	'b': CodeBold,
	'd': CodeDim,
	'i': CodeItalic,
	'u': CodeUnderline,
	'l': CodeBlink,
	'r': CodeReverse,
	's': CodeStrikethrough,
}

// parseStyleCodeToANSI parses the fg:bg:flags format and returns ANSI codes.
// Colors are either one of the eight ANSI names or a hexadecimal color,
// which is downsampled to the preferred profile.
func parseStyleCodeToANSI(content string) string {
	if content == "-" || content == "reset" {
		return CodeReset
	}

	parts := strings.SplitN(content, ":", 3)
	var codes strings.Builder
	codes.WriteString(colorCode(parts[0], false))
	if len(parts) > 1 {
		codes.WriteString(colorCode(parts[1], true))
	}
	if len(parts) > 2 {
		for _, f := range parts[2] {
			if code, ok := flagCodes[f]; ok {
				codes.WriteString(code)
			}
		}
	}
	return codes.String()
}

func colorCode(name string, background bool) string {
	name = strings.ToLower(name)
	if name == "" || name == "-" {
		return ""
	}
	if named, ok := namedColors[name]; ok {
		if background {
			return named.bg
		}
		return named.fg
	}

	v, err := color.New(name)
	if err != nil {
		return ""
	}
	c := preferredProfile.Color(v.Hex())
	if c == nil {
		return ""
	}
	return wrapSequence(c.Sequence(background))
}

// wrapSequence ensures a color sequence part is wrapped in CSI delimiters
func wrapSequence(seq string) string {
	if seq == "" {
		return ""
	}
	if strings.HasPrefix(seq, "\x1b[") {
		return seq
	}
	return "\033[" + seq + "m"
}
