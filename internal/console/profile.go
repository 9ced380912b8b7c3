package console

import (
	"os"
	"strings"

	"github.com/charmbracelet/colorprofile"
	"github.com/muesli/termenv"
)

// ColorEnv overrides color detection. It takes the same values as
// COLORTERM plus "none".
const ColorEnv = "HUEKIT_COLOR"

var (
	isTTYGlobal bool

	// profile used for semantic tags and swatches
	preferredProfile termenv.Profile
)

func init() {
	if stat, err := os.Stdout.Stat(); err == nil {
		isTTYGlobal = (stat.Mode() & os.ModeCharDevice) != 0
	}
	preferredProfile = detectProfile(os.Getenv, func() termenv.Profile {
		return fromColorProfile(colorprofile.Detect(os.Stdout, os.Environ()))
	})
}

// GetPreferredProfile returns the detected or forced color profile.
func GetPreferredProfile() termenv.Profile {
	return preferredProfile
}

// SetPreferredProfile forces the color profile.
func SetPreferredProfile(p termenv.Profile) {
	preferredProfile = p
}

// SetTTY forces the TTY status and returns the previous value.
func SetTTY(isTTY bool) bool {
	old := isTTYGlobal
	isTTYGlobal = isTTY
	return old
}

// detectProfile picks a profile from HUEKIT_COLOR, NO_COLOR, COLORTERM and
// TERM in that order, then falls back to detect.
func detectProfile(getenv func(string) string, detect func() termenv.Profile) termenv.Profile {
	if p, ok := profileByName(getenv(ColorEnv)); ok {
		return p
	}
	if getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	if p, ok := profileByName(getenv("COLORTERM")); ok {
		return p
	}

	term := strings.ToLower(getenv("TERM"))
	switch {
	case strings.Contains(term, "direct"):
		return termenv.TrueColor
	case strings.Contains(term, "256color"):
		return termenv.ANSI256
	case strings.Contains(term, "16color"):
		return termenv.ANSI
	case term == "dumb":
		return termenv.Ascii
	}
	return detect()
}

func profileByName(name string) (termenv.Profile, bool) {
	switch strings.ToLower(name) {
	case "truecolor", "24bit":
		return termenv.TrueColor, true
	case "8bit", "256color", "256":
		return termenv.ANSI256, true
	case "4bit", "16color", "16", "8color", "3bit":
		return termenv.ANSI, true
	case "1bit", "2color", "mono", "none", "false", "0":
		return termenv.Ascii, true
	}
	return termenv.Ascii, false
}

func fromColorProfile(p colorprofile.Profile) termenv.Profile {
	switch p {
	case colorprofile.TrueColor:
		return termenv.TrueColor
	case colorprofile.ANSI256:
		return termenv.ANSI256
	case colorprofile.ANSI:
		return termenv.ANSI
	default:
		return termenv.Ascii
	}
}
