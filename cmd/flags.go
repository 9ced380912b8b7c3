package cmd

import (
	"HueKit/internal/version"
	"sync"

	"github.com/spf13/pflag"
)

// Flags returns the flag set used for argument validation and help.
// pflag does not parse the command line itself, since commands are grouped
// and consume their own arguments; it only knows which names exist.
var Flags = sync.OnceValue(func() *pflag.FlagSet {
	fs := pflag.NewFlagSet(version.CommandName, pflag.ContinueOnError)

	// Modifiers
	fs.BoolP("verbose", "v", false, "Verbose output")
	fs.BoolP("debug", "x", false, "Debug output")
	fs.BoolP("copy", "c", false, "Copy output to the clipboard")
	fs.BoolP("gui", "g", false, "Use the interactive inspector")

	// Colors
	fs.StringP("info", "i", "", "Show every form of a color")
	fs.StringP("to", "t", "", "Convert colors to a format")
	fs.String("hex-to-rgba", "", "Convert hex to rgba, quietly skipping invalid input")
	fs.String("hsla-to-rgba", "", "Convert hsl(a) to rgba, quietly skipping invalid input")
	fs.String("rgba-to-hex", "", "Convert rgb(a) to hex, quietly skipping invalid input")

	// Contrast
	fs.StringP("contrast", "C", "", "Contrast ratio of two colors")
	fs.StringP("foreground", "F", "", "Pick a readable foreground")

	// Palettes
	fs.StringP("palette", "p", "", "Audit a palette")
	fs.Bool("palette-list", false, "List palettes")
	fs.String("palette-export", "", "Print a palette in another format")

	// Configuration
	fs.Bool("config-show", false, "Show configuration")
	fs.String("config-set", "", "Set a configuration option")

	// Interactive
	fs.StringP("inspect", "I", "", "Start the interactive inspector")

	fs.BoolP("help", "h", false, "Show help")
	fs.BoolP("version", "V", false, "Show version")
	return fs
})

// lookupFlag resolves "-x" or "--name" against the known flags.
func lookupFlag(arg string) *pflag.Flag {
	fs := Flags()
	switch {
	case len(arg) > 2 && arg[:2] == "--":
		return fs.Lookup(arg[2:])
	case len(arg) == 2 && arg[0] == '-':
		return fs.ShorthandLookup(arg[1:])
	}
	return nil
}
