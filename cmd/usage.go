package cmd

import (
	"HueKit/internal/console"
	"HueKit/internal/version"
	"fmt"
	"io"
	"strings"
)

// PrintHelp writes usage information to w.
// If target is empty, prints global usage.
// If target is specified, prints usage for that specific flag/command.
func PrintHelp(w io.Writer, target string) {
	console.Fprintln(w, GetUsage(target))
}

// GetUsage returns usage information as a tagged string.
// If target is empty, returns global usage.
// If target is specified, returns usage for that specific flag/command.
func GetUsage(target string) string {
	var sb strings.Builder
	printStr := func(s string) {
		sb.WriteString(s + "\n")
	}

	appName := version.ApplicationName
	appCmd := version.CommandName

	if target == "" {
		printStr(fmt.Sprintf("Usage: {{_UsageCommand_}}%s{{|-|}} [{{_UsageCommand_}}<Flags>{{|-|}}] [{{_UsageCommand_}}<Command>{{|-|}}] ...", appCmd))
		printStr("")
		printStr(fmt.Sprintf("{{_ApplicationName_}}%s{{|-|}} [{{_Version_}}%s{{|-|}}]", appName, version.Version))
		printStr("Parse, convert and compare CSS colors.")
		printStr("")
		printStr("You may include multiple commands on the command-line, and they will be executed in")
		printStr("the order given, only stopping on an error. Any flags included only apply to the")
		printStr("following command, and get reset before the next command.")
		printStr("")
		printStr("A {{_UsageColor_}}<color>{{|-|}} is any of '{{_UsageColor_}}#rgb{{|-|}}', '{{_UsageColor_}}#rgba{{|-|}}', '{{_UsageColor_}}#rrggbb{{|-|}}', '{{_UsageColor_}}#rrggbbaa{{|-|}}',")
		printStr("'{{_UsageColor_}}rgb(r, g, b){{|-|}}', '{{_UsageColor_}}rgba(r, g, b, a){{|-|}}', '{{_UsageColor_}}hsl(h, s%, l%){{|-|}}' or '{{_UsageColor_}}hsla(h, s%, l%, a){{|-|}}'.")
		printStr("Quote it so the shell does not treat '{{_UsageColor_}}#{{|-|}}' or the parentheses specially.")
		printStr("")
		printStr("Flags:")
		printStr("")
	}

	showAll := target == ""

	match := func(opts ...string) bool {
		if showAll {
			return true
		}
		for _, o := range opts {
			if o == target {
				return true
			}
		}
		return false
	}

	// Flags
	if match("-v", "--verbose") {
		printStr("{{_UsageCommand_}}-v --verbose{{|-|}}")
		printStr("	Verbose")
	}
	if match("-x", "--debug") {
		printStr("{{_UsageCommand_}}-x --debug{{|-|}}")
		printStr("	Debug")
	}
	if match("-c", "--copy") {
		printStr("{{_UsageCommand_}}-c --copy{{|-|}}")
		printStr("	Also copy the output of the command to the clipboard")
	}
	if match("-g", "--gui") {
		printStr("{{_UsageCommand_}}-g --gui{{|-|}}")
		printStr("	Open the first color of the command in the interactive inspector")
	}

	if showAll {
		printStr("")
		printStr("Color Commands:")
		printStr("")
	}

	if match("-i", "--info") {
		printStr("{{_UsageCommand_}}-i --info{{|-|}} {{_UsageColor_}}<color>{{|-|}} [{{_UsageColor_}}<color>{{|-|}} ...]")
		printStr("	Show a swatch, every format, the primaries and the luminance of each color")
	}
	if match("-t", "--to") {
		printStr("{{_UsageCommand_}}-t --to{{|-|}} {{_UsageFormat_}}<format>{{|-|}} {{_UsageColor_}}<color>{{|-|}} [{{_UsageColor_}}<color>{{|-|}} ...]")
		printStr("	Convert each color to {{_UsageFormat_}}<format>{{|-|}}, one of '{{_UsageFormat_}}hex{{|-|}}', '{{_UsageFormat_}}hexa{{|-|}}', '{{_UsageFormat_}}rgb{{|-|}}', '{{_UsageFormat_}}rgba{{|-|}}', '{{_UsageFormat_}}hsl{{|-|}}' or '{{_UsageFormat_}}hsla{{|-|}}'")
	}
	if match("--hex-to-rgba", "--hsla-to-rgba", "--rgba-to-hex") {
		printStr("{{_UsageCommand_}}--hex-to-rgba{{|-|}} {{_UsageColor_}}<color>{{|-|}} [{{_UsageColor_}}<color>{{|-|}} ...]")
		printStr("{{_UsageCommand_}}--hsla-to-rgba{{|-|}} {{_UsageColor_}}<color>{{|-|}} [{{_UsageColor_}}<color>{{|-|}} ...]")
		printStr("{{_UsageCommand_}}--rgba-to-hex{{|-|}} {{_UsageColor_}}<color>{{|-|}} [{{_UsageColor_}}<color>{{|-|}} ...]")
		printStr("	Convert leniently. Invalid input prints nothing and only logs a warning.")
	}

	if showAll {
		printStr("")
		printStr("Contrast Commands:")
		printStr("")
	}

	if match("-C", "--contrast") {
		printStr("{{_UsageCommand_}}-C --contrast{{|-|}} {{_UsageColor_}}<color>{{|-|}} {{_UsageColor_}}<color>{{|-|}}")
		printStr("	Show the WCAG contrast ratio and conformance level of two colors")
	}
	if match("-F", "--foreground") {
		printStr("{{_UsageCommand_}}-F --foreground{{|-|}} {{_UsageColor_}}<background>{{|-|}} [{{_UsageColor_}}<candidate>{{|-|}} ...]")
		printStr("	Print whichever candidate reads best on the background.")
		printStr("	Without candidates, the '{{_UsageVar_}}contrast.candidates{{|-|}}' option is used.")
	}

	if showAll {
		printStr("")
		printStr("Palette Commands:")
		printStr("")
	}

	if match("-p", "--palette") {
		printStr("{{_UsageCommand_}}-p --palette{{|-|}} {{_UsagePalette_}}<palette>{{|-|}} [{{_UsageColor_}}<background>{{|-|}}]")
		printStr("	Check every color of the palette against the background and the")
		printStr("	'{{_UsageVar_}}contrast.minimum{{|-|}}' option. Fails if any color falls below it.")
		printStr("	{{_UsagePalette_}}<palette>{{|-|}} is a name from the palettes folder or a '{{_UsageFile_}}.yml{{|-|}}' file.")
	}
	if match("--palette-list") {
		printStr("{{_UsageCommand_}}--palette-list{{|-|}}")
		printStr("	List the palettes in the palettes folder")
	}
	if match("--palette-export") {
		printStr("{{_UsageCommand_}}--palette-export{{|-|}} {{_UsagePalette_}}<palette>{{|-|}} [{{_UsageFormat_}}<format>{{|-|}}]")
		printStr("	Print the palette file with its colors written in {{_UsageFormat_}}<format>{{|-|}}")
	}

	if showAll {
		printStr("")
		printStr("Other Commands:")
		printStr("")
	}

	if match("--config-show") {
		printStr("{{_UsageCommand_}}--config-show{{|-|}}")
		printStr("	Shows the current configuration options")
	}
	if match("--config-set") {
		printStr("{{_UsageCommand_}}--config-set{{|-|}} {{_UsageVar_}}<option>{{|-|}} {{_UsageVar_}}<value>{{|-|}}")
		printStr("	Save a configuration option. See '{{_UsageCommand_}}--config-show{{|-|}}' for the option names.")
	}
	if match("-I", "--inspect") {
		printStr("{{_UsageCommand_}}-I --inspect{{|-|}} [{{_UsageColor_}}<color>{{|-|}}]")
		printStr("	Start the interactive inspector.")
		printStr(fmt.Sprintf("	This is the same as typing '{{_UsageCommand_}}%s -g{{|-|}}'.", appCmd))
	}
	if match("-h", "--help") {
		printStr("{{_UsageCommand_}}-h --help{{|-|}}")
		printStr("	Show this usage information")
		printStr("{{_UsageCommand_}}-h --help{{|-|}} {{_UsageOption_}}<option>{{|-|}}")
		printStr("	Show the usage of the specified option")
	}
	if match("-V", "--version") {
		printStr("{{_UsageCommand_}}-V --version{{|-|}}")
		printStr("	Display version information")
	}

	return strings.TrimRight(sb.String(), "\n")
}
