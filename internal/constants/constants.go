package constants

// File Names
const (
	AppConfigFileName = "huekit.toml"
	AppLogFileName    = "huekit.log"
	PaletteFileExt    = ".yml"
)

// Config Keys
const (
	OutputFormatKey      = "output.format"
	LegacyZeroAlphaKey   = "output.legacy_zero_alpha"
	ContrastCandidateKey = "contrast.candidates"
	ContrastMinimumKey   = "contrast.minimum"
	LineCharactersKey    = "ui.line_characters"
	SwatchWidthKey       = "ui.swatch_width"
	PalettesFolderKey    = "palettes.folder"
)

// Defaults
const (
	DefaultOutputFormat    = "hex"
	DefaultContrastMinimum = 4.5
	DefaultSwatchWidth     = 12
	DefaultPalettesFolder  = "${XDG_CONFIG_HOME}/huekit/palettes"
)
