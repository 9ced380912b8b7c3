package config

import (
	"HueKit/internal/color"
	"HueKit/internal/constants"
	"HueKit/internal/paths"
	"HueKit/internal/version"
	"errors"
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/adrg/xdg"
	"github.com/gofrs/flock"
	toml "github.com/pelletier/go-toml/v2"
)

// AppConfig holds the application configuration settings.
type AppConfig struct {
	Version  string         `toml:"version"`
	Output   OutputConfig   `toml:"output"`
	Contrast ContrastConfig `toml:"contrast"`
	UI       UIConfig       `toml:"ui"`
	Palettes PaletteConfig  `toml:"palettes"`

	// Runtime only, not saved to TOML
	PalettesDir string `toml:"-"`
}

// OutputConfig controls how colors are printed and parsed.
type OutputConfig struct {
	Format          string `toml:"format"`
	LegacyZeroAlpha bool   `toml:"legacy_zero_alpha"`
}

// ContrastConfig holds the foreground candidates and the minimum accepted ratio.
type ContrastConfig struct {
	Candidates []string `toml:"candidates"`
	Minimum    float64  `toml:"minimum"`
}

// UIConfig holds user interface related settings.
type UIConfig struct {
	LineCharacters bool `toml:"line_characters"`
	SwatchWidth    int  `toml:"swatch_width"`
}

// PaletteConfig holds palette file settings.
type PaletteConfig struct {
	Folder string `toml:"folder"`
}

// Keys lists the settable keys in display order.
var Keys = []string{
	constants.OutputFormatKey,
	constants.LegacyZeroAlphaKey,
	constants.ContrastCandidateKey,
	constants.ContrastMinimumKey,
	constants.LineCharactersKey,
	constants.SwatchWidthKey,
	constants.PalettesFolderKey,
}

// ErrUnknownKey is returned by Get and Set for keys not in Keys.
var ErrUnknownKey = errors.New("unknown config key")

// Defaults returns the configuration used when no file exists.
func Defaults() AppConfig {
	conf := AppConfig{
		Version: version.Version,
		Output: OutputConfig{
			Format: constants.DefaultOutputFormat,
		},
		Contrast: ContrastConfig{
			Candidates: []string{"#000000", "#ffffff"},
			Minimum:    constants.DefaultContrastMinimum,
		},
		UI: UIConfig{
			LineCharacters: true,
			SwatchWidth:    constants.DefaultSwatchWidth,
		},
		Palettes: PaletteConfig{
			Folder: constants.DefaultPalettesFolder,
		},
	}
	conf.PalettesDir = ExpandVariables(conf.Palettes.Folder)
	return conf
}

// ExpandVariables expands environment variables in the config values.
// It supports:
// - ${XDG_CONFIG_HOME} -> the config home (honoring test overrides)
// - ${XDG_DATA_HOME}   -> xdg.DataHome
// - ${XDG_STATE_HOME}  -> xdg.StateHome
// - ${XDG_CACHE_HOME}  -> xdg.CacheHome
// - ${HOME}            -> os.UserHomeDir()
// - ${USER}            -> Current username
func ExpandVariables(val string) string {
	mapper := func(varName string) string {
		switch varName {
		case "XDG_CONFIG_HOME":
			return filepath.Dir(paths.GetConfigDir())
		case "XDG_DATA_HOME":
			return xdg.DataHome
		case "XDG_STATE_HOME":
			return xdg.StateHome
		case "XDG_CACHE_HOME":
			return xdg.CacheHome
		case "HOME":
			home, err := os.UserHomeDir()
			if err != nil {
				return ""
			}
			return home
		case "USER":
			u, err := user.Current()
			if err != nil {
				return os.Getenv("USERNAME") // Fallback for Windows
			}
			return u.Username
		}
		return ""
	}
	return os.Expand(val, mapper)
}

// LoadAppConfig reads the configuration file and returns the configuration.
// A missing or unreadable file yields the defaults, which are written out once.
func LoadAppConfig() AppConfig {
	conf := Defaults()

	path := paths.GetConfigFilePath()
	data, err := os.ReadFile(path)
	if err == nil {
		if err := toml.Unmarshal(data, &conf); err == nil {
			conf.normalize()
			return conf
		}
		// Keep a broken file around rather than overwriting it.
		return Defaults()
	}

	_ = SaveAppConfig(conf)
	return conf
}

// normalize fills in values a hand-edited file may have left out.
func (c *AppConfig) normalize() {
	def := Defaults()
	if _, err := color.ParseFormat(c.Output.Format); err != nil {
		c.Output.Format = def.Output.Format
	}
	if len(c.Contrast.Candidates) == 0 {
		c.Contrast.Candidates = def.Contrast.Candidates
	}
	if c.Contrast.Minimum < color.MinimumRatio || c.Contrast.Minimum > color.MaximumRatio {
		c.Contrast.Minimum = def.Contrast.Minimum
	}
	if c.UI.SwatchWidth <= 0 {
		c.UI.SwatchWidth = def.UI.SwatchWidth
	}
	if c.Palettes.Folder == "" {
		c.Palettes.Folder = def.Palettes.Folder
	}
	c.PalettesDir = ExpandVariables(c.Palettes.Folder)
}

// SaveAppConfig writes the configuration to huekit.toml, holding a lock on
// the file so concurrent invocations do not interleave writes.
func SaveAppConfig(conf AppConfig) error {
	path := paths.GetConfigFilePath()

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	lock := flock.New(path + ".lock")
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("locking %s: %w", path, err)
	}
	defer lock.Unlock()

	data, err := toml.Marshal(conf)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// NewerThanRunning reports whether the file was written by a newer release
// than the one running. Unparseable versions never compare as newer.
func (c AppConfig) NewerThanRunning() bool {
	fileVersion, err := semver.NewVersion(c.Version)
	if err != nil {
		return false
	}
	running, err := semver.NewVersion(version.Version)
	if err != nil {
		return false
	}
	return fileVersion.GreaterThan(running)
}

// ParseOptions returns the color parser options selected by the config.
func (c AppConfig) ParseOptions() color.ParseOptions {
	return color.ParseOptions{LegacyZeroAlpha: c.Output.LegacyZeroAlpha}
}

// OutputFormat returns the configured output format, falling back to hex.
func (c AppConfig) OutputFormat() color.Format {
	f, err := color.ParseFormat(c.Output.Format)
	if err != nil {
		return color.FormatHex
	}
	return f
}

// Candidates parses the configured foreground candidates.
func (c AppConfig) Candidates() ([]*color.Value, error) {
	var values []*color.Value
	for _, s := range c.Contrast.Candidates {
		v, err := color.NewWithOptions(s, c.ParseOptions())
		if err != nil {
			return nil, fmt.Errorf("contrast.candidates: %w", err)
		}
		values = append(values, v)
	}
	return values, nil
}

// Get returns the textual value of a config key.
func (c AppConfig) Get(key string) (string, error) {
	switch strings.ToLower(key) {
	case constants.OutputFormatKey:
		return c.Output.Format, nil
	case constants.LegacyZeroAlphaKey:
		return strconv.FormatBool(c.Output.LegacyZeroAlpha), nil
	case constants.ContrastCandidateKey:
		return strings.Join(c.Contrast.Candidates, ", "), nil
	case constants.ContrastMinimumKey:
		return strconv.FormatFloat(c.Contrast.Minimum, 'f', -1, 64), nil
	case constants.LineCharactersKey:
		return strconv.FormatBool(c.UI.LineCharacters), nil
	case constants.SwatchWidthKey:
		return strconv.Itoa(c.UI.SwatchWidth), nil
	case constants.PalettesFolderKey:
		return c.Palettes.Folder, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownKey, key)
}

// Set validates and assigns a config key from its textual value.
func (c *AppConfig) Set(key, value string) error {
	value = strings.TrimSpace(value)
	switch strings.ToLower(key) {
	case constants.OutputFormatKey:
		f, err := color.ParseFormat(value)
		if err != nil {
			return err
		}
		c.Output.Format = f.String()
	case constants.LegacyZeroAlphaKey:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		c.Output.LegacyZeroAlpha = b
	case constants.ContrastCandidateKey:
		var candidates []string
		for _, s := range SplitColorList(value) {
			if s == "" {
				continue
			}
			if _, err := color.NewWithOptions(s, c.ParseOptions()); err != nil {
				return err
			}
			candidates = append(candidates, s)
		}
		if len(candidates) == 0 {
			return fmt.Errorf("%s: at least one color is required", key)
		}
		c.Contrast.Candidates = candidates
	case constants.ContrastMinimumKey:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		if f < color.MinimumRatio || f > color.MaximumRatio {
			return fmt.Errorf("%s: %g is outside [%g, %g]", key, f, color.MinimumRatio, color.MaximumRatio)
		}
		c.Contrast.Minimum = f
	case constants.LineCharactersKey:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		c.UI.LineCharacters = b
	case constants.SwatchWidthKey:
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		if n <= 0 {
			return fmt.Errorf("%s: must be positive", key)
		}
		c.UI.SwatchWidth = n
	case constants.PalettesFolderKey:
		if value == "" {
			return fmt.Errorf("%s: must not be empty", key)
		}
		c.Palettes.Folder = value
		c.PalettesDir = ExpandVariables(value)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	return nil
}

// SplitColorList splits a comma separated list of colors. Commas inside
// rgb(), hsla() and the like do not separate entries. Entries are trimmed.
func SplitColorList(s string) []string {
	var parts []string
	depth, start := 0, 0
	for i, r := range s {
		switch r {
		case '(':
			depth++
		case ')':
			if depth > 0 {
				depth--
			}
		case ',':
			if depth == 0 {
				parts = append(parts, strings.TrimSpace(s[start:i]))
				start = i + 1
			}
		}
	}
	return append(parts, strings.TrimSpace(s[start:]))
}
