package config

import (
	"HueKit/internal/color"
	"HueKit/internal/paths"
	"HueKit/internal/testutils"
	"HueKit/internal/version"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func useTempConfigHome(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	paths.ConfigHomeOverride = dir
	t.Cleanup(func() { paths.ConfigHomeOverride = "" })
	return dir
}

func TestSaveAndLoad(t *testing.T) {
	useTempConfigHome(t)

	conf := Defaults()
	conf.Output.Format = "rgba"
	conf.UI.LineCharacters = false
	conf.Contrast.Candidates = []string{"#111", "#eee"}

	if err := SaveAppConfig(conf); err != nil {
		t.Fatalf("SaveAppConfig failed: %v", err)
	}

	loaded := LoadAppConfig()
	if loaded.Output.Format != "rgba" {
		t.Errorf("Expected format 'rgba', got '%s'", loaded.Output.Format)
	}
	if loaded.UI.LineCharacters {
		t.Error("Expected LineCharacters false")
	}
	if len(loaded.Contrast.Candidates) != 2 || loaded.Contrast.Candidates[0] != "#111" {
		t.Errorf("Unexpected candidates %v", loaded.Contrast.Candidates)
	}
	if loaded.OutputFormat() != color.FormatRGBA {
		t.Errorf("Expected FormatRGBA, got %s", loaded.OutputFormat())
	}
}

func TestLoadWritesDefaults(t *testing.T) {
	dir := useTempConfigHome(t)

	conf := LoadAppConfig()
	if conf.Output.Format != "hex" || conf.Contrast.Minimum != 4.5 || conf.UI.SwatchWidth != 12 {
		t.Errorf("Unexpected defaults %+v", conf)
	}
	if want := filepath.Join(dir, "huekit", "palettes"); conf.PalettesDir != want {
		t.Errorf("Expected palettes dir %s, got %s", want, conf.PalettesDir)
	}
	if _, err := os.Stat(filepath.Join(dir, "huekit", "huekit.toml")); err != nil {
		t.Errorf("Expected defaults to be written: %v", err)
	}
}

func TestLoadNormalizesBadValues(t *testing.T) {
	dir := useTempConfigHome(t)
	if err := os.MkdirAll(filepath.Join(dir, "huekit"), 0755); err != nil {
		t.Fatal(err)
	}
	content := `
[output]
format = "cmyk"
[contrast]
minimum = 99.0
[ui]
swatch_width = -3
`
	if err := os.WriteFile(filepath.Join(dir, "huekit", "huekit.toml"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	conf := LoadAppConfig()
	if conf.Output.Format != "hex" || conf.Contrast.Minimum != 4.5 || conf.UI.SwatchWidth != 12 {
		t.Errorf("Expected defaults to replace bad values, got %+v", conf)
	}
	if len(conf.Contrast.Candidates) != 2 {
		t.Errorf("Expected default candidates, got %v", conf.Contrast.Candidates)
	}
}

func TestSetAndGet(t *testing.T) {
	useTempConfigHome(t)

	tests := []struct {
		key      string
		value    string
		expected string
	}{
		{"output.format", "HSLA", "hsla"},
		{"output.legacy_zero_alpha", "true", "true"},
		{"contrast.candidates", "#000, rgb(255, 255, 255) ,#808080", "#000, rgb(255, 255, 255), #808080"},
		{"contrast.candidates", "hsla(0, 0%, 100%, 0.5),rgba(0,0,0,1)", "hsla(0, 0%, 100%, 0.5), rgba(0,0,0,1)"},
		{"contrast.minimum", "7", "7"},
		{"ui.line_characters", "false", "false"},
		{"ui.swatch_width", "20", "20"},
		{"palettes.folder", "${HOME}/palettes", "${HOME}/palettes"},
	}

	conf := Defaults()
	var cases []testutils.TestCase
	for _, tt := range tests {
		actual := ""
		if err := conf.Set(tt.key, tt.value); err != nil {
			actual = err.Error()
		} else {
			actual, _ = conf.Get(tt.key)
		}
		cases = append(cases, testutils.TestCase{
			Input:    tt.key + "=" + tt.value,
			Expected: tt.expected,
			Actual:   actual,
			Pass:     actual == tt.expected,
		})
	}
	testutils.PrintTestTable(t, cases)
}

func TestCandidatesRoundTrip(t *testing.T) {
	conf := Defaults()
	if err := conf.Set("contrast.candidates", "rgb(255, 255, 255), #000, hsl(0, 0%, 50%)"); err != nil {
		t.Fatal(err)
	}
	shown, _ := conf.Get("contrast.candidates")
	if err := conf.Set("contrast.candidates", shown); err != nil {
		t.Fatalf("Set(Get()) = %v", err)
	}
	if got := len(conf.Contrast.Candidates); got != 3 {
		t.Errorf("got %d candidates %q, want 3", got, conf.Contrast.Candidates)
	}
}

func TestSplitColorList(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"#000,#fff", "#000|#fff"},
		{" rgb(1, 2, 3) , #abc ", "rgb(1, 2, 3)|#abc"},
		{"hsla(0, 0%, 0%, 1)", "hsla(0, 0%, 0%, 1)"},
		{"a,,b", "a||b"},
		{"", ""},
	}
	var cases []testutils.TestCase
	for _, tt := range tests {
		actual := strings.Join(SplitColorList(tt.input), "|")
		cases = append(cases, testutils.TestCase{
			Input:    tt.input,
			Expected: tt.expected,
			Actual:   actual,
			Pass:     actual == tt.expected,
		})
	}
	testutils.PrintTestTable(t, cases)
}

func TestSetRejects(t *testing.T) {
	conf := Defaults()
	tests := []struct{ key, value string }{
		{"output.format", "cmyk"},
		{"output.legacy_zero_alpha", "maybe"},
		{"contrast.candidates", "#000,nope"},
		{"contrast.candidates", " , "},
		{"contrast.minimum", "0.5"},
		{"contrast.minimum", "abc"},
		{"ui.swatch_width", "0"},
		{"palettes.folder", ""},
		{"no.such.key", "1"},
	}
	for _, tt := range tests {
		if err := conf.Set(tt.key, tt.value); err == nil {
			t.Errorf("Set(%q, %q) should fail", tt.key, tt.value)
		}
	}
	if _, err := conf.Get("no.such.key"); !errors.Is(err, ErrUnknownKey) {
		t.Errorf("Expected ErrUnknownKey, got %v", err)
	}
}

func TestCandidates(t *testing.T) {
	conf := Defaults()
	values, err := conf.Candidates()
	if err != nil {
		t.Fatal(err)
	}
	if len(values) != 2 || values[0].Hex() != "#000000" || values[1].Hex() != "#ffffff" {
		t.Errorf("Unexpected candidates %v", values)
	}
}

func TestNewerThanRunning(t *testing.T) {
	old := version.Version
	defer func() { version.Version = old }()
	version.Version = "v1.2.0"

	tests := []struct {
		fileVersion string
		expected    bool
	}{
		{"v1.3.0", true},
		{"1.2.1", true},
		{"v1.2.0", false},
		{"v1.0.0", false},
		{"garbage", false},
		{"", false},
	}
	for _, tt := range tests {
		conf := AppConfig{Version: tt.fileVersion}
		if got := conf.NewerThanRunning(); got != tt.expected {
			t.Errorf("NewerThanRunning(%q) = %v, want %v", tt.fileVersion, got, tt.expected)
		}
	}
}
