package cmd

import (
	"HueKit/internal/config"
	"HueKit/internal/console"
	"HueKit/internal/paths"
	"HueKit/internal/testutils"
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func useTempHome(t *testing.T) (*bytes.Buffer, string) {
	t.Helper()
	dir := t.TempDir()
	paths.ConfigHomeOverride = dir
	var buf bytes.Buffer
	Output = &buf
	t.Cleanup(func() {
		paths.ConfigHomeOverride = ""
		Output = nil
	})
	return &buf, dir
}

func execute(t *testing.T, args ...string) (string, int) {
	t.Helper()
	buf, _ := useTempHome(t)
	return executeIn(t, buf, args...)
}

func executeIn(t *testing.T, buf *bytes.Buffer, args ...string) (string, int) {
	t.Helper()
	groups, err := Parse(args)
	if err != nil {
		t.Fatalf("Parse(%v): %v", args, err)
	}
	buf.Reset()
	code := Execute(context.Background(), groups)
	return console.Strip(buf.String()), code
}

func TestExecuteConversions(t *testing.T) {
	tests := []struct {
		args     []string
		expected string
	}{
		{[]string{"-t", "rgb", "#ff0000"}, "rgb(255, 0, 0)\n"},
		{[]string{"-t", "hsla", "#336699", "rgb(0, 0, 0)"}, "hsla(210, 50%, 40%, 1)\nhsla(0, 0%, 0%, 1)\n"},
		{[]string{"--to=hex", "hsl(120, 100%, 25%)"}, "#008000\n"},
		{[]string{"--hex-to-rgba", "#ff0000", "zz", "0x0000ff"}, "rgba(255, 0, 0, 1)\nrgba(0, 0, 255, 1)\n"},
		{[]string{"--hsla-to-rgba", "hsla(0, 0%, 100%, 0.5)"}, "rgba(255, 255, 255, 0.5)\n"},
		{[]string{"--rgba-to-hex", "rgb(0, 128, 255)", "nope"}, "#0080ffff\n"},
		{[]string{"-F", "#fff"}, "#000000\n"},
		{[]string{"-F", "#000", "#333", "#ccc"}, "#cccccc\n"},
	}

	var cases []testutils.TestCase
	for _, tt := range tests {
		got, code := execute(t, tt.args...)
		cases = append(cases, testutils.TestCase{
			Input:    strings.Join(tt.args, " "),
			Expected: strings.ReplaceAll(tt.expected, "\n", `\n`),
			Actual:   strings.ReplaceAll(got, "\n", `\n`),
			Pass:     code == 0 && got == tt.expected,
		})
	}
	testutils.PrintTestTable(t, cases)
}

func TestExecuteStopsOnFirstError(t *testing.T) {
	got, code := execute(t, "-t", "hex", "nope", "-V")
	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if got != "" {
		t.Errorf("commands after the failure ran: %q", got)
	}

	if _, code := execute(t, "-t", "bogus", "#fff"); code != 1 {
		t.Errorf("unknown format: exit code = %d, want 1", code)
	}
}

func TestExecuteLenientNeverFails(t *testing.T) {
	got, code := execute(t, "--hex-to-rgba", "nothing", "-V")
	if code != 0 {
		t.Errorf("exit code = %d, want 0", code)
	}
	if !strings.HasPrefix(got, "HueKit [") {
		t.Errorf("output = %q", got)
	}
}

func TestExecuteContrast(t *testing.T) {
	got, code := execute(t, "-C", "#000", "#fff")
	if code != 0 || !strings.HasPrefix(got, "21.00:1 AAA pass") {
		t.Errorf("code=%d output=%q", code, got)
	}

	got, _ = execute(t, "-C", "#fff", "#f00")
	if !strings.HasPrefix(got, "4.00:1 AA Large fail") {
		t.Errorf("output=%q", got)
	}
}

func TestExecuteInfo(t *testing.T) {
	got, code := execute(t, "-i", "#ff0000")
	if code != 0 {
		t.Fatalf("exit code = %d", code)
	}
	for _, want := range []string{"hexa", "#ff0000ff", "rgb(255, 0, 0)", "hsl(0, 100%, 50%)", "Luminance", "0.2126", "Foreground"} {
		if !strings.Contains(got, want) {
			t.Errorf("info missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "Linear Red") {
		t.Error("linear channels shown without -v")
	}

	got, _ = execute(t, "-i", "#808080")
	if !strings.Contains(got, "(achromatic)") {
		t.Errorf("gray not marked achromatic:\n%s", got)
	}

	got, _ = execute(t, "-v", "-i", "#ff0000")
	if !strings.Contains(got, "Linear Red") {
		t.Errorf("linear channels missing with -v:\n%s", got)
	}
}

func TestExecuteConfigSet(t *testing.T) {
	got, code := execute(t, "--config-set", "output.format", "rgb", "-F", "#fff")
	if code != 0 || got != "rgb(0, 0, 0)\n" {
		t.Errorf("code=%d output=%q", code, got)
	}
	if f := config.LoadAppConfig().Output.Format; f != "rgb" {
		t.Errorf("saved format = %q", f)
	}

	if _, code := execute(t, "--config-set", "no.such.key", "1"); code != 1 {
		t.Errorf("unknown key: exit code = %d, want 1", code)
	}
	if _, code := execute(t, "--config-set", "contrast.minimum", "30"); code != 1 {
		t.Errorf("out of range: exit code = %d, want 1", code)
	}
}

func TestExecuteConfigShow(t *testing.T) {
	got, code := execute(t, "--config-show")
	if code != 0 {
		t.Fatalf("exit code = %d", code)
	}
	for _, key := range config.Keys {
		if !strings.Contains(got, key) {
			t.Errorf("config table missing %q", key)
		}
	}
	if !strings.Contains(got, filepath.Join("huekit", "palettes")) {
		t.Errorf("expanded palettes folder missing:\n%s", got)
	}
}

const testPalette = `
name: Test
background: "#ffffff"
colors:
  - name: ink
    color: "#000"
  - name: pale
    color: "#eeeeee"
`

func writePalette(t *testing.T, dir, name, content string) {
	t.Helper()
	palettes := filepath.Join(dir, "huekit", "palettes")
	if err := os.MkdirAll(palettes, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(palettes, name+".yml"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestExecutePalette(t *testing.T) {
	buf, dir := useTempHome(t)
	writePalette(t, dir, "test", testPalette)

	got, code := executeIn(t, buf, "--palette-list")
	if code != 0 || got != "test\n" {
		t.Errorf("list: code=%d output=%q", code, got)
	}

	// pale fails against white
	got, code = executeIn(t, buf, "-p", "test")
	if code != 1 {
		t.Errorf("audit: exit code = %d, want 1", code)
	}
	for _, want := range []string{"ink", "21.00:1", "AAA", "pale", "fail"} {
		if !strings.Contains(got, want) {
			t.Errorf("audit missing %q:\n%s", want, got)
		}
	}

	// On black the ink entry fails instead
	got, code = executeIn(t, buf, "-p", "test", "#000")
	if code != 1 || !strings.Contains(got, "1.00:1") {
		t.Errorf("audit on black: code=%d output=\n%s", code, got)
	}

	got, code = executeIn(t, buf, "--palette-export", "test", "rgb")
	if code != 0 || !strings.Contains(got, "rgb(238, 238, 238)") || !strings.Contains(got, "rgb(255, 255, 255)") {
		t.Errorf("export: code=%d output=\n%s", code, got)
	}

	if _, code := executeIn(t, buf, "-p", "missing"); code != 1 {
		t.Errorf("missing palette: exit code = %d, want 1", code)
	}
}

func TestExecutePaletteWithoutBackground(t *testing.T) {
	buf, dir := useTempHome(t)
	writePalette(t, dir, "bare", "name: Bare\ncolors:\n  - name: ink\n    color: \"#000\"\n")

	if _, code := executeIn(t, buf, "-p", "bare"); code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	got, code := executeIn(t, buf, "-p", "bare", "#fff")
	if code != 0 || !strings.Contains(got, "21.00:1") {
		t.Errorf("code=%d output=\n%s", code, got)
	}
}

func TestExecuteCopy(t *testing.T) {
	var copied string
	orig := copyToClipboard
	copyToClipboard = func(s string) error {
		copied = s
		return nil
	}
	t.Cleanup(func() { copyToClipboard = orig })

	got, code := execute(t, "-c", "-t", "hex", "rgb(255, 0, 0)", "-t", "rgb", "#00f")
	if code != 0 {
		t.Fatalf("exit code = %d", code)
	}
	if copied != "#ff0000" {
		t.Errorf("copied %q, want only the output of the -c command", copied)
	}
	if got != "#ff0000\nrgb(0, 0, 255)\n" {
		t.Errorf("output = %q", got)
	}
}

func TestExecuteGUI(t *testing.T) {
	var opened []string
	orig := runInspector
	runInspector = func(_ context.Context, initial string, _ config.AppConfig) (string, error) {
		opened = append(opened, initial)
		return "rgb(1, 2, 3)", nil
	}
	t.Cleanup(func() { runInspector = orig })

	got, code := execute(t, "-g")
	if code != 0 || got != "rgb(1, 2, 3)\n" {
		t.Errorf("code=%d output=%q", code, got)
	}

	execute(t, "-g", "-i", "#abc")
	execute(t, "-I", "#def")
	execute(t, "-g", "-t", "rgb", "#123")

	expected := []string{"", "#abc", "#def", "#123"}
	if strings.Join(opened, ",") != strings.Join(expected, ",") {
		t.Errorf("inspector opened with %q, want %q", opened, expected)
	}
}

func TestExecuteHelpAndVersion(t *testing.T) {
	got, code := execute(t)
	if code != 0 || !strings.HasPrefix(got, "Usage: huekit") {
		t.Errorf("no arguments: code=%d output=%q", code, got)
	}

	got, _ = execute(t, "-h", "-C")
	if !strings.HasPrefix(got, "-C --contrast <color> <color>") {
		t.Errorf("help -C: %q", got)
	}

	got, _ = execute(t, "-V")
	if !strings.HasPrefix(got, "HueKit [v0.0.0-dev]") {
		t.Errorf("version: %q", got)
	}
}
