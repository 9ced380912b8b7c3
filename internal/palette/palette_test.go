package palette

import (
	"HueKit/internal/color"
	"HueKit/internal/testutils"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sample = `
name: Sample
background: "#ffffff"
colors:
  - name: ink
    color: "#000"
  - name: red
    color: rgb(255, 0, 0)
  - name: pale
    color: hsl(60, 100%, 90%)
  - color: "#00008b"
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "sample.yml", sample)

	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if p.Name != "Sample" || p.Path != path {
		t.Errorf("unexpected name/path %q %q", p.Name, p.Path)
	}
	if p.Background == nil || p.Background.Hex() != "#ffffff" {
		t.Errorf("unexpected background %v", p.Background)
	}

	var got []string
	for _, e := range p.Entries {
		got = append(got, e.Name+"="+e.Value.Hex())
	}
	expected := "ink=#000000 red=#ff0000 pale=#ffffcc #00008b=#00008b"
	if strings.Join(got, " ") != expected {
		t.Errorf("got %v, want %s", got, expected)
	}
}

func TestLoadRejects(t *testing.T) {
	dir := t.TempDir()
	tests := map[string]string{
		"empty.yml":    "name: empty\ncolors: []\n",
		"badcolor.yml": "colors:\n  - name: x\n    color: \"#12\"\n",
		"badbg.yml":    "background: nope\ncolors:\n  - color: \"#000\"\n",
		"notyaml.yml":  "colors: [\n",
	}
	for name, content := range tests {
		path := writeFile(t, dir, name, content)
		if _, err := Load(path); err == nil {
			t.Errorf("%s: expected an error", name)
		}
	}
	if _, err := Load(filepath.Join(dir, "missing.yml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected ErrNotExist, got %v", err)
	}
}

func TestLoadNamedAndList(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.yaml", sample)
	writeFile(t, dir, "a.yml", "colors:\n  - color: \"#123\"\n")
	writeFile(t, dir, "notes.txt", "ignored")

	names, err := List(dir)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Join(names, ",") != "a,b" {
		t.Errorf("List() = %v", names)
	}

	p, err := LoadNamed(dir, "a", color.ParseOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if p.Name != "a" || len(p.Entries) != 1 {
		t.Errorf("unexpected palette %+v", p)
	}

	if _, err := LoadNamed(dir, "zzz", color.ParseOptions{}); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	// A path bypasses the palettes directory
	if _, err := LoadNamed(t.TempDir(), filepath.Join(dir, "b.yaml"), color.ParseOptions{}); err != nil {
		t.Errorf("expected path lookup to work: %v", err)
	}

	if names, err := List(filepath.Join(dir, "nope")); err != nil || len(names) != 0 {
		t.Errorf("expected no palettes for a missing dir, got %v, %v", names, err)
	}
}

func TestLegacyZeroAlpha(t *testing.T) {
	data := []byte("colors:\n  - color: \"#00000000\"\n")
	p, err := Decode(data, color.ParseOptions{LegacyZeroAlpha: true})
	if err != nil {
		t.Fatal(err)
	}
	if p.Entries[0].Value.Alpha() != 1 {
		t.Errorf("expected legacy opaque alpha, got %g", p.Entries[0].Value.Alpha())
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	p, err := Decode([]byte(sample), color.ParseOptions{})
	if err != nil {
		t.Fatal(err)
	}
	data, err := Encode(p, color.FormatRGB)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "rgb(255, 0, 0)") {
		t.Errorf("expected rgb output, got:\n%s", data)
	}
	again, err := Decode(data, color.ParseOptions{})
	if err != nil {
		t.Fatal(err)
	}
	for i := range p.Entries {
		if p.Entries[i].Value.Hex() != again.Entries[i].Value.Hex() {
			t.Errorf("entry %d changed from %s to %s", i, p.Entries[i].Value.Hex(), again.Entries[i].Value.Hex())
		}
	}
}

func TestAudit(t *testing.T) {
	p, err := Decode([]byte(sample), color.ParseOptions{})
	if err != nil {
		t.Fatal(err)
	}

	report, err := Audit(p, nil, 4.5)
	if err != nil {
		t.Fatal(err)
	}

	expected := map[string]string{
		"ink":     "AAA pass",
		"red":     "AA Large fail",
		"pale":    "Fail fail",
		"#00008b": "AAA pass",
	}
	var cases []testutils.TestCase
	for _, r := range report.Results {
		status := "fail"
		if r.Pass {
			status = "pass"
		}
		actual := fmt.Sprintf("%s %s", r.Level, status)
		cases = append(cases, testutils.TestCase{
			Input:    fmt.Sprintf("%s (%.2f)", r.Entry.Name, r.Ratio),
			Expected: expected[r.Entry.Name],
			Actual:   actual,
			Pass:     actual == expected[r.Entry.Name],
		})
	}
	testutils.PrintTestTable(t, cases)

	if report.Failed() != 2 {
		t.Errorf("expected 2 failures, got %d", report.Failed())
	}

	// An explicit background wins over the palette's
	dark, err := Audit(p, color.Black, 4.5)
	if err != nil {
		t.Fatal(err)
	}
	if dark.Results[0].Ratio != 1 {
		t.Errorf("black on black should be 1, got %g", dark.Results[0].Ratio)
	}
}

func TestAuditWithoutBackground(t *testing.T) {
	p := &Palette{Entries: []Entry{{Name: "x", Value: color.White}}}
	if _, err := Audit(p, nil, 4.5); !errors.Is(err, ErrNoBackground) {
		t.Errorf("expected ErrNoBackground, got %v", err)
	}
}
