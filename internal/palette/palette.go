// Package palette loads named color lists from YAML files and audits them
// for contrast against a background.
package palette

import (
	"HueKit/internal/color"
	"HueKit/internal/constants"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrNotFound is returned by LoadNamed when no file matches the name.
var ErrNotFound = errors.New("palette not found")

// Extensions are the recognized palette file extensions, in lookup order.
var Extensions = []string{constants.PaletteFileExt, ".yaml"}

// File is the on-disk form of a palette.
type File struct {
	Name       string      `yaml:"name"`
	Background string      `yaml:"background,omitempty"`
	Colors     []FileEntry `yaml:"colors"`
}

// FileEntry is one named color of a palette file.
type FileEntry struct {
	Name  string `yaml:"name"`
	Color string `yaml:"color"`
}

// Palette is a loaded palette with every color parsed.
type Palette struct {
	Name       string
	Path       string
	Background *color.Value // nil when the file does not set one
	Entries    []Entry
}

// Entry is a named, parsed color.
type Entry struct {
	Name  string
	Value *color.Value
}

// Load reads and parses a palette file.
func Load(path string) (*Palette, error) {
	return LoadWithOptions(path, color.ParseOptions{})
}

// LoadWithOptions is Load with explicit color parser options.
func LoadWithOptions(path string, opts color.ParseOptions) (*Palette, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	p, err := Decode(data, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	p.Path = path
	if p.Name == "" {
		p.Name = nameFromPath(path)
	}
	return p, nil
}

// Decode parses palette YAML.
func Decode(data []byte, opts color.ParseOptions) (*Palette, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	if len(f.Colors) == 0 {
		return nil, errors.New("palette has no colors")
	}

	p := &Palette{Name: f.Name}
	if f.Background != "" {
		bg, err := color.NewWithOptions(f.Background, opts)
		if err != nil {
			return nil, fmt.Errorf("background: %w", err)
		}
		p.Background = bg
	}
	for i, e := range f.Colors {
		v, err := color.NewWithOptions(e.Color, opts)
		if err != nil {
			return nil, fmt.Errorf("colors[%d]: %w", i, err)
		}
		name := e.Name
		if name == "" {
			name = v.Hex()
		}
		p.Entries = append(p.Entries, Entry{Name: name, Value: v})
	}
	return p, nil
}

// Encode renders a palette back to YAML, colors in the given format.
func Encode(p *Palette, format color.Format) ([]byte, error) {
	f := File{Name: p.Name}
	if p.Background != nil {
		f.Background = p.Background.Format(format)
	}
	for _, e := range p.Entries {
		f.Colors = append(f.Colors, FileEntry{Name: e.Name, Color: e.Value.Format(format)})
	}
	return yaml.Marshal(f)
}

// LoadNamed loads the palette called name from dir. A name holding a path
// separator or a palette extension is loaded as a path instead.
func LoadNamed(dir, name string, opts color.ParseOptions) (*Palette, error) {
	if strings.ContainsRune(name, filepath.Separator) || strings.ContainsRune(name, '/') || hasExtension(name) {
		return LoadWithOptions(name, opts)
	}
	for _, ext := range Extensions {
		path := filepath.Join(dir, name+ext)
		if _, err := os.Stat(path); err == nil {
			return LoadWithOptions(path, opts)
		}
	}
	return nil, fmt.Errorf("%w: %q in %s", ErrNotFound, name, dir)
}

// List returns the names of the palettes in dir, sorted. A missing
// directory holds no palettes.
func List(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !hasExtension(e.Name()) {
			continue
		}
		names = append(names, nameFromPath(e.Name()))
	}
	sort.Strings(names)
	return names, nil
}

func hasExtension(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range Extensions {
		if ext == e {
			return true
		}
	}
	return false
}

func nameFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
