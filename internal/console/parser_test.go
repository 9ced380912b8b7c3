package console

import (
	"HueKit/internal/testutils"
	"strings"
	"testing"

	"github.com/muesli/termenv"
)

func TestExpandTags(t *testing.T) {
	ResetCustomColors()
	RegisterSemanticTag("_TestColor_", "{{|red|}}")
	RegisterSemanticTag("_Complex_", "{{|blue:yellow:b|}}")
	defer ResetCustomColors()

	tests := []struct {
		input    string
		expected string
	}{
		// Basic Pass-through
		{"Hello World", "Hello World"},
		{"{{|red|}}Red Text{{|-|}}", "{{|red|}}Red Text{{|-|}}"},

		// Semantic Tag Resolution
		{"{{_TestColor_}}Hello", "{{|red|}}Hello"},
		{"Prefix{{_testcolor_}}Suffix", "Prefix{{|red|}}Suffix"},
		{"{{_Complex_}}Bold", "{{|blue:yellow:b|}}Bold"},
		{"{{_Ratio_}}21", Colors.Ratio + "21"},
		{"{{_NC_}}", "{{|-|}}"},

		// Undefined Tags are dropped
		{"{{_Unknown_}}text", "text"},
	}

	var cases []testutils.TestCase
	for _, tt := range tests {
		actual := ExpandTags(tt.input)
		cases = append(cases, testutils.TestCase{
			Input:    tt.input,
			Expected: tt.expected,
			Actual:   actual,
			Pass:     actual == tt.expected,
		})
	}
	testutils.PrintTestTable(t, cases)
}

func TestParseStyleCodeToANSI(t *testing.T) {
	originalProfile := GetPreferredProfile()
	defer SetPreferredProfile(originalProfile)
	SetPreferredProfile(termenv.TrueColor)

	tests := []struct {
		input    string
		expected string
	}{
		{"red", CodeRed},
		{"red:blue", CodeRed + CodeBlueBg},
		{":white", CodeWhiteBg},
		{"cyan::b", CodeCyan + CodeBold},
		{"::bu", CodeBold + CodeUnderline},
		{"-", CodeReset},
		{"#ff0000", "\x1b[38;2;255;0;0m"},
		{"#f00:#00f", "\x1b[38;2;255;0;0m\x1b[48;2;0;0;255m"},
		{"notacolor", ""},
	}

	var cases []testutils.TestCase
	for _, tt := range tests {
		actual := parseStyleCodeToANSI(tt.input)
		cases = append(cases, testutils.TestCase{
			Input:    tt.input,
			Expected: strings.ReplaceAll(tt.expected, "\x1b", "ESC"),
			Actual:   strings.ReplaceAll(actual, "\x1b", "ESC"),
			Pass:     actual == tt.expected,
		})
	}
	testutils.PrintTestTable(t, cases)
}

func TestStrip(t *testing.T) {
	in := "{{_Ratio_}}4.5{{|-|}} \x1b[31mred\x1b[0m {{|#fff:#000|}}done"
	if got := Strip(in); got != "4.5 red done" {
		t.Errorf("Strip() = %q", got)
	}
}

func TestToANSINoTTY(t *testing.T) {
	old := SetTTY(false)
	defer SetTTY(old)
	if got := ToANSI("{{_Pass_}}ok{{|-|}}"); got != "ok" {
		t.Errorf("expected plain text, got %q", got)
	}
}
