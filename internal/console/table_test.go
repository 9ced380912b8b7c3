package console

import (
	"bytes"
	"strings"
	"testing"
)

func TestFprintTable(t *testing.T) {
	old := SetTTY(false)
	defer SetTTY(old)

	var buf bytes.Buffer
	FprintTable(&buf, []string{"Format", "Value"}, []string{
		"{{_Format_}}hex{{|-|}}", "#ff0000",
		"rgb", "rgb(255, 0, 0)",
	}, false)

	expected := strings.Join([]string{
		"+--------+----------------+",
		"| Format | Value          |",
		"|--------+----------------|",
		"| hex    | #ff0000        |",
		"| rgb    | rgb(255, 0, 0) |",
		"+--------+----------------+",
		"",
	}, "\n")
	if buf.String() != expected {
		t.Errorf("unexpected table:\n%s\nwant:\n%s", buf.String(), expected)
	}
}

func TestFprintTableMeasuresVisibleWidth(t *testing.T) {
	var buf bytes.Buffer
	FprintTable(&buf, []string{"A"}, []string{"\x1b[41m  swatch  \x1b[0m", "x"}, true)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	width := len([]rune(Strip(lines[0])))
	for _, l := range lines {
		if got := len([]rune(Strip(l))); got != width {
			t.Errorf("line %q has width %d, want %d", Strip(l), got, width)
		}
	}
}
