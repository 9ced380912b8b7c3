package console

import (
	"fmt"
	"io"
	"regexp"

	"github.com/charmbracelet/x/ansi"
)

var (
	// semanticRegex matches {{_content_}} format for semantic tags
	semanticRegex = regexp.MustCompile(`\{\{_([A-Za-z0-9_]+)_\}\}`)

	// directRegex matches {{|content|}} format for direct style codes
	directRegex = regexp.MustCompile(`\{\{\|([A-Za-z0-9_:\-#]+)\|\}\}`)
)

// ExpandTags converts semantic tags to their direct {{|style|}} form.
// Unknown semantic tags are removed.
func ExpandTags(text string) string {
	return semanticRegex.ReplaceAllStringFunc(text, func(match string) string {
		content := match[3 : len(match)-3] // Strip "{{_" and "_}}"
		if tag, ok := lookupSemantic(content); ok {
			return tag
		}
		return ""
	})
}

// ToANSI converts semantic and direct tags to ANSI escape sequences.
// When stdout is not a terminal all styling is stripped instead.
func ToANSI(text string) string {
	if !isTTYGlobal {
		return Strip(text)
	}

	// Semantic values may themselves hold several direct tags.
	text = ExpandTags(text)

	return directRegex.ReplaceAllStringFunc(text, func(match string) string {
		content := match[3 : len(match)-3] // Strip "{{|" and "|}}"
		return parseStyleCodeToANSI(content)
	})
}

// Strip removes all semantic and direct tags from text, as well as ANSI escape sequences.
func Strip(text string) string {
	text = semanticRegex.ReplaceAllString(text, "")
	text = directRegex.ReplaceAllString(text, "")
	return ansi.Strip(text)
}

// Sprintf formats according to a format specifier and returns the string with ANSI codes.
func Sprintf(format string, a ...any) string {
	return ToANSI(fmt.Sprintf(format, a...))
}

// Fprintln writes a line to w with tags rendered.
func Fprintln(w io.Writer, a ...any) {
	fmt.Fprintln(w, ToANSI(fmt.Sprint(a...)))
}
