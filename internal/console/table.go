package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

type boxChars struct {
	topLeft, topRight, bottomLeft, bottomRight string
	horizontal, vertical, cross                string
	tLeft, tRight, tTop, tBottom               string
}

var (
	lineBox = boxChars{
		topLeft: "┌", topRight: "┐", bottomLeft: "└", bottomRight: "┘",
		horizontal: "─", vertical: "│", cross: "┼",
		tLeft: "├", tRight: "┤", tTop: "┬", tBottom: "┴",
	}
	asciiBox = boxChars{
		topLeft: "+", topRight: "+", bottomLeft: "+", bottomRight: "+",
		horizontal: "-", vertical: "|", cross: "+",
		tLeft: "|", tRight: "|", tTop: "-", tBottom: "-",
	}
)

// FprintTable writes a table with the given headers and data to w.
// data should be a flat list of strings, length must be a multiple of len(headers).
// Cells may hold tags or ANSI sequences; widths are measured on the visible text.
// useLineChars determines if Unicode box drawing characters are used.
func FprintTable(w io.Writer, headers []string, data []string, useLineChars bool) {
	cols := len(headers)
	if cols == 0 {
		return
	}

	colWidths := make([]int, cols)
	for i, h := range headers {
		colWidths[i] = max(colWidths[i], ansi.StringWidth(Strip(h)))
	}
	for i, d := range data {
		col := i % cols
		colWidths[col] = max(colWidths[col], ansi.StringWidth(Strip(d)))
	}

	chars := asciiBox
	if useLineChars {
		chars = lineBox
	}

	var topBorder, middleBorder, bottomBorder strings.Builder
	topBorder.WriteString(chars.topLeft)
	middleBorder.WriteString(chars.tLeft)
	bottomBorder.WriteString(chars.bottomLeft)
	for i, width := range colWidths {
		// One space of padding on each side
		dashes := strings.Repeat(chars.horizontal, width+2)
		topBorder.WriteString(dashes)
		middleBorder.WriteString(dashes)
		bottomBorder.WriteString(dashes)

		if i < cols-1 {
			topBorder.WriteString(chars.tTop)
			middleBorder.WriteString(chars.cross)
			bottomBorder.WriteString(chars.tBottom)
		} else {
			topBorder.WriteString(chars.topRight)
			middleBorder.WriteString(chars.tRight)
			bottomBorder.WriteString(chars.bottomRight)
		}
	}

	printRow := func(rowItems []string) {
		var row strings.Builder
		row.WriteString(chars.vertical)
		for i, item := range rowItems {
			rendered := ToANSI(item)
			padding := colWidths[i] - ansi.StringWidth(Strip(item))
			row.WriteString(" ")
			row.WriteString(rendered)
			row.WriteString(strings.Repeat(" ", padding))
			row.WriteString(" ")
			row.WriteString(chars.vertical)
		}
		fmt.Fprintln(w, row.String())
	}

	fmt.Fprintln(w, topBorder.String())
	printRow(headers)
	fmt.Fprintln(w, middleBorder.String())
	for i := 0; i < len(data); i += cols {
		end := min(i+cols, len(data))
		rowSlice := data[i:end]
		if len(rowSlice) < cols {
			filled := make([]string, cols)
			copy(filled, rowSlice)
			rowSlice = filled
		}
		printRow(rowSlice)
	}
	fmt.Fprintln(w, bottomBorder.String())
}
