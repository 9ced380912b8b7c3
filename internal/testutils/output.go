package testutils

import (
	"fmt"
	"strings"
	"testing"
	"text/tabwriter"
)

// TestCase is one row of a table-driven test.
type TestCase struct {
	Name     string
	Input    string
	Expected string
	Actual   string
	Pass     bool
}

const (
	reset = "\033[0m"
	red   = "\033[31m"
	green = "\033[32m"
)

// PrintTestTable logs the cases as an aligned Input/Expected/Returned table,
// marking failed rows with > <, and fails the test if any case failed.
// A Name column is added when at least one case is named.
func PrintTestTable(t *testing.T, cases []TestCase) {
	t.Helper()

	named := false
	for _, tc := range cases {
		if tc.Name != "" {
			named = true
			break
		}
	}

	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 3, ' ', 0)
	if named {
		fmt.Fprint(w, "  Name\t")
	} else {
		fmt.Fprint(w, "  ")
	}
	fmt.Fprint(w, "Input\tExpected Value\tReturned Value\t\n")

	failed := 0
	for _, tc := range cases {
		mark, end, plain, actual := " ", " ", reset, green
		if !tc.Pass {
			failed++
			mark, end, plain, actual = red+">"+reset, red+"<"+reset, red, red
		}
		fmt.Fprint(w, mark, " ")
		if named {
			fmt.Fprintf(w, "%s%s%s\t", plain, tc.Name, reset)
		}
		fmt.Fprintf(w, "%s%s%s\t%s%s%s\t%s%s%s\t%s\n",
			plain, tc.Input, reset,
			plain, tc.Expected, reset,
			actual, tc.Actual, reset,
			end,
		)
	}
	_ = w.Flush()
	t.Log("\n" + sb.String())

	if failed > 0 {
		t.Errorf("%d of %d cases failed", failed, len(cases))
	}
}
