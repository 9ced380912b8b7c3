package palette

import (
	"HueKit/internal/color"
	"errors"
)

// ErrNoBackground is returned by Audit when neither the caller nor the palette names a background.
var ErrNoBackground = errors.New("no background to audit against")

// Result is the contrast of one palette entry against the audited background.
type Result struct {
	Entry Entry
	Ratio float64
	Level color.Level
	Pass  bool
}

// Report is the outcome of an audit.
type Report struct {
	Background *color.Value
	Minimum    float64
	Results    []Result
}

// Failed returns how many entries fall below the minimum ratio.
func (r Report) Failed() int {
	n := 0
	for _, res := range r.Results {
		if !res.Pass {
			n++
		}
	}
	return n
}

// Audit computes the contrast of every entry against background, or the
// palette's own background when background is nil.
func Audit(p *Palette, background *color.Value, minimum float64) (Report, error) {
	if background == nil {
		background = p.Background
	}
	if background == nil {
		return Report{}, ErrNoBackground
	}

	report := Report{Background: background, Minimum: minimum}
	for _, e := range p.Entries {
		ratio := color.ContrastRatio(e.Value, background)
		report.Results = append(report.Results, Result{
			Entry: e,
			Ratio: ratio,
			Level: color.Grade(ratio),
			Pass:  ratio >= minimum,
		})
	}
	return report, nil
}
