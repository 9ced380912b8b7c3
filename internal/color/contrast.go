package color

// WCAG 2.0 minimum contrast ratios.
const (
	RatioAAA     = 7.0
	RatioAA      = 4.5
	RatioAALarge = 3.0
	MinimumRatio = 1.0
	MaximumRatio = 21.0
)

// Level is the WCAG conformance reached by a contrast ratio.
type Level int

const (
	LevelFail Level = iota
	LevelAALarge
	LevelAA
	LevelAAA
)

func (l Level) String() string {
	switch l {
	case LevelAAA:
		return "AAA"
	case LevelAA:
		return "AA"
	case LevelAALarge:
		return "AA Large"
	default:
		return "Fail"
	}
}

// Grade maps a contrast ratio onto the WCAG conformance levels.
func Grade(ratio float64) Level {
	switch {
	case ratio >= RatioAAA:
		return LevelAAA
	case ratio >= RatioAA:
		return LevelAA
	case ratio >= RatioAALarge:
		return LevelAALarge
	default:
		return LevelFail
	}
}

// ContrastRatio returns the WCAG contrast ratio between two colors, lighter
// over darker, in [1, 21]. The order of the arguments does not matter.
func ContrastRatio(a, b *Value) float64 {
	la, lb := a.Luminance(), b.Luminance()
	if la < lb {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05)
}

// ContrastRatioOf parses both expressions and returns their contrast ratio.
func ContrastRatioOf(a, b string) (float64, error) {
	va, err := New(a)
	if err != nil {
		return 0, err
	}
	vb, err := New(b)
	if err != nil {
		return 0, err
	}
	return ContrastRatio(va, vb), nil
}

// PickForeground returns the candidate with the highest contrast against
// background. Without candidates it chooses between Black and White. A single
// candidate is returned as is; ties go to the earliest candidate.
func PickForeground(background *Value, candidates ...*Value) *Value {
	if len(candidates) == 0 {
		candidates = []*Value{Black, White}
	}
	if len(candidates) == 1 {
		return candidates[0]
	}

	var best *Value
	bestRatio := 0.0
	for _, c := range candidates {
		if ratio := ContrastRatio(c, background); ratio > bestRatio {
			best, bestRatio = c, ratio
		}
	}
	return best
}
