package stats

import "math"

// Frequency-table test parameters.
const (
	seriesCells  = 10  // k for the k×k table of consecutive pairs
	minCellCount = 5.0 // smallest expected count the chi-square approximation accepts
	gapLow       = 0.0 // a gap hit is a value in [gapLow, gapHigh)
	gapHigh      = 0.5
	gapMaxLength = 5 // gaps longer than this share one tail class
	minGaps      = 5
	pokerDigits  = 5
)

// Poker hand categories for five decimal digits, most to least likely.
var pokerCategories = []string{"all_different", "one_pair", "two_pairs", "three_of_a_kind", "full_house", "four_of_a_kind", "five_of_a_kind"}

var pokerProbabilities = []float64{0.3024, 0.504, 0.108, 0.072, 0.009, 0.0045, 0.0001}

// ChiSquare is an upper-tail chi-square goodness-of-fit result.
type ChiSquare struct {
	Passed   bool    `json:"passed" yaml:"passed"`
	Skipped  string  `json:"skipped,omitempty" yaml:"skipped,omitempty"`
	Chi0     float64 `json:"chi0" yaml:"chi0"`
	Critical float64 `json:"critical" yaml:"critical"`
	DF       int     `json:"df" yaml:"df"`
}

// SeriesTest checks that overlapping pairs (u[i], u[i+1]) fill a k×k grid evenly.
type SeriesTest struct {
	ChiSquare       `yaml:",inline"`
	K               int     `json:"k" yaml:"k"`
	Pairs           int     `json:"pairs" yaml:"pairs"`
	ExpectedPerCell float64 `json:"expected_per_cell" yaml:"expected_per_cell"`
}

// DigitTest checks that the first decimal digit is uniform over 0-9.
type DigitTest struct {
	ChiSquare `yaml:",inline"`
	Observed  []int `json:"observed" yaml:"observed"`
}

// GapTest checks that the gaps between hits in [Low, High) are geometric.
// Observed and Expected hold classes 0..MaxLength and a final tail class.
type GapTest struct {
	ChiSquare `yaml:",inline"`
	Low       float64   `json:"low" yaml:"low"`
	High      float64   `json:"high" yaml:"high"`
	MaxLength int       `json:"max_length" yaml:"max_length"`
	Gaps      int       `json:"gaps" yaml:"gaps"`
	Observed  []int     `json:"observed" yaml:"observed"`
	Expected  []float64 `json:"expected" yaml:"expected"`
}

// PokerTest classifies the first five decimal digits of each value as a poker
// hand. Rare categories are merged into their neighbour until every expected
// count reaches five.
type PokerTest struct {
	ChiSquare  `yaml:",inline"`
	Categories []string  `json:"categories" yaml:"categories"`
	Observed   []int     `json:"observed" yaml:"observed"`
	Expected   []float64 `json:"expected" yaml:"expected"`
}

// frequencies accumulates the tables for the series, digit, gap and poker
// tests in one pass.
type frequencies struct {
	n      int
	prev   int
	series [seriesCells * seriesCells]int
	digits [10]int

	gapStarted bool
	gap        int
	gaps       [gapMaxLength + 2]int
	gapCount   int

	poker [7]int
}

func (f *frequencies) add(v float64) {
	cell := min(int(v*seriesCells), seriesCells-1)
	if f.n > 0 {
		f.series[f.prev*seriesCells+cell]++
	}
	f.prev = cell
	f.n++

	f.digits[min(int(v*10), 9)]++

	if v >= gapLow && v < gapHigh {
		if f.gapStarted {
			f.gaps[min(f.gap, gapMaxLength+1)]++
			f.gapCount++
		}
		f.gapStarted = true
		f.gap = 0
	} else if f.gapStarted {
		f.gap++
	}

	f.poker[pokerHand(v)]++
}

// pokerHand returns the index into pokerCategories for the first five
// decimal digits of v.
func pokerHand(v float64) int {
	n := min(int(v*math.Pow10(pokerDigits)), int(math.Pow10(pokerDigits))-1)
	var counts [10]int
	distinct, most := 0, 0
	for i := 0; i < pokerDigits; i++ {
		d := n % 10
		n /= 10
		if counts[d] == 0 {
			distinct++
		}
		counts[d]++
		most = max(most, counts[d])
	}
	switch distinct {
	case 5:
		return 0
	case 4:
		return 1
	case 3:
		if most == 2 {
			return 2
		}
		return 3
	case 2:
		if most == 3 {
			return 4
		}
		return 5
	default:
		return 6
	}
}

func (f *frequencies) seriesTest(alpha float64) SeriesTest {
	t := SeriesTest{K: seriesCells}
	if f.n < 2 {
		t.Skipped = "need at least two values"
		return t
	}
	t.Pairs = f.n - 1
	t.ExpectedPerCell = float64(t.Pairs) / (seriesCells * seriesCells)
	if t.ExpectedPerCell < minCellCount {
		t.Skipped = "expected count per cell below 5"
		return t
	}
	expected := make([]float64, len(f.series))
	for i := range expected {
		expected[i] = t.ExpectedPerCell
	}
	t.ChiSquare = chiSquare(f.series[:], expected, alpha)
	return t
}

func (f *frequencies) digitTest(alpha float64) DigitTest {
	t := DigitTest{Observed: append([]int(nil), f.digits[:]...)}
	e := float64(f.n) / 10
	if e < minCellCount {
		t.Skipped = "expected count per digit below 5"
		return t
	}
	expected := make([]float64, 10)
	for i := range expected {
		expected[i] = e
	}
	t.ChiSquare = chiSquare(t.Observed, expected, alpha)
	return t
}

func (f *frequencies) gapTest(alpha float64) GapTest {
	t := GapTest{
		Low:       gapLow,
		High:      gapHigh,
		MaxLength: gapMaxLength,
		Gaps:      f.gapCount,
		Observed:  append([]int(nil), f.gaps[:]...),
	}
	if t.Gaps < minGaps {
		t.Skipped = "too few gaps"
		return t
	}
	m := float64(t.Gaps)
	p := gapHigh - gapLow
	q := 1 - p
	t.Expected = make([]float64, gapMaxLength+2)
	for k := 0; k <= gapMaxLength; k++ {
		t.Expected[k] = m * math.Pow(q, float64(k)) * p
	}
	t.Expected[gapMaxLength+1] = m * math.Pow(q, gapMaxLength+1)
	t.ChiSquare = chiSquare(t.Observed, t.Expected, alpha)
	return t
}

func (f *frequencies) pokerTest(alpha float64) PokerTest {
	t := PokerTest{
		Categories: append([]string(nil), pokerCategories...),
		Observed:   append([]int(nil), f.poker[:]...),
		Expected:   make([]float64, len(pokerProbabilities)),
	}
	for i, p := range pokerProbabilities {
		t.Expected[i] = float64(f.n) * p
	}
	for len(t.Expected) > 2 && minFloat(t.Expected) < minCellCount {
		last := len(t.Expected) - 1
		t.Expected[last-1] += t.Expected[last]
		t.Observed[last-1] += t.Observed[last]
		t.Expected = t.Expected[:last]
		t.Observed = t.Observed[:last]
		t.Categories = t.Categories[:last]
	}
	if minFloat(t.Expected) < minCellCount {
		t.Skipped = "too few values"
		return t
	}
	t.ChiSquare = chiSquare(t.Observed, t.Expected, alpha)
	return t
}

// chiSquare compares observed with expected counts against the upper
// 1-alpha quantile with len(observed)-1 degrees of freedom.
func chiSquare(observed []int, expected []float64, alpha float64) ChiSquare {
	var chi0 float64
	for i, e := range expected {
		if e > 0 {
			d := float64(observed[i]) - e
			chi0 += d * d / e
		}
	}
	df := len(observed) - 1
	crit := chiSquareQuantile(1-alpha, float64(df))
	return ChiSquare{Passed: chi0 <= crit, Chi0: chi0, Critical: crit, DF: df}
}

func minFloat(xs []float64) float64 {
	m := math.Inf(1)
	for _, x := range xs {
		m = math.Min(m, x)
	}
	return m
}
