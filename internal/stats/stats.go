// Package stats checks that a generated file looks like a sample of U[0,1).
//
// The file is read once, line by line, so million-line files never need to be
// held in memory. The moment tests are two-sided at significance level alpha:
//
//   - mean: the sample mean lies within z(1-alpha/2)*sqrt(1/(12n)) of 1/2;
//   - variance: (n-1)s^2/(1/12) lies between the chi-square quantiles with n-1
//     degrees of freedom;
//   - runs: the number of runs above and below 1/2 has a z score within
//     ±z(1-alpha/2).
//
// The frequency tests (series, digit, gap and poker) are upper-tail
// chi-square goodness-of-fit tests at level alpha.
package stats

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// DefaultAlpha is the significance level used when none is given.
const DefaultAlpha = 0.05

const (
	uniformMean     = 0.5
	uniformVariance = 1.0 / 12
)

// ErrInvalidAlpha is returned for a significance level outside (0, 1).
var ErrInvalidAlpha = errors.New("alpha must be between 0 and 1")

// RangeCheck reports whether every line parsed to a value in [0,1).
type RangeCheck struct {
	Passed           bool    `json:"passed" yaml:"passed"`
	Lines            int     `json:"lines" yaml:"lines"`
	Invalid          int     `json:"invalid" yaml:"invalid"`
	FirstInvalidLine int     `json:"first_invalid_line,omitempty" yaml:"first_invalid_line,omitempty"`
	Min              float64 `json:"min" yaml:"min"`
	Max              float64 `json:"max" yaml:"max"`
}

// MeanTest is the acceptance test on the sample mean.
type MeanTest struct {
	Passed   bool    `json:"passed" yaml:"passed"`
	Skipped  string  `json:"skipped,omitempty" yaml:"skipped,omitempty"`
	Mean     float64 `json:"mean" yaml:"mean"`
	Expected float64 `json:"expected" yaml:"expected"`
	Low      float64 `json:"low" yaml:"low"`
	High     float64 `json:"high" yaml:"high"`
}

// VarianceTest is the chi-square acceptance test on the sample variance.
type VarianceTest struct {
	Passed         bool    `json:"passed" yaml:"passed"`
	Skipped        string  `json:"skipped,omitempty" yaml:"skipped,omitempty"`
	SampleVariance float64 `json:"sample_variance" yaml:"sample_variance"`
	Expected       float64 `json:"expected" yaml:"expected"`
	DF             int     `json:"df" yaml:"df"`
	Chi0           float64 `json:"chi0" yaml:"chi0"`
	Low            float64 `json:"low" yaml:"low"`
	High           float64 `json:"high" yaml:"high"`
}

// RunsTest is the runs-above-and-below-one-half test.
type RunsTest struct {
	Passed   bool    `json:"passed" yaml:"passed"`
	Skipped  string  `json:"skipped,omitempty" yaml:"skipped,omitempty"`
	Runs     int     `json:"runs" yaml:"runs"`
	Above    int     `json:"above" yaml:"above"`
	Below    int     `json:"below" yaml:"below"`
	Expected float64 `json:"expected" yaml:"expected"`
	StdDev   float64 `json:"std_dev" yaml:"std_dev"`
	Z0       float64 `json:"z0" yaml:"z0"`
	Critical float64 `json:"critical" yaml:"critical"`
}

// Report collects the results for one input.
type Report struct {
	Path     string       `json:"path" yaml:"path"`
	N        int          `json:"n" yaml:"n"`
	Alpha    float64      `json:"alpha" yaml:"alpha"`
	Range    RangeCheck   `json:"range" yaml:"range"`
	Mean     MeanTest     `json:"mean" yaml:"mean"`
	Variance VarianceTest `json:"variance" yaml:"variance"`
	Runs     RunsTest     `json:"runs" yaml:"runs"`
	Series   SeriesTest   `json:"series" yaml:"series"`
	Digits   DigitTest    `json:"digits" yaml:"digits"`
	Gaps     GapTest      `json:"gaps" yaml:"gaps"`
	Poker    PokerTest    `json:"poker" yaml:"poker"`
}

// Passed reports whether every check accepted the sample.
func (r *Report) Passed() bool {
	return r.Range.Passed && r.Mean.Passed && r.Variance.Passed && r.Runs.Passed &&
		r.Series.Passed && r.Digits.Passed && r.Gaps.Passed && r.Poker.Passed
}

// CheckFile runs Check over the file at path.
func CheckFile(path string, alpha float64) (*Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	rep, err := Check(f, alpha)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	rep.Path = path
	return rep, nil
}

// Check reads one value per line from r. Lines that do not parse or fall
// outside [0,1) fail the range check and are left out of the other tests.
func Check(r io.Reader, alpha float64) (*Report, error) {
	if !(alpha > 0 && alpha < 1) {
		return nil, ErrInvalidAlpha
	}

	var (
		acc      accumulator
		freq     frequencies
		rc       RangeCheck
		lineNo   int
		runs     int
		above    int
		prevSide = -1
	)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lineNo++
		v, err := strconv.ParseFloat(strings.TrimSpace(sc.Text()), 64)
		if err != nil || v < 0 || v >= 1 {
			rc.Invalid++
			if rc.FirstInvalidLine == 0 {
				rc.FirstInvalidLine = lineNo
			}
			continue
		}
		acc.add(v)
		freq.add(v)

		side := 0
		if v >= uniformMean {
			side = 1
			above++
		}
		if side != prevSide {
			runs++
			prevSide = side
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	rc.Lines = lineNo
	rc.Passed = rc.Invalid == 0
	if acc.n > 0 {
		rc.Min, rc.Max = acc.min, acc.max
	}

	zcrit := normalQuantile(1 - alpha/2)
	return &Report{
		N:        acc.n,
		Alpha:    alpha,
		Range:    rc,
		Mean:     meanTest(&acc, zcrit),
		Variance: varianceTest(&acc, alpha),
		Runs:     runsTest(acc.n, above, runs, zcrit),
		Series:   freq.seriesTest(alpha),
		Digits:   freq.digitTest(alpha),
		Gaps:     freq.gapTest(alpha),
		Poker:    freq.pokerTest(alpha),
	}, nil
}

func meanTest(acc *accumulator, zcrit float64) MeanTest {
	t := MeanTest{Expected: uniformMean}
	if acc.n == 0 {
		t.Skipped = "no values"
		return t
	}
	half := zcrit * math.Sqrt(uniformVariance/float64(acc.n))
	t.Mean = acc.mean
	t.Low, t.High = uniformMean-half, uniformMean+half
	t.Passed = t.Low <= t.Mean && t.Mean <= t.High
	return t
}

func varianceTest(acc *accumulator, alpha float64) VarianceTest {
	t := VarianceTest{Expected: uniformVariance}
	if acc.n < 2 {
		t.Skipped = "need at least two values"
		return t
	}
	df := float64(acc.n - 1)
	t.DF = acc.n - 1
	t.SampleVariance = acc.variance()
	t.Chi0 = df * t.SampleVariance / uniformVariance
	t.Low = chiSquareQuantile(alpha/2, df)
	t.High = chiSquareQuantile(1-alpha/2, df)
	t.Passed = t.Low <= t.Chi0 && t.Chi0 <= t.High
	return t
}

func runsTest(n, above, runs int, zcrit float64) RunsTest {
	t := RunsTest{Runs: runs, Above: above, Below: n - above, Critical: zcrit}
	if t.Above == 0 || t.Below == 0 {
		t.Skipped = "all values on one side of 0.5"
		return t
	}
	fn := float64(n)
	n0, n1 := float64(t.Below), float64(t.Above)
	t.Expected = 2*n0*n1/fn + 1
	variance := 2 * n0 * n1 * (2*n0*n1 - fn) / (fn * fn * (fn - 1))
	t.StdDev = math.Sqrt(variance)
	if t.StdDev == 0 {
		t.Skipped = "degenerate run distribution"
		return t
	}
	t.Z0 = (float64(runs) - t.Expected) / t.StdDev
	t.Passed = -zcrit <= t.Z0 && t.Z0 <= zcrit
	return t
}

// accumulator keeps a running mean and variance (Welford).
type accumulator struct {
	n        int
	mean     float64
	m2       float64
	min, max float64
}

func (a *accumulator) add(v float64) {
	a.n++
	if a.n == 1 {
		a.min, a.max = v, v
	} else {
		a.min = math.Min(a.min, v)
		a.max = math.Max(a.max, v)
	}
	d := v - a.mean
	a.mean += d / float64(a.n)
	a.m2 += d * (v - a.mean)
}

// variance is the unbiased sample variance.
func (a *accumulator) variance() float64 {
	return a.m2 / float64(a.n-1)
}
