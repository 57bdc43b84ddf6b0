package stats

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/rpgo/u01gen/internal/sampler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample(seed int64, n int) string {
	var buf bytes.Buffer
	s := sampler.New(seed)
	for i := 0; i < n; i++ {
		buf.WriteString(strconv.FormatFloat(s.Float64(), 'f', -1, 64))
		buf.WriteByte('\n')
	}
	return buf.String()
}

func TestQuantiles(t *testing.T) {
	assert.InDelta(t, 1.959964, normalQuantile(0.975), 1e-6)
	assert.InDelta(t, 0.0, normalQuantile(0.5), 1e-12)
	assert.InDelta(t, 129.561, chiSquareQuantile(0.975, 100), 0.05)
	assert.InDelta(t, 74.222, chiSquareQuantile(0.025, 100), 0.05)
}

func TestCheck_GeneratedSamplePasses(t *testing.T) {
	rep, err := Check(strings.NewReader(sample(123456789, 100_000)), DefaultAlpha)
	require.NoError(t, err)

	assert.Equal(t, 100_000, rep.N)
	assert.True(t, rep.Range.Passed)
	assert.Equal(t, 100_000, rep.Range.Lines)
	assert.True(t, rep.Mean.Passed, "mean %v not in [%v, %v]", rep.Mean.Mean, rep.Mean.Low, rep.Mean.High)
	assert.True(t, rep.Variance.Passed, "chi0 %v not in [%v, %v]", rep.Variance.Chi0, rep.Variance.Low, rep.Variance.High)
	assert.True(t, rep.Runs.Passed, "z0 %v", rep.Runs.Z0)
	assert.True(t, rep.Series.Passed, "series chi0 %v > %v", rep.Series.Chi0, rep.Series.Critical)
	assert.True(t, rep.Digits.Passed, "digits chi0 %v > %v", rep.Digits.Chi0, rep.Digits.Critical)
	assert.True(t, rep.Gaps.Passed, "gaps chi0 %v > %v", rep.Gaps.Chi0, rep.Gaps.Critical)
	assert.True(t, rep.Poker.Passed, "poker chi0 %v > %v", rep.Poker.Chi0, rep.Poker.Critical)
	assert.True(t, rep.Passed())
	assert.Equal(t, 99_999, rep.Variance.DF)
}

func TestCheck_RejectsShiftedMean(t *testing.T) {
	var sb strings.Builder
	s := sampler.New(5)
	for i := 0; i < 10_000; i++ {
		sb.WriteString(strconv.FormatFloat(s.Float64()*0.9, 'f', -1, 64))
		sb.WriteByte('\n')
	}
	rep, err := Check(strings.NewReader(sb.String()), DefaultAlpha)
	require.NoError(t, err)
	assert.False(t, rep.Mean.Passed)
	assert.False(t, rep.Passed())
}

func TestCheck_RejectsAlternatingRuns(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 1000; i++ {
		if i%2 == 0 {
			sb.WriteString("0.1\n")
		} else {
			sb.WriteString("0.9\n")
		}
	}
	rep, err := Check(strings.NewReader(sb.String()), DefaultAlpha)
	require.NoError(t, err)
	assert.Equal(t, 1000, rep.Runs.Runs)
	assert.False(t, rep.Runs.Passed)
}

func TestCheck_InvalidLines(t *testing.T) {
	rep, err := Check(strings.NewReader("0.1\nabc\n1.0\n0.7\n-0.2\n"), DefaultAlpha)
	require.NoError(t, err)
	assert.False(t, rep.Range.Passed)
	assert.Equal(t, 5, rep.Range.Lines)
	assert.Equal(t, 3, rep.Range.Invalid)
	assert.Equal(t, 2, rep.Range.FirstInvalidLine)
	assert.Equal(t, 2, rep.N)
	assert.Equal(t, 0.1, rep.Range.Min)
	assert.Equal(t, 0.7, rep.Range.Max)
}

func TestCheck_Empty(t *testing.T) {
	rep, err := Check(strings.NewReader(""), DefaultAlpha)
	require.NoError(t, err)
	assert.Zero(t, rep.N)
	assert.True(t, rep.Range.Passed)
	assert.NotEmpty(t, rep.Mean.Skipped)
	assert.NotEmpty(t, rep.Variance.Skipped)
	assert.NotEmpty(t, rep.Runs.Skipped)
	assert.NotEmpty(t, rep.Series.Skipped)
	assert.NotEmpty(t, rep.Digits.Skipped)
	assert.NotEmpty(t, rep.Gaps.Skipped)
	assert.NotEmpty(t, rep.Poker.Skipped)
	assert.False(t, rep.Passed())
}

func TestCheck_OneSided(t *testing.T) {
	rep, err := Check(strings.NewReader("0.1\n0.2\n0.3\n"), DefaultAlpha)
	require.NoError(t, err)
	assert.Equal(t, 3, rep.Runs.Below)
	assert.NotEmpty(t, rep.Runs.Skipped)
	assert.False(t, rep.Runs.Passed)
}

func TestCheck_InvalidAlpha(t *testing.T) {
	for _, alpha := range []float64{0, 1, -0.5, 2} {
		_, err := Check(strings.NewReader("0.5\n"), alpha)
		assert.ErrorIs(t, err, ErrInvalidAlpha)
	}
}

func TestCheckFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "u01.txt")
	require.NoError(t, os.WriteFile(path, []byte(sample(1, 1000)), 0o644))

	rep, err := CheckFile(path, DefaultAlpha)
	require.NoError(t, err)
	assert.Equal(t, path, rep.Path)
	assert.Equal(t, 1000, rep.N)
}

func TestCheckFile_Missing(t *testing.T) {
	_, err := CheckFile(filepath.Join(t.TempDir(), "nope.txt"), DefaultAlpha)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestAccumulator(t *testing.T) {
	var acc accumulator
	for _, v := range []float64{0.2, 0.4, 0.6, 0.8} {
		acc.add(v)
	}
	assert.InDelta(t, 0.5, acc.mean, 1e-12)
	assert.InDelta(t, 0.0666666666, acc.variance(), 1e-9)
	assert.Equal(t, 0.2, acc.min)
	assert.Equal(t, 0.8, acc.max)
}
