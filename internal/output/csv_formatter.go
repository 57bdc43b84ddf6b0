package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/rpgo/u01gen/internal/stats"
)

// CSVFormatter writes one row per check.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(r *stats.Report) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	rows := [][]string{
		{"Check", "Result", "Statistic", "Low", "High"},
		{"range", FormatVerdict(r.Range.Passed, ""), strconv.Itoa(r.Range.Invalid), "0", "0"},
		{"mean", FormatVerdict(r.Mean.Passed, r.Mean.Skipped), FormatStat(r.Mean.Mean), FormatStat(r.Mean.Low), FormatStat(r.Mean.High)},
		{"variance", FormatVerdict(r.Variance.Passed, r.Variance.Skipped), FormatStat(r.Variance.Chi0), FormatStat(r.Variance.Low), FormatStat(r.Variance.High)},
		{"runs", FormatVerdict(r.Runs.Passed, r.Runs.Skipped), FormatStat(r.Runs.Z0), FormatStat(-r.Runs.Critical), FormatStat(r.Runs.Critical)},
		chiSquareRow("series", r.Series.ChiSquare),
		chiSquareRow("digits", r.Digits.ChiSquare),
		chiSquareRow("gaps", r.Gaps.ChiSquare),
		chiSquareRow("poker", r.Poker.ChiSquare),
	}
	if err := w.WriteAll(rows); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// chiSquareRow reports an upper-tail test; its acceptance region is [0, critical].
func chiSquareRow(name string, c stats.ChiSquare) []string {
	return []string{name, FormatVerdict(c.Passed, c.Skipped), FormatStat(c.Chi0), "0", FormatStat(c.Critical)}
}
