package output

import (
	"bytes"
	"fmt"

	"github.com/rpgo/u01gen/internal/stats"
)

// ConsoleFormatter renders a plain text report.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(r *stats.Report) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "UNIFORMITY CHECK: %s\n", r.Path)
	fmt.Fprintln(&buf, "================================")
	fmt.Fprintf(&buf, "Values: %d  Alpha: %s\n", r.N, FormatStat(r.Alpha))
	fmt.Fprintln(&buf)

	rc := r.Range
	fmt.Fprintf(&buf, "range     %s  lines=%d invalid=%d", FormatVerdict(rc.Passed, ""), rc.Lines, rc.Invalid)
	if rc.FirstInvalidLine > 0 {
		fmt.Fprintf(&buf, " first_invalid_line=%d", rc.FirstInvalidLine)
	}
	fmt.Fprintf(&buf, " min=%s max=%s\n", FormatStat(rc.Min), FormatStat(rc.Max))

	m := r.Mean
	fmt.Fprintf(&buf, "mean      %s  mean=%s accept=[%s, %s]\n",
		FormatVerdict(m.Passed, m.Skipped), FormatStat(m.Mean), FormatStat(m.Low), FormatStat(m.High))

	v := r.Variance
	fmt.Fprintf(&buf, "variance  %s  s2=%s chi0=%s df=%d accept=[%s, %s]\n",
		FormatVerdict(v.Passed, v.Skipped), FormatStat(v.SampleVariance), FormatStat(v.Chi0), v.DF, FormatStat(v.Low), FormatStat(v.High))

	ru := r.Runs
	fmt.Fprintf(&buf, "runs      %s  runs=%d above=%d below=%d z0=%s accept=[%s, %s]\n",
		FormatVerdict(ru.Passed, ru.Skipped), ru.Runs, ru.Above, ru.Below, FormatStat(ru.Z0), FormatStat(-ru.Critical), FormatStat(ru.Critical))

	writeChiSquare(&buf, "series", r.Series.ChiSquare, fmt.Sprintf("k=%d pairs=%d", r.Series.K, r.Series.Pairs))
	writeChiSquare(&buf, "digits", r.Digits.ChiSquare, fmt.Sprintf("observed=%v", r.Digits.Observed))
	writeChiSquare(&buf, "gaps", r.Gaps.ChiSquare, fmt.Sprintf("gaps=%d observed=%v", r.Gaps.Gaps, r.Gaps.Observed))
	writeChiSquare(&buf, "poker", r.Poker.ChiSquare, fmt.Sprintf("observed=%v", r.Poker.Observed))

	fmt.Fprintln(&buf)
	fmt.Fprintf(&buf, "Overall: %s\n", FormatVerdict(r.Passed(), ""))
	return buf.Bytes(), nil
}

func writeChiSquare(buf *bytes.Buffer, name string, c stats.ChiSquare, detail string) {
	fmt.Fprintf(buf, "%-9s %s  %s chi0=%s df=%d critical=%s\n",
		name, FormatVerdict(c.Passed, c.Skipped), detail, FormatStat(c.Chi0), c.DF, FormatStat(c.Critical))
}
