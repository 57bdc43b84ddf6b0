package output

import "github.com/shopspring/decimal"

// displayPlaces is the rounding used for statistics in human-facing output.
const displayPlaces = 6

// FormatStat rounds a statistic for display.
func FormatStat(v float64) string { return decimal.NewFromFloat(v).StringFixed(displayPlaces) }

// FormatVerdict renders a pass/fail flag, or the skip reason when set.
func FormatVerdict(passed bool, skipped string) string {
	switch {
	case skipped != "":
		return "SKIP (" + skipped + ")"
	case passed:
		return "PASS"
	default:
		return "FAIL"
	}
}
