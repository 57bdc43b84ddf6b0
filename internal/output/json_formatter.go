package output

import (
	"encoding/json"

	"github.com/rpgo/u01gen/internal/stats"
)

// JSONFormatter serializes the report as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(r *stats.Report) ([]byte, error) {
	return json.MarshalIndent(struct {
		*stats.Report
		Passed bool `json:"passed"`
	}{r, r.Passed()}, "", "  ")
}
