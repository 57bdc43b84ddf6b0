package output

import (
	"github.com/rpgo/u01gen/internal/stats"
	"gopkg.in/yaml.v3"
)

// YAMLFormatter serializes the report as YAML.
type YAMLFormatter struct{}

func (y YAMLFormatter) Name() string { return "yaml" }

func (y YAMLFormatter) Format(r *stats.Report) ([]byte, error) {
	return yaml.Marshal(struct {
		stats.Report `yaml:",inline"`
		Passed       bool `yaml:"passed"`
	}{*r, r.Passed()})
}
