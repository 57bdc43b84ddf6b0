// Package output renders what the user sees: the one-line run summary and
// uniformity check reports.
package output

import (
	"sort"
	"strings"

	"github.com/rpgo/u01gen/internal/stats"
)

// Formatter renders a uniformity check report.
// Implementations should be pure (no side effects besides deterministic formatting).
type Formatter interface {
	Format(report *stats.Report) ([]byte, error)
	// Name returns a short identifier used on the command line.
	Name() string
}

var builtInFormatters = []Formatter{
	ConsoleFormatter{},
	CSVFormatter{},
	JSONFormatter{},
	YAMLFormatter{},
}

// GetFormatterByName fetches a registered formatter, or nil.
func GetFormatterByName(name string) Formatter {
	n := NormalizeFormatName(name)
	for _, f := range builtInFormatters {
		if f.Name() == n {
			return f
		}
	}
	return nil
}

// aliasMap provides user-friendly synonyms for format names.
var aliasMap = map[string]string{
	"text": "console",
	"txt":  "console",
	"yml":  "yaml",
}

// NormalizeFormatName lowers and resolves aliases.
func NormalizeFormatName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if mapped, ok := aliasMap[n]; ok {
		return mapped
	}
	return n
}

// AvailableFormatterNames returns the canonical formatter names.
func AvailableFormatterNames() []string {
	names := make([]string, 0, len(builtInFormatters))
	for _, f := range builtInFormatters {
		names = append(names, f.Name())
	}
	sort.Strings(names)
	return names
}
