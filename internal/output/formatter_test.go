package output

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/rpgo/u01gen/internal/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sampleReport(t *testing.T) *stats.Report {
	t.Helper()
	rep, err := stats.Check(strings.NewReader("0.1\n0.9\n0.3\n0.7\n0.45\n0.55\n"), stats.DefaultAlpha)
	require.NoError(t, err)
	rep.Path = "sample.txt"
	return rep
}

func TestGetFormatterByName(t *testing.T) {
	for _, name := range []string{"console", "text", "JSON", " yml ", "csv"} {
		assert.NotNil(t, GetFormatterByName(name), name)
	}
	assert.Nil(t, GetFormatterByName("html"))
	assert.Equal(t, []string{"console", "csv", "json", "yaml"}, AvailableFormatterNames())
}

func TestConsoleFormatter(t *testing.T) {
	out, err := ConsoleFormatter{}.Format(sampleReport(t))
	require.NoError(t, err)
	s := string(out)
	assert.Contains(t, s, "UNIFORMITY CHECK: sample.txt")
	assert.Contains(t, s, "range     PASS")
	assert.Contains(t, s, "mean=0.500000")
	assert.Contains(t, s, "Overall:")
	for _, name := range []string{"series    ", "digits    ", "gaps      ", "poker     "} {
		assert.Contains(t, s, name+"SKIP")
	}
}

func TestConsoleFormatter_FrequencyTests(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 1000; i++ {
		sb.WriteString("0.12345\n")
	}
	rep, err := stats.Check(strings.NewReader(sb.String()), stats.DefaultAlpha)
	require.NoError(t, err)

	out, err := ConsoleFormatter{}.Format(rep)
	require.NoError(t, err)
	assert.Contains(t, string(out), "poker     FAIL  observed=[1000 0 0 0 0]")
	assert.Contains(t, string(out), "Overall: FAIL")
}

func TestJSONFormatter(t *testing.T) {
	out, err := JSONFormatter{}.Format(sampleReport(t))
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Equal(t, "sample.txt", decoded["path"])
	assert.EqualValues(t, 6, decoded["n"])
	assert.Contains(t, decoded, "passed")
	assert.Contains(t, decoded, "variance")
	poker, ok := decoded["poker"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, poker, "chi0")
	assert.Contains(t, poker, "skipped")
}

func TestYAMLFormatter(t *testing.T) {
	out, err := YAMLFormatter{}.Format(sampleReport(t))
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal(out, &decoded))
	assert.Equal(t, "sample.txt", decoded["path"])
	assert.Equal(t, 6, decoded["n"])
	assert.Contains(t, decoded, "passed")
	series, ok := decoded["series"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, series, "chi0")
	assert.Equal(t, 10, series["k"])
}

func TestCSVFormatter(t *testing.T) {
	out, err := CSVFormatter{}.Format(sampleReport(t))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	require.Len(t, lines, 9)
	assert.Equal(t, "Check,Result,Statistic,Low,High", lines[0])
	assert.True(t, strings.HasPrefix(lines[2], "mean,"))
	for i, name := range []string{"series", "digits", "gaps", "poker"} {
		assert.True(t, strings.HasPrefix(lines[5+i], name+",SKIP"), lines[5+i])
	}
}

func TestFormatVerdict(t *testing.T) {
	assert.Equal(t, "PASS", FormatVerdict(true, ""))
	assert.Equal(t, "FAIL", FormatVerdict(false, ""))
	assert.Equal(t, "SKIP (no values)", FormatVerdict(false, "no values"))
}

func TestFormatStat(t *testing.T) {
	assert.Equal(t, "0.123457", FormatStat(0.1234567))
	assert.Equal(t, "-1.959964", FormatStat(-1.9599639845))
}

