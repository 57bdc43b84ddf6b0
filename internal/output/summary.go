package output

import (
	"fmt"
	"io"
	"strconv"

	"github.com/rpgo/u01gen/internal/generate"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Message keys. The English text doubles as the key.
const (
	keyDone  = "Done: %s numbers in [0,1) -> %s (seed=%s)"
	keyError = "Error: %s"
)

var summaryCatalog = mustBuildCatalog()

func mustBuildCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	entries := []struct {
		tag  language.Tag
		key  string
		text string
	}{
		{language.English, keyDone, keyDone},
		{language.English, keyError, keyError},
		{language.Spanish, keyDone, "Listo: %s numeros en [0,1) -> %s (seed=%s)"},
		{language.Spanish, keyError, "Error: %s"},
	}
	for _, e := range entries {
		if err := b.SetString(e.tag, e.key, e.text); err != nil {
			panic(fmt.Sprintf("summary catalog: %v", err))
		}
	}
	return b
}

// Reporter prints the one-line outcome of a run. Numbers are passed through as
// plain digits so the line never picks up locale grouping.
type Reporter struct {
	printer *message.Printer
}

// NewReporter returns a reporter for lang ("en", "es"). Unknown languages
// fall back to English.
func NewReporter(lang string) *Reporter {
	tag, err := language.Parse(lang)
	if err != nil {
		tag = language.English
	}
	return &Reporter{printer: message.NewPrinter(tag, message.Catalog(summaryCatalog))}
}

// Summary formats the success line for res.
func (r *Reporter) Summary(res *generate.Result) string {
	return r.printer.Sprintf(keyDone,
		strconv.Itoa(res.Count), res.OutputPath, strconv.FormatInt(res.Seed, 10))
}

// Failure formats the single error line for err.
func (r *Reporter) Failure(err error) string {
	return r.printer.Sprintf(keyError, err.Error())
}

// WriteSummary prints the success line to w.
func (r *Reporter) WriteSummary(w io.Writer, res *generate.Result) error {
	_, err := fmt.Fprintln(w, r.Summary(res))
	return err
}

// WriteFailure prints the error line to w.
func (r *Reporter) WriteFailure(w io.Writer, err error) error {
	_, werr := fmt.Fprintln(w, r.Failure(err))
	return werr
}
