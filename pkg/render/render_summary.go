package render

import (
	"bytes"
	"io"
	"math"
	"strconv"
	"strings"
	"text/template"

	"github.com/yumyai/binassess/logger"
	"github.com/yumyai/binassess/pkg/model"
	"go.uber.org/zap"
)

var summary_template *template.Template

var SummaryHeader = []string{
	"table",
	"number_binned_unique_markers",
	"number_of_clusters_over_threshold",
	"median_completeness",
	"cluster_completeness_product",
}

// init initializes the template used for the summary table.
func init() {
	rowTmpl := "{{ range . }}" +
		"{{ .Table }}\t{{ .UniqueMarkers }}\t{{ .Clusters }}\t{{ float .MedianCompleteness }}\t{{ float .Product }}\n" +
		"{{ end }}"

	summary_template = template.Must(template.New("summary").
		Funcs(template.FuncMap{"float": FormatFloat}).
		Parse(strings.Join(SummaryHeader, "\t") + "\n" + rowTmpl))
}

// FormatFloat writes the shortest decimal that round-trips, keeping a
// ".0" on whole numbers and "nan" for NaN (76 -> "76.0", 76.5 -> "76.5").
func FormatFloat(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}

	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}

// RenderSummary writes the header and one row per table summary, in the
// order given.
func RenderSummary(w io.Writer, summaries []model.TableSummary) error {
	if err := summary_template.Execute(w, summaries); err != nil {
		logger.Error("Error rendering summary table", zap.Error(err))
		return err
	}
	return nil
}

// SummaryBytes renders the summary table into memory.
func SummaryBytes(summaries []model.TableSummary) ([]byte, error) {
	var buf bytes.Buffer
	if err := RenderSummary(&buf, summaries); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
