package model

import (
	"strings"

	"github.com/yumyai/binassess/logger"
	"github.com/yumyai/binassess/pkg/db"
	"go.uber.org/zap"
)

// ParseAnnotation builds the contig -> marker count index from a marker
// table (contig<TAB>m1,m2,...). A marker listed n times counts n.
// Contigs listed on several rows accumulate.
func ParseAnnotation(tbl *db.Table) (Annotation, error) {

	annotation := make(Annotation, len(tbl.Rows))

	for _, row := range tbl.Rows {
		if len(row.Fields) < 2 {
			return nil, tbl.RowError(row, "expected contig and marker columns, found %d column(s)", len(row.Fields))
		}

		contig := row.Fields[0]
		counts, seen := annotation[contig]
		if seen {
			logger.Warn("Contig listed more than once in marker table, merging counts",
				zap.String("table", tbl.Path), zap.String("contig", contig), zap.Int("line", row.Line))
		} else {
			counts = make(MarkerCounts)
			annotation[contig] = counts
		}

		for _, marker := range strings.Split(row.Fields[1], ",") {
			marker = strings.TrimSpace(marker)
			if marker == "" { // trailing or doubled commas
				continue
			}
			counts[marker]++
		}
	}

	return annotation, nil
}

// LoadAnnotation reads and parses the marker table at path.
func LoadAnnotation(path string) (Annotation, error) {

	tbl, err := db.ReadTable(path)
	if err != nil {
		return nil, err
	}

	return ParseAnnotation(tbl)
}
