package model

import (
	"fmt"

	"github.com/yumyai/binassess/pkg/db"
)

// Columns are the positions of the contig and cluster columns in a
// clustering table.
type Columns struct {
	Contig  int
	Cluster int
}

// width is the minimum number of fields a row needs to hold both columns.
func (c Columns) width() int {
	return max(c.Contig, c.Cluster) + 1
}

// HeaderIndex maps a column name to every position it occupies.
type HeaderIndex map[string][]int

func NewHeaderIndex(header []string) HeaderIndex {
	idx := make(HeaderIndex, len(header))
	for i, name := range header {
		idx[name] = append(idx[name], i)
	}
	return idx
}

// Lookup returns the position of the single column called name.
func (idx HeaderIndex) Lookup(name string) (int, error) {
	positions := idx[name]
	switch len(positions) {
	case 0:
		return -1, fmt.Errorf("%w: %q", ErrColumnMissing, name)
	case 1:
		return positions[0], nil
	default:
		return -1, fmt.Errorf("%w: %q at positions %v", ErrColumnDuplicated, name, positions)
	}
}

// LocateColumns finds the contig column and the cluster column by exact
// header name. Each must appear exactly once.
func LocateColumns(tbl *db.Table, clusterColumn string) (Columns, error) {

	idx := NewHeaderIndex(tbl.Header)

	cluster, err := idx.Lookup(clusterColumn)
	if err != nil {
		return Columns{}, fmt.Errorf("bin table %s: %w", tbl.Path, err)
	}

	contig, err := idx.Lookup(ContigColumn)
	if err != nil {
		return Columns{}, fmt.Errorf("bin table %s: %w", tbl.Path, err)
	}

	return Columns{Contig: contig, Cluster: cluster}, nil
}

// AggregateClusters sums the marker counts of every contig into its
// cluster. Every cluster seen in the table gets an entry, even when none of
// its contigs carry markers.
func AggregateClusters(annotation Annotation, tbl *db.Table, cols Columns) (ClusterMarkers, error) {

	clusters := make(ClusterMarkers)
	width := cols.width()

	for _, row := range tbl.Rows {
		if len(row.Fields) < width {
			return nil, tbl.RowError(row, "expected at least %d columns, found %d", width, len(row.Fields))
		}

		contig := row.Fields[cols.Contig]
		cluster := row.Fields[cols.Cluster]

		binned, ok := clusters[cluster]
		if !ok {
			binned = make(MarkerCounts)
			clusters[cluster] = binned
		}

		for marker, n := range annotation[contig] {
			binned[marker] += n
		}
	}

	return clusters, nil
}
