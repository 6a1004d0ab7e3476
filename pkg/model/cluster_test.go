package model

import (
	"errors"
	"reflect"
	"testing"

	"github.com/yumyai/binassess/pkg/db"
)

func TestLocateColumns(t *testing.T) {

	tests := []struct {
		name    string
		header  string
		column  string
		want    Columns
		wantErr error
	}{
		{
			name:   "DefaultColumn",
			header: "contig\tlength\tdb.cluster\n",
			column: DefaultClusterColumn,
			want:   Columns{Contig: 0, Cluster: 2},
		},
		{
			name:   "ClusterColumnFirst",
			header: "bin\tcontig\n",
			column: "bin",
			want:   Columns{Contig: 1, Cluster: 0},
		},
		{
			name:    "MissingClusterColumn",
			header:  "contig\tcluster\n",
			column:  DefaultClusterColumn,
			wantErr: ErrColumnMissing,
		},
		{
			name:    "DuplicatedClusterColumn",
			header:  "db.cluster\tcontig\tdb.cluster\n",
			column:  DefaultClusterColumn,
			wantErr: ErrColumnDuplicated,
		},
		{
			name:    "MissingContigColumn",
			header:  "name\tdb.cluster\n",
			column:  DefaultClusterColumn,
			wantErr: ErrColumnMissing,
		},
		{
			name:    "DuplicatedContigColumn",
			header:  "contig\tdb.cluster\tcontig\n",
			column:  DefaultClusterColumn,
			wantErr: ErrColumnDuplicated,
		},
		{
			name:    "EmptyTable",
			header:  "",
			column:  DefaultClusterColumn,
			wantErr: ErrColumnMissing,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl := db.ParseTable("bins.tsv", tt.header)

			got, err := LocateColumns(tbl, tt.column)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				if !IsInputError(err) {
					t.Errorf("expected %v to be an input error", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("LocateColumns = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestAggregateClusters(t *testing.T) {

	annotation := Annotation{
		"c1": {"PF01": 2, "PF02": 1},
		"c2": {"PF02": 1, "PF03": 1},
		"c3": {"PF04": 1},
	}

	tbl := db.ParseTable("bins.tsv",
		"contig\tdb.cluster\n"+
			"c1\tb1\n"+
			"c2\tb1\n"+
			"c3\tb2\n"+
			"c9\tb3\n") // c9 has no markers

	got, err := AggregateClusters(annotation, tbl, Columns{Contig: 0, Cluster: 1})
	if err != nil {
		t.Fatalf("AggregateClusters: %v", err)
	}

	want := ClusterMarkers{
		"b1": {"PF01": 2, "PF02": 2, "PF03": 1},
		"b2": {"PF04": 1},
		"b3": {},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("AggregateClusters = %v, want %v", got, want)
	}

	// The annotation must not be modified by aggregation.
	if annotation["c1"]["PF02"] != 1 {
		t.Errorf("annotation was mutated: %v", annotation["c1"])
	}
}

func TestAggregateClustersOrderInvariant(t *testing.T) {

	annotation := Annotation{
		"c1": {"PF01": 1, "PF02": 1},
		"c2": {"PF02": 1, "PF03": 1},
		"c3": {"PF04": 3},
	}
	cols := Columns{Contig: 1, Cluster: 0}

	forward := db.ParseTable("a.tsv", "db.cluster\tcontig\nb1\tc1\nb1\tc2\nb1\tc3\n")
	reverse := db.ParseTable("b.tsv", "db.cluster\tcontig\nb1\tc3\nb1\tc2\nb1\tc1\n")

	a, err := AggregateClusters(annotation, forward, cols)
	if err != nil {
		t.Fatalf("forward: %v", err)
	}
	b, err := AggregateClusters(annotation, reverse, cols)
	if err != nil {
		t.Fatalf("reverse: %v", err)
	}

	if !reflect.DeepEqual(a, b) {
		t.Errorf("aggregation depends on row order: %v vs %v", a, b)
	}
	if n := NonDuplicated(a["b1"]); n != 2 {
		t.Errorf("NonDuplicated = %d, want 2", n)
	}
}

func TestAggregateClustersShortRow(t *testing.T) {

	tbl := db.ParseTable("bins.tsv", "contig\tlength\tdb.cluster\nc1\t1000\tb1\nc2\t800\n")

	_, err := AggregateClusters(Annotation{}, tbl, Columns{Contig: 0, Cluster: 2})

	var rowErr *db.RowError
	if !errors.As(err, &rowErr) {
		t.Fatalf("expected *db.RowError, got %v", err)
	}
	if rowErr.Line != 3 {
		t.Errorf("Line = %d, want 3", rowErr.Line)
	}
	if !IsInputError(err) {
		t.Errorf("expected a short row to be an input error")
	}
}
