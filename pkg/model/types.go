package model

// Marker gene ID (e.g. a Pfam accession) -> occurrences.
type MarkerCounts map[string]int

// Contig ID -> marker counts on that contig.
type Annotation map[string]MarkerCounts

// Cluster ID -> marker counts summed over the cluster's contigs.
type ClusterMarkers map[string]MarkerCounts

type ClusterScore struct {
	ClusterID     string
	NonDuplicated int  // markers seen exactly once in the cluster
	Accepted      bool // NonDuplicated is over the kingdom threshold
}

// Summary of one clustering table, computed over accepted clusters only.
type TableSummary struct {
	Table              string
	UniqueMarkers      int
	Clusters           int
	MedianCompleteness float64 // NaN when no cluster was accepted
	Product            float64
}
