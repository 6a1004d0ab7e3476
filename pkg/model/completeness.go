package model

import (
	"math"
	"slices"
)

// NonDuplicated counts markers present exactly once. Higher counts mean
// the marker was duplicated, i.e. the bin is contaminated for that gene.
func NonDuplicated(counts MarkerCounts) int {
	n := 0
	for _, c := range counts {
		if c == 1 {
			n++
		}
	}
	return n
}

// ScoreClusters scores every cluster against the kingdom threshold.
// Results are ordered by cluster ID.
func ScoreClusters(clusters ClusterMarkers, kingdom Kingdom) []ClusterScore {

	threshold := kingdom.Threshold()
	scores := make([]ClusterScore, 0, len(clusters))

	for id, counts := range clusters {
		n := NonDuplicated(counts)
		scores = append(scores, ClusterScore{
			ClusterID:     id,
			NonDuplicated: n,
			Accepted:      n > threshold,
		})
	}

	slices.SortFunc(scores, func(a, b ClusterScore) int {
		switch {
		case a.ClusterID < b.ClusterID:
			return -1
		case a.ClusterID > b.ClusterID:
			return 1
		}
		return 0
	})

	return scores
}

// Summarize reduces cluster scores to the per-table summary, looking only
// at accepted clusters.
func Summarize(table string, scores []ClusterScore) TableSummary {

	accepted := make([]int, 0, len(scores))
	total := 0
	for _, s := range scores {
		if !s.Accepted {
			continue
		}
		total += s.NonDuplicated
		accepted = append(accepted, s.NonDuplicated)
	}

	median := Median(accepted)

	return TableSummary{
		Table:              table,
		UniqueMarkers:      total,
		Clusters:           len(accepted),
		MedianCompleteness: median,
		Product:            float64(len(accepted)) * median,
	}
}

// Median of values; the mean of the two middle values for even lengths
// and NaN for an empty slice. values is not modified.
func Median(values []int) float64 {

	if len(values) == 0 {
		return math.NaN()
	}

	sorted := slices.Clone(values)
	slices.Sort(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return float64(sorted[mid])
	}
	return float64(sorted[mid-1]+sorted[mid]) / 2
}
