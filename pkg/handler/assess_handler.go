package handler

import (
	"fmt"
	"os"

	"github.com/yumyai/binassess/pkg/db"
	"github.com/yumyai/binassess/pkg/handler/request"
	"github.com/yumyai/binassess/pkg/middle"
	"github.com/yumyai/binassess/pkg/model"
	"github.com/yumyai/binassess/pkg/render"
	"go.uber.org/zap"
)

// LoadMarkers builds the contig marker index once per run.
func (actx *AssessContext) LoadMarkers(path string) error {
	return middle.Stage(actx.Log, "load markers", func() error {
		markers, err := model.LoadAnnotation(path)
		if err != nil {
			return err
		}
		actx.Markers = markers
		actx.Log.Info("Loaded marker table",
			zap.String("table", path), zap.Int("contigs", len(markers)))
		return nil
	})
}

// ScoreTable aggregates one clustering table and summarizes its accepted
// clusters.
func (actx *AssessContext) ScoreTable(path string) (model.TableSummary, error) {

	var summary model.TableSummary

	err := middle.Stage(actx.Log, "score "+path, func() error {
		actx.Log.Info("Considering " + path)

		tbl, err := db.ReadTable(path)
		if err != nil {
			return err
		}

		cols, err := model.LocateColumns(tbl, actx.Column)
		if err != nil {
			return err
		}

		clusters, err := model.AggregateClusters(actx.Markers, tbl, cols)
		if err != nil {
			return err
		}

		scores := model.ScoreClusters(clusters, actx.Kingdom)
		for _, s := range scores {
			actx.Log.Debug("Cluster scored",
				zap.String("cluster", s.ClusterID),
				zap.Int("non_duplicated", s.NonDuplicated),
				zap.Bool("accepted", s.Accepted),
			)
		}

		summary = model.Summarize(path, scores)
		actx.Log.Info("Table summary",
			zap.String("table", path),
			zap.Int("clusters", len(scores)),
			zap.Int("clusters_over_threshold", summary.Clusters),
			zap.Int("unique_markers", summary.UniqueMarkers),
			zap.Float64("median_completeness", summary.MedianCompleteness),
		)
		return nil
	})

	return summary, err
}

// Assess scores every clustering table of req in order. It stops at the
// first failing table.
func Assess(req request.AssessRequest) ([]model.TableSummary, error) {

	actx, err := NewAssessContext(&req)
	if err != nil {
		return nil, err
	}

	actx.Log.Info("Assessing clusterings",
		zap.String("kingdom", actx.Kingdom.String()),
		zap.Int("threshold", actx.Kingdom.Threshold()),
		zap.String("column", actx.Column),
		zap.Int("tables", len(req.ClusterTables)),
	)

	if err := actx.LoadMarkers(req.MarkerTable); err != nil {
		return nil, err
	}

	summaries := make([]model.TableSummary, 0, len(req.ClusterTables))
	for _, path := range req.ClusterTables {
		summary, err := actx.ScoreTable(path)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
	}

	return summaries, nil
}

// Run assesses req and writes the summary table. Nothing is written
// unless every table was scored.
func Run(req request.AssessRequest) error {

	summaries, err := Assess(req)
	if err != nil {
		return err
	}

	out, err := render.SummaryBytes(summaries)
	if err != nil {
		return err
	}

	if err := os.WriteFile(req.Output, out, 0o644); err != nil {
		return fmt.Errorf("write output %s: %w", req.Output, err)
	}

	return nil
}
