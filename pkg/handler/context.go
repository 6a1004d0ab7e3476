package handler

// State shared by the stages of one run.

import (
	"github.com/yumyai/binassess/logger"
	"github.com/yumyai/binassess/pkg/handler/request"
	"github.com/yumyai/binassess/pkg/middle"
	"github.com/yumyai/binassess/pkg/model"
	"go.uber.org/zap"
)

type AssessContext struct {
	RunID   string
	Log     *zap.Logger
	Kingdom model.Kingdom
	Column  string
	Markers model.Annotation // filled by LoadMarkers, read-only afterwards
}

// NewAssessContext validates req and prepares a run-scoped logger.
func NewAssessContext(req *request.AssessRequest) (*AssessContext, error) {

	kingdom, err := req.Validate()
	if err != nil {
		return nil, err
	}

	runID := middle.NewRunID()

	return &AssessContext{
		RunID:   runID,
		Log:     logger.With(zap.String("run_id", runID)),
		Kingdom: kingdom,
		Column:  req.Column,
	}, nil
}
