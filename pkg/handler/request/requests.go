package request

import (
	"errors"
	"fmt"

	"github.com/yumyai/binassess/internal/util"
	"github.com/yumyai/binassess/pkg/model"
)

var ErrMissingArgument = errors.New("missing argument")

// One scoring run: a marker table against one or more clusterings.
type AssessRequest struct {
	MarkerTable   string   // marker table from make_marker_table
	ClusterTables []string // clustering tables, scored in this order
	Output        string   // summary table path, overwritten
	Column        string   // header of the bin column
	Kingdom       string   // bacteria | archaea
}

// Validate checks the request before any table is read and returns the
// parsed kingdom. An empty Column falls back to db.cluster.
func (r *AssessRequest) Validate() (model.Kingdom, error) {

	kingdom, err := model.ParseKingdom(r.Kingdom)
	if err != nil {
		return 0, err
	}

	if r.Column == "" {
		r.Column = model.DefaultClusterColumn
	}

	if r.MarkerTable == "" {
		return 0, fmt.Errorf("%w: marker table", ErrMissingArgument)
	}
	if len(r.ClusterTables) == 0 {
		return 0, fmt.Errorf("%w: at least one clustering table", ErrMissingArgument)
	}
	if r.Output == "" {
		return 0, fmt.Errorf("%w: output path", ErrMissingArgument)
	}

	inputs := append([]string{r.MarkerTable}, r.ClusterTables...)
	for _, path := range inputs {
		if !util.FileExists(path) {
			return 0, fmt.Errorf("cannot read input table %s: not a file", path)
		}
	}
	if !util.ParentDirExists(r.Output) {
		return 0, fmt.Errorf("cannot write output %s: directory does not exist", r.Output)
	}

	return kingdom, nil
}

// IsUsageError reports whether err should be treated as a bad invocation.
func IsUsageError(err error) bool {
	return errors.Is(err, ErrMissingArgument) || model.IsInputError(err)
}
