package model

import (
	"errors"

	"github.com/yumyai/binassess/pkg/db"
)

const (
	// 139 single-copy markers in bacteria, 162 in archaea.
	BacteriaThreshold = 70
	ArchaeaThreshold  = 81

	ContigColumn         = "contig"
	DefaultClusterColumn = "db.cluster"

	DefaultKingdom = KingdomBacteria
)

var (
	ErrInvalidKingdom   = errors.New("invalid kingdom")
	ErrColumnMissing    = errors.New("column not found")
	ErrColumnDuplicated = errors.New("column appears more than once")
)

// IsInputError reports whether err comes from bad arguments or malformed
// tables rather than from the file system.
func IsInputError(err error) bool {
	return errors.Is(err, ErrInvalidKingdom) ||
		errors.Is(err, ErrColumnMissing) ||
		errors.Is(err, ErrColumnDuplicated) ||
		errors.Is(err, db.ErrMalformedRow)
}
