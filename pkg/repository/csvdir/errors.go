package csvdir

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for flat-file storage
var (
	ErrMalformedTemplate  = goerr.New("malformed questionnaire template")
	ErrMalformedRecord    = goerr.New("malformed assessment record")
	ErrNoAssessmentRecord = goerr.New("no assessment record found")
)

// Context keys for error values
const (
	PathKey   = "path"
	RowKey    = "row"
	ColumnKey = "column"
	VendorKey = "vendor"
)
