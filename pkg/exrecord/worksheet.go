package exrecord

import (
	"github.com/ukaji3/exrecord-go/pkg/exrecord/coerce"
	"github.com/ukaji3/exrecord-go/pkg/exrecord/models"
	"github.com/ukaji3/exrecord-go/pkg/exrecord/parser"
)

// Worksheet is the row cursor the conversion engine reads from.
// Column indexes are zero-based; row numbers are 1-based.
type Worksheet interface {
	coerce.Cell

	Name() string
	// ReadNextRow advances to the next row, returning false past LastRow.
	ReadNextRow() bool
	RowNumber() int
	// LastRow is the number of the last row with content.
	LastRow() int
	// FieldCount is the number of cells in the current row.
	FieldCount() int
	Raw(col int) (models.RawValue, error)
}

var _ Worksheet = (*parser.Worksheet)(nil)
