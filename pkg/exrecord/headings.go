package exrecord

import (
	"fmt"

	"github.com/ukaji3/exrecord-go/pkg/exrecord/models"
)

// ReadHeadings advances ws to the heading row of shape and returns the text
// of every cell in it. Returns nil when the shape has no headings or the
// worksheet ends before the heading row.
func ReadHeadings(ws Worksheet, shape models.RecordShape) ([]string, error) {
	if !shape.HasHeadings {
		return nil, nil
	}

	row := shape.HeadingRow()
	for ws.RowNumber() < row {
		if !ws.ReadNextRow() {
			return nil, nil
		}
	}
	if ws.RowNumber() != row {
		return nil, nil
	}

	headings := make([]string, ws.FieldCount())
	for col := range headings {
		s, err := ws.String(col)
		if err != nil {
			return nil, fmt.Errorf("read heading row %d: %w", row, err)
		}
		headings[col] = s
	}
	return headings, nil
}
