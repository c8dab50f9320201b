package parser

import (
	"strings"

	"github.com/ukaji3/exrecord-go/pkg/exrecord/models"
	"github.com/xuri/excelize/v2"
)

// CellName returns the A1-style name of a 1-based column and row.
// Returns an empty string for coordinates outside the worksheet limits.
func CellName(col, row int) string {
	name, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return ""
	}
	return name
}

// ColumnName returns the letter name of a 1-based column.
func ColumnName(col int) string {
	name, err := excelize.ColumnNumberToName(col)
	if err != nil {
		return ""
	}
	return name
}

// ParseRange parses a reference such as $A$1:$D$10, A1:D10 or a single A1.
// A leading sheet qualifier ('Sheet 1'!A1:B2) is ignored.
func ParseRange(ref string) (models.CellRange, bool) {
	if idx := strings.LastIndex(ref, "!"); idx >= 0 {
		ref = ref[idx+1:]
	}
	ref = strings.ReplaceAll(strings.TrimSpace(ref), "$", "")
	if ref == "" {
		return models.CellRange{}, false
	}

	parts := strings.Split(ref, ":")
	if len(parts) > 2 {
		return models.CellRange{}, false
	}
	if len(parts) == 1 {
		parts = append(parts, parts[0])
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return models.CellRange{}, false
	}
	endCol, endRow, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return models.CellRange{}, false
	}

	return models.CellRange{
		R1: startRow,
		C1: startCol,
		R2: endRow,
		C2: endCol,
	}, true
}
