package models

import "fmt"

// CellRange represents 1-based, inclusive cell coordinate bounds.
type CellRange struct {
	// R1 is the start row.
	R1 int `json:"r1"`
	// C1 is the start column.
	C1 int `json:"c1"`
	// R2 is the end row.
	R2 int `json:"r2"`
	// C2 is the end column.
	C2 int `json:"c2"`
}

// IsZero reports whether the range is unset.
func (r CellRange) IsZero() bool {
	return r == CellRange{}
}

// Ref renders the range in A1:B2 notation using name to format a single cell.
func (r CellRange) Ref(name func(col, row int) string) string {
	if r.IsZero() {
		return ""
	}
	start, end := name(r.C1, r.R1), name(r.C2, r.R2)
	if start == end {
		return start
	}
	return fmt.Sprintf("%s:%s", start, end)
}

// SheetInfo summarises one worksheet of a workbook.
type SheetInfo struct {
	// Name is the worksheet name.
	Name string `json:"name"`
	// Dimension is the range declared by the worksheet, which may include styled empty cells.
	Dimension string `json:"dimension,omitempty"`
	// UsedRange is the bounding box of cells with content.
	UsedRange string `json:"used_range,omitempty"`
	// LastRow is the last row with content, 0 for an empty worksheet.
	LastRow int `json:"last_row"`
}
