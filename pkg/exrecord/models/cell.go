// Package models defines data structures shared by the record conversion engine.
package models

// CellKind is the native storage kind of a worksheet cell.
type CellKind int

const (
	// KindBlank is a cell with no content.
	KindBlank CellKind = iota
	// KindNumber is a numeric cell. Dates and times stored as Excel serials are numbers.
	KindNumber
	// KindText is a shared, inline or formula string.
	KindText
	// KindBool is a boolean cell.
	KindBool
	// KindDate is a cell stored as an ISO 8601 date string.
	KindDate
	// KindError is a cell holding a formula error such as #DIV/0!.
	KindError
)

var kindNames = [...]string{"Blank", "Number", "Text", "Boolean", "Date", "Error"}

func (k CellKind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Unknown"
	}
	return kindNames[k]
}

// RawValue is a cell value as stored in the worksheet.
type RawValue struct {
	// Kind is the native storage kind.
	Kind CellKind `json:"kind"`
	// Raw is the stored value without number formatting applied.
	Raw string `json:"raw"`
}

// IsBlank reports whether the cell carries no content.
func (v RawValue) IsBlank() bool {
	return v.Kind == KindBlank || v.Raw == ""
}
