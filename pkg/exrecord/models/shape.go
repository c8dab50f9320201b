package models

// DefaultHeadingsRow is the heading row used when a record shape declares
// headings without naming a row.
const DefaultHeadingsRow = 1

// RecordShape describes the worksheet a record type is read from.
type RecordShape struct {
	// TypeName is the name of the record type.
	TypeName string `json:"type_name"`
	// Worksheet is the worksheet name. Empty means TypeName.
	Worksheet string `json:"worksheet,omitempty"`
	// HasHeadings reports whether the worksheet carries a heading row.
	HasHeadings bool `json:"has_headings"`
	// HeadingsRow is the 1-based row holding the headings.
	HeadingsRow int `json:"headings_row"`
	// SkipBlankRows drops rows where no mapped column has content.
	SkipBlankRows bool `json:"skip_blank_rows"`
}

// SheetName returns the worksheet the shape is read from.
func (s RecordShape) SheetName() string {
	if s.Worksheet != "" {
		return s.Worksheet
	}
	return s.TypeName
}

// HeadingRow returns the heading row number, applying the default.
func (s RecordShape) HeadingRow() int {
	if s.HeadingsRow < 1 {
		return DefaultHeadingsRow
	}
	return s.HeadingsRow
}

// FirstDataRow returns the 1-based row number of the first data row.
func (s RecordShape) FirstDataRow() int {
	if s.HasHeadings {
		return s.HeadingRow() + 1
	}
	return 1
}
