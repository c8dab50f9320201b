package parser

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/ukaji3/exrecord-go/pkg/exrecord/models"
	"github.com/xuri/excelize/v2"
)

// Worksheet is a forward-only cursor over the rows of one worksheet.
// Rows are numbered from 1 and every row up to the last used row is visited,
// including rows with no cells.
// Column indexes passed to the accessors are zero-based.
type Worksheet struct {
	f        *excelize.File
	name     string
	date1904 bool
	rows     [][]string
	cur      int
}

// Name returns the worksheet name.
func (w *Worksheet) Name() string {
	return w.name
}

// ReadNextRow advances to the next row. Returns false past the last used row.
func (w *Worksheet) ReadNextRow() bool {
	if w.cur >= len(w.rows) {
		return false
	}
	w.cur++
	return true
}

// RowNumber returns the 1-based number of the current row, 0 before the first call to ReadNextRow.
func (w *Worksheet) RowNumber() int {
	return w.cur
}

// LastRow returns the number of the last row with content.
func (w *Worksheet) LastRow() int {
	return len(w.rows)
}

// FieldCount returns the number of cells in the current row up to the last non-empty one.
func (w *Worksheet) FieldCount() int {
	if w.cur == 0 {
		return 0
	}
	return len(w.rows[w.cur-1])
}

// CellName returns the A1-style name of column col in the current row.
func (w *Worksheet) CellName(col int) string {
	return CellName(col+1, w.cur)
}

func (w *Worksheet) raw(col int) string {
	if w.cur == 0 || col < 0 {
		return ""
	}
	row := w.rows[w.cur-1]
	if col >= len(row) {
		return ""
	}
	return row[col]
}

// Raw returns the stored value and native kind of column col.
func (w *Worksheet) Raw(col int) (models.RawValue, error) {
	s := w.raw(col)
	if s == "" {
		return models.RawValue{Kind: models.KindBlank}, nil
	}

	ct, err := w.f.GetCellType(w.name, w.CellName(col))
	if err != nil {
		return models.RawValue{}, fmt.Errorf("cell type of %s!%s: %w", w.name, w.CellName(col), err)
	}
	return models.RawValue{Kind: kindOf(ct, s), Raw: s}, nil
}

// kindOf maps an excelize cell type to a storage kind. Numeric cells carry
// no type attribute, so an unset type with a numeric value is a number.
func kindOf(ct excelize.CellType, raw string) models.CellKind {
	switch ct {
	case excelize.CellTypeBool:
		return models.KindBool
	case excelize.CellTypeDate:
		return models.KindDate
	case excelize.CellTypeError:
		return models.KindError
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString, excelize.CellTypeFormula:
		return models.KindText
	}
	if _, ok := parseNumber(raw); ok {
		return models.KindNumber
	}
	return models.KindText
}

// parseNumber parses a stored numeric value.
func parseNumber(s string) (float64, bool) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

func (w *Worksheet) kindError(col int, kind models.CellKind, want string) error {
	return &KindError{
		Cell: fmt.Sprintf("%s!%s", w.name, w.CellName(col)),
		Kind: kind,
		Want: want,
	}
}

// String returns the formatted text of column col as it is displayed.
// Every storage kind can be read as a string.
func (w *Worksheet) String(col int) (string, error) {
	if w.raw(col) == "" {
		return "", nil
	}
	s, err := w.f.GetCellValue(w.name, w.CellName(col))
	if err != nil {
		return "", fmt.Errorf("value of %s!%s: %w", w.name, w.CellName(col), err)
	}
	return s, nil
}

// Float returns column col as a number.
func (w *Worksheet) Float(col int) (float64, error) {
	v, err := w.Raw(col)
	if err != nil {
		return 0, err
	}
	if v.Kind != models.KindNumber {
		return 0, w.kindError(col, v.Kind, "number")
	}
	f, _ := parseNumber(v.Raw)
	return f, nil
}

// Int returns column col as an integer. The stored number must be integral.
func (w *Worksheet) Int(col int) (int, error) {
	f, err := w.Float(col)
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) || f >= math.MaxInt64 || f < math.MinInt64 {
		return 0, w.kindError(col, models.KindNumber, "integer")
	}
	return int(f), nil
}

// DateTime returns column col as a date and time in UTC.
// Numbers are read as Excel serial dates.
func (w *Worksheet) DateTime(col int) (time.Time, error) {
	v, err := w.Raw(col)
	if err != nil {
		return time.Time{}, err
	}

	switch v.Kind {
	case models.KindNumber:
		f, _ := parseNumber(v.Raw)
		t, err := serialToTime(f, w.date1904)
		if err != nil {
			return time.Time{}, w.kindError(col, v.Kind, "date")
		}
		return t, nil
	case models.KindDate:
		if t, ok := parseISO(v.Raw); ok {
			return t, nil
		}
	}
	return time.Time{}, w.kindError(col, v.Kind, "date")
}

// TimeSpan returns column col as a duration.
// Numbers are read as a count of days.
func (w *Worksheet) TimeSpan(col int) (time.Duration, error) {
	v, err := w.Raw(col)
	if err != nil {
		return 0, err
	}

	switch v.Kind {
	case models.KindNumber:
		f, _ := parseNumber(v.Raw)
		return serialToDuration(f), nil
	case models.KindDate:
		if t, ok := parseISO(v.Raw); ok {
			return sinceMidnight(t), nil
		}
	}
	return 0, w.kindError(col, v.Kind, "time")
}
