package exrecord

import (
	"fmt"
	"regexp"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/cases"

	"github.com/ukaji3/exrecord-go/pkg/exrecord/models"
)

// columnNamePattern matches column names in letter notation: A to ZZZ.
var columnNamePattern = regexp.MustCompile(`^[A-Z]{1,3}$`)

// IsColumnName reports whether s is a column name such as "B" or "AA".
func IsColumnName(s string) bool {
	return columnNamePattern.MatchString(s)
}

// ColumnNameToIndex converts a column name to its 1-based index: A is 1, Z is 26, AA is 27.
// The name must satisfy IsColumnName.
func ColumnNameToIndex(name string) int {
	index := 0
	for _, letter := range name {
		index = index*26 + int(letter-'A') + 1
	}
	return index
}

// ResolveColumn returns the zero-based column a field is read from, or
// models.Absent for an optional field whose heading is missing.
//
// The first rule that applies wins:
//  1. an explicit Index
//  2. an explicit Column name
//  3. the field name itself when it is a column name
//  4. an explicit Heading, matched case-insensitively against headings
//  5. the field name matched case-insensitively against headings
//  6. position, the field's place among the mapped fields
//
// Rules 4 and 5 apply only when headings is not empty. A malformed Column or
// a missing Heading on a required field is returned as a *ConfigError, as is
// an explicit Index or Column past the last worksheet column (XFD).
func ResolveColumn(loc models.FieldLocator, position int, headings []string) (int, error) {
	if loc.Index > 0 {
		if loc.Index > excelize.MaxColumns {
			return 0, NewConfigError("", loc.Name, fmt.Errorf("%w: index %d", ErrColumnOutOfRange, loc.Index))
		}
		return loc.Index - 1, nil
	}

	if loc.Column != "" {
		if !IsColumnName(loc.Column) {
			return 0, NewConfigError("", loc.Name, fmt.Errorf("%w %q", ErrInvalidColumnName, loc.Column))
		}
		index := ColumnNameToIndex(loc.Column)
		if index > excelize.MaxColumns {
			return 0, NewConfigError("", loc.Name, fmt.Errorf("%w: column %q", ErrColumnOutOfRange, loc.Column))
		}
		return index - 1, nil
	}

	// A field named past the last column is matched by heading or position instead.
	if IsColumnName(loc.Name) && ColumnNameToIndex(loc.Name) <= excelize.MaxColumns {
		return ColumnNameToIndex(loc.Name) - 1, nil
	}

	if len(headings) > 0 {
		if loc.Heading != "" {
			if i := findHeading(headings, loc.Heading); i >= 0 {
				return i, nil
			}
			if loc.Optional {
				return models.Absent, nil
			}
			return 0, NewConfigError("", loc.Name, fmt.Errorf("%w: %q is not in the worksheet headings", ErrHeadingNotFound, loc.Heading))
		}

		if i := findHeading(headings, loc.Name); i >= 0 {
			return i, nil
		}
	}

	return position, nil
}

// findHeading returns the index of the first heading equal to name under
// Unicode case folding, or -1.
func findHeading(headings []string, name string) int {
	fold := cases.Fold()
	want := fold.String(name)
	for i, h := range headings {
		if fold.String(h) == want {
			return i
		}
	}
	return -1
}
