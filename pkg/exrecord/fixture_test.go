package exrecord

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// fixtureTime is 23:14:00 as a fraction of a day.
const fixtureTime = float64(23*60*60+14*60) / (24 * 60 * 60)

// newFixture builds the workbook shared by the conversion tests.
func newFixture(t testing.TB) *excelize.File {
	t.Helper()

	f := excelize.NewFile()
	t.Cleanup(func() { f.Close() })

	require.NoError(t, f.SetSheetName("Sheet1", "TypeTests"))
	setRow(t, f, "TypeTests", 1,
		"one", 1.23, time.Date(2020, 9, 1, 0, 0, 0, 0, time.UTC), 100.00,
		time.Date(2021, 4, 2, 10, 45, 0, 0, time.UTC), fixtureTime, 12.23, 3, true, 3.5)

	newSheet(t, f, "NoHeadings")
	setRow(t, f, "NoHeadings", 1, "ignore me", "find me")

	newSheet(t, f, "WithHeadings")
	setRow(t, f, "WithHeadings", 1, "First Column", "Second Column", "Third Column", "Fourth Column")
	setRow(t, f, "WithHeadings", 2, "one", 1.23, time.Date(2020, 9, 1, 0, 0, 0, 0, time.UTC), 100.00)

	newSheet(t, f, "HeadingsOnRowThree")
	setRow(t, f, "HeadingsOnRowThree", 1, "A title above the headings")
	setRow(t, f, "HeadingsOnRowThree", 3, "First Column")
	setRow(t, f, "HeadingsOnRowThree", 4, 234)

	newSheet(t, f, "WithBlankRows")
	setRow(t, f, "WithBlankRows", 1, 1, "one")
	setRow(t, f, "WithBlankRows", 2, 2, "two")
	setRow(t, f, "WithBlankRows", 4, 4, "four")
	setRow(t, f, "WithBlankRows", 5, 5, "five")
	setRow(t, f, "WithBlankRows", 6, 6, "six")

	newSheet(t, f, "MissingValues")
	setRow(t, f, "MissingValues", 1, "a", "b")
	setRow(t, f, "MissingValues", 2, "c")
	setRow(t, f, "MissingValues", 3, "e", "f")

	newSheet(t, f, "TrailingBlank")
	setRow(t, f, "TrailingBlank", 1, "a", "b")
	setRow(t, f, "TrailingBlank", 2, "c", "d")
	setRow(t, f, "TrailingBlank", 3, nil, nil, "a note outside the mapped columns")

	newSheet(t, f, "EmptyWorksheet")

	return f
}

// saveFixture writes the fixture workbook to a temporary file.
func saveFixture(t testing.TB) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "fixture.xlsx")
	require.NoError(t, newFixture(t).SaveAs(path))
	return path
}

func newSheet(t testing.TB, f *excelize.File, name string) {
	t.Helper()
	_, err := f.NewSheet(name)
	require.NoError(t, err)
}

// setRow writes values from column A onwards; nil leaves a cell empty.
func setRow(t testing.TB, f *excelize.File, sheet string, row int, values ...any) {
	t.Helper()
	for i, v := range values {
		if v == nil {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		require.NoError(t, err)
		require.NoError(t, f.SetCellValue(sheet, cell, v))
	}
}
