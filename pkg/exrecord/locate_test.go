package exrecord

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/exrecord-go/pkg/exrecord/models"
)

var testHeadings = []string{"One", "Two", "Three", "Four"}

func TestResolveColumn(t *testing.T) {
	tests := []struct {
		name     string
		loc      models.FieldLocator
		position int
		headings []string
		want     int
	}{
		{"explicit index", models.FieldLocator{Name: "Field", Index: 3}, 0, nil, 2},
		{"index wins over column", models.FieldLocator{Name: "Field", Index: 3, Column: "A"}, 0, nil, 2},
		{"explicit column", models.FieldLocator{Name: "Field", Column: "BB"}, 0, nil, 53},
		{"column wins over heading", models.FieldLocator{Name: "Field", Column: "C", Heading: "One"}, 0, testHeadings, 2},
		{"field named like a column", models.FieldLocator{Name: "DQ"}, 0, nil, 120},
		{"explicit heading", models.FieldLocator{Name: "Field", Heading: "Four"}, 0, testHeadings, 3},
		{"heading ignores case", models.FieldLocator{Name: "Field", Heading: "one"}, 5, testHeadings, 0},
		{"optional heading missing", models.FieldLocator{Name: "Field", Heading: "Five", Optional: true}, 0, testHeadings, models.Absent},
		{"field name as heading", models.FieldLocator{Name: "Three"}, 0, testHeadings, 2},
		{"field name as heading ignores case", models.FieldLocator{Name: "two"}, 7, testHeadings, 1},
		{"position without headings", models.FieldLocator{Name: "Field"}, 8, nil, 8},
		{"position when name is not a heading", models.FieldLocator{Name: "Other"}, 8, testHeadings, 8},
		{"heading ignored without headings", models.FieldLocator{Name: "Field", Heading: "Four"}, 1, nil, 1},
		{"last column", models.FieldLocator{Name: "Field", Column: "XFD"}, 0, nil, 16383},
		{"field named past the last column", models.FieldLocator{Name: "ZZZ"}, 4, nil, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveColumn(tt.loc, tt.position, tt.headings)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveColumn_Errors(t *testing.T) {
	tests := []struct {
		name     string
		loc      models.FieldLocator
		headings []string
		wantErr  error
	}{
		{"too many letters", models.FieldLocator{Name: "Field", Column: "BBBB"}, nil, ErrInvalidColumnName},
		{"lower case column", models.FieldLocator{Name: "Field", Column: "b"}, nil, ErrInvalidColumnName},
		{"digits in column", models.FieldLocator{Name: "Field", Column: "A1"}, nil, ErrInvalidColumnName},
		{"required heading missing", models.FieldLocator{Name: "Field", Heading: "Five"}, testHeadings, ErrHeadingNotFound},
		{"column past XFD", models.FieldLocator{Name: "Field", Column: "XFE"}, nil, ErrColumnOutOfRange},
		{"index past XFD", models.FieldLocator{Name: "Field", Index: 16385}, nil, ErrColumnOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ResolveColumn(tt.loc, 0, tt.headings)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)

			var ce *ConfigError
			require.ErrorAs(t, err, &ce)
			assert.Equal(t, "Field", ce.Field)
		})
	}
}

func TestResolveColumn_Deterministic(t *testing.T) {
	loc := models.FieldLocator{Name: "Field", Heading: "three"}
	first, err := ResolveColumn(loc, 0, testHeadings)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		got, err := ResolveColumn(loc, 0, testHeadings)
		require.NoError(t, err)
		assert.Equal(t, first, got)
	}
}

func TestColumnNameToIndex(t *testing.T) {
	tests := map[string]int{
		"A":   1,
		"B":   2,
		"Z":   26,
		"AA":  27,
		"AZ":  52,
		"BB":  54,
		"DR":  122,
		"ZZ":  702,
		"AAA": 703,
		"XFD": 16384,
	}
	for name, want := range tests {
		assert.Equal(t, want, ColumnNameToIndex(name), name)
	}
}

func TestIsColumnName(t *testing.T) {
	for _, s := range []string{"A", "ZZ", "XFD"} {
		assert.True(t, IsColumnName(s), s)
	}
	for _, s := range []string{"", "a", "AAAA", "A1", "First Column"} {
		assert.False(t, IsColumnName(s), s)
	}
}
