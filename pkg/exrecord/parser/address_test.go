package parser

import (
	"testing"

	"github.com/ukaji3/exrecord-go/pkg/exrecord/models"
)

func TestCellName(t *testing.T) {
	tests := []struct {
		col, row int
		expected string
	}{
		{1, 1, "A1"},
		{2, 3, "B3"},
		{27, 10, "AA10"},
		{16384, 1, "XFD1"},
		{0, 1, ""},
		{1, 0, ""},
	}

	for _, tt := range tests {
		if got := CellName(tt.col, tt.row); got != tt.expected {
			t.Errorf("CellName(%d, %d) = %q, expected %q", tt.col, tt.row, got, tt.expected)
		}
	}
}

func TestColumnName(t *testing.T) {
	tests := map[int]string{1: "A", 26: "Z", 27: "AA", 54: "BB", 0: ""}
	for col, expected := range tests {
		if got := ColumnName(col); got != expected {
			t.Errorf("ColumnName(%d) = %q, expected %q", col, got, expected)
		}
	}
}

func TestParseRange(t *testing.T) {
	tests := []struct {
		ref      string
		expected models.CellRange
		ok       bool
	}{
		{"A1:D10", models.CellRange{R1: 1, C1: 1, R2: 10, C2: 4}, true},
		{"$B$2:$C$5", models.CellRange{R1: 2, C1: 2, R2: 5, C2: 3}, true},
		{"'My Sheet'!A1:B2", models.CellRange{R1: 1, C1: 1, R2: 2, C2: 2}, true},
		{"C7", models.CellRange{R1: 7, C1: 3, R2: 7, C2: 3}, true},
		{"", models.CellRange{}, false},
		{"A1:B2:C3", models.CellRange{}, false},
		{"nonsense", models.CellRange{}, false},
	}

	for _, tt := range tests {
		got, ok := ParseRange(tt.ref)
		if ok != tt.ok {
			t.Errorf("ParseRange(%q) ok = %v, expected %v", tt.ref, ok, tt.ok)
			continue
		}
		if got != tt.expected {
			t.Errorf("ParseRange(%q) = %+v, expected %+v", tt.ref, got, tt.expected)
		}
	}
}

func TestCellRangeRef(t *testing.T) {
	r := models.CellRange{R1: 1, C1: 1, R2: 3, C2: 2}
	if got := r.Ref(CellName); got != "A1:B3" {
		t.Errorf("Expected A1:B3, got %q", got)
	}
	single := models.CellRange{R1: 2, C1: 2, R2: 2, C2: 2}
	if got := single.Ref(CellName); got != "B2" {
		t.Errorf("Expected B2, got %q", got)
	}
	if got := (models.CellRange{}).Ref(CellName); got != "" {
		t.Errorf("Expected empty ref, got %q", got)
	}
}
