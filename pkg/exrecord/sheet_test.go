package exrecord

import (
	"fmt"
	"strconv"
	"time"

	"github.com/ukaji3/exrecord-go/pkg/exrecord/coerce"
	"github.com/ukaji3/exrecord-go/pkg/exrecord/models"
)

// memSheet is an in-memory Worksheet. Cells hold a string, a float64 or nil.
type memSheet struct {
	name string
	rows [][]any
	cur  int
}

var _ Worksheet = (*memSheet)(nil)

func (m *memSheet) Name() string { return m.name }

func (m *memSheet) ReadNextRow() bool {
	if m.cur >= len(m.rows) {
		return false
	}
	m.cur++
	return true
}

func (m *memSheet) RowNumber() int { return m.cur }

func (m *memSheet) LastRow() int { return len(m.rows) }

func (m *memSheet) FieldCount() int {
	if m.cur == 0 {
		return 0
	}
	return len(m.rows[m.cur-1])
}

func (m *memSheet) cell(col int) any {
	if m.cur == 0 || col >= len(m.rows[m.cur-1]) {
		return nil
	}
	return m.rows[m.cur-1][col]
}

func (m *memSheet) Raw(col int) (models.RawValue, error) {
	switch v := m.cell(col).(type) {
	case string:
		return models.RawValue{Kind: models.KindText, Raw: v}, nil
	case float64:
		return models.RawValue{Kind: models.KindNumber, Raw: strconv.FormatFloat(v, 'f', -1, 64)}, nil
	}
	return models.RawValue{Kind: models.KindBlank}, nil
}

func (m *memSheet) String(col int) (string, error) {
	v, _ := m.Raw(col)
	return v.Raw, nil
}

func (m *memSheet) Float(col int) (float64, error) {
	if f, ok := m.cell(col).(float64); ok {
		return f, nil
	}
	return 0, fmt.Errorf("column %d: %w", col, coerce.ErrNotCoercible)
}

func (m *memSheet) Int(col int) (int, error) {
	f, err := m.Float(col)
	if err != nil {
		return 0, err
	}
	return int(f), nil
}

func (m *memSheet) DateTime(col int) (time.Time, error) {
	return time.Time{}, fmt.Errorf("column %d: %w", col, coerce.ErrNotCoercible)
}

func (m *memSheet) TimeSpan(col int) (time.Duration, error) {
	return 0, fmt.Errorf("column %d: %w", col, coerce.ErrNotCoercible)
}
