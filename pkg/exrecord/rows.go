package exrecord

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/ukaji3/exrecord-go/pkg/exrecord/coerce"
	"github.com/ukaji3/exrecord-go/pkg/exrecord/models"
	"github.com/ukaji3/exrecord-go/pkg/exrecord/parser"
)

// rowState is the state of the row conversion loop.
type rowState int

const (
	// stateScanning converts rows as they come.
	stateScanning rowState = iota
	// stateBlankPending holds back a blank row until the next non-blank row decides it.
	stateBlankPending
	// stateHalted stops the worksheet read.
	stateHalted
)

func (s rowState) String() string {
	switch s {
	case stateScanning:
		return "scanning"
	case stateBlankPending:
		return "blank-pending"
	case stateHalted:
		return "halted"
	}
	return "unknown"
}

// converter walks the data rows of one worksheet.
type converter[R any] struct {
	ws       Worksheet
	shape    models.RecordShape
	mappings []models.FieldMapping
	bind     binder[R]
	reg      *coerce.Registry
	log      *slog.Logger

	state      rowState
	pendingRow int
	problems   []models.ValidationProblem
	records    []R
}

// run converts every data row. Blank rows, where no mapped column has
// content, are skipped when the shape says so, ignored when they are the
// last used row, converted to an empty record when every field is optional,
// and otherwise held back: the next non-blank row reports the first
// required field of the blank row and halts the read.
//
// A row missing a required value or holding a value that cannot be coerced
// reports one problem, stops converting that row's remaining fields and is
// still appended to the records.
func (c *converter[R]) run() error {
	first := c.shape.FirstDataRow()
	last := c.ws.LastRow()
	allOptional := c.allOptional()

	for c.state != stateHalted && c.ws.ReadNextRow() {
		row := c.ws.RowNumber()
		if row < first {
			continue
		}

		blank, err := c.isBlank()
		if err != nil {
			return err
		}
		if blank {
			switch {
			case c.shape.SkipBlankRows:
				c.log.Debug("skipping blank row", "row", row)
				continue
			case row == last:
				continue
			case allOptional:
			default:
				if c.state == stateScanning {
					c.state = stateBlankPending
					c.pendingRow = row
				}
				continue
			}
		}

		if c.state == stateBlankPending {
			c.resolvePending()
			if c.state == stateHalted {
				break
			}
		}

		if err := c.convertRow(row); err != nil {
			return err
		}
	}

	if c.state == stateBlankPending {
		c.resolvePending()
	}
	return nil
}

func (c *converter[R]) allOptional() bool {
	for _, m := range c.mappings {
		if !m.Optional {
			return false
		}
	}
	return true
}

// isBlank reports whether no mapped column of the current row has content.
func (c *converter[R]) isBlank() (bool, error) {
	for _, m := range c.mappings {
		v, err := c.ws.Raw(m.Column)
		if err != nil {
			return false, err
		}
		if !v.IsBlank() {
			return false, nil
		}
	}
	return true, nil
}

// resolvePending decides a held back blank row. With a required field the
// blank row is a problem and the read halts; otherwise scanning resumes.
func (c *converter[R]) resolvePending() {
	for _, m := range c.mappings {
		if m.Optional {
			continue
		}
		cell := parser.CellName(m.Column+1, c.pendingRow)
		c.problem(cell, "The row %d is blank but the cell %s!%s is required.", c.pendingRow, c.shape.SheetName(), cell)
		c.log.Debug("halting at blank row", "row", c.pendingRow, "field", m.Name)
		c.state = stateHalted
		return
	}
	c.state = stateScanning
	c.pendingRow = 0
}

// convertRow builds one record from the current row.
func (c *converter[R]) convertRow(row int) error {
	rec := c.bind.New()

	for _, m := range c.mappings {
		cell := parser.CellName(m.Column+1, row)

		v, err := c.ws.Raw(m.Column)
		if err != nil {
			return err
		}
		if v.IsBlank() {
			if m.Optional {
				continue
			}
			c.problem(cell, "The cell %s!%s has no value but is required.", c.shape.SheetName(), cell)
			break
		}

		value, err := c.reg.Coerce(c.ws, m.Column, m.Type)
		if errors.Is(err, coerce.ErrNotCoercible) {
			text, serr := c.ws.String(m.Column)
			if serr != nil {
				return serr
			}
			c.problem(cell, "The cell %s!%s has the value '%s' which cannot be interpreted as the data type '%s'.",
				c.shape.SheetName(), cell, text, c.reg.Name(m.Type))
			break
		}
		if errors.Is(err, coerce.ErrUnsupportedType) {
			return NewConfigError(c.shape.TypeName, m.Name, err)
		}
		if err != nil {
			return fmt.Errorf("read %s!%s: %w", c.shape.SheetName(), cell, err)
		}

		if err := c.bind.Set(rec, m, value); err != nil {
			return NewConfigError(c.shape.TypeName, m.Name, err)
		}
	}

	c.records = append(c.records, rec)
	return nil
}

func (c *converter[R]) problem(cell, format string, args ...any) {
	c.problems = append(c.problems, models.ValidationProblem{
		Message:   fmt.Sprintf(format, args...),
		Worksheet: c.shape.SheetName(),
		Cell:      cell,
	})
}
