package coerce

import (
	"time"

	"github.com/ukaji3/exrecord-go/pkg/exrecord/models"
)

// Names of the built-in types.
const (
	NameFloat    = "float"
	NameInt      = "int"
	NameDate     = "date"
	NameDateTime = "datetime"
	NameTime     = "time"
	NameText     = "text"
)

func registerBuiltins(r *Registry) {
	RegisterType(r, NameFloat, func(c Cell, col int) (float64, error) {
		return c.Float(col)
	})
	RegisterType(r, NameInt, func(c Cell, col int) (int, error) {
		return c.Int(col)
	})
	RegisterType(r, NameDate, func(c Cell, col int) (models.Date, error) {
		t, err := c.DateTime(col)
		if err != nil {
			return models.Date{}, err
		}
		return models.DateOf(t), nil
	})
	RegisterType(r, NameDateTime, func(c Cell, col int) (time.Time, error) {
		return c.DateTime(col)
	})
	RegisterType(r, NameTime, func(c Cell, col int) (models.TimeOfDay, error) {
		d, err := c.TimeSpan(col)
		if err != nil {
			return models.TimeOfDay{}, err
		}
		return models.TimeOfDayFromDuration(d), nil
	})
	RegisterType(r, NameText, func(c Cell, col int) (string, error) {
		return c.String(col)
	})
}
