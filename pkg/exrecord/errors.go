package exrecord

import (
	"errors"
	"fmt"

	"github.com/ukaji3/exrecord-go/pkg/exrecord/coerce"
	"github.com/ukaji3/exrecord-go/pkg/exrecord/metadata"
)

// ErrInvalidColumnName indicates an explicit column name that is not 1-3 uppercase letters.
var ErrInvalidColumnName = errors.New("invalid column name")

// ErrColumnOutOfRange indicates an explicit column past the last worksheet column, XFD.
var ErrColumnOutOfRange = errors.New("column out of range")

// ErrHeadingNotFound indicates a required field whose heading is not in the heading row.
var ErrHeadingNotFound = errors.New("heading not found")

// ErrUnsupportedType indicates a field declared with a type that has no coercion handler.
var ErrUnsupportedType = coerce.ErrUnsupportedType

// ErrInvalidMetadata indicates a malformed record or field declaration.
var ErrInvalidMetadata = metadata.ErrInvalidMetadata

// ErrTypeMismatch indicates a handler returned a value that cannot be stored in its field.
var ErrTypeMismatch = errors.New("value does not match field type")

// ConfigError reports record metadata that must be fixed in code, as opposed
// to bad data in the worksheet. It aborts the whole conversion.
type ConfigError struct {
	Record string
	Field  string
	Err    error
}

func (e *ConfigError) Error() string {
	switch {
	case e.Record != "" && e.Field != "":
		return fmt.Sprintf("configuration error in %s.%s: %v", e.Record, e.Field, e.Err)
	case e.Field != "":
		return fmt.Sprintf("configuration error in field %s: %v", e.Field, e.Err)
	case e.Record != "":
		return fmt.Sprintf("configuration error in %s: %v", e.Record, e.Err)
	}
	return fmt.Sprintf("configuration error: %v", e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new ConfigError.
func NewConfigError(record, field string, err error) *ConfigError {
	return &ConfigError{
		Record: record,
		Field:  field,
		Err:    err,
	}
}

// withRecord fills in the record name of a ConfigError, or wraps err in one.
func withRecord(record string, err error) error {
	var ce *ConfigError
	if errors.As(err, &ce) {
		if ce.Record == "" {
			ce.Record = record
		}
		return ce
	}
	return NewConfigError(record, "", err)
}
