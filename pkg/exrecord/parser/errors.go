package parser

import (
	"fmt"

	"github.com/ukaji3/exrecord-go/pkg/exrecord/coerce"
	"github.com/ukaji3/exrecord-go/pkg/exrecord/models"
)

// KindError reports a cell whose storage kind cannot be read as the requested type.
type KindError struct {
	Cell string
	Kind models.CellKind
	Want string
}

func (e *KindError) Error() string {
	return fmt.Sprintf("cell %s stored as %s cannot be read as %s", e.Cell, e.Kind, e.Want)
}

// Unwrap lets callers test for coerce.ErrNotCoercible.
func (e *KindError) Unwrap() error {
	return coerce.ErrNotCoercible
}
