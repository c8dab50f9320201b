package exrecord

import (
	"fmt"
	"sort"

	"github.com/ukaji3/exrecord-go/pkg/exrecord/coerce"
	"github.com/ukaji3/exrecord-go/pkg/exrecord/metadata"
	"github.com/ukaji3/exrecord-go/pkg/exrecord/models"
)

// BuildMappings resolves the fields of rec to worksheet columns.
// Fields are visited in declaration order; optional fields that resolve to
// models.Absent are left out. Every field type must be supported by reg.
func BuildMappings(rec metadata.Record, headings []string, reg *coerce.Registry) ([]models.FieldMapping, error) {
	fields := make([]models.FieldLocator, len(rec.Fields))
	copy(fields, rec.Fields)
	sort.SliceStable(fields, func(i, j int) bool {
		return fields[i].Order < fields[j].Order
	})

	for _, f := range fields {
		if !reg.Supports(f.Type) {
			return nil, NewConfigError(rec.Shape.TypeName, f.Name,
				fmt.Errorf("%w: declared as %v", ErrUnsupportedType, f.Type))
		}
	}

	mappings := make([]models.FieldMapping, 0, len(fields))
	for position, f := range fields {
		col, err := ResolveColumn(f, position, headings)
		if err != nil {
			return nil, withRecord(rec.Shape.TypeName, err)
		}
		if col == models.Absent {
			continue
		}

		mappings = append(mappings, models.FieldMapping{
			Name:     f.Name,
			Type:     f.Type,
			Optional: f.Optional,
			Column:   col,
			Accessor: f.Accessor,
		})
	}
	return mappings, nil
}
