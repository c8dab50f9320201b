// Package exrecord converts worksheet rows into typed records.
//
// A record type declares where its columns are; ReadFile resolves every field
// to a column, walks the rows, coerces each cell to the field's type and
// collects data problems into the returned ConversionResult. Mistakes in the
// record declaration are returned as a *ConfigError instead.
package exrecord

import (
	"log/slog"

	"github.com/ukaji3/exrecord-go/pkg/exrecord/coerce"
	"github.com/ukaji3/exrecord-go/pkg/exrecord/models"
)

// Options configures a conversion. The zero value uses the record's declared
// worksheet settings, the default coercion registry and slog.Default().
type Options struct {
	// Worksheet overrides the worksheet name declared by the record.
	Worksheet string
	// HasHeadings overrides whether the worksheet has a heading row.
	// If nil, the record's declaration is used.
	HasHeadings *bool
	// HeadingsRow overrides the 1-based heading row when positive.
	HeadingsRow int
	// SkipBlankRows overrides the blank row policy.
	// If nil, the record's declaration is used.
	SkipBlankRows *bool
	// Registry holds the coercion handlers. If nil, coerce.Default() is used.
	Registry *coerce.Registry
	// Logger receives debug logs. If nil, slog.Default() is used.
	Logger *slog.Logger
}

// DefaultOptions returns default conversion options.
func DefaultOptions() Options {
	return Options{}
}

// Shape applies the overrides in o to a declared record shape.
func (o Options) Shape(s models.RecordShape) models.RecordShape {
	if o.Worksheet != "" {
		s.Worksheet = o.Worksheet
	}
	if o.HasHeadings != nil {
		s.HasHeadings = *o.HasHeadings
	}
	if o.HeadingsRow > 0 {
		s.HeadingsRow = o.HeadingsRow
	}
	if o.SkipBlankRows != nil {
		s.SkipBlankRows = *o.SkipBlankRows
	}
	return s
}

func (o Options) registry() *coerce.Registry {
	if o.Registry != nil {
		return o.Registry
	}
	return coerce.Default()
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}
