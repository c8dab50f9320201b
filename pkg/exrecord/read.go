package exrecord

import (
	"fmt"
	"io"

	"github.com/ukaji3/exrecord-go/pkg/exrecord/metadata"
	"github.com/ukaji3/exrecord-go/pkg/exrecord/models"
	"github.com/ukaji3/exrecord-go/pkg/exrecord/parser"
)

// ReadFile reads the worksheet declared by T from the workbook at path.
func ReadFile[T any](path string, opts Options) (*models.ConversionResult[T], error) {
	wb, err := parser.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer wb.Close()

	return ReadWorkbook[T](wb, opts)
}

// Read reads the worksheet declared by T from a workbook stream.
func Read[T any](r io.Reader, opts Options) (*models.ConversionResult[T], error) {
	wb, err := parser.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer wb.Close()

	return ReadWorkbook[T](wb, opts)
}

// ReadWorkbook reads the worksheet declared by T from an open workbook.
func ReadWorkbook[T any](wb *parser.Workbook, opts Options) (*models.ConversionResult[T], error) {
	rec, err := metadata.For[T]()
	if err != nil {
		return nil, NewConfigError(fmt.Sprintf("%T", *new(T)), "", err)
	}

	problems, ptrs, err := convert[*T](wb, rec, structBinder[T]{}, opts)
	if err != nil {
		return nil, err
	}

	records := make([]T, len(ptrs))
	for i, p := range ptrs {
		records[i] = *p
	}
	return models.NewConversionResult(problems, records), nil
}

// ReadSchemaFile reads the worksheet described by s from the workbook at path.
func ReadSchemaFile(path string, s *metadata.Schema, opts Options) (*models.ConversionResult[map[string]any], error) {
	wb, err := parser.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer wb.Close()

	return ReadSchema(wb, s, opts)
}

// ReadSchema reads the worksheet described by s into map records keyed by field name.
func ReadSchema(wb *parser.Workbook, s *metadata.Schema, opts Options) (*models.ConversionResult[map[string]any], error) {
	rec, err := s.Record(opts.registry())
	if err != nil {
		return nil, NewConfigError(s.Name, "", err)
	}

	problems, records, err := convert[map[string]any](wb, rec, mapBinder{}, opts)
	if err != nil {
		return nil, err
	}
	return models.NewConversionResult(problems, records), nil
}

// convert runs one conversion: open the worksheet, read its headings,
// resolve the field mappings and convert the rows.
func convert[R any](wb *parser.Workbook, rec metadata.Record, bind binder[R], opts Options) ([]models.ValidationProblem, []R, error) {
	rec.Shape = opts.Shape(rec.Shape)
	shape := rec.Shape
	log := opts.logger().With("record", shape.TypeName, "worksheet", shape.SheetName())

	ws, ok, err := wb.Worksheet(shape.SheetName())
	if err != nil {
		return nil, nil, fmt.Errorf("open worksheet %q: %w", shape.SheetName(), err)
	}
	if !ok {
		log.Debug("worksheet not found")
		return []models.ValidationProblem{{
			Message:   fmt.Sprintf("The worksheet could not be found with the name '%s'.", shape.SheetName()),
			Worksheet: shape.SheetName(),
		}}, nil, nil
	}

	headings, err := ReadHeadings(ws, shape)
	if err != nil {
		return nil, nil, err
	}
	if shape.HasHeadings {
		log.Debug("read headings", "row", shape.HeadingRow(), "headings", headings)
	}

	mappings, err := BuildMappings(rec, headings, opts.registry())
	if err != nil {
		return nil, nil, err
	}
	for _, m := range mappings {
		log.Debug("mapped field", "field", m.Name, "column", parser.ColumnName(m.Column+1), "optional", m.Optional)
	}
	if dropped := len(rec.Fields) - len(mappings); dropped > 0 {
		log.Debug("dropped absent optional fields", "count", dropped)
	}

	c := &converter[R]{
		ws:       ws,
		shape:    shape,
		mappings: mappings,
		bind:     bind,
		reg:      opts.registry(),
		log:      log,
	}
	if err := c.run(); err != nil {
		return nil, nil, err
	}

	log.Debug("conversion finished",
		"records", len(c.records),
		"problems", len(c.problems),
		"state", c.state.String(),
	)
	return c.problems, c.records, nil
}
