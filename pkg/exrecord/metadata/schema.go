package metadata

import (
	"fmt"
	"os"
	"reflect"

	"gopkg.in/yaml.v3"

	"github.com/ukaji3/exrecord-go/pkg/exrecord/coerce"
	"github.com/ukaji3/exrecord-go/pkg/exrecord/models"
)

// Schema describes a record without a Go type. Records read with a schema
// are maps from field name to value.
type Schema struct {
	Name          string        `yaml:"name"`
	Worksheet     string        `yaml:"worksheet"`
	Headings      bool          `yaml:"headings"`
	HeadingsRow   int           `yaml:"headingsRow"`
	SkipBlankRows bool          `yaml:"skipBlankRows"`
	Fields        []SchemaField `yaml:"fields"`
}

// SchemaField describes one column of a Schema.
type SchemaField struct {
	Name     string `yaml:"name"`
	Type     string `yaml:"type"`
	Column   string `yaml:"column"`
	Index    int    `yaml:"index"`
	Heading  string `yaml:"heading"`
	Optional bool   `yaml:"optional"`
}

// TypeResolver looks up a declared type by its registered name.
type TypeResolver interface {
	TypeOf(name string) (reflect.Type, bool)
}

// LoadSchema reads and parses a YAML schema file.
func LoadSchema(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file %s: %w", path, err)
	}
	return ParseSchema(data)
}

// ParseSchema parses YAML data into a Schema.
func ParseSchema(data []byte) (*Schema, error) {
	var s Schema
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse schema YAML: %w", err)
	}
	applyDefaults(&s)
	return &s, nil
}

func applyDefaults(s *Schema) {
	if s.Name == "" {
		s.Name = "Record"
	}
	if s.HeadingsRow == 0 {
		s.HeadingsRow = models.DefaultHeadingsRow
	}
	for i := range s.Fields {
		if s.Fields[i].Type == "" {
			s.Fields[i].Type = coerce.NameText
		}
	}
}

// Record converts the schema to record metadata, resolving type names with types.
func (s *Schema) Record(types TypeResolver) (Record, error) {
	if s.HeadingsRow < 1 {
		return Record{}, fmt.Errorf("%w: headingsRow must be a positive row number, got %d", ErrInvalidMetadata, s.HeadingsRow)
	}

	rec := Record{
		Shape: models.RecordShape{
			TypeName:      s.Name,
			Worksheet:     s.Worksheet,
			HasHeadings:   s.Headings,
			HeadingsRow:   s.HeadingsRow,
			SkipBlankRows: s.SkipBlankRows,
		},
	}

	seen := make(map[string]bool, len(s.Fields))
	for i, f := range s.Fields {
		if f.Name == "" {
			return Record{}, fmt.Errorf("%w: field %d has no name", ErrInvalidMetadata, i+1)
		}
		if seen[f.Name] {
			return Record{}, fmt.Errorf("%w: field %q is declared twice", ErrInvalidMetadata, f.Name)
		}
		seen[f.Name] = true

		if f.Index < 0 {
			return Record{}, fmt.Errorf("%w: field %q has a negative index", ErrInvalidMetadata, f.Name)
		}

		t, ok := types.TypeOf(f.Type)
		if !ok {
			return Record{}, fmt.Errorf("%w: field %q has type %q", coerce.ErrUnsupportedType, f.Name, f.Type)
		}

		rec.Fields = append(rec.Fields, models.FieldLocator{
			Name:     f.Name,
			Index:    f.Index,
			Column:   f.Column,
			Heading:  f.Heading,
			Optional: f.Optional,
			Order:    i,
			Type:     t,
		})
	}
	return rec, nil
}
