// Package metadata describes how record types map onto worksheets.
//
// A Go struct declares its worksheet with a tag on a blank field and its
// columns with tags on exported fields:
//
//	type Trade struct {
//		_      struct{} `xlsx:"sheet=Trades,headings,skipBlankRows"`
//		Symbol string   `xlsx:"heading=Ticker"`
//		Price  float64  `xlsx:"column=C"`
//		Note   *string  `xlsx:"index=7,optional"`
//	}
//
// Records without a Go type are described by a YAML Schema instead.
package metadata

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/ukaji3/exrecord-go/pkg/exrecord/models"
)

// TagName is the struct tag key read by ForType.
const TagName = "xlsx"

// ErrInvalidMetadata indicates a malformed record or field declaration.
var ErrInvalidMetadata = errors.New("invalid record metadata")

// Record is the metadata of one record type.
type Record struct {
	Shape models.RecordShape
	// Fields are the mapped fields ordered by declaration order.
	Fields []models.FieldLocator
}

var cache sync.Map // reflect.Type -> cached

type cached struct {
	rec Record
	err error
}

// For returns the metadata of T.
func For[T any]() (Record, error) {
	return ForType(reflect.TypeFor[T]())
}

// ForType returns the metadata of struct type t. Results are cached per type.
func ForType(t reflect.Type) (Record, error) {
	if c, ok := cache.Load(t); ok {
		c := c.(cached)
		return c.rec.clone(), c.err
	}

	rec, err := parseType(t)
	cache.Store(t, cached{rec: rec, err: err})
	return rec.clone(), err
}

func (r Record) clone() Record {
	out := Record{Shape: r.Shape}
	if r.Fields != nil {
		out.Fields = make([]models.FieldLocator, len(r.Fields))
		copy(out.Fields, r.Fields)
	}
	return out
}

func parseType(t reflect.Type) (Record, error) {
	if t == nil || t.Kind() != reflect.Struct {
		return Record{}, fmt.Errorf("%w: %v is not a struct", ErrInvalidMetadata, t)
	}

	rec := Record{
		Shape: models.RecordShape{
			TypeName:    t.Name(),
			HeadingsRow: models.DefaultHeadingsRow,
		},
	}

	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		tag, ok := sf.Tag.Lookup(TagName)
		if !ok || tag == "-" {
			continue
		}

		if sf.Name == "_" {
			if err := parseShapeTag(tag, &rec.Shape); err != nil {
				return Record{}, fmt.Errorf("%w: %s: %v", ErrInvalidMetadata, t.Name(), err)
			}
			continue
		}

		if !sf.IsExported() {
			return Record{}, fmt.Errorf("%w: %s.%s is tagged but not exported", ErrInvalidMetadata, t.Name(), sf.Name)
		}

		loc := models.FieldLocator{
			Name:     sf.Name,
			Order:    len(rec.Fields),
			Type:     sf.Type,
			Accessor: sf.Index,
		}
		if loc.Type.Kind() == reflect.Pointer {
			loc.Type = loc.Type.Elem()
		}
		if err := parseFieldTag(tag, &loc); err != nil {
			return Record{}, fmt.Errorf("%w: %s.%s: %v", ErrInvalidMetadata, t.Name(), sf.Name, err)
		}
		rec.Fields = append(rec.Fields, loc)
	}

	sort.SliceStable(rec.Fields, func(i, j int) bool {
		return rec.Fields[i].Order < rec.Fields[j].Order
	})

	return rec, nil
}

// splitTag splits "a=1, b ,c=x" into key/value pairs.
func splitTag(tag string) [][2]string {
	var out [][2]string
	for _, part := range strings.Split(tag, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		key, value, _ := strings.Cut(part, "=")
		out = append(out, [2]string{strings.TrimSpace(key), strings.TrimSpace(value)})
	}
	return out
}

func parseShapeTag(tag string, shape *models.RecordShape) error {
	for _, kv := range splitTag(tag) {
		switch key, value := kv[0], kv[1]; key {
		case "sheet":
			shape.Worksheet = value
		case "headings":
			b, err := parseFlag(value)
			if err != nil {
				return fmt.Errorf("headings: %w", err)
			}
			shape.HasHeadings = b
		case "headingsRow":
			n, err := strconv.Atoi(value)
			if err != nil || n < 1 {
				return fmt.Errorf("headingsRow must be a positive row number, got %q", value)
			}
			shape.HeadingsRow = n
		case "skipBlankRows":
			b, err := parseFlag(value)
			if err != nil {
				return fmt.Errorf("skipBlankRows: %w", err)
			}
			shape.SkipBlankRows = b
		default:
			return fmt.Errorf("unknown worksheet option %q", key)
		}
	}
	return nil
}

func parseFieldTag(tag string, loc *models.FieldLocator) error {
	for _, kv := range splitTag(tag) {
		switch key, value := kv[0], kv[1]; key {
		case "column":
			loc.Column = value
		case "index":
			n, err := strconv.Atoi(value)
			if err != nil || n < 0 {
				return fmt.Errorf("index must be a 1-based column number, got %q", value)
			}
			loc.Index = n
		case "heading":
			loc.Heading = value
		case "optional":
			b, err := parseFlag(value)
			if err != nil {
				return fmt.Errorf("optional: %w", err)
			}
			loc.Optional = b
		case "order":
			n, err := strconv.Atoi(value)
			if err != nil {
				return fmt.Errorf("order must be an integer, got %q", value)
			}
			loc.Order = n
		default:
			return fmt.Errorf("unknown column option %q", key)
		}
	}
	return nil
}

// parseFlag reads a boolean option where a bare key means true.
func parseFlag(value string) (bool, error) {
	if value == "" {
		return true, nil
	}
	return strconv.ParseBool(value)
}
