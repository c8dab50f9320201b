package models

import "reflect"

// Absent is the resolved column of an optional field that has no column in the worksheet.
const Absent = -1

// FieldLocator is the per-field metadata describing where a field's column is.
// More than one locator may be set; the resolver decides precedence.
type FieldLocator struct {
	// Name is the field name.
	Name string `json:"name"`
	// Index is the 1-based column index. Zero means unset.
	Index int `json:"index,omitempty"`
	// Column is the column in letter notation, e.g. "A" or "AA".
	Column string `json:"column,omitempty"`
	// Heading is the heading text identifying the column.
	Heading string `json:"heading,omitempty"`
	// Optional fields may be blank and may be missing from the headings.
	Optional bool `json:"optional,omitempty"`
	// Order is the declaration order used when nothing else locates the field.
	Order int `json:"order"`
	// Type is the declared semantic type. Pointer types are reduced to their element.
	Type reflect.Type `json:"-"`
	// Accessor is the struct field index path, nil for records without a Go type.
	Accessor []int `json:"-"`
}

// FieldMapping is a field resolved to a concrete worksheet column.
type FieldMapping struct {
	// Name is the field name.
	Name string `json:"name"`
	// Type is the declared semantic type.
	Type reflect.Type `json:"-"`
	// Optional mirrors FieldLocator.Optional.
	Optional bool `json:"optional"`
	// Column is the zero-based column index, or Absent.
	Column int `json:"column"`
	// Accessor is the struct field index path.
	Accessor []int `json:"-"`
}
