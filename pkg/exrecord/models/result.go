package models

import "encoding/json"

// ConversionResult holds the outcome of reading one worksheet into records.
// It is built once at the end of a conversion and is read-only afterwards.
type ConversionResult[T any] struct {
	problems []ValidationProblem
	records  []T
}

// NewConversionResult creates a result from the collected problems and records.
func NewConversionResult[T any](problems []ValidationProblem, records []T) *ConversionResult[T] {
	r := &ConversionResult[T]{
		problems: make([]ValidationProblem, len(problems)),
		records:  make([]T, len(records)),
	}
	copy(r.problems, problems)
	copy(r.records, records)
	return r
}

// IsValid reports whether no validation problems were collected.
func (r *ConversionResult[T]) IsValid() bool {
	return len(r.problems) == 0
}

// Problems returns the validation problems in detection order.
func (r *ConversionResult[T]) Problems() []ValidationProblem {
	out := make([]ValidationProblem, len(r.problems))
	copy(out, r.problems)
	return out
}

// Records returns the converted records in worksheet order.
func (r *ConversionResult[T]) Records() []T {
	out := make([]T, len(r.records))
	copy(out, r.records)
	return out
}

// Len returns the number of records.
func (r *ConversionResult[T]) Len() int {
	return len(r.records)
}

// Record returns the i-th record.
func (r *ConversionResult[T]) Record(i int) T {
	return r.records[i]
}

type conversionResultJSON[T any] struct {
	Valid    bool                `json:"valid"`
	Problems []ValidationProblem `json:"problems"`
	Records  []T                 `json:"records"`
}

// MarshalJSON renders the result as {"valid", "problems", "records"}.
func (r *ConversionResult[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(conversionResultJSON[T]{
		Valid:    r.IsValid(),
		Problems: r.problems,
		Records:  r.records,
	})
}
