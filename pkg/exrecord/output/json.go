// Package output renders conversion results for the command line.
package output

import (
	"encoding/json"
)

// ToJSON serializes v, indenting when pretty is set.
func ToJSON(v any, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}
