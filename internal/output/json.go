// Package output formats API results for the loxo CLI as JSON, jq results
// or tables.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/itchyny/gojq"
)

// PrintJSON pretty-prints v as indented JSON to w.
func PrintJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// ApplyJQ runs a jq expression against data and writes every result to w.
// data must be made of JSON-compatible values (map[string]any, []any, ...).
func ApplyJQ(w io.Writer, data any, expr string) error {
	query, err := gojq.Parse(expr)
	if err != nil {
		return fmt.Errorf("parsing jq expression: %w", err)
	}

	iter := query.Run(data)
	for {
		v, ok := iter.Next()
		if !ok {
			break
		}
		if err, isErr := v.(error); isErr {
			return fmt.Errorf("jq evaluation: %w", err)
		}
		if err := PrintJSON(w, v); err != nil {
			return fmt.Errorf("writing jq result: %w", err)
		}
	}

	return nil
}

// RecordCount returns the number of records in a list response. Loxo wraps
// lists under a key named after the resource ("activity_types", "jobs", ...);
// a top-level array is stored under "data". The first array value found under
// key, then "data", is counted. -1 means no list was found.
func RecordCount(result map[string]any, key string) int {
	for _, k := range []string{key, "data"} {
		if list, ok := result[k].([]any); ok {
			return len(list)
		}
	}
	return -1
}
