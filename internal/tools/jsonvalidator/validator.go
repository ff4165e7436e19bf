// Package jsonvalidator parses JSON text and reports either document statistics or
// the location of the first syntax error.
package jsonvalidator

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
)

const unexpectedEnd = "unexpected end of JSON input"

// Stats describes a valid document.
type Stats struct {
	Type   string `json:"type"`
	Size   int    `json:"size"`
	Keys   int    `json:"keys"`
	Levels int    `json:"levels"`
}

// Result is the outcome of validating a document. Position, Line and Column are only
// set for invalid documents.
type Result struct {
	Valid     bool
	Parsed    json.RawMessage
	Formatted string
	Stats     *Stats
	Error     string
	Position  int
	Line      int
	Column    int
}

// Validate parses text and returns either its statistics or the syntax error location.
func Validate(text string) Result {
	data := []byte(text)

	var value any
	if err := json.Unmarshal(data, &value); err != nil {
		return invalid(text, err)
	}

	var compact bytes.Buffer
	if err := json.Compact(&compact, data); err != nil {
		return invalid(text, err)
	}

	var formatted bytes.Buffer
	if err := json.Indent(&formatted, compact.Bytes(), "", "  "); err != nil {
		return invalid(text, err)
	}

	return Result{
		Valid:     true,
		Parsed:    json.RawMessage(compact.Bytes()),
		Formatted: formatted.String(),
		Stats: &Stats{
			Type:   typeOf(value),
			Size:   compact.Len(),
			Keys:   keyCount(value),
			Levels: depth(value, 0),
		},
	}
}

func invalid(text string, err error) Result {
	position := len(text)

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) && err.Error() != unexpectedEnd && syntaxErr.Offset > 0 {
		position = int(syntaxErr.Offset) - 1
	}

	before := text[:position]
	line := strings.Count(before, "\n") + 1
	column := position - strings.LastIndex(before, "\n")

	return Result{
		Error:    err.Error(),
		Position: position,
		Line:     line,
		Column:   column,
	}
}

func typeOf(v any) string {
	switch v.(type) {
	case []any:
		return "array"
	case string:
		return "string"
	case float64:
		return "number"
	case bool:
		return "boolean"
	default:
		return "object"
	}
}

func keyCount(v any) int {
	switch t := v.(type) {
	case map[string]any:
		return len(t)
	case []any:
		return len(t)
	default:
		return 0
	}
}

func depth(v any, level int) int {
	deepest := level

	switch t := v.(type) {
	case map[string]any:
		for _, child := range t {
			deepest = max(deepest, depth(child, level+1))
		}
	case []any:
		for _, child := range t {
			deepest = max(deepest, depth(child, level+1))
		}
	}

	return deepest
}
