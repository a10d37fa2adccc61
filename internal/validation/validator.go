// Package validation implements the Response Validator (C2): extracting a
// JSON value from raw LLM text and checking it against a target schema,
// normalizing controlled-vocabulary fields along the way.
package validation

import (
	"encoding/json"
	"fmt"
)

// ErrorKind classifies why Validate failed, per spec.md §4.2.
type ErrorKind string

const (
	ErrorBadContent    ErrorKind = "BAD_CONTENT"
	ErrorParseError    ErrorKind = "PARSE_ERROR"
	ErrorSchemaInvalid ErrorKind = "SCHEMA_INVALID"
)

// ValidationError reports a failed Validate call with its classification.
type ValidationError struct {
	Kind    ErrorKind
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Schema is a minimal structural contract checked after JSON extraction: the
// set of field names the parsed object must contain. Real schema depth
// (nested objects, enum domains) is enforced by the typed Summary struct tags
// plus the enum normalizers in enums.go — this keeps C2 honest without
// reimplementing a general JSON Schema engine the teacher's stack has no
// equivalent for.
type Schema struct {
	RequiredFields []string
}

// Validate extracts the first balanced JSON value from raw, unmarshals it
// into out, and checks schema.RequiredFields are present as top-level keys.
func Validate(raw string, schema Schema, out any) error {
	jsonText, ok := ExtractJSON(raw)
	if !ok {
		return &ValidationError{Kind: ErrorBadContent, Message: "no balanced JSON value found in model output"}
	}

	var generic map[string]any
	if err := json.Unmarshal([]byte(jsonText), &generic); err != nil {
		return &ValidationError{Kind: ErrorParseError, Message: err.Error()}
	}

	var missing []string
	for _, field := range schema.RequiredFields {
		if _, present := generic[field]; !present {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return &ValidationError{Kind: ErrorSchemaInvalid, Message: fmt.Sprintf("missing required fields: %v", missing)}
	}

	if err := json.Unmarshal([]byte(jsonText), out); err != nil {
		return &ValidationError{Kind: ErrorSchemaInvalid, Message: err.Error()}
	}

	return nil
}

// ExtractJSON finds the first balanced `{...}` or `[...]` substring in text,
// tolerating surrounding prose and markdown code fences the model may emit
// around the JSON payload.
func ExtractJSON(text string) (string, bool) {
	start := -1
	var open, close byte

	for i := 0; i < len(text); i++ {
		if text[i] == '{' || text[i] == '[' {
			start = i
			open = text[i]
			if open == '{' {
				close = '}'
			} else {
				close = ']'
			}
			break
		}
	}
	if start == -1 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		c := text[i]

		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			inString = true
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return text[start : i+1], true
			}
		}
	}

	return "", false
}
