package apiclient

import (
	"encoding/json"
)

// Extractor derives an error message from a decoded failure body.
// Extractors run in order; the first one reporting ok wins.
type Extractor interface {
	Extract(decoded any) (string, bool)
}

// ExtractorFunc adapts a function to Extractor.
type ExtractorFunc func(decoded any) (string, bool)

func (f ExtractorFunc) Extract(decoded any) (string, bool) { return f(decoded) }

// DetailField reads a named field from a JSON object. Falsy values (null,
// false, 0, "") are skipped. Other non-string values (validation error lists,
// for instance) are rendered as compact JSON.
type DetailField struct {
	Field string
}

func (d DetailField) Extract(decoded any) (string, bool) {
	obj, ok := decoded.(map[string]any)
	if !ok {
		return "", false
	}
	field := d.Field
	if field == "" {
		field = "detail"
	}
	raw, ok := obj[field]
	if !ok || falsy(raw) {
		return "", false
	}
	if s, ok := raw.(string); ok {
		return s, true
	}
	enc, err := json.Marshal(raw)
	if err != nil || len(enc) == 0 {
		return "", false
	}
	return string(enc), true
}

func falsy(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case bool:
		return !x
	case float64:
		return x == 0
	case string:
		return x == ""
	}
	return false
}

// PlainString uses a non-empty body that decoded to a bare string (plain text
// or a JSON string), whitespace included.
type PlainString struct{}

func (PlainString) Extract(decoded any) (string, bool) {
	s, ok := decoded.(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}

// Fallback always succeeds with a fixed message.
type Fallback struct {
	Message string
}

func (f Fallback) Extract(any) (string, bool) {
	if f.Message == "" {
		return DefaultErrorMessage, true
	}
	return f.Message, true
}

// DefaultExtractors returns the standard precedence: detail field, plain string, generic message.
func DefaultExtractors() []Extractor {
	return []Extractor{
		DetailField{Field: "detail"},
		PlainString{},
		Fallback{Message: DefaultErrorMessage},
	}
}

func extractMessage(extractors []Extractor, decoded any) string {
	for _, ex := range extractors {
		if ex == nil {
			continue
		}
		if msg, ok := ex.Extract(decoded); ok {
			return msg
		}
	}
	return DefaultErrorMessage
}
