package pipeline

import (
	"encoding/json"
	"fmt"
)

// expressionTag is the marker Data Factory puts on dynamically-evaluated
// values. The comparison is by string value, never identity.
const expressionTag = "Expression"

type expressionKind int

const (
	literalValue expressionKind = iota
	expressionValue
	rawValue
)

// Expression is a Data Factory configuration value: either a literal string,
// or an object tagged {"type": "Expression", "value": ...} holding the text
// of a dynamically-evaluated expression. The variant is decided once, at
// decode time. Anything else (an object without the tag, or a non-string
// scalar) is retained as raw JSON and rendered as-is.
type Expression struct {
	kind expressionKind
	text string
	raw  json.RawMessage
}

// Literal returns an Expression holding a plain string.
func Literal(text string) Expression {
	return Expression{kind: literalValue, text: text}
}

// IsExpression reports whether the value carried the Expression tag.
func (e Expression) IsExpression() bool {
	return e.kind == expressionValue
}

// Text returns the query text: the string itself for literals, the unwrapped
// value for tagged expressions, and the original JSON for anything else.
// Resolving a literal is idempotent.
func (e Expression) Text() string {
	if e.kind == rawValue {
		return string(e.raw)
	}
	return e.text
}

func (e *Expression) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*e = Expression{kind: literalValue, text: s}
		return nil
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(b, &obj); err != nil {
		// Not a string and not an object. Keep the raw bytes.
		*e = Expression{kind: rawValue, raw: append(json.RawMessage(nil), b...)}
		return nil
	}

	// An object is only a candidate expression if it has a "type" key at
	// all, and only an expression if that tag equals "Expression" exactly.
	tagRaw, ok := obj["type"]
	if ok {
		var tag string
		if err := json.Unmarshal(tagRaw, &tag); err == nil && tag == expressionTag {
			valueRaw, ok := obj["value"]
			if !ok {
				return fmt.Errorf("expression object has no %q field", "value")
			}
			var value string
			if err := json.Unmarshal(valueRaw, &value); err != nil {
				return fmt.Errorf("decoding expression value: %w", err)
			}
			*e = Expression{kind: expressionValue, text: value}
			return nil
		}
	}

	*e = Expression{kind: rawValue, raw: append(json.RawMessage(nil), b...)}
	return nil
}
