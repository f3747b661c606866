package pipeline

import (
	"encoding/json"
	"testing"
)

func TestExpressionDecodesTaggedObject(t *testing.T) {
	t.Parallel()

	var expr Expression
	if err := json.Unmarshal([]byte(`{"type": "Expression", "value": "SELECT 1"}`), &expr); err != nil {
		t.Fatalf("Unmarshal error = %v", err)
	}

	if !expr.IsExpression() {
		t.Errorf("expr.IsExpression() = false, want true")
	}
	if got, want := expr.Text(), "SELECT 1"; got != want {
		t.Errorf("expr.Text() = %q, want %q", got, want)
	}
}

func TestExpressionDecodesPlainString(t *testing.T) {
	t.Parallel()

	var expr Expression
	if err := json.Unmarshal([]byte(`"SELECT * FROM sales"`), &expr); err != nil {
		t.Fatalf("Unmarshal error = %v", err)
	}

	if expr.IsExpression() {
		t.Errorf("expr.IsExpression() = true, want false")
	}
	if got, want := expr.Text(), "SELECT * FROM sales"; got != want {
		t.Errorf("expr.Text() = %q, want %q", got, want)
	}

	// Resolving doesn't change the value; a second resolution yields the
	// same string.
	if got, want := expr.Text(), expr.Text(); got != want {
		t.Errorf("expr.Text() not idempotent: %q then %q", want, got)
	}
}

func TestLiteralConstructor(t *testing.T) {
	t.Parallel()

	expr := Literal("SELECT 1")
	if expr.IsExpression() {
		t.Errorf("Literal(...).IsExpression() = true, want false")
	}
	if got, want := expr.Text(), "SELECT 1"; got != want {
		t.Errorf("expr.Text() = %q, want %q", got, want)
	}
}

func TestExpressionTagComparedByValue(t *testing.T) {
	t.Parallel()

	// The tag must match "Expression" exactly and case-sensitively.
	for _, tag := range []string{"expression", "EXPRESSION", "Expr"} {
		var expr Expression
		doc := `{"type": "` + tag + `", "value": "SELECT 1"}`
		if err := json.Unmarshal([]byte(doc), &expr); err != nil {
			t.Fatalf("Unmarshal(%s) error = %v", doc, err)
		}
		if expr.IsExpression() {
			t.Errorf("tag %q treated as an expression, want raw object", tag)
		}
	}
}

func TestExpressionKeepsUntaggedObjects(t *testing.T) {
	t.Parallel()

	var expr Expression
	doc := `{"value": "SELECT 1"}`
	if err := json.Unmarshal([]byte(doc), &expr); err != nil {
		t.Fatalf("Unmarshal error = %v", err)
	}

	if expr.IsExpression() {
		t.Errorf("expr.IsExpression() = true, want false")
	}
	if got, want := expr.Text(), doc; got != want {
		t.Errorf("expr.Text() = %q, want the original object %q", got, want)
	}
}

func TestExpressionMissingValueErrors(t *testing.T) {
	t.Parallel()

	var expr Expression
	if err := json.Unmarshal([]byte(`{"type": "Expression"}`), &expr); err == nil {
		t.Errorf("Unmarshal error = nil, want error for tagged object without a value")
	}
}
