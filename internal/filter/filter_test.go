package filter

import "testing"

func TestCompileBlankMatchesAll(t *testing.T) {
	ev, err := Compile("   ")
	if err != nil {
		t.Fatalf("blank expression: %v", err)
	}
	if ev != nil {
		t.Fatalf("blank expression should compile to nil evaluator")
	}
	if !ev.Match(map[string]any{"x": 1}) {
		t.Fatalf("nil evaluator must match everything")
	}
}

func TestCompileError(t *testing.T) {
	if _, err := Compile("amount >"); err == nil {
		t.Fatalf("expected compile error")
	}
}

func TestMatchNumericExpression(t *testing.T) {
	ev, err := Compile("amount > 100 && status == 'open'")
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if !ev.Match(map[string]any{"amount": 150.0, "status": "open"}) {
		t.Fatalf("expected match")
	}
	if ev.Match(map[string]any{"amount": 50.0, "status": "open"}) {
		t.Fatalf("expected no match")
	}
}

func TestMatchErrorDropsRow(t *testing.T) {
	ev, err := Compile("missing > 1")
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if ev.Match(map[string]any{"other": 2}) {
		t.Fatalf("evaluation errors must drop the row, not keep it")
	}
}

func TestMatchNonBooleanResultDropsRow(t *testing.T) {
	ev, err := Compile("amount + 1")
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if ev.Match(map[string]any{"amount": 1.0}) {
		t.Fatalf("non-boolean results must not match")
	}
}
