package filter

import (
	"strings"

	"github.com/Knetic/govaluate"
)

// Evaluator wraps a compiled govaluate expression evaluated against one
// row's column values, e.g. `amount > 100 && status == 'open'`.
type Evaluator struct {
	expr *govaluate.EvaluableExpression
}

// Compile parses an expression. A blank expression yields a nil Evaluator,
// which matches every row.
func Compile(src string) (*Evaluator, error) {
	if strings.TrimSpace(src) == "" {
		return nil, nil
	}
	expr, err := govaluate.NewEvaluableExpression(src)
	if err != nil {
		return nil, err
	}
	return &Evaluator{expr: expr}, nil
}

// Match evaluates the expression with params as variables. Evaluation
// errors and non-boolean results drop the row rather than erroring: a
// half-typed expression must never take the table down.
func (e *Evaluator) Match(params map[string]any) bool {
	if e == nil || e.expr == nil {
		return true
	}
	result, err := e.expr.Evaluate(params)
	if err != nil {
		return false
	}
	b, ok := result.(bool)
	return ok && b
}
