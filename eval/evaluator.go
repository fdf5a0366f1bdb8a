// Package eval implements the tokenizer and Pratt parser for infix
// arithmetic/boolean expressions over decimal.Decimal values, per spec.md
// sections 4.4-4.6: variables and host functions held in a Scope, implicit
// multiplication, and re-evaluation under scope mutation without
// re-tokenizing.
package eval

import "github.com/trippwill/decx/decimal"

// Evaluator holds the process-local state spec.md section 5 describes: the
// last-installed scope, the last-compiled token list, and the last-parsed
// expression text. It is not safe for concurrent use; callers needing
// concurrent evaluation should use one Evaluator per goroutine.
type Evaluator struct {
	ctx        *decimal.Context
	scope      *Scope
	tokens     []Token
	expression string
}

// NewEvaluator constructs an Evaluator that rounds arithmetic results
// through ctx. A nil ctx falls back to decimal.BasicContext() on every
// call, matching the host library's convention.
func NewEvaluator(ctx *decimal.Context) *Evaluator {
	return &Evaluator{ctx: ctx}
}

// Expression returns the last parsed source string, including any
// implicit `*` insertions.
func (e *Evaluator) Expression() string { return e.expression }

// Evaluate installs a fresh scope, tokenizes expression against it, and
// evaluates the result. This is the "(expression: string, scope: map)"
// shape of spec.md section 4.6.
func (e *Evaluator) Evaluate(expression string, scope *Scope) (*decimal.Decimal, error) {
	if scope == nil {
		return nil, &TypeError{Detail: "scope must not be nil"}
	}
	tokens, parsed, err := Tokenize(expression, scope)
	if err != nil {
		return nil, err
	}
	p := &parser{tokens: tokens, scope: scope, ctx: e.ctx}
	result, err := p.evaluate(0)
	if err != nil {
		return nil, err
	}
	if p.cur().Kind != KindEnd {
		return nil, &SyntaxError{Detail: "trailing input after expression", Found: p.cur().Kind}
	}
	e.scope = scope
	e.tokens = tokens
	e.expression = parsed
	return result, nil
}

// Reevaluate reuses the previously installed scope and tokenizes a new
// expression string against it. This is the
// "(expression: string, scope: absent)" shape of spec.md section 4.6.
func (e *Evaluator) Reevaluate(expression string) (*decimal.Decimal, error) {
	if e.scope == nil {
		return nil, &NoExpressionError{}
	}
	return e.Evaluate(expression, e.scope)
}

// Rebind mutates existing bindings in place and re-evaluates the
// previously tokenized expression without re-tokenizing. This is the
// "(expression: map, scope: absent)" re-binding shorthand of spec.md
// section 4.6: every name in values/funcs must already be bound, and a
// function slot must receive a function while a value slot must receive a
// value.
func (e *Evaluator) Rebind(values map[string]*decimal.Decimal, funcs map[string]Func) (*decimal.Decimal, error) {
	if e.scope == nil || e.tokens == nil {
		return nil, &NoExpressionError{}
	}
	if err := e.scope.Rebind(values, funcs); err != nil {
		return nil, err
	}
	return (&parser{tokens: e.tokens, scope: e.scope, ctx: e.ctx}).evaluate(0)
}
