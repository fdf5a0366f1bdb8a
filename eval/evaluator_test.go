package eval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trippwill/decx/decimal"
)

func num(t *testing.T, s string) *decimal.Decimal {
	t.Helper()
	v, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return v
}

func emptyScope(t *testing.T) *Scope {
	t.Helper()
	s, err := NewScope(nil, nil)
	require.NoError(t, err)
	return s
}

func TestArithmeticAndComparisons(t *testing.T) {
	e := NewEvaluator(nil)

	result, err := e.Evaluate("0.1 + 0.2", emptyScope(t))
	require.NoError(t, err)
	assert.Equal(t, "0.3", result.String())

	result, err = e.Evaluate("2 > 3", emptyScope(t))
	require.NoError(t, err)
	assert.Equal(t, "0", result.String())

	result, err = e.Evaluate("2 && 3", emptyScope(t))
	require.NoError(t, err)
	assert.Equal(t, "3", result.String())

	result, err = e.Evaluate("0 || 4", emptyScope(t))
	require.NoError(t, err)
	assert.Equal(t, "4", result.String())
}

func TestScopeRebindReevaluatesWithoutRetokenizing(t *testing.T) {
	scope, err := NewScope(map[string]*decimal.Decimal{
		"x": num(t, "2"),
		"y": num(t, "3"),
	}, nil)
	require.NoError(t, err)

	e := NewEvaluator(nil)
	result, err := e.Evaluate("x^y", scope)
	require.NoError(t, err)
	assert.Equal(t, "8", result.String())

	result, err = e.Rebind(map[string]*decimal.Decimal{"y": num(t, "-3")}, nil)
	require.NoError(t, err)
	assert.Equal(t, "0.125", result.String())

	result, err = e.Rebind(map[string]*decimal.Decimal{"x": num(t, "4")}, nil)
	require.NoError(t, err)
	assert.Equal(t, "0.015625", result.String())

	_, err = e.Rebind(map[string]*decimal.Decimal{"z": num(t, "5")}, nil)
	assert.Error(t, err)
	assert.IsType(t, &UnknownIdentifierError{}, err)
}

func TestRebindWithoutPriorExpressionFails(t *testing.T) {
	e := NewEvaluator(nil)
	_, err := e.Rebind(map[string]*decimal.Decimal{"x": num(t, "1")}, nil)
	assert.IsType(t, &NoExpressionError{}, err)
}

func TestImplicitMultiplication(t *testing.T) {
	scope, err := NewScope(map[string]*decimal.Decimal{"x": num(t, "5")}, nil)
	require.NoError(t, err)

	for _, expr := range []string{"2x", "2*x", "(2)(x)"} {
		e := NewEvaluator(nil)
		result, err := e.Evaluate(expr, scope)
		require.NoError(t, err, expr)
		assert.Equal(t, "10", result.String(), expr)
	}

	e := NewEvaluator(nil)
	div, err := e.Evaluate("1/2x", scope)
	require.NoError(t, err)
	e2 := NewEvaluator(nil)
	grouped, err := e2.Evaluate("(1/2)*x", scope)
	require.NoError(t, err)
	assert.Equal(t, grouped.String(), div.String())
}

func TestExpressionFieldRecordsImplicitStar(t *testing.T) {
	scope, err := NewScope(map[string]*decimal.Decimal{"x": num(t, "5")}, nil)
	require.NoError(t, err)
	e := NewEvaluator(nil)
	_, err = e.Evaluate("2x", scope)
	require.NoError(t, err)
	assert.Equal(t, "2*x", e.Expression())
}

func TestFunctionCall(t *testing.T) {
	scope, err := NewScope(nil, map[string]Func{
		"max": func(args []*decimal.Decimal) (*decimal.Decimal, error) {
			if len(args) == 0 {
				return decimal.Zero(decimal.Positive), nil
			}
			best := args[0]
			for _, a := range args[1:] {
				if a.Gt(best) {
					best = a
				}
			}
			return best, nil
		},
	})
	require.NoError(t, err)

	e := NewEvaluator(nil)
	result, err := e.Evaluate("max(1, 5, 3)", scope)
	require.NoError(t, err)
	assert.Equal(t, "5", result.String())
}

func TestInvalidIdentifierRejectedAtScopeInstall(t *testing.T) {
	_, err := NewScope(map[string]*decimal.Decimal{"2bad": num(t, "1")}, nil)
	assert.IsType(t, &InvalidIdentifierError{}, err)
}

func TestUnknownCharacterIsLexError(t *testing.T) {
	e := NewEvaluator(nil)
	_, err := e.Evaluate("2 @ 3", emptyScope(t))
	assert.IsType(t, &LexError{}, err)
}

func TestUnexpectedSymbolIsSyntaxError(t *testing.T) {
	e := NewEvaluator(nil)
	_, err := e.Evaluate("2 +", emptyScope(t))
	assert.IsType(t, &SyntaxError{}, err)
}

func TestParenGrouping(t *testing.T) {
	e := NewEvaluator(nil)
	result, err := e.Evaluate("(2+3)*4", emptyScope(t))
	require.NoError(t, err)
	assert.Equal(t, "20", result.String())
}

func TestSqrtAndBangPrefix(t *testing.T) {
	e := NewEvaluator(nil)
	result, err := e.Evaluate("√9", emptyScope(t))
	require.NoError(t, err)
	assert.Equal(t, "3", result.String())

	e2 := NewEvaluator(nil)
	result, err = e2.Evaluate("!0", emptyScope(t))
	require.NoError(t, err)
	assert.Equal(t, "1", result.String())
}

func TestDoubleStarRewrittenToCaret(t *testing.T) {
	e := NewEvaluator(nil)
	result, err := e.Evaluate("2**3", emptyScope(t))
	require.NoError(t, err)
	assert.Equal(t, "8", result.String())
}
