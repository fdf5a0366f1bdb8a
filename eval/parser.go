package eval

import "github.com/trippwill/decx/decimal"

// parser implements the top-down operator-precedence (Pratt) loop over a
// fixed token list, per spec.md section 4.5.
type parser struct {
	tokens []Token
	pos    int
	scope  *Scope
	ctx    *decimal.Context
}

func (p *parser) cur() Token { return p.tokens[p.pos] }

func (p *parser) advance() Token {
	t := p.tokens[p.pos]
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return t
}

func lbp(k Kind) int {
	switch k {
	case KindCaret:
		return 80
	case KindStar, KindSlash, KindPercent:
		return 60
	case KindPlus, KindMinus:
		return 50
	case KindGt, KindGte, KindLt, KindLte:
		return 40
	case KindEqEq, KindNotEq:
		return 30
	case KindAndAnd:
		return 20
	case KindOrOr:
		return 10
	default:
		return 0
	}
}

// evaluate implements the Pratt loop: fetch the current token, require a
// prefix handler, then fold in infix operators whose lbp exceeds rbp.
func (p *parser) evaluate(rbp int) (*decimal.Decimal, error) {
	t := p.advance()
	left, err := p.prefix(t)
	if err != nil {
		return nil, err
	}
	for rbp < lbp(p.cur().Kind) {
		t = p.advance()
		left, err = p.infix(t, left)
		if err != nil {
			return nil, err
		}
	}
	return left, nil
}

func (p *parser) prefix(t Token) (*decimal.Decimal, error) {
	switch t.Kind {
	case KindNumber:
		return t.Num, nil
	case KindVariable:
		return p.scope.Value(t.Name), nil
	case KindFunction:
		return p.call(t.Name)
	case KindPlus:
		return p.evaluate(70)
	case KindMinus:
		v, err := p.evaluate(70)
		if err != nil {
			return nil, err
		}
		return v.Neg(), nil
	case KindSqrt:
		v, err := p.evaluate(79)
		if err != nil {
			return nil, err
		}
		return v.Sqrt(p.ctx), nil
	case KindBang:
		v, err := p.evaluate(70)
		if err != nil {
			return nil, err
		}
		return boolDecimal(v.IsZero()), nil
	case KindLParen:
		v, err := p.evaluate(0)
		if err != nil {
			return nil, err
		}
		if p.cur().Kind != KindRParen {
			return nil, &SyntaxError{Detail: "expected )", Found: p.cur().Kind}
		}
		p.advance()
		return v, nil
	default:
		return nil, &SyntaxError{Detail: "unexpected symbol, expected an expression", Found: t.Kind}
	}
}

func (p *parser) call(name string) (*decimal.Decimal, error) {
	if p.cur().Kind != KindLParen {
		return nil, &SyntaxError{Detail: "expected ( after function name " + name, Found: p.cur().Kind}
	}
	p.advance()

	var args []*decimal.Decimal
	if p.cur().Kind != KindRParen {
		for {
			v, err := p.evaluate(0)
			if err != nil {
				return nil, err
			}
			args = append(args, v)
			if p.cur().Kind != KindComma {
				break
			}
			p.advance()
		}
	}
	if p.cur().Kind != KindRParen {
		return nil, &SyntaxError{Detail: "expected )", Found: p.cur().Kind}
	}
	p.advance()

	fn := p.scope.Function(name)
	return fn(args)
}

func (p *parser) infix(t Token, left *decimal.Decimal) (*decimal.Decimal, error) {
	switch t.Kind {
	case KindCaret:
		right, err := p.evaluate(79)
		if err != nil {
			return nil, err
		}
		return left.Pow(right, p.ctx), nil
	case KindStar:
		right, err := p.evaluate(60)
		if err != nil {
			return nil, err
		}
		return left.Times(right, p.ctx), nil
	case KindSlash:
		right, err := p.evaluate(60)
		if err != nil {
			return nil, err
		}
		return left.Div(right, p.ctx), nil
	case KindPercent:
		right, err := p.evaluate(60)
		if err != nil {
			return nil, err
		}
		return left.Mod(right, p.ctx), nil
	case KindPlus:
		right, err := p.evaluate(50)
		if err != nil {
			return nil, err
		}
		return left.Plus(right, p.ctx), nil
	case KindMinus:
		right, err := p.evaluate(50)
		if err != nil {
			return nil, err
		}
		return left.Minus(right, p.ctx), nil
	case KindGt:
		right, err := p.evaluate(40)
		if err != nil {
			return nil, err
		}
		return boolDecimal(left.Gt(right)), nil
	case KindGte:
		right, err := p.evaluate(40)
		if err != nil {
			return nil, err
		}
		return boolDecimal(left.Gte(right)), nil
	case KindLt:
		right, err := p.evaluate(40)
		if err != nil {
			return nil, err
		}
		return boolDecimal(left.Lt(right)), nil
	case KindLte:
		right, err := p.evaluate(40)
		if err != nil {
			return nil, err
		}
		return boolDecimal(left.Lte(right)), nil
	case KindEqEq:
		right, err := p.evaluate(30)
		if err != nil {
			return nil, err
		}
		return boolDecimal(left.Eq(right)), nil
	case KindNotEq:
		right, err := p.evaluate(30)
		if err != nil {
			return nil, err
		}
		return boolDecimal(!left.Eq(right)), nil
	case KindAndAnd:
		// Both sides always evaluate; only the choice of returned operand
		// is conditional (spec.md section 4.5: no short-circuiting).
		right, err := p.evaluate(20)
		if err != nil {
			return nil, err
		}
		if left.IsZero() {
			return left, nil
		}
		return right, nil
	case KindOrOr:
		right, err := p.evaluate(10)
		if err != nil {
			return nil, err
		}
		if left.IsZero() {
			return right, nil
		}
		return left, nil
	default:
		return nil, &SyntaxError{Detail: "unexpected infix operator", Found: t.Kind}
	}
}

func boolDecimal(b bool) *decimal.Decimal {
	if b {
		return decimal.NewFromInt64(1)
	}
	return decimal.NewFromInt64(0)
}
