package eval

import "github.com/trippwill/decx/decimal"

// Kind tags the variant held by a Token.
type Kind int

const (
	KindNumber Kind = iota
	KindVariable
	KindFunction
	KindPlus
	KindMinus
	KindStar
	KindSlash
	KindPercent
	KindCaret
	KindLParen
	KindRParen
	KindComma
	KindGt
	KindGte
	KindLt
	KindLte
	KindEqEq
	KindNotEq
	KindAndAnd
	KindOrOr
	KindSqrt
	KindBang
	KindEnd
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindVariable:
		return "variable"
	case KindFunction:
		return "function"
	case KindPlus:
		return "+"
	case KindMinus:
		return "-"
	case KindStar:
		return "*"
	case KindSlash:
		return "/"
	case KindPercent:
		return "%"
	case KindCaret:
		return "^"
	case KindLParen:
		return "("
	case KindRParen:
		return ")"
	case KindComma:
		return ","
	case KindGt:
		return ">"
	case KindGte:
		return ">="
	case KindLt:
		return "<"
	case KindLte:
		return "<="
	case KindEqEq:
		return "=="
	case KindNotEq:
		return "!="
	case KindAndAnd:
		return "&&"
	case KindOrOr:
		return "||"
	case KindSqrt:
		return "√"
	case KindBang:
		return "!"
	case KindEnd:
		return "end"
	}
	return "unknown"
}

// Token is a single lexeme: a tagged variant carrying a decimal literal for
// numbers, a bound name for identifiers, or nothing for operators and the
// end sentinel.
type Token struct {
	Kind Kind
	Num  *decimal.Decimal
	Name string
}

func numberToken(d *decimal.Decimal) Token { return Token{Kind: KindNumber, Num: d} }

func identToken(name string, isFunc bool) Token {
	if isFunc {
		return Token{Kind: KindFunction, Name: name}
	}
	return Token{Kind: KindVariable, Name: name}
}
