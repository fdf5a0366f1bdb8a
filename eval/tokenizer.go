package eval

import (
	"strings"
	"unicode"

	"github.com/trippwill/decx/decimal"
)

// Tokenize splits src into a linear token list against scope, inserting
// synthetic `*` tokens for implicit multiplication, per spec.md section
// 4.4. It returns the parsed expression text (the literal source plus any
// inserted `*`) alongside the tokens.
func Tokenize(src string, scope *Scope) ([]Token, string, error) {
	src = strings.ReplaceAll(src, "**", "^")
	runes := []rune(src)
	n := len(runes)

	var tokens []Token
	var expr strings.Builder
	pos := 0

	appendToken := func(tok Token, text string) {
		tokens = append(tokens, tok)
		expr.WriteString(text)
	}

	insertsImplicitStar := func() bool {
		p := pos
		for p < n && unicode.IsSpace(runes[p]) {
			p++
		}
		if p >= n {
			return false
		}
		switch runes[p] {
		case '(', '√':
			return true
		case '!':
			return !(p+1 < n && runes[p+1] == '=')
		}
		if _, _, ok := matchIdent(runes[p:], scope); ok {
			return true
		}
		return false
	}

	maybeInsertStar := func() {
		if insertsImplicitStar() {
			appendToken(Token{Kind: KindStar}, "*")
		}
	}

	for pos < n {
		if unicode.IsSpace(runes[pos]) {
			expr.WriteRune(runes[pos])
			pos++
			continue
		}

		if name, isFunc, ok := matchIdent(runes[pos:], scope); ok {
			appendToken(identToken(name, isFunc), name)
			pos += len([]rune(name))
			if !isFunc {
				maybeInsertStar()
			}
			continue
		}

		if pos+1 < n {
			if kind, ok := twoCharOp(runes[pos], runes[pos+1]); ok {
				appendToken(Token{Kind: kind}, string(runes[pos:pos+2]))
				pos += 2
				continue
			}
		}

		ch := runes[pos]
		if unicode.IsDigit(ch) {
			text, end, err := scanNumber(runes, pos)
			if err != nil {
				return nil, "", err
			}
			d, perr := decimal.NewFromString(text)
			if perr != nil {
				return nil, "", &LexError{Symbol: ch, Pos: pos}
			}
			appendToken(numberToken(d), text)
			pos = end
			maybeInsertStar()
			continue
		}

		kind, isNoun, ok := oneCharOp(ch)
		if !ok {
			return nil, "", &LexError{Symbol: ch, Pos: pos}
		}
		appendToken(Token{Kind: kind}, string(ch))
		pos++
		if isNoun {
			maybeInsertStar()
		}
	}

	tokens = append(tokens, Token{Kind: KindEnd})
	return tokens, expr.String(), nil
}

// matchIdent finds the longest scope name that is a prefix of r.
func matchIdent(r []rune, scope *Scope) (name string, isFunc bool, ok bool) {
	if scope == nil {
		return "", false, false
	}
	s := string(r)
	for _, candidate := range scope.names {
		if strings.HasPrefix(s, candidate) {
			isF, _ := scope.Lookup(candidate)
			return candidate, isF, true
		}
	}
	return "", false, false
}

func twoCharOp(a, b rune) (Kind, bool) {
	switch string([]rune{a, b}) {
	case "!=":
		return KindNotEq, true
	case "==":
		return KindEqEq, true
	case "<=":
		return KindLte, true
	case ">=":
		return KindGte, true
	case "&&":
		return KindAndAnd, true
	case "||":
		return KindOrOr, true
	}
	return 0, false
}

// oneCharOp returns the token kind for a single-character lexeme and
// whether that lexeme can be followed by implicit multiplication (only
// `)` among operators can).
func oneCharOp(ch rune) (kind Kind, isNoun bool, ok bool) {
	switch ch {
	case '+':
		return KindPlus, false, true
	case '-':
		return KindMinus, false, true
	case '*':
		return KindStar, false, true
	case '/':
		return KindSlash, false, true
	case '%':
		return KindPercent, false, true
	case '^':
		return KindCaret, false, true
	case '(':
		return KindLParen, false, true
	case ')':
		return KindRParen, true, true
	case ',':
		return KindComma, false, true
	case '>':
		return KindGt, false, true
	case '<':
		return KindLt, false, true
	case '!':
		return KindBang, false, true
	case '√':
		return KindSqrt, false, true
	}
	return 0, false, false
}

// scanNumber matches \d+(\.\d+)?([eE][+-]?\d+)? starting at pos.
func scanNumber(runes []rune, pos int) (string, int, error) {
	n := len(runes)
	start := pos
	for pos < n && unicode.IsDigit(runes[pos]) {
		pos++
	}
	if pos+1 < n && runes[pos] == '.' && unicode.IsDigit(runes[pos+1]) {
		pos++
		for pos < n && unicode.IsDigit(runes[pos]) {
			pos++
		}
	}
	if pos < n && (runes[pos] == 'e' || runes[pos] == 'E') {
		p := pos + 1
		if p < n && (runes[p] == '+' || runes[p] == '-') {
			p++
		}
		if p < n && unicode.IsDigit(runes[p]) {
			for p < n && unicode.IsDigit(runes[p]) {
				p++
			}
			pos = p
		}
	}
	return string(runes[start:pos]), pos, nil
}
