package domain

import (
	"fmt"
	"go/constant"
	"go/token"
	"strings"

	m "github.com/mouse-blink/bva/internal/model"
)

var literalTokens = map[m.LiteralKind]token.Token{
	m.LiteralInt:   token.INT,
	m.LiteralFloat: token.FLOAT,
	m.LiteralChar:  token.CHAR,
}

// acceptedLiterals lists which literal kinds may be compared against each type.
var acceptedLiterals = map[m.PrimitiveType]map[m.LiteralKind]bool{
	m.Integer:       {m.LiteralInt: true, m.LiteralChar: true, m.LiteralFloat: true},
	m.FloatingPoint: {m.LiteralInt: true, m.LiteralFloat: true},
	m.Character:     {m.LiteralChar: true, m.LiteralInt: true, m.LiteralFloat: true},
}

// parseLiteral reads a literal expression as a value of type t. Float
// literals only pass for Integer and Character when they hold an exact
// integer. Integer values are limited to int64, so uint64 literals above
// math.MaxInt64 are malformed.
func parseLiteral(e *m.Expr, t m.PrimitiveType) (m.PrimitiveValue, error) {
	if !acceptedLiterals[t][e.Literal] {
		return m.PrimitiveValue{}, fmt.Errorf("%w: %s is not a %s literal", ErrMalformedLiteral, e.Text, t)
	}

	text := strings.TrimSpace(e.Text)
	negative := false

	switch {
	case strings.HasPrefix(text, "-"):
		negative = true
		text = strings.TrimSpace(text[1:])
	case strings.HasPrefix(text, "+"):
		text = strings.TrimSpace(text[1:])
	}

	value := constant.MakeFromLiteral(text, literalTokens[e.Literal], 0)
	if value.Kind() == constant.Unknown {
		return m.PrimitiveValue{}, fmt.Errorf("%w: cannot parse %s", ErrMalformedLiteral, e.Text)
	}

	if negative {
		value = constant.UnaryOp(token.SUB, value, 0)
	}

	pv, err := fromExact(t, value)
	if err != nil {
		return m.PrimitiveValue{}, fmt.Errorf("%w: %s: %s", ErrMalformedLiteral, e.Text, err)
	}

	return pv, nil
}
