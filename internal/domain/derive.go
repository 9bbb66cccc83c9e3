package domain

import (
	"errors"
	"fmt"
	"go/constant"
	"go/token"
	"math"
	"strconv"
	"unicode"

	m "github.com/mouse-blink/bva/internal/model"
)

// boundaryOffsets holds, per operator, how many unit steps are added to the
// literal to get the success value and the failure value.
var boundaryOffsets = map[token.Token][2]int64{
	token.EQL: {0, 1},
	token.NEQ: {1, 0},
	token.LSS: {-1, 0},
	token.GTR: {1, 0},
	token.LEQ: {0, 1},
	token.GEQ: {0, -1},
}

var (
	unitStep  = constant.MakeInt64(1)
	floatStep = constant.MakeFromLiteral("0.01", token.FLOAT, 0)
)

var errOutOfRange = errors.New("value out of range")

// Derive returns the [success, failure] boundary values for "param op v".
// Arithmetic is exact; floating point results are rounded once.
func Derive(op token.Token, v m.PrimitiveValue) ([2]m.PrimitiveValue, error) {
	var pair [2]m.PrimitiveValue

	offsets, ok := boundaryOffsets[op]
	if !ok {
		return pair, fmt.Errorf("unsupported comparison operator %s", op)
	}

	base, step, err := exactValue(v)
	if err != nil {
		return pair, err
	}

	for i, n := range offsets {
		shifted := constant.BinaryOp(base, token.ADD, constant.BinaryOp(step, token.MUL, constant.MakeInt64(n)))

		pv, err := fromExact(v.Type, shifted)
		if err != nil {
			return pair, fmt.Errorf("%w: %s %s %s", ErrBoundaryOverflow, op, v, err)
		}

		pair[i] = pv
	}

	return pair, nil
}

// mirrorOp rewrites "lit op param" as "param op' lit".
func mirrorOp(op token.Token) token.Token {
	switch op { //nolint:exhaustive
	case token.LSS:
		return token.GTR
	case token.GTR:
		return token.LSS
	case token.LEQ:
		return token.GEQ
	case token.GEQ:
		return token.LEQ
	default:
		return op
	}
}

func exactValue(v m.PrimitiveValue) (constant.Value, constant.Value, error) {
	switch v.Type {
	case m.Integer:
		return constant.MakeInt64(v.Int), unitStep, nil
	case m.Character:
		return constant.MakeInt64(int64(v.Char)), unitStep, nil
	case m.FloatingPoint:
		if math.IsInf(v.Float, 0) || math.IsNaN(v.Float) {
			return nil, nil, fmt.Errorf("%w: %v", ErrBoundaryOverflow, v.Float)
		}

		// Go through the shortest decimal form so 0.1 stays 0.1, not its
		// binary approximation.
		abs := constant.MakeFromLiteral(strconv.FormatFloat(math.Abs(v.Float), 'g', -1, 64), token.FLOAT, 0)
		if v.Float < 0 {
			abs = constant.UnaryOp(token.SUB, abs, 0)
		}

		return abs, floatStep, nil
	default:
		return nil, nil, fmt.Errorf("unsupported primitive type %q", v.Type)
	}
}

func fromExact(t m.PrimitiveType, c constant.Value) (m.PrimitiveValue, error) {
	switch t {
	case m.Integer, m.Character:
		i := constant.ToInt(c)
		if i.Kind() != constant.Int {
			return m.PrimitiveValue{}, fmt.Errorf("%s is not an integer", c)
		}

		n, exact := constant.Int64Val(i)
		if !exact {
			return m.PrimitiveValue{}, fmt.Errorf("%w: %s", errOutOfRange, i)
		}

		if t == m.Integer {
			return m.IntValue(n), nil
		}

		if n < 0 || n > unicode.MaxRune || isSurrogate(n) {
			return m.PrimitiveValue{}, fmt.Errorf("%w: character %d", errOutOfRange, n)
		}

		return m.CharValue(rune(n)), nil
	case m.FloatingPoint:
		f := constant.ToFloat(c)
		if f.Kind() != constant.Float && f.Kind() != constant.Int {
			return m.PrimitiveValue{}, fmt.Errorf("%s is not a number", c)
		}

		v, _ := constant.Float64Val(f)
		if math.IsInf(v, 0) {
			return m.PrimitiveValue{}, fmt.Errorf("%w: %s", errOutOfRange, c)
		}

		return m.FloatValue(v), nil
	default:
		return m.PrimitiveValue{}, fmt.Errorf("unsupported primitive type %q", t)
	}
}

// isSurrogate reports whether n is a UTF-16 surrogate half, which is not a
// character on its own.
func isSurrogate(n int64) bool {
	return n >= 0xD800 && n <= 0xDFFF
}
