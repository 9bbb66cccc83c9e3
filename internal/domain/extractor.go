package domain

import (
	"errors"
	"fmt"
	"go/token"
	"strings"

	"go.uber.org/zap"

	m "github.com/mouse-blink/bva/internal/model"
)

// maxConditionDepth bounds the recursion over one condition tree.
const maxConditionDepth = 4096

var relationalOps = map[string]token.Token{
	"==": token.EQL,
	"!=": token.NEQ,
	"<":  token.LSS,
	">":  token.GTR,
	"<=": token.LEQ,
	">=": token.GEQ,
}

// MalformedPolicy decides what happens to a comparison whose literal cannot
// be read as the parameter's type.
type MalformedPolicy string

const (
	// MalformedFail aborts the analysis with ErrMalformedLiteral.
	MalformedFail MalformedPolicy = "fail"
	// MalformedSkip drops the comparison and logs a warning.
	MalformedSkip MalformedPolicy = "skip"
)

// BoundaryExtractor derives boundary values from a method's conditions.
type BoundaryExtractor interface {
	Analyze(conditions []m.Condition, catalog ParameterCatalog) (m.BoundaryResult, error)
}

// ExtractorOption configures a BoundaryExtractor.
type ExtractorOption func(*boundaryExtractor)

// WithExtractorLogger sets the logger used for skipped comparisons.
func WithExtractorLogger(logger *zap.Logger) ExtractorOption {
	return func(x *boundaryExtractor) {
		if logger != nil {
			x.logger = logger
		}
	}
}

// WithMalformedPolicy sets how malformed literals are handled.
func WithMalformedPolicy(policy MalformedPolicy) ExtractorOption {
	return func(x *boundaryExtractor) {
		x.policy = policy
	}
}

type boundaryExtractor struct {
	logger *zap.Logger
	policy MalformedPolicy
}

// NewBoundaryExtractor creates a stateless BoundaryExtractor.
func NewBoundaryExtractor(options ...ExtractorOption) BoundaryExtractor {
	x := &boundaryExtractor{
		logger: zap.NewNop(),
		policy: MalformedFail,
	}

	for _, option := range options {
		option(x)
	}

	return x
}

// Analyze walks every condition and accumulates boundary value pairs for the
// cataloged parameters. Each call starts from an empty result.
func (x *boundaryExtractor) Analyze(conditions []m.Condition, catalog ParameterCatalog) (m.BoundaryResult, error) {
	acc := newAccumulator(catalog.Method)

	for _, cond := range conditions {
		if cond.Owner != catalog.Method {
			return m.BoundaryResult{}, fmt.Errorf("%w: condition at line %d belongs to %q, not %q",
				ErrStructuralAnomaly, cond.Line, cond.Owner, catalog.Method)
		}

		if err := x.decompose(cond.Expr, catalog, acc, 0); err != nil {
			return m.BoundaryResult{}, err
		}
	}

	return acc.result, nil
}

// decompose handles a left-leaning chain of && / || one term at a time: the
// right operand first, then the remainder on the left.
func (x *boundaryExtractor) decompose(e *m.Expr, catalog ParameterCatalog, acc *accumulator, depth int) error {
	if depth > maxConditionDepth {
		return fmt.Errorf("%w: condition nested deeper than %d levels", ErrStructuralAnomaly, maxConditionDepth)
	}

	if e == nil {
		return nil
	}

	if !e.IsLogical() {
		return x.handleComparison(e, catalog, acc)
	}

	if err := x.decompose(e.Right, catalog, acc, depth+1); err != nil {
		return err
	}

	return x.decompose(e.Left, catalog, acc, depth+1)
}

func (x *boundaryExtractor) handleComparison(e *m.Expr, catalog ParameterCatalog, acc *accumulator) error {
	if e.Kind != m.ExprRelational || e.Left == nil || e.Right == nil {
		x.logger.Debug("skipping non-relational term", zap.String("expr", e.Text), zap.Int("line", e.Line))

		return nil
	}

	op, ok := relationalOps[e.Op]
	if !ok {
		return nil
	}

	param, operand, mirrored, ok := matchParameter(e, catalog)
	if !ok {
		x.logger.Debug("skipping comparison without a single cataloged parameter",
			zap.String("expr", e.Text), zap.Int("line", e.Line))

		return nil
	}

	if operand.Kind != m.ExprLiteral {
		x.logger.Debug("skipping symbolic comparison", zap.String("expr", e.Text), zap.Int("line", e.Line))

		return nil
	}

	if mirrored {
		op = mirrorOp(op)
	}

	value, err := parseLiteral(operand, param.Type)
	if err != nil {
		return x.malformed(e, err)
	}

	pair, err := Derive(op, value)
	if err != nil {
		return x.malformed(e, err)
	}

	return acc.add(param, pair)
}

func (x *boundaryExtractor) malformed(e *m.Expr, err error) error {
	wrapped := fmt.Errorf("line %d: %q: %w", e.Line, e.Text, err)
	if x.policy != MalformedSkip {
		return wrapped
	}

	if errors.Is(err, ErrMalformedLiteral) || errors.Is(err, ErrBoundaryOverflow) {
		x.logger.Warn("skipping comparison", zap.Error(wrapped))

		return nil
	}

	return wrapped
}

// matchParameter finds the side of e that names a cataloged parameter.
// mirrored is true when the parameter is the right operand.
func matchParameter(e *m.Expr, catalog ParameterCatalog) (m.Parameter, *m.Expr, bool, bool) {
	left, leftOK := catalog.Lookup(strings.TrimSpace(e.Left.Text))
	right, rightOK := catalog.Lookup(strings.TrimSpace(e.Right.Text))

	switch {
	case leftOK && !rightOK:
		return left, e.Right, false, true
	case rightOK && !leftOK:
		return right, e.Left, true, true
	default:
		return m.Parameter{}, nil, false, false
	}
}

// accumulator builds the BoundaryResult of a single Analyze call.
type accumulator struct {
	result m.BoundaryResult
}

func newAccumulator(method string) *accumulator {
	return &accumulator{result: m.BoundaryResult{
		Method: method,
		Values: map[string][]m.PrimitiveValue{},
		Types:  map[string]m.PrimitiveType{},
	}}
}

// add appends a success/failure pair. The first pair fixes the type.
func (a *accumulator) add(param m.Parameter, pair [2]m.PrimitiveValue) error {
	for _, v := range pair {
		if v.Type != param.Type {
			return fmt.Errorf("%w: %s is %s but got a %s value", ErrTypeConflict, param.Name, param.Type, v.Type)
		}
	}

	known, ok := a.result.Types[param.Name]
	if ok && known != param.Type {
		return fmt.Errorf("%w: %s resolved as %s and %s", ErrTypeConflict, param.Name, known, param.Type)
	}

	if !ok {
		a.result.Order = append(a.result.Order, param.Name)
		a.result.Types[param.Name] = param.Type
	}

	a.result.Values[param.Name] = append(a.result.Values[param.Name], pair[0], pair[1])

	return nil
}
