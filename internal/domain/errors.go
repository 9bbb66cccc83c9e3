package domain

import "errors"

var (
	// ErrMalformedLiteral means the operand compared against a parameter is
	// not a literal of the parameter's type.
	ErrMalformedLiteral = errors.New("malformed literal")
	// ErrBoundaryOverflow means a boundary value falls outside its type's range.
	ErrBoundaryOverflow = errors.New("boundary value out of range")
	// ErrTypeConflict means one parameter resolved to two different types.
	ErrTypeConflict = errors.New("conflicting parameter types")
	// ErrStructuralAnomaly means a condition could not be tied to the analyzed
	// method, or its tree is deeper than any sane source produces.
	ErrStructuralAnomaly = errors.New("structural anomaly")
	// ErrMethodNotFound means no method with the requested name exists.
	ErrMethodNotFound = errors.New("method not found")
	// ErrAmbiguousMethod means several methods match and no line was given.
	ErrAmbiguousMethod = errors.New("ambiguous method")
)
