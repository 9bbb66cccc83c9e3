package model

// ExprKind classifies a node of the neutral expression tree.
type ExprKind int

const (
	// ExprOther is any expression the engine does not look into.
	ExprOther ExprKind = iota
	// ExprRelational is a binary comparison (==, !=, <, >, <=, >=).
	ExprRelational
	// ExprLogical is a binary && or ||.
	ExprLogical
	// ExprParen is a parenthesized expression.
	ExprParen
	// ExprLiteral is a basic literal, optionally signed.
	ExprLiteral
	// ExprIdent is a bare identifier.
	ExprIdent
)

// LiteralKind is the syntactic class of a literal.
type LiteralKind int

// Literal kinds.
const (
	LiteralNone LiteralKind = iota
	LiteralInt
	LiteralFloat
	LiteralChar
	LiteralOther
)

// Expr is a language neutral view over a condition expression. Front ends
// build it; the engine only reads it.
type Expr struct {
	Kind    ExprKind
	Op      string // operator text for relational and logical nodes
	Left    *Expr
	Right   *Expr // also the inner expression of ExprParen
	Text    string
	Literal LiteralKind
	Line    int
}

// IsLogical reports whether e is an && or || node.
func (e *Expr) IsLogical() bool {
	return e != nil && e.Kind == ExprLogical
}
