package adapter

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"

	m "github.com/mouse-blink/bva/internal/model"
)

// GoFrontend parses Go source with go/parser. Conditions are collected by
// walking down from each function declaration, so ownership is known by
// construction; closures count as part of their enclosing function.
type GoFrontend struct{}

// NewGoFrontend constructs a GoFrontend.
func NewGoFrontend() *GoFrontend {
	return &GoFrontend{}
}

// Language implements Frontend.
func (f *GoFrontend) Language() m.Language {
	return m.LanguageGo
}

// Extensions implements Frontend.
func (f *GoFrontend) Extensions() []string {
	return []string{".go"}
}

// Parse builds the unit for the provided filename/source pair.
func (f *GoFrontend) Parse(path m.Path, src []byte) (m.Unit, error) {
	fset := token.NewFileSet()

	file, err := parser.ParseFile(fset, string(path), src, parser.SkipObjectResolution)
	if err != nil {
		return m.Unit{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	conv := goConverter{fset: fset, content: src}
	unit := m.Unit{Path: path, Language: m.LanguageGo}

	for _, decl := range file.Decls {
		fd, ok := decl.(*ast.FuncDecl)
		if !ok || fd.Body == nil {
			continue
		}

		unit.Methods = append(unit.Methods, conv.method(fd))
	}

	return unit, nil
}

type goConverter struct {
	fset    *token.FileSet
	content []byte
}

func (c goConverter) method(fd *ast.FuncDecl) m.Method {
	method := m.Method{
		Name:     fd.Name.Name,
		Receiver: receiverName(fd),
		Line:     c.fset.Position(fd.Name.Pos()).Line,
	}

	if fd.Type.Params != nil {
		for _, field := range fd.Type.Params.List {
			typeText := c.text(field.Type)
			if len(field.Names) == 0 {
				method.Params = append(method.Params, m.ParamDecl{TypeText: typeText})

				continue
			}

			for _, name := range field.Names {
				method.Params = append(method.Params, m.ParamDecl{Name: name.Name, TypeText: typeText})
			}
		}
	}

	owner := method.ID()

	ast.Inspect(fd.Body, func(n ast.Node) bool {
		switch stmt := n.(type) {
		case *ast.IfStmt:
			method.Conditions = append(method.Conditions, c.condition(owner, m.ConditionIf, stmt.Cond))
		case *ast.ForStmt:
			if stmt.Cond != nil {
				method.Conditions = append(method.Conditions, c.condition(owner, m.ConditionLoop, stmt.Cond))
			}
		}

		return true
	})

	return method
}

func (c goConverter) condition(owner string, kind m.ConditionKind, cond ast.Expr) m.Condition {
	return m.Condition{
		Owner: owner,
		Kind:  kind,
		Line:  c.fset.Position(cond.Pos()).Line,
		Expr:  c.convert(cond),
	}
}

func (c goConverter) convert(e ast.Expr) *m.Expr {
	if e == nil {
		return nil
	}

	out := &m.Expr{Text: c.text(e), Line: c.fset.Position(e.Pos()).Line}

	switch x := e.(type) {
	case *ast.BinaryExpr:
		switch x.Op { //nolint:exhaustive
		case token.LAND, token.LOR:
			out.Kind = m.ExprLogical
		case token.EQL, token.NEQ, token.LSS, token.GTR, token.LEQ, token.GEQ:
			out.Kind = m.ExprRelational
		default:
			return out
		}

		out.Op = x.Op.String()
		out.Left = c.convert(x.X)
		out.Right = c.convert(x.Y)
	case *ast.ParenExpr:
		out.Kind = m.ExprParen
		out.Right = c.convert(x.X)
	case *ast.BasicLit:
		out.Kind = m.ExprLiteral
		out.Literal = goLiteralKind(x.Kind)
		out.Text = x.Value
	case *ast.UnaryExpr:
		lit, ok := x.X.(*ast.BasicLit)
		if !ok || (x.Op != token.SUB && x.Op != token.ADD) {
			return out
		}

		out.Kind = m.ExprLiteral
		out.Literal = goLiteralKind(lit.Kind)
		out.Text = x.Op.String() + lit.Value
	case *ast.Ident:
		out.Kind = m.ExprIdent
	}

	return out
}

func (c goConverter) text(n ast.Node) string {
	start, ok := offsetForPos(c.fset, n.Pos())
	if !ok {
		return ""
	}

	end, ok := offsetForPos(c.fset, n.End())
	if !ok || start > end || end > len(c.content) {
		return ""
	}

	return string(c.content[start:end])
}

func offsetForPos(fset *token.FileSet, pos token.Pos) (int, bool) {
	file := fset.File(pos)
	if file == nil {
		return 0, false
	}

	return file.Offset(pos), true
}

func goLiteralKind(kind token.Token) m.LiteralKind {
	switch kind { //nolint:exhaustive
	case token.INT:
		return m.LiteralInt
	case token.FLOAT:
		return m.LiteralFloat
	case token.CHAR:
		return m.LiteralChar
	default:
		return m.LiteralOther
	}
}

func receiverName(fd *ast.FuncDecl) string {
	if fd.Recv == nil || len(fd.Recv.List) == 0 {
		return ""
	}

	expr := fd.Recv.List[0].Type
	for {
		switch x := expr.(type) {
		case *ast.StarExpr:
			expr = x.X
		case *ast.IndexExpr:
			expr = x.X
		case *ast.IndexListExpr:
			expr = x.X
		case *ast.ParenExpr:
			expr = x.X
		case *ast.Ident:
			return x.Name
		default:
			return ""
		}
	}
}
