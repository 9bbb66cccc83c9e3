package adapter

import (
	"errors"
	"fmt"
	"strings"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_java "github.com/tree-sitter/tree-sitter-java/bindings/go"

	m "github.com/mouse-blink/bva/internal/model"
)

// maxOwnerAscent bounds the parent walk from a condition to its method.
const maxOwnerAscent = 256

var errJavaSyntax = errors.New("java syntax error")

var javaIntLiterals = map[string]bool{
	"decimal_integer_literal": true,
	"hex_integer_literal":     true,
	"octal_integer_literal":   true,
	"binary_integer_literal":  true,
}

var javaFloatLiterals = map[string]bool{
	"decimal_floating_point_literal": true,
	"hex_floating_point_literal":     true,
}

var javaTypeDecls = map[string]bool{
	"class_declaration":     true,
	"interface_declaration": true,
	"enum_declaration":      true,
	"record_declaration":    true,
}

// JavaFrontend parses Java source with the tree-sitter Java grammar.
type JavaFrontend struct {
	language *tree_sitter.Language
}

// NewJavaFrontend constructs a JavaFrontend.
func NewJavaFrontend() *JavaFrontend {
	return &JavaFrontend{language: tree_sitter.NewLanguage(tree_sitter_java.Language())}
}

// Language implements Frontend.
func (f *JavaFrontend) Language() m.Language {
	return m.LanguageJava
}

// Extensions implements Frontend.
func (f *JavaFrontend) Extensions() []string {
	return []string{".java"}
}

// Parse builds the unit for a Java compilation unit. Every if/loop statement
// of the file is attached to its nearest enclosing method or constructor.
func (f *JavaFrontend) Parse(path m.Path, src []byte) (m.Unit, error) {
	parser := tree_sitter.NewParser()
	defer parser.Close()

	if err := parser.SetLanguage(f.language); err != nil {
		return m.Unit{}, fmt.Errorf("failed to load java grammar: %w", err)
	}

	tree := parser.Parse(src, nil)
	if tree == nil {
		return m.Unit{}, fmt.Errorf("failed to parse %s", path)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		return m.Unit{}, fmt.Errorf("failed to parse %s: %w", path, errJavaSyntax)
	}

	w := &javaWalker{
		source:  src,
		methods: make(map[uintptr]int),
		unit:    m.Unit{Path: path, Language: m.LanguageJava},
	}
	w.walk(root)

	for i := range w.statements {
		w.attach(&w.statements[i])
	}

	return w.unit, nil
}

type javaStatement struct {
	node *tree_sitter.Node
	kind m.ConditionKind
	cond *tree_sitter.Node
}

type javaWalker struct {
	source     []byte
	methods    map[uintptr]int // node id -> index in unit.Methods
	statements []javaStatement
	unit       m.Unit
}

func (w *javaWalker) walk(n *tree_sitter.Node) {
	switch n.Kind() {
	case "method_declaration", "constructor_declaration":
		w.methods[n.Id()] = len(w.unit.Methods)
		w.unit.Methods = append(w.unit.Methods, w.method(n))
	case "if_statement", "while_statement", "do_statement":
		w.addStatement(n, n.ChildByFieldName("condition"))
	case "for_statement":
		if cond := n.ChildByFieldName("condition"); cond != nil {
			w.addStatement(n, cond)
		}
	}

	for i := uint(0); i < n.NamedChildCount(); i++ {
		if child := n.NamedChild(i); child != nil {
			w.walk(child)
		}
	}
}

func (w *javaWalker) addStatement(n, cond *tree_sitter.Node) {
	if cond == nil {
		return
	}

	kind := m.ConditionLoop
	if n.Kind() == "if_statement" {
		kind = m.ConditionIf
	}

	w.statements = append(w.statements, javaStatement{node: n, kind: kind, cond: cond})
}

func (w *javaWalker) method(n *tree_sitter.Node) m.Method {
	method := m.Method{Line: line(n)}

	if name := n.ChildByFieldName("name"); name != nil {
		method.Name = w.text(name)
		method.Line = line(name)
	}

	method.Receiver = w.enclosingType(n)

	params := n.ChildByFieldName("parameters")
	if params == nil {
		return method
	}

	for i := uint(0); i < params.NamedChildCount(); i++ {
		p := params.NamedChild(i)
		if p == nil || p.Kind() != "formal_parameter" {
			continue
		}

		decl := m.ParamDecl{}
		if t := p.ChildByFieldName("type"); t != nil {
			decl.TypeText = w.text(t)
		}

		if name := p.ChildByFieldName("name"); name != nil {
			decl.Name = w.text(name)
		}

		if p.ChildByFieldName("dimensions") != nil {
			decl.TypeText += "[]"
		}

		method.Params = append(method.Params, decl)
	}

	return method
}

func (w *javaWalker) enclosingType(n *tree_sitter.Node) string {
	cur := n
	for steps := 0; steps < maxOwnerAscent; steps++ {
		cur = cur.Parent()
		if cur == nil {
			return ""
		}

		if javaTypeDecls[cur.Kind()] {
			if name := cur.ChildByFieldName("name"); name != nil {
				return w.text(name)
			}

			return ""
		}
	}

	return ""
}

// attach ascends parent links to the nearest method. Conditions outside any
// method (initializer blocks) are dropped; an exhausted ascent is recorded as
// unresolved so the caller can report a structural anomaly.
func (w *javaWalker) attach(st *javaStatement) {
	cond := m.Condition{
		Kind: st.kind,
		Line: line(st.cond),
		Expr: w.convert(unwrapParens(st.cond)),
	}

	cur := st.node
	for steps := 0; steps < maxOwnerAscent; steps++ {
		cur = cur.Parent()
		if cur == nil {
			return
		}

		idx, ok := w.methods[cur.Id()]
		if !ok {
			continue
		}

		method := &w.unit.Methods[idx]
		cond.Owner = method.ID()
		method.Conditions = append(method.Conditions, cond)

		return
	}

	w.unit.Unresolved = append(w.unit.Unresolved, cond)
}

// unwrapParens strips the parentheses that Java requires around if/while
// conditions.
func unwrapParens(n *tree_sitter.Node) *tree_sitter.Node {
	if n.Kind() == "parenthesized_expression" && n.NamedChildCount() == 1 {
		return n.NamedChild(0)
	}

	return n
}

func (w *javaWalker) convert(n *tree_sitter.Node) *m.Expr {
	if n == nil {
		return nil
	}

	out := &m.Expr{Text: w.text(n), Line: line(n)}
	kind := n.Kind()

	switch {
	case kind == "binary_expression":
		op := n.ChildByFieldName("operator")
		if op == nil {
			return out
		}

		out.Op = op.Kind()

		switch out.Op {
		case "&&", "||":
			out.Kind = m.ExprLogical
		case "==", "!=", "<", ">", "<=", ">=":
			out.Kind = m.ExprRelational
		default:
			return out
		}

		out.Left = w.convert(n.ChildByFieldName("left"))
		out.Right = w.convert(n.ChildByFieldName("right"))
	case kind == "parenthesized_expression":
		out.Kind = m.ExprParen
		if n.NamedChildCount() > 0 {
			out.Right = w.convert(n.NamedChild(0))
		}
	case kind == "unary_expression":
		op := n.ChildByFieldName("operator")
		operand := n.ChildByFieldName("operand")

		if op == nil || operand == nil || (op.Kind() != "-" && op.Kind() != "+") {
			return out
		}

		lit := w.convert(operand)
		if lit.Kind != m.ExprLiteral {
			return out
		}

		out.Kind = m.ExprLiteral
		out.Literal = lit.Literal
		out.Text = op.Kind() + lit.Text
	case javaIntLiterals[kind]:
		out.Kind = m.ExprLiteral
		out.Literal = m.LiteralInt
		out.Text = strings.TrimRight(out.Text, "lL")
	case javaFloatLiterals[kind]:
		out.Kind = m.ExprLiteral
		out.Literal = m.LiteralFloat
		out.Text = strings.TrimRight(out.Text, "fFdD")
	case kind == "character_literal":
		out.Kind = m.ExprLiteral
		out.Literal = m.LiteralChar
		out.Text = goCharLiteral(out.Text)
	case kind == "identifier":
		out.Kind = m.ExprIdent
	}

	return out
}

// goCharLiteral rewrites the Java escapes Go spells differently: octal
// escapes of one or two digits, \s and \". Anything else is left as is.
func goCharLiteral(lit string) string {
	if len(lit) < 4 || lit[0] != '\'' || lit[len(lit)-1] != '\'' || lit[1] != '\\' {
		return lit
	}

	escape := lit[2 : len(lit)-1]

	switch {
	case escape == "s":
		return "' '"
	case escape == `"`:
		return `'"'`
	case len(escape) < 3 && strings.Trim(escape, "01234567") == "":
		return "'\\" + strings.Repeat("0", 3-len(escape)) + escape + "'"
	default:
		return lit
	}
}

func (w *javaWalker) text(n *tree_sitter.Node) string {
	start, end := n.StartByte(), n.EndByte()
	if int(start) > len(w.source) || int(end) > len(w.source) || start > end {
		return ""
	}

	return string(w.source[start:end])
}

func line(n *tree_sitter.Node) int {
	return int(n.StartPosition().Row) + 1
}
