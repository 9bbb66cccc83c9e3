package adapter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/bva/internal/model"
)

func parseJavaExample(t *testing.T) m.Unit {
	t.Helper()

	path := examplePath(t, "java", "Example.java")
	unit, err := NewJavaFrontend().Parse(m.Path(path), readFileBytes(t, path))
	require.NoError(t, err)

	return unit
}

func TestJavaFrontend_Parse_Methods(t *testing.T) {
	unit := parseJavaExample(t)

	assert.Equal(t, m.LanguageJava, unit.Language)
	assert.Empty(t, unit.Unresolved)

	foo3 := findMethod(t, unit, "Example.foo3", 29)
	assert.Equal(t, "Example", foo3.Receiver)
	assert.Equal(t, []m.ParamDecl{
		{Name: "input", TypeText: "int"},
		{Name: "input2", TypeText: "double"},
		{Name: "input3", TypeText: "char"},
	}, foo3.Params)

	// overloads keep their own declaration lines
	findMethod(t, unit, "Example.scale", 37)
	findMethod(t, unit, "Example.scale", 47)
}

func TestJavaFrontend_Parse_LeftNestedConjunction(t *testing.T) {
	unit := parseJavaExample(t)

	foo3 := findMethod(t, unit, "Example.foo3", 0)
	require.Len(t, foo3.Conditions, 1)

	cond := foo3.Conditions[0]
	assert.Equal(t, foo3.ID(), cond.Owner)
	assert.Equal(t, 30, cond.Line)

	root := cond.Expr
	assert.Equal(t, m.ExprLogical, root.Kind)
	assert.Equal(t, "input3 == 'h'", root.Right.Text)
	assert.Equal(t, m.LiteralChar, root.Right.Right.Literal)

	left := root.Left
	assert.Equal(t, m.ExprLogical, left.Kind)
	assert.Equal(t, "input < 50", left.Left.Text)
	assert.Equal(t, "input2 > 0", left.Right.Text)
}

func TestJavaFrontend_Parse_LiteralsAndLoops(t *testing.T) {
	unit := parseJavaExample(t)

	scale := findMethod(t, unit, "Example.scale", 37)
	require.Len(t, scale.Conditions, 2)

	loop := scale.Conditions[0]
	assert.Equal(t, m.ConditionLoop, loop.Kind)
	assert.Equal(t, "10", loop.Expr.Right.Text)
	assert.Equal(t, m.LiteralInt, loop.Expr.Right.Literal)

	branch := scale.Conditions[1].Expr
	assert.Equal(t, "||", branch.Op)
	assert.Equal(t, "1.5", branch.Left.Right.Text)
	assert.Equal(t, m.LiteralFloat, branch.Left.Right.Literal)
	assert.Equal(t, "-3", branch.Right.Left.Text)
	assert.Equal(t, m.ExprLiteral, branch.Right.Left.Kind)

	hex := findMethod(t, unit, "Example.scale", 47)
	require.Len(t, hex.Conditions, 1)
	assert.Equal(t, "0x10", hex.Conditions[0].Expr.Right.Text)
}

func TestJavaFrontend_Parse_InitializerConditionsHaveNoOwner(t *testing.T) {
	unit := parseJavaExample(t)

	for _, method := range unit.Methods {
		for _, cond := range method.Conditions {
			assert.NotEqual(t, 8, cond.Line, "static initializer condition attached to %s", method.ID())
		}
	}

	assert.Empty(t, unit.Unresolved)
}

func TestJavaFrontend_Parse_ExhaustedAscentIsUnresolved(t *testing.T) {
	depth := maxOwnerAscent + 10

	var b strings.Builder
	b.WriteString("class Deep {\n  void run(int x) {\n")
	b.WriteString(strings.Repeat("{", depth))
	b.WriteString(" if (x > 1) { } ")
	b.WriteString(strings.Repeat("}", depth))
	b.WriteString("\n  }\n}\n")

	unit, err := NewJavaFrontend().Parse("Deep.java", []byte(b.String()))
	require.NoError(t, err)

	require.Len(t, unit.Methods, 1)
	assert.Empty(t, unit.Methods[0].Conditions)
	require.Len(t, unit.Unresolved, 1)
	assert.Equal(t, "x > 1", unit.Unresolved[0].Expr.Text)
}

func TestJavaFrontend_Parse_SyntaxError(t *testing.T) {
	_, err := NewJavaFrontend().Parse("Broken.java", []byte("class Broken { void f( { }"))
	require.ErrorIs(t, err, errJavaSyntax)
}

func TestJavaFrontend_Parse_CharEscapes(t *testing.T) {
	src := `class Chars {
    void f(char c) {
        if (c == '\0') { }
        if (c != '\12') { }
        if (c > '\377') { }
        if (c == 'A') { }
        if (c < 'z') { }
    }
}
`

	unit, err := NewJavaFrontend().Parse("Chars.java", []byte(src))
	require.NoError(t, err)
	require.Len(t, unit.Methods, 1)

	var literals []string
	for _, cond := range unit.Methods[0].Conditions {
		require.Equal(t, m.LiteralChar, cond.Expr.Right.Literal)
		literals = append(literals, cond.Expr.Right.Text)
	}

	assert.Equal(t, []string{`'\000'`, `'\012'`, `'\377'`, `'A'`, `'z'`}, literals)
}

func TestGoCharLiteral(t *testing.T) {
	tests := []struct {
		java string
		want string
	}{
		{`'\0'`, `'\000'`},
		{`'\7'`, `'\007'`},
		{`'\12'`, `'\012'`},
		{`'\101'`, `'\101'`},
		{`'\s'`, `' '`},
		{`'\"'`, `'"'`},
		{`'\n'`, `'\n'`},
		{`'\''`, `'\''`},
		{`'a'`, `'a'`},
		{`'é'`, `'é'`},
	}

	for _, tt := range tests {
		t.Run(tt.java, func(t *testing.T) {
			assert.Equal(t, tt.want, goCharLiteral(tt.java))
		})
	}
}
