package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	m "github.com/mouse-blink/bva/internal/model"
)

func TestBuildCatalog_KeepsSupportedParamsInOrder(t *testing.T) {
	method := m.Method{
		Name:     "foo3",
		Receiver: "Example",
		Line:     29,
		Params: []m.ParamDecl{
			{Name: "input", TypeText: "int"},
			{Name: "name", TypeText: "String"},
			{Name: "input2", TypeText: "double"},
			{Name: "input3", TypeText: "char"},
			{Name: "flags", TypeText: "int[]"},
		},
	}

	catalog := BuildCatalog(method, DefaultTypeTable(m.LanguageJava))

	assert.Equal(t, "Example.foo3@29", catalog.Method)
	assert.Equal(t, []m.Parameter{
		{Name: "input", Type: m.Integer},
		{Name: "input2", Type: m.FloatingPoint},
		{Name: "input3", Type: m.Character},
	}, catalog.Params())
	assert.Equal(t, 3, catalog.Len())

	p, ok := catalog.Lookup("input2")
	assert.True(t, ok)
	assert.Equal(t, m.FloatingPoint, p.Type)

	_, ok = catalog.Lookup("name")
	assert.False(t, ok)
}

func TestBuildCatalog_SkipsBlankAndDuplicateNames(t *testing.T) {
	method := m.Method{
		Name: "f",
		Params: []m.ParamDecl{
			{TypeText: "int"},
			{Name: "_", TypeText: "int"},
			{Name: "x", TypeText: "int64"},
			{Name: "x", TypeText: "float64"},
		},
	}

	catalog := BuildCatalog(method, DefaultTypeTable(m.LanguageGo))

	assert.Equal(t, []m.Parameter{{Name: "x", Type: m.Integer}}, catalog.Params())
}

func TestDefaultTypeTable_PerLanguage(t *testing.T) {
	goTable := DefaultTypeTable(m.LanguageGo)
	assert.Equal(t, m.Character, goTable["byte"])
	assert.Equal(t, m.Character, goTable["rune"])
	assert.Equal(t, m.FloatingPoint, goTable["float32"])

	javaTable := DefaultTypeTable(m.LanguageJava)
	assert.Equal(t, m.Integer, javaTable["byte"])
	assert.Equal(t, m.Integer, javaTable["long"])

	_, ok := DefaultTypeTable("cobol")["int"]
	assert.False(t, ok)
}

func TestTypeTable_WithAliases(t *testing.T) {
	base := DefaultTypeTable(m.LanguageGo)
	merged := base.With(map[string]m.PrimitiveType{
		"time.Duration": m.Integer,
		"byte":          m.Integer,
	})

	assert.Equal(t, m.Integer, merged["time.Duration"])
	assert.Equal(t, m.Integer, merged["byte"])
	assert.Equal(t, m.Character, base["byte"], "With must not modify the receiver")

	method := m.Method{Name: "wait", Params: []m.ParamDecl{{Name: "d", TypeText: "time.Duration"}}}
	assert.Equal(t, 1, BuildCatalog(method, merged).Len())
	assert.Equal(t, 0, BuildCatalog(method, base).Len())
}
