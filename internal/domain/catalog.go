// Package domain contains the boundary value analysis engine and the workflow
// that drives it.
package domain

import (
	m "github.com/mouse-blink/bva/internal/model"
)

// TypeTable maps declared type text to a supported primitive type.
type TypeTable map[string]m.PrimitiveType

var defaultTypeTables = map[m.Language]TypeTable{
	m.LanguageGo: {
		"int": m.Integer, "int8": m.Integer, "int16": m.Integer, "int32": m.Integer, "int64": m.Integer,
		"uint": m.Integer, "uint8": m.Integer, "uint16": m.Integer, "uint32": m.Integer, "uint64": m.Integer,
		"uintptr": m.Integer,
		"float32": m.FloatingPoint, "float64": m.FloatingPoint,
		"rune": m.Character, "byte": m.Character,
	},
	m.LanguageJava: {
		"int": m.Integer, "long": m.Integer, "short": m.Integer, "byte": m.Integer,
		"double": m.FloatingPoint, "float": m.FloatingPoint,
		"char": m.Character,
	},
}

// DefaultTypeTable returns a fresh copy of the built-in table for lang.
func DefaultTypeTable(lang m.Language) TypeTable {
	table := make(TypeTable, len(defaultTypeTables[lang]))
	for name, t := range defaultTypeTables[lang] {
		table[name] = t
	}

	return table
}

// With returns a copy of t extended (or overridden) by aliases.
func (t TypeTable) With(aliases map[string]m.PrimitiveType) TypeTable {
	merged := make(TypeTable, len(t)+len(aliases))
	for name, pt := range t {
		merged[name] = pt
	}

	for name, pt := range aliases {
		merged[name] = pt
	}

	return merged
}

// ParameterCatalog is the ordered set of a method's analyzable parameters.
type ParameterCatalog struct {
	Method string
	params []m.Parameter
	index  map[string]int
}

// BuildCatalog keeps the parameters of method whose declared type is in
// types. Unnamed and blank parameters are dropped.
func BuildCatalog(method m.Method, types TypeTable) ParameterCatalog {
	catalog := ParameterCatalog{
		Method: method.ID(),
		index:  make(map[string]int, len(method.Params)),
	}

	for _, decl := range method.Params {
		if decl.Name == "" || decl.Name == "_" {
			continue
		}

		pt, ok := types[decl.TypeText]
		if !ok {
			continue
		}

		if _, dup := catalog.index[decl.Name]; dup {
			continue
		}

		catalog.index[decl.Name] = len(catalog.params)
		catalog.params = append(catalog.params, m.Parameter{Name: decl.Name, Type: pt})
	}

	return catalog
}

// Lookup finds a parameter by exact name.
func (c ParameterCatalog) Lookup(name string) (m.Parameter, bool) {
	i, ok := c.index[name]
	if !ok {
		return m.Parameter{}, false
	}

	return c.params[i], true
}

// Params returns the parameters in declaration order.
func (c ParameterCatalog) Params() []m.Parameter {
	out := make([]m.Parameter, len(c.params))
	copy(out, c.params)

	return out
}

// Len returns the number of cataloged parameters.
func (c ParameterCatalog) Len() int {
	return len(c.params)
}
