// Package model defines the data structures shared by the front ends, the
// boundary value engine and the presentation layer.
package model

import "fmt"

// Path represents a file system path.
type Path string

// Language identifies the source language a Unit was parsed from.
type Language string

const (
	// LanguageGo is Go source parsed with go/parser.
	LanguageGo Language = "go"
	// LanguageJava is Java source parsed with tree-sitter.
	LanguageJava Language = "java"
)

// ParamDecl is a formal parameter exactly as it is declared in source.
type ParamDecl struct {
	Name     string
	TypeText string
}

// ConditionKind tells which statement a condition guards.
type ConditionKind string

const (
	// ConditionIf is the condition of an if statement.
	ConditionIf ConditionKind = "if"
	// ConditionLoop is the condition of a for/while/do loop.
	ConditionLoop ConditionKind = "loop"
)

// Condition is a branch condition with a reference to the method that owns it.
type Condition struct {
	Owner string // Method.ID() of the enclosing method
	Kind  ConditionKind
	Line  int
	Expr  *Expr
}

// Method is a function or method declaration with everything the analysis needs.
type Method struct {
	Name       string
	Receiver   string // Go receiver type or Java enclosing class, may be empty
	Line       int
	Params     []ParamDecl
	Conditions []Condition
}

// ID identifies a method inside its unit, overloads included.
func (m Method) ID() string {
	return fmt.Sprintf("%s@%d", m.QualifiedName(), m.Line)
}

// QualifiedName returns Receiver.Name, or Name when there is no receiver.
func (m Method) QualifiedName() string {
	if m.Receiver == "" {
		return m.Name
	}

	return m.Receiver + "." + m.Name
}

// Unit is a parsed source file.
type Unit struct {
	Path     Path
	Language Language
	Methods  []Method
	// Unresolved holds conditions whose enclosing method could not be
	// determined within the bounded parent ascent.
	Unresolved []Condition
}
