package model

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// PrimitiveType is one of the parameter types the analysis supports.
type PrimitiveType string

const (
	// Integer covers every integral type of the source language.
	Integer PrimitiveType = "int"
	// FloatingPoint covers float and double types.
	FloatingPoint PrimitiveType = "float"
	// Character covers char, rune and byte.
	Character PrimitiveType = "char"
)

// ParsePrimitiveType accepts the names used in configuration files.
func ParsePrimitiveType(s string) (PrimitiveType, bool) {
	switch s {
	case "int", "integer":
		return Integer, true
	case "float", "double", "floating":
		return FloatingPoint, true
	case "char", "character", "rune":
		return Character, true
	default:
		return "", false
	}
}

// PrimitiveValue is a value tagged with its PrimitiveType. Only the field
// matching Type is meaningful.
type PrimitiveValue struct {
	Type  PrimitiveType
	Int   int64
	Float float64
	Char  rune
}

// IntValue builds an Integer value.
func IntValue(v int64) PrimitiveValue {
	return PrimitiveValue{Type: Integer, Int: v}
}

// FloatValue builds a FloatingPoint value.
func FloatValue(v float64) PrimitiveValue {
	return PrimitiveValue{Type: FloatingPoint, Float: v}
}

// CharValue builds a Character value.
func CharValue(v rune) PrimitiveValue {
	return PrimitiveValue{Type: Character, Char: v}
}

func (v PrimitiveValue) String() string {
	switch v.Type {
	case Integer:
		return strconv.FormatInt(v.Int, 10)
	case FloatingPoint:
		s := strconv.FormatFloat(v.Float, 'g', -1, 64)
		if !strings.ContainsAny(s, ".eEIN") {
			s += ".0"
		}

		return s
	case Character:
		return strconv.QuoteRune(v.Char)
	default:
		return "?"
	}
}

// ParsePrimitiveValue reads the String() form of a value of type t.
func ParsePrimitiveValue(t PrimitiveType, s string) (PrimitiveValue, error) {
	switch t {
	case Integer:
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return PrimitiveValue{}, fmt.Errorf("invalid int value %q: %w", s, err)
		}

		return IntValue(n), nil
	case FloatingPoint:
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return PrimitiveValue{}, fmt.Errorf("invalid float value %q: %w", s, err)
		}

		return FloatValue(f), nil
	case Character:
		r, _, tail, err := strconv.UnquoteChar(strings.TrimPrefix(s, "'"), '\'')
		if err != nil || tail != "'" {
			return PrimitiveValue{}, fmt.Errorf("invalid char value %q", s)
		}

		return CharValue(r), nil
	default:
		return PrimitiveValue{}, fmt.Errorf("unknown primitive type %q", t)
	}
}

type yamlValue struct {
	Type  PrimitiveType `yaml:"type"`
	Value string        `yaml:"value"`
}

// MarshalYAML writes the value as {type, value} with value in String() form.
func (v PrimitiveValue) MarshalYAML() (interface{}, error) {
	return yamlValue{Type: v.Type, Value: v.String()}, nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (v *PrimitiveValue) UnmarshalYAML(node *yaml.Node) error {
	var raw yamlValue
	if err := node.Decode(&raw); err != nil {
		return err
	}

	parsed, err := ParsePrimitiveValue(raw.Type, raw.Value)
	if err != nil {
		return err
	}

	*v = parsed

	return nil
}
