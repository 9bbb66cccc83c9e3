package controller

import (
	"reflect"
	"testing"

	m "github.com/mouse-blink/bva/internal/model"
)

func sampleReport() m.Report {
	return m.Report{
		Source:   "src/Example.java",
		Language: m.LanguageJava,
		Method:   "Example.foo",
		Line:     3,
		Columns: []m.ReportColumn{
			{Parameter: "b", Type: m.FloatingPoint, Values: []m.PrimitiveValue{m.FloatValue(0.01), m.FloatValue(0)}},
			{Parameter: "a", Type: m.Integer, Values: []m.PrimitiveValue{m.IntValue(49), m.IntValue(50)}},
		},
	}
}

func TestBuildGrid_StacksParameterBands(t *testing.T) {
	headers, rows := buildGrid(sampleReport())

	if want := []string{"b", "a"}; !reflect.DeepEqual(headers, want) {
		t.Fatalf("headers = %v, want %v", headers, want)
	}

	want := [][]string{
		{"0.01", "-"},
		{"0.0", "-"},
		{"-", "49"},
		{"-", "50"},
	}
	if !reflect.DeepEqual(rows, want) {
		t.Fatalf("rows = %v, want %v", rows, want)
	}
}

func TestBuildGrid_Empty(t *testing.T) {
	headers, rows := buildGrid(m.Report{Method: "foo"})

	if len(headers) != 0 || len(rows) != 0 {
		t.Fatalf("buildGrid(empty) = %v, %v; want no headers and no rows", headers, rows)
	}
}

func TestTypeFooterAndTitle(t *testing.T) {
	report := sampleReport()

	if got := typeFooter(report); !reflect.DeepEqual(got, []string{"float", "int"}) {
		t.Fatalf("typeFooter() = %v", got)
	}

	if got := reportTitle(report); got != "Example.foo (src/Example.java:3)" {
		t.Fatalf("reportTitle() = %q", got)
	}
}
