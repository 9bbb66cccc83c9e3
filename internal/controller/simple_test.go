package controller

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	m "github.com/mouse-blink/bva/internal/model"
)

func TestSimpleUI_DisplayResult_PrintsGrid(t *testing.T) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	ui := NewSimpleUI(cmd)

	if err := ui.DisplayResult(sampleReport()); err != nil {
		t.Fatalf("DisplayResult() error = %v", err)
	}

	output := buf.String()

	for _, want := range []string{
		"Example.foo (src/Example.java:3)",
		"0.01",
		"0.0",
		"49",
		"50",
		"float",
		"int",
	} {
		if !strings.Contains(output, want) {
			t.Fatalf("output missing %q\noutput:\n%s", want, output)
		}
	}

	if strings.Index(output, "0.01") > strings.Index(output, "49") {
		t.Fatalf("b values should come before a values\noutput:\n%s", output)
	}
}

func TestSimpleUI_DisplayResult_Empty(t *testing.T) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	ui := NewSimpleUI(cmd)

	if err := ui.DisplayResult(m.Report{Source: "a.go", Method: "bar", Line: 7}); err != nil {
		t.Fatalf("DisplayResult() error = %v", err)
	}

	if !strings.Contains(buf.String(), "No boundary values") {
		t.Fatalf("output missing empty message\noutput:\n%s", buf.String())
	}
}

func TestSimpleUI_DisplayMethods_PrintsTable(t *testing.T) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	ui := NewSimpleUI(cmd)

	methods := []m.MethodSummary{
		{Path: "path/a.go", Method: "Check", Line: 10, Parameters: 2, Conditions: 3},
		{Path: "path/a.go", Method: "T.Run", Line: 20, Parameters: 1, Conditions: 0},
		{Path: "path/B.java", Method: "B.foo", Line: 4, Parameters: 2, Conditions: 1},
	}

	if err := ui.DisplayMethods(methods, nil); err != nil {
		t.Fatalf("DisplayMethods() error = %v", err)
	}

	output := buf.String()

	for _, want := range []string{
		"path/a.go",
		"path/B.java",
		"T.Run",
		"B.foo",
		"TOTAL FILES 2",
	} {
		if !strings.Contains(output, want) {
			t.Fatalf("output missing %q\noutput:\n%s", want, output)
		}
	}
}

func TestSimpleUI_DisplayMethods_Empty(t *testing.T) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	if err := NewSimpleUI(cmd).DisplayMethods(nil, nil); err != nil {
		t.Fatalf("DisplayMethods() error = %v", err)
	}

	if !strings.Contains(buf.String(), "No methods found") {
		t.Fatalf("output missing empty message\noutput:\n%s", buf.String())
	}
}

func TestSimpleUI_DisplayMethods_Error(t *testing.T) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	boom := errors.New("boom")

	if err := NewSimpleUI(cmd).DisplayMethods(nil, boom); !errors.Is(err, boom) {
		t.Fatalf("DisplayMethods() error = %v, want boom", err)
	}

	if buf.Len() != 0 {
		t.Fatalf("DisplayMethods() printed the error, cobra already reports it\noutput:\n%s", buf.String())
	}
}
