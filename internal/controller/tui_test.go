package controller

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	m "github.com/mouse-blink/bva/internal/model"
)

func TestTruncateToWidth(t *testing.T) {
	if got := truncateToWidth("hello", 0); got != "" {
		t.Fatalf("truncateToWidth width 0 = %q, want empty", got)
	}

	if got := truncateToWidth("hello", 10); got != "hello" {
		t.Fatalf("truncateToWidth no truncation = %q", got)
	}

	if got := truncateToWidth("hello", 2); got != "h…" {
		t.Fatalf("truncateToWidth width 2 = %q, want h…", got)
	}
}

func TestNewMethodsMsg_Totals(t *testing.T) {
	msg := newMethodsMsg([]m.MethodSummary{
		{Path: "a.go", Method: "F", Line: 1, Parameters: 1, Conditions: 2},
		{Path: "a.go", Method: "G", Line: 9, Parameters: 0, Conditions: 1},
		{Path: "B.java", Method: "B.h", Line: 3, Parameters: 2, Conditions: 4},
	})

	if msg.total != 3 || msg.files != 2 || msg.conditions != 7 {
		t.Fatalf("newMethodsMsg() = total %d files %d conditions %d", msg.total, msg.files, msg.conditions)
	}

	if got := msg.items[1].FilterValue(); got != "a.go G" {
		t.Fatalf("FilterValue() = %q", got)
	}

	if got := msg.items[2].analyzeCommand(); got != "bva analyze B.java B.h --line 3" {
		t.Fatalf("analyzeCommand() = %q", got)
	}
}

func TestMethodsModel_HandleMethodsMsgAndView(t *testing.T) {
	model := newMethodsModel()
	if got := model.View(); got != "Scanning methods…\n" {
		t.Fatalf("View() before render = %q", got)
	}

	updated, _ := model.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	updated, _ = updated.Update(newMethodsMsg([]m.MethodSummary{
		{Path: "a.go", Method: "Check", Line: 4, Parameters: 2, Conditions: 3},
	}))

	view := updated.View()
	for _, want := range []string{"Methods:", "Conditions:", "Check", "a.go", "Params", "bva analyze a.go Check --line 4"} {
		if !strings.Contains(view, want) {
			t.Fatalf("View() missing %q\n%s", want, view)
		}
	}
}

func TestMethodDelegate_RendersMethodRow(t *testing.T) {
	model := newMethodsModel().handleMethodsMsg(newMethodsMsg([]m.MethodSummary{
		{Path: "src/Example.java", Method: "Example.scale", Line: 47, Parameters: 1, Conditions: 2},
		{Path: "src/Example.java", Method: "Example.foo", Line: 13, Parameters: 2, Conditions: 1},
	}))

	if model.delegate.methodWidth != len("Example.scale") {
		t.Fatalf("methodWidth = %d, want %d", model.delegate.methodWidth, len("Example.scale"))
	}

	model.methods.SetWidth(100)

	var buf bytes.Buffer
	model.delegate.Render(&buf, model.methods, 0, model.methods.Items()[1])

	row := buf.String()
	for _, want := range []string{"Example.foo", "13", "src/Example.java"} {
		if !strings.Contains(row, want) {
			t.Fatalf("Render() missing %q in %q", want, row)
		}
	}

	if strings.Index(row, "Example.foo") > strings.Index(row, "src/Example.java") {
		t.Fatalf("Render() = %q, want the method before the path", row)
	}

	header := model.delegate.header()
	if !strings.HasPrefix(header, "Method ") || !strings.HasSuffix(header, "Path") {
		t.Fatalf("header() = %q", header)
	}
}

func TestMethodDelegate_LongMethodIsCapped(t *testing.T) {
	long := strings.Repeat("x", maxMethodWidth+10)
	model := newMethodsModel().handleMethodsMsg(newMethodsMsg([]m.MethodSummary{{Path: "a.go", Method: long, Line: 1}}))

	if model.delegate.methodWidth != maxMethodWidth {
		t.Fatalf("methodWidth = %d, want %d", model.delegate.methodWidth, maxMethodWidth)
	}
}

func TestMethodsModel_EmptyListHint(t *testing.T) {
	updated, _ := newMethodsModel().Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	updated, _ = updated.Update(newMethodsMsg(nil))

	if view := updated.View(); !strings.Contains(view, "No method selected") {
		t.Fatalf("View() = %q", view)
	}
}

func TestTUI_DisplayMethods_ReturnsScanErrorWithoutPrinting(t *testing.T) {
	var buf bytes.Buffer

	boom := errors.New("boom")
	if err := NewTUI(&buf).DisplayMethods(nil, boom); !errors.Is(err, boom) {
		t.Fatalf("DisplayMethods() error = %v, want boom", err)
	}

	if buf.Len() != 0 {
		t.Fatalf("DisplayMethods() printed %q", buf.String())
	}
}

func TestMethodsModel_Quit(t *testing.T) {
	model := newMethodsModel()

	_, cmd := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("Update(q) returned nil cmd, want tea.Quit")
	}
}

func TestResultModel_PagingFollowsHeight(t *testing.T) {
	model := newResultModel(sampleReport())

	if model.needsPaging() {
		t.Fatal("needsPaging() without a terminal size = true, want false")
	}

	if model.resize(80, 40).needsPaging() {
		t.Fatal("needsPaging() on a tall terminal = true, want false")
	}

	if !model.resize(80, 12).needsPaging() {
		t.Fatal("needsPaging() on a short terminal = false, want true")
	}
}

func TestResultModel_View(t *testing.T) {
	view := newResultModel(sampleReport()).View()

	for _, want := range []string{"Example.foo", "0.01", "49", "b: float", "a: int"} {
		if !strings.Contains(view, want) {
			t.Fatalf("View() missing %q\n%s", want, view)
		}
	}

	empty := newResultModel(m.Report{Method: "bar"}).View()
	if !strings.Contains(empty, "No comparison") {
		t.Fatalf("empty View() = %q", empty)
	}
}

func TestTUI_DisplayResult_PrintsWhenNotPaging(t *testing.T) {
	var buf bytes.Buffer

	if err := NewTUI(&buf).DisplayResult(sampleReport()); err != nil {
		t.Fatalf("DisplayResult() error = %v", err)
	}

	if !strings.Contains(buf.String(), "Example.foo") {
		t.Fatalf("output missing title\n%s", buf.String())
	}
}
