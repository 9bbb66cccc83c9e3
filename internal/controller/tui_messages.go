package controller

import (
	"fmt"

	m "github.com/mouse-blink/bva/internal/model"
)

// Message types.
type methodsMsg struct {
	total      int
	files      int
	conditions int
	items      []methodItem
}

func newMethodsMsg(methods []m.MethodSummary) methodsMsg {
	msg := methodsMsg{total: len(methods), items: make([]methodItem, 0, len(methods))}
	files := make(map[m.Path]struct{})

	for _, method := range methods {
		files[method.Path] = struct{}{}
		msg.conditions += method.Conditions
		msg.items = append(msg.items, methodItem{
			path:       method.Path,
			method:     method.Method,
			line:       method.Line,
			params:     method.Parameters,
			conditions: method.Conditions,
		})
	}

	msg.files = len(files)

	return msg
}

// methodItem is one row of the methods list.
type methodItem struct {
	path       m.Path
	method     string
	line       int
	params     int
	conditions int
}

func (i methodItem) FilterValue() string {
	return string(i.path) + " " + i.method
}

// analyzeCommand is the command line that analyzes the method of this row.
func (i methodItem) analyzeCommand() string {
	return fmt.Sprintf("bva analyze %s %s --line %d", i.path, i.method, i.line)
}
