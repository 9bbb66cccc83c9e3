package controller

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	m "github.com/mouse-blink/bva/internal/model"
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output io.Writer
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// DisplayResult shows the boundary value grid. Grids that fit the terminal
// are printed directly; larger ones open a scrollable table.
func (t *TUI) DisplayResult(report m.Report) error {
	model := newResultModel(report)

	if width, height, ok := t.terminalSize(); ok {
		model = model.resize(width, height)
	}

	if !model.needsPaging() {
		_, err := fmt.Fprintln(t.output, model.View())

		return err
	}

	program := tea.NewProgram(model, tea.WithOutput(t.output), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}

// DisplayMethods opens a filterable list of the scanned methods.
func (t *TUI) DisplayMethods(methods []m.MethodSummary, err error) error {
	if err != nil {
		return err
	}

	model := newMethodsModel().handleMethodsMsg(newMethodsMsg(methods))

	program := tea.NewProgram(model, tea.WithOutput(t.output), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}

func (t *TUI) terminalSize() (int, int, bool) {
	f, ok := t.output.(*os.File)
	if !ok {
		return 0, 0, false
	}

	width, height, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0, 0, false
	}

	return width, height, true
}
