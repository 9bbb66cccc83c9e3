// Package controller renders boundary value reports and method listings.
package controller

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	m "github.com/mouse-blink/bva/internal/model"
)

// UI defines how results reach the user.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	// DisplayResult shows the boundary values of one analyzed method.
	DisplayResult(report m.Report) error
	// DisplayMethods shows the methods found by a scan, or the scan error.
	DisplayMethods(methods []m.MethodSummary, err error) error
}

// NewUI creates a UI based on whether TTY mode is enabled.
// When useTTY is true, it returns a TUI (Bubble Tea).
// When useTTY is false, it returns a SimpleUI (plain text).
func NewUI(cmd *cobra.Command, useTTY bool) UI {
	if useTTY {
		return NewTUI(cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}

// IsTTY checks if the given writer is a terminal (TTY).
// Returns false if the output is redirected to a file or pipe.
func IsTTY(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}

	fileInfo, err := file.Stat()
	if err != nil {
		return false
	}

	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}
