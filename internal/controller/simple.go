package controller

import (
	"bytes"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/mouse-blink/bva/internal/model"
)

// SimpleUI implements UI using cobra Command's output.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayResult prints the boundary value grid of report.
func (s *SimpleUI) DisplayResult(report m.Report) error {
	s.printf("%s\n", reportTitle(report))

	if len(report.Columns) == 0 {
		s.printf("No boundary values: no comparison against a supported parameter\n")

		return nil
	}

	s.printf("\n%s", renderResultTable(report))

	return nil
}

// DisplayMethods prints the scanned methods. A scan error is returned
// untouched; cobra reports it.
func (s *SimpleUI) DisplayMethods(methods []m.MethodSummary, err error) error {
	if err != nil {
		return err
	}

	if len(methods) == 0 {
		s.printf("No methods found\n")

		return nil
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Method", "Line", "Params", "Conditions"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_CENTER, tablewriter.ALIGN_CENTER,
	})

	files := make(map[m.Path]struct{})
	conditions := 0

	for _, method := range methods {
		files[method.Path] = struct{}{}
		conditions += method.Conditions

		table.Append([]string{
			string(method.Path),
			method.Method,
			fmt.Sprintf("%d", method.Line),
			fmt.Sprintf("%d", method.Parameters),
			fmt.Sprintf("%d", method.Conditions),
		})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(files)),
		fmt.Sprintf("%d", len(methods)),
		"",
		"",
		fmt.Sprintf("%d", conditions),
	})

	table.Render()
	s.printf("\n%s", tableBuffer.String())

	return nil
}

func renderResultTable(report m.Report) string {
	headers, rows := buildGrid(report)

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader(headers)
	table.SetAutoFormatHeaders(false)
	table.SetAlignment(tablewriter.ALIGN_CENTER)
	table.AppendBulk(rows)
	table.SetFooter(typeFooter(report))
	table.Render()

	return tableBuffer.String()
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
