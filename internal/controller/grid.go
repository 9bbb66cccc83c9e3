package controller

import (
	"fmt"

	m "github.com/mouse-blink/bva/internal/model"
)

const emptyCell = "-"

// buildGrid lays a report out with one column per parameter. Each
// parameter's values occupy their own band of rows; every other cell is
// emptyCell.
func buildGrid(report m.Report) ([]string, [][]string) {
	headers := make([]string, 0, len(report.Columns))
	rowCount := 0

	for _, col := range report.Columns {
		headers = append(headers, col.Parameter)
		rowCount += len(col.Values)
	}

	rows := make([][]string, rowCount)
	for i := range rows {
		rows[i] = make([]string, len(report.Columns))
		for j := range rows[i] {
			rows[i][j] = emptyCell
		}
	}

	offset := 0

	for j, col := range report.Columns {
		for i, v := range col.Values {
			rows[offset+i][j] = v.String()
		}

		offset += len(col.Values)
	}

	return headers, rows
}

func typeFooter(report m.Report) []string {
	footer := make([]string, 0, len(report.Columns))
	for _, col := range report.Columns {
		footer = append(footer, string(col.Type))
	}

	return footer
}

func reportTitle(report m.Report) string {
	return fmt.Sprintf("%s (%s:%d)", report.Method, report.Source, report.Line)
}
