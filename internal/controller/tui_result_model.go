package controller

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/mouse-blink/bva/internal/model"
)

// Lines taken by everything around the table: title (2), summary (2),
// border (2), header (2), types (1), footer (1).
const resultChrome = 10

type resultModel struct {
	report m.Report
	rows   int
	table  table.Model
	width  int
	height int
}

func newResultModel(report m.Report) resultModel {
	headers, rows := buildGrid(report)
	types := typeFooter(report)

	columns := make([]table.Column, len(headers))
	for j, header := range headers {
		width := lipgloss.Width(header)
		if w := lipgloss.Width(types[j]); w > width {
			width = w
		}

		for _, row := range rows {
			if w := lipgloss.Width(row[j]); w > width {
				width = w
			}
		}

		columns[j] = table.Column{Title: header, Width: width + 2}
	}

	tableRows := make([]table.Row, len(rows))
	for i, row := range rows {
		tableRows[i] = table.Row(row)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(tableRows),
		table.WithFocused(true),
		table.WithHeight(len(rows)+1),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("8")).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("0")).
		Background(lipgloss.Color("6")).
		Bold(true)
	t.SetStyles(styles)

	return resultModel{report: report, rows: len(rows), table: t}
}

// resize fits the table into a width x height terminal.
func (m resultModel) resize(width, height int) resultModel {
	m.width = width
	m.height = height

	visible := height - resultChrome
	if visible < 3 {
		visible = 3
	}

	if visible > m.rows {
		visible = m.rows
	}

	m.table.SetHeight(visible + 1)

	return m
}

// needsPaging reports whether the grid is taller than the terminal.
func (m resultModel) needsPaging() bool {
	return m.height > 0 && m.rows > m.height-resultChrome
}

func (m resultModel) Init() tea.Cmd {
	return nil
}

func (m resultModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.resize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd

	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m resultModel) View() string {
	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Padding(1, 0, 0, 2)

	summaryStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Padding(0, 0, 1, 2)

	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	title := titleStyle.Render("Boundary Values · " + reportTitle(m.report))

	if len(m.report.Columns) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left,
			title,
			summaryStyle.Render("No comparison against a supported parameter"),
		)
	}

	summary := summaryStyle.Render(fmt.Sprintf(
		"Parameters: %s   Values: %s",
		accentStyle.Render(fmt.Sprintf("%d", len(m.report.Columns))),
		accentStyle.Render(fmt.Sprintf("%d", m.rows)),
	))

	tableContainer := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("6")).
		Margin(0, 1).
		Padding(0, 1)

	typesStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("11")).
		Padding(0, 0, 0, 2)

	types := ""
	for j, t := range typeFooter(m.report) {
		types += fmt.Sprintf("%s: %s  ", m.report.Columns[j].Parameter, t)
	}

	parts := []string{
		title,
		summary,
		tableContainer.Render(m.table.View()),
		typesStyle.Render(types),
	}

	if m.needsPaging() {
		footerStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("8")).
			Align(lipgloss.Center).
			Width(m.width)
		parts = append(parts, footerStyle.Render("↑/k up • ↓/j down • q quit"))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
