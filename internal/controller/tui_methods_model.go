package controller

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	lineColumnWidth  = 6
	countColumnWidth = 6
	columnGap        = "  "
	maxMethodWidth   = 40
)

// methodDelegate renders a method row as aligned columns:
// method, line, params, conditions, path.
type methodDelegate struct {
	methodWidth int
}

func (d methodDelegate) Height() int  { return 1 }
func (d methodDelegate) Spacing() int { return 0 }
func (d methodDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d methodDelegate) Render(w io.Writer, l list.Model, index int, item list.Item) {
	method, ok := item.(methodItem)
	if !ok {
		return
	}

	nameStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	numberStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Align(lipgloss.Right)
	pathStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	if index == l.Index() {
		selected := lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("6")).Bold(true)
		nameStyle = selected
		numberStyle = selected.Align(lipgloss.Right)
		pathStyle = selected
	}

	cells := []string{
		nameStyle.Width(d.methodWidth).Render(truncateToWidth(method.method, d.methodWidth)),
		numberStyle.Width(lineColumnWidth).Render(strconv.Itoa(method.line)),
		numberStyle.Width(countColumnWidth).Render(strconv.Itoa(method.params)),
		numberStyle.Width(countColumnWidth).Render(strconv.Itoa(method.conditions)),
		pathStyle.Render(truncateToWidth(string(method.path), d.pathWidth(l.Width()))),
	}

	_, _ = fmt.Fprint(w, strings.Join(cells, columnGap))
}

// pathWidth is what is left of total once the fixed columns are laid out.
func (d methodDelegate) pathWidth(total int) int {
	return total - d.methodWidth - lineColumnWidth - 2*countColumnWidth - 4*len(columnGap)
}

func (d methodDelegate) header() string {
	return strings.Join([]string{
		fmt.Sprintf("%-*s", d.methodWidth, "Method"),
		fmt.Sprintf("%*s", lineColumnWidth, "Line"),
		fmt.Sprintf("%*s", countColumnWidth, "Params"),
		fmt.Sprintf("%*s", countColumnWidth, "Conds"),
		"Path",
	}, columnGap)
}

func truncateToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	const ellipsis = "…"

	if width <= 1 {
		return ellipsis
	}

	maxWidth := width - lipgloss.Width(ellipsis)
	currentWidth := 0

	result := make([]rune, 0, len(text))
	for _, r := range text {
		rWidth := lipgloss.Width(string(r))
		if currentWidth+rWidth > maxWidth {
			break
		}

		result = append(result, r)
		currentWidth += rWidth
	}

	return string(result) + ellipsis
}

// methodsModel lists scanned methods with their parameter and condition
// counts. The selected row's analyze command is shown under the list.
type methodsModel struct {
	width           int
	height          int
	methods         list.Model
	delegate        methodDelegate
	total           int
	totalFiles      int
	totalConditions int
	rendered        bool
}

func newMethodsModel() methodsModel {
	delegate := methodDelegate{methodWidth: len("Method")}
	methods := list.New([]list.Item{}, delegate, 80, 20)
	methods.SetShowPagination(false)
	methods.SetShowFilter(true)
	methods.SetShowHelp(false)
	methods.SetShowTitle(false)
	methods.SetShowStatusBar(false)
	methods.FilterInput.Placeholder = "Filter by path or method…"

	return methodsModel{
		methods:  methods,
		delegate: delegate,
	}
}

func (m methodsModel) Init() tea.Cmd {
	return nil
}

func (m methodsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.methods.SetWidth(m.width)
	case tea.KeyMsg:
		filtering := m.methods.FilterState() == list.Filtering
		if msg.String() == "ctrl+c" || (msg.String() == "q" && !filtering) {
			return m, tea.Quit
		}

		m.methods, cmd = m.methods.Update(msg)
	case methodsMsg:
		m = m.handleMethodsMsg(msg)
	}

	return m, cmd
}

func (m methodsModel) handleMethodsMsg(msg methodsMsg) methodsModel {
	m.total = msg.total
	m.totalFiles = msg.files
	m.totalConditions = msg.conditions

	width := len("Method")
	items := make([]list.Item, 0, len(msg.items))

	for _, item := range msg.items {
		width = max(width, lipgloss.Width(item.method))
		items = append(items, item)
	}

	m.delegate.methodWidth = min(width, maxMethodWidth)
	m.methods.SetDelegate(m.delegate)
	m.methods.SetItems(items)
	m.rendered = true

	return m
}

func (m methodsModel) View() string {
	if !m.rendered {
		return "Scanning methods…\n"
	}

	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Padding(1, 0, 0, 2)

	summaryStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Padding(0, 0, 1, 2)

	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	title := titleStyle.Render("Boundary Value Analysis · Methods")

	summary := summaryStyle.Render(fmt.Sprintf(
		"Methods: %s   Files: %s   Conditions: %s",
		accentStyle.Render(strconv.Itoa(m.total)),
		accentStyle.Render(strconv.Itoa(m.totalFiles)),
		accentStyle.Render(strconv.Itoa(m.totalConditions)),
	))

	hint := lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Padding(0, 0, 0, 2)
	selected := "No method selected"

	if item, ok := m.methods.SelectedItem().(methodItem); ok {
		selected = item.analyzeCommand()
	}

	footer := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Align(lipgloss.Center).
		Width(m.width).
		Render("↑/k up • ↓/j down • / filter • q quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		summary,
		m.renderTable(),
		hint.Render(selected),
		footer,
	)
}

func (m methodsModel) renderTable() string {
	// title, summary, hint, footer, border and header take 10 rows
	listHeight := max(m.height-10, 5)
	// margin, border and padding take 6 columns
	listWidth := max(m.width-6, 20)

	m.methods.SetHeight(listHeight)
	m.methods.SetWidth(listWidth)

	header := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Bold(true).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("8")).
		Width(listWidth).
		Render(m.delegate.header())

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("6")).
		Margin(0, 1).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(lipgloss.Left, header, m.methods.View()))
}
