package controller

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type tickMsg time.Time

const rangeColumnWidth = 10

// Simple delegate for shadow list items.
type browseDelegate struct {
	offset int
}

func (d browseDelegate) Height() int  { return 1 }
func (d browseDelegate) Spacing() int { return 0 }
func (d browseDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d browseDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	shadow, ok := item.(shadowItem)
	if !ok {
		return
	}

	isSelected := index == m.Index()

	var labelStyle, rangeStyle lipgloss.Style

	var label string

	text := fmt.Sprintf("%s -> %s", shadow.row.Name, shadow.row.Target)
	width := m.Width() - rangeColumnWidth - 4 // range column + marker + spacing

	if isSelected {
		labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true)
		rangeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true).
			Width(rangeColumnWidth)

		label = animateScroll(text, width, d.offset)
	} else {
		labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
		rangeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11")).
			Width(rangeColumnWidth)

		label = truncateToWidth(text, width)
	}

	marker := "·"
	if shadow.row.Active {
		marker = okStyle.Render("●")
	}

	line := fmt.Sprintf("%s %s  %s",
		marker,
		rangeStyle.Render(shadow.row.Range),
		labelStyle.Render(label),
	)
	_, _ = fmt.Fprint(w, line)
}

func animateScroll(text string, width int, offset int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	gap := "   "

	// ticks before scrolling starts
	pause := 5

	if offset < pause {
		return truncateToWidth(text, width)
	}

	runes := []rune(text + gap)
	n := len(runes)
	start := (offset - pause) % n

	res := make([]rune, 0, width)
	for i := range width {
		res = append(res, runes[(start+i)%n])
	}

	return string(res)
}

func truncateToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	const ellipsis = "…"

	maxWidth := width - lipgloss.Width(ellipsis)
	if maxWidth <= 0 {
		return ellipsis
	}

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

// browseModel lets the user page and filter through registered shadows.
type browseModel struct {
	width        int
	height       int
	shadowList   list.Model
	delegate     browseDelegate
	version      int
	total        int
	active       int
	rendered     bool
	animOffset   int
	lastSelected int
}

func newBrowseModel() browseModel {
	delegate := browseDelegate{}
	shadowList := list.New([]list.Item{}, delegate, 80, 20)
	shadowList.SetShowPagination(false)
	shadowList.SetShowFilter(true)
	shadowList.SetShowHelp(false)
	shadowList.SetShowTitle(false)
	shadowList.SetShowStatusBar(false)
	shadowList.FilterInput.Placeholder = "Filter by shadow or target…"

	return browseModel{
		shadowList:   shadowList,
		delegate:     delegate,
		lastSelected: -1,
	}
}

func (m browseModel) Init() tea.Cmd {
	return tea.Tick(time.Second/2, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.shadowList.SetWidth(m.width)

	case tickMsg:
		if m.shadowList.FilterState() != list.Filtering && m.rendered {
			m.animOffset++
			m.delegate.offset = m.animOffset
			m.shadowList.SetDelegate(m.delegate)

			return m, tea.Tick(time.Millisecond*150, func(t time.Time) tea.Msg {
				return tickMsg(t)
			})
		}

		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		default:
			var newList list.Model

			newList, cmd = m.shadowList.Update(msg)
			m.shadowList = newList

			// restart the scroll animation on selection change
			if m.shadowList.Index() != m.lastSelected {
				m.lastSelected = m.shadowList.Index()
				m.animOffset = 0
				m.delegate.offset = 0
				m.shadowList.SetDelegate(m.delegate)
			}

			return m, cmd
		}

	case shadowsMsg:
		m = m.handleShadowsMsg(msg)
	}

	return m, cmd
}

func (m browseModel) handleShadowsMsg(msg shadowsMsg) browseModel {
	m.version = msg.version
	m.total = len(msg.rows)
	m.active = 0

	items := make([]list.Item, 0, len(msg.rows))
	for _, row := range msg.rows {
		items = append(items, shadowItem{row: row})

		if row.Active {
			m.active++
		}
	}

	m.shadowList.SetItems(items)
	m.rendered = true

	if len(items) > 0 && m.lastSelected == -1 {
		m.lastSelected = 0
	}

	return m
}

func (m browseModel) View() string {
	if !m.rendered {
		return "Loading shadow registry…\n"
	}

	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Padding(1, 0, 0, 2)

	summaryStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Padding(0, 0, 1, 2)

	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	title := titleStyle.Render("Shadow Registry")

	summary := summaryStyle.Render(fmt.Sprintf(
		"Shadows: %s   Active at SDK %d: %s",
		accentStyle.Render(fmt.Sprintf("%d", m.total)),
		m.version,
		accentStyle.Render(fmt.Sprintf("%d", m.active)),
	))

	footerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Align(lipgloss.Center).
		Width(m.width)

	footer := footerStyle.Render("↑/k up • ↓/j down • g/G top/bottom • / filter • q quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		summary,
		m.renderTable(),
		footer,
	)
}

func (m browseModel) renderTable() string {
	// title, summary, footer, border and header rows
	listHeight := max(m.height-9, 5)

	// margin, border and padding
	listWidth := m.width - 6

	m.shadowList.SetHeight(listHeight)
	m.shadowList.SetWidth(listWidth)

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Bold(true).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("8")).
		Width(listWidth)

	headers := headerStyle.Render(fmt.Sprintf("  %-*s  %s", rangeColumnWidth, "Range", "Shadow -> Target"))

	tableContainer := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("6")).
		Margin(0, 1).
		Padding(0, 1)

	return tableContainer.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			headers,
			m.shadowList.View(),
		),
	)
}
