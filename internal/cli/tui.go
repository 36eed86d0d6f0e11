package cli

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// termListModel - Interactive term selection
// =============================================================================

// termListModel is the bubbletea model for picking a start term.
// Selected holds the chosen term after the program exits; it stays empty
// when the user quits without selecting.
type termListModel struct {
	Terms    []string
	Cursor   int
	Selected string
	Height   int
	Offset   int
	Filter   string
}

// newTermListModel creates a term list over the given (sorted) terms.
func newTermListModel(terms []string) termListModel {
	return termListModel{
		Terms:  terms,
		Height: 15,
	}
}

func (m termListModel) Init() tea.Cmd {
	return nil
}

func (m termListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "up":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down":
			if m.Cursor < len(m.visible())-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			if visible := m.visible(); len(visible) > 0 {
				m.Selected = visible[m.Cursor]
				return m, tea.Quit
			}
		case "backspace":
			if m.Filter != "" {
				m.Filter = m.Filter[:len(m.Filter)-1]
				m.clampCursor()
			}
		default:
			if len(msg.String()) == 1 {
				m.Filter += msg.String()
				m.clampCursor()
			}
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m termListModel) View() string {
	var b strings.Builder

	b.WriteString(styleTitle.Render("Select a start term"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  type to filter  esc quit"))
	b.WriteString("\n\n")

	visible := m.visible()
	if m.Filter != "" {
		b.WriteString(listDimStyle.Render("filter: "+m.Filter) + "\n")
	}
	if len(visible) == 0 {
		b.WriteString(listDimStyle.Render("no terms match") + "\n")
		return b.String()
	}

	end := m.Offset + m.Height
	if end > len(visible) {
		end = len(visible)
	}

	for i := m.Offset; i < end; i++ {
		cursor := "  "
		style := listNormalStyle
		if i == m.Cursor {
			cursor = "▸ "
			style = listSelectedStyle
		}
		b.WriteString(cursor + style.Render(visible[i]) + "\n")
	}

	return b.String()
}

// visible returns the terms matching the current filter, case-insensitively.
func (m termListModel) visible() []string {
	if m.Filter == "" {
		return m.Terms
	}
	needle := strings.ToLower(m.Filter)
	var out []string
	for _, term := range m.Terms {
		if strings.Contains(strings.ToLower(term), needle) {
			out = append(out, term)
		}
	}
	return out
}

// clampCursor keeps the cursor and scroll offset inside the filtered list.
func (m *termListModel) clampCursor() {
	if max := len(m.visible()) - 1; m.Cursor > max {
		m.Cursor = max
	}
	if m.Cursor < 0 {
		m.Cursor = 0
	}
	if m.Offset > m.Cursor {
		m.Offset = m.Cursor
	}
	if m.Offset < 0 {
		m.Offset = 0
	}
}
