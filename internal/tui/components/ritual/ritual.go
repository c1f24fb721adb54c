package ritual

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mindfuljournal/mindful/internal/models"
)

// ToggleMsg asks the main model to flip one checklist item.
type ToggleMsg struct {
	ID string
}

type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "toggle"),
		),
	}
}

var (
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	categoryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	doneStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
)

type Model struct {
	items  []models.RitualItem
	cursor int
	keys   KeyMap
}

func New(items []models.RitualItem) Model {
	return Model{
		items: items,
		keys:  DefaultKeyMap(),
	}
}

func (m *Model) SetItems(items []models.RitualItem) {
	m.items = items
	if m.cursor >= len(items) {
		m.cursor = 0
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, m.keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, m.keys.Toggle):
		if len(m.items) > 0 {
			id := m.items[m.cursor].ID
			return m, func() tea.Msg { return ToggleMsg{ID: id} }
		}
	}

	return m, nil
}

func (m Model) View() string {
	if len(m.items) == 0 {
		return "No ritual items for this day."
	}

	var b strings.Builder
	lastCategory := ""
	for i, item := range m.items {
		if item.Category != lastCategory {
			b.WriteString(categoryStyle.Render(item.Category) + "\n")
			lastCategory = item.Category
		}

		cursor := "  "
		if i == m.cursor {
			cursor = cursorStyle.Render("> ")
		}

		mark := "[ ]"
		label := item.Label
		if item.Completed {
			mark = doneStyle.Render("[x]")
			label = doneStyle.Render(label)
		}

		b.WriteString(cursor + mark + " " + label + "\n")
	}
	return b.String()
}
