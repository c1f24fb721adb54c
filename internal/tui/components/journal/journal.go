package journal

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mindfuljournal/mindful/internal/models"
)

type Item struct {
	Reflection models.Reflection
}

func (i Item) Title() string {
	return fmt.Sprintf("%s %s", badge(i.Reflection.Mood), i.Reflection.Title)
}

func (i Item) Description() string {
	created := time.UnixMilli(i.Reflection.Timestamp).Format("15:04")
	return fmt.Sprintf("%s %s | %s", i.Reflection.Date, created, i.Reflection.Category)
}

func (i Item) FilterValue() string { return i.Reflection.Title }

type Model struct {
	list list.Model
}

func New(reflections []models.Reflection, width, height int) Model {
	l := list.New(toItems(reflections), list.NewDefaultDelegate(), width, height)
	l.Title = "Journal"
	l.SetShowTitle(false)
	l.SetShowHelp(false) // help is handled globally in the main model
	return Model{list: l}
}

func (m *Model) SetReflections(reflections []models.Reflection) {
	m.list.SetItems(toItems(reflections))
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}

// SelectedID returns the id of the highlighted reflection, or "".
func (m Model) SelectedID() string {
	if item, ok := m.list.SelectedItem().(Item); ok {
		return item.Reflection.ID
	}
	return ""
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return m.list.View()
}

func toItems(reflections []models.Reflection) []list.Item {
	items := make([]list.Item, len(reflections))
	for i, r := range reflections {
		items[i] = Item{Reflection: r}
	}
	return items
}

func badge(m models.Mood) string {
	switch m {
	case models.MoodAwful:
		return "😭"
	case models.MoodBad:
		return "🙁"
	case models.MoodNeutral:
		return "😐"
	case models.MoodGood:
		return "🙂"
	case models.MoodGreat:
		return "🤩"
	default:
		return "·"
	}
}
