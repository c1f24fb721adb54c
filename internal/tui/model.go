package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/mindfuljournal/mindful/internal/constants"
	"github.com/mindfuljournal/mindful/internal/store"
	"github.com/mindfuljournal/mindful/internal/tui/components/journal"
	"github.com/mindfuljournal/mindful/internal/tui/components/ritual"
)

type SessionState int

const (
	StateJournal SessionState = iota
	StateRitual
	StateStats
	StateAdding
	StateConfirmDelete
)

// tabCount is the number of top-level tabs cycled with tab/shift+tab.
const tabCount = 3

type ReflectionFormModel struct {
	Text     string
	Category string
	Mood     string
}

type Model struct {
	store *store.Store

	state         SessionState
	previousState SessionState
	keys          KeyMap
	help          help.Model

	journalModel journal.Model
	ritualModel  ritual.Model

	form         *huh.Form
	formModel    *ReflectionFormModel
	deleteTarget string

	quitting bool
	width    int
	height   int
}

func NewModel(s *store.Store) Model {
	rec := s.DayOrTemplate(s.SelectedDay())

	return Model{
		store:        s,
		state:        StateJournal,
		keys:         DefaultKeyMap(),
		help:         help.New(),
		journalModel: journal.New(s.Reflections(), 0, 0),
		ritualModel:  ritual.New(rec.Ritual),
	}
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	switch m.state {
	case StateJournal:
		keys = append(keys, m.keys.Add, m.keys.Delete)
	case StateRitual:
		keys = append(keys, m.keys.Toggle)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help}
	navigation := []key.Binding{m.keys.Up, m.keys.Down}

	var actions []key.Binding
	switch m.state {
	case StateJournal:
		actions = []key.Binding{m.keys.Add, m.keys.Delete}
	case StateRitual:
		actions = []key.Binding{m.keys.Toggle}
	}

	return [][]key.Binding{global, navigation, actions}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) newReflectionForm() {
	m.formModel = &ReflectionFormModel{Category: constants.Categories[0]}

	moodOptions := []huh.Option[string]{
		huh.NewOption("(none)", ""),
		huh.NewOption("😭 Awful", "awful"),
		huh.NewOption("🙁 Bad", "bad"),
		huh.NewOption("😐 Neutral", "neutral"),
		huh.NewOption("🙂 Good", "good"),
		huh.NewOption("🤩 Great", "great"),
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title("Reflection").
				Description("First line becomes the title").
				Value(&m.formModel.Text),
			huh.NewSelect[string]().
				Title("Category").
				Options(huh.NewOptions(constants.Categories...)...).
				Value(&m.formModel.Category),
			huh.NewSelect[string]().
				Title("Mood").
				Options(moodOptions...).
				Value(&m.formModel.Mood),
		),
	)
}

// refresh re-reads snapshots from the store after a mutation.
func (m *Model) refresh() {
	m.journalModel.SetReflections(m.store.Reflections())
	rec := m.store.DayOrTemplate(m.store.SelectedDay())
	m.ritualModel.SetItems(rec.Ritual)
}
