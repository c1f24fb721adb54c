package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/mindfuljournal/mindful/internal/models"
	"github.com/mindfuljournal/mindful/internal/store"
	"github.com/mindfuljournal/mindful/internal/tui/components/ritual"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.journalModel.SetSize(msg.Width-4, msg.Height-6)

	case ritual.ToggleMsg:
		m.store.ToggleRitualItem(msg.ID)
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		switch m.state {
		case StateAdding:
			return m.updateForm(msg)
		case StateConfirmDelete:
			return m.updateConfirmDelete(msg)
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Tab):
			m.state = (m.state + 1) % tabCount
			return m, nil
		case key.Matches(msg, m.keys.ShiftTab):
			m.state = (m.state - 1 + tabCount) % tabCount
			return m, nil
		}

		switch m.state {
		case StateJournal:
			switch {
			case key.Matches(msg, m.keys.Add):
				m.previousState = m.state
				m.state = StateAdding
				m.newReflectionForm()
				return m, m.form.Init()
			case key.Matches(msg, m.keys.Delete):
				if id := m.journalModel.SelectedID(); id != "" {
					m.deleteTarget = id
					m.previousState = m.state
					m.state = StateConfirmDelete
				}
				return m, nil
			}
			var cmd tea.Cmd
			m.journalModel, cmd = m.journalModel.Update(msg)
			return m, cmd

		case StateRitual:
			var cmd tea.Cmd
			m.ritualModel, cmd = m.ritualModel.Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		_, err := m.store.AddReflection(store.Input{
			Text:     m.formModel.Text,
			Category: m.formModel.Category,
			Mood:     models.Mood(m.formModel.Mood),
		})
		// Empty text is rejected by the store; just drop back to the list.
		_ = err
		m.refresh()
		m.state = m.previousState
		m.form = nil
		return m, nil
	case huh.StateAborted:
		m.state = m.previousState
		m.form = nil
		return m, nil
	}

	return m, cmd
}

func (m Model) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		m.store.DeleteReflection(m.deleteTarget)
		m.refresh()
	}
	m.deleteTarget = ""
	m.state = m.previousState
	return m, nil
}
