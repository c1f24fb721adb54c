package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mindfuljournal/mindful/internal/analytics"
	"github.com/mindfuljournal/mindful/internal/constants"
	"github.com/mindfuljournal/mindful/internal/models"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string

	switch m.state {
	case StateJournal:
		content = docStyle.Render(m.journalModel.View())
	case StateRitual:
		content = docStyle.Render(m.ritualModel.View())
	case StateStats:
		content = docStyle.Render(m.viewStats())
	case StateAdding:
		content = m.form.View()
	case StateConfirmDelete:
		content = m.viewConfirmDelete()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		content,
		m.help.View(m),
	)
}

func (m Model) viewTabs() string {
	var tabs []string
	for i, title := range []string{"Journal", "Ritual", "Stats"} {
		if m.state == SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

var heatGlyphs = []rune("·░▒▓█")

func (m Model) viewStats() string {
	var b strings.Builder

	b.WriteString(streakStyle.Render(fmt.Sprintf("🔥 %d day streak", m.store.Streak())))
	b.WriteString("\n\n")

	trend := analytics.MoodTrend(m.store.Reflections())
	if len(trend) > 0 {
		b.WriteString("Mood trend:\n")
		start := 0
		if len(trend) > 7 {
			start = len(trend) - 7
		}
		for _, p := range trend[start:] {
			b.WriteString(fmt.Sprintf("  %s  %s %.1f\n", p.Day, strings.Repeat("■", int(p.Average+0.5)), p.Average))
		}
		b.WriteString("\n")
	}

	cells := analytics.CompletionHeatmap(m.store.Days(), m.store.SelectedDay(), 28)
	if len(cells) > 0 {
		b.WriteString("Ritual completion, last 28 days:\n  ")
		for _, cell := range cells {
			idx := 0
			if cell.Total > 0 && cell.Completed > 0 {
				idx = 1 + (len(heatGlyphs)-2)*cell.Completed/cell.Total
				if idx >= len(heatGlyphs) {
					idx = len(heatGlyphs) - 1
				}
			}
			b.WriteRune(heatGlyphs[idx])
		}
		b.WriteString("\n\n")
	}

	q := constants.QuoteOfTheDay(models.Today())
	b.WriteString(quoteStyle.Render(fmt.Sprintf("\"%s\" — %s", q.Text, q.Author)))

	return b.String()
}

func (m Model) viewConfirmDelete() string {
	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render("Delete this reflection?"),
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}
