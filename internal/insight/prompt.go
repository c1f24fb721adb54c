package insight

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/mindfuljournal/mindful/internal/models"
)

const (
	maxJournalEntries = 7
	maxRitualDays     = 5
)

// selectHistory picks the most recent journal entries and ritual days on
// or before the target day, newest first, formatted as prompt lines.
func selectHistory(reflections []models.Reflection, days map[string]models.DailyRecord, targetDay string) (journal, rituals []string) {
	var recent []models.Reflection
	for _, r := range reflections {
		if r.Date <= targetDay {
			recent = append(recent, r)
		}
	}
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].Date > recent[j].Date
	})
	if len(recent) > maxJournalEntries {
		recent = recent[:maxJournalEntries]
	}
	for _, r := range recent {
		mood := string(r.Mood)
		if mood == "" {
			mood = "neutral"
		}
		journal = append(journal, fmt.Sprintf("[%s] (%s) Mood: %s -> %s", r.Date, r.Category, mood, r.Text))
	}

	var ritualDays []string
	for day := range days {
		if day <= targetDay {
			ritualDays = append(ritualDays, day)
		}
	}
	sort.Sort(sort.Reverse(sort.StringSlice(ritualDays)))
	if len(ritualDays) > maxRitualDays {
		ritualDays = ritualDays[:maxRitualDays]
	}
	for _, day := range ritualDays {
		var completed []string
		for _, item := range days[day].Ritual {
			if item.Completed {
				completed = append(completed, item.Label)
			}
		}
		done := "None"
		if len(completed) > 0 {
			done = strings.Join(completed, ", ")
		}
		rituals = append(rituals, fmt.Sprintf("Date: %s - Ritual completed: %s", day, done))
	}

	return journal, rituals
}

func buildPrompt(targetDay string, journal, rituals []string) string {
	journalJSON, _ := json.Marshal(journal)
	ritualsJSON, _ := json.Marshal(rituals)

	return fmt.Sprintf(`SYSTEM: MULTIDISCIPLINARY REVIEW AND IMPROVEMENT BOARD
ANALYSIS DATE: %s

Role:
You act as a multidisciplinary professional board (Cognitive Behavioral Psychologist + Stoic Philosopher + Chief Editor).

Mission:
Analyze the INPUT provided (journal reflections + habits/rituals) UP TO %s and deliver:
1. An objective diagnosis of real problems and hidden patterns.
2. A "Stoic Challenge" (Socratic) that forces the user to confront an uncomfortable truth about this period.
3. A refined version of the latest entry (if any), elevating the language to something timeless.

INPUT DATA (historical context):
- Recent journal: %s
- Habits & rituals: %s

Output rules (strict JSON):
1. executiveSummary: short synthesis (max 2 sentences).
2. diagnosis: list of logical or emotional problems.
3. weakElements: passages that are mere complaint without action.
4. improvements: practical suggestions.
5. stoicChallenge: direct, probing question.
6. refinedVersion: the user's text rewritten with clarity and dignity.`,
		targetDay, targetDay, journalJSON, ritualsJSON)
}
