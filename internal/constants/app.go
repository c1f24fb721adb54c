package constants

import "github.com/mindfuljournal/mindful/internal/models"

const (
	// AppVersion is embedded in every export file.
	AppVersion = "2.5.0"

	// Storage keys for the two persisted collections.
	KeyReflections = "mindful_reflections_list"
	KeySleepData   = "mindful_sleep_data"
)

// Categories is the fixed set offered for new reflections. The first entry
// is the default; nothing beyond the default is enforced on stored data.
var Categories = []string{
	"General",
	"Gratitude",
	"Stoicism",
	"Learning",
	"Challenge",
	"Idea",
	"Anxiety",
	"Planning",
}

// DefaultRitualItems is the template seeded into a day's record the first
// time that day is touched. IDs are stable across days and exports.
var DefaultRitualItems = []models.RitualItem{
	{ID: "mental_dump", Label: "Write down open loops (empty the mind)", Category: "1. Mental"},
	{ID: "mental_win", Label: "Record one thing learned today", Category: "1. Mental"},
	{ID: "stimulus_screens", Label: "No screens or notifications (30min+)", Category: "2. Stimuli"},
	{ID: "stimulus_light", Label: "Warm or indirect lighting only", Category: "2. Stimuli"},
	{ID: "env_clothes", Label: "Lay out tomorrow's clothes", Category: "3. Environment"},
	{ID: "env_dark", Label: "Bedroom dark and tidy", Category: "3. Environment"},
	{ID: "body_stretch", Label: "Light stretching, drop the shoulders", Category: "4. Body"},
	{ID: "body_breath", Label: "Slow breathing (4-6-8)", Category: "4. Body"},
	{ID: "comfort_hygiene", Label: "Unhurried personal hygiene", Category: "5. Comfort"},
	{ID: "final_shutdown", Label: "Don't force sleep, just allow it", Category: "5. Comfort"},
}

// DefaultRitual returns a fresh copy of the template with every item
// incomplete, safe for the caller to mutate.
func DefaultRitual() []models.RitualItem {
	items := make([]models.RitualItem, len(DefaultRitualItems))
	copy(items, DefaultRitualItems)
	for i := range items {
		items[i].Completed = false
	}
	return items
}
