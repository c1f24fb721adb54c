package models

// RitualItem is one checklist entry within a day's wind-down ritual.
type RitualItem struct {
	ID        string `json:"id"`
	Label     string `json:"label"`
	Completed bool   `json:"completed"`
	Category  string `json:"category,omitempty"`
}

// Insight is the structured result returned by the AI review. The store
// persists it as-is, keyed by day; it never interprets the contents.
type Insight struct {
	ExecutiveSummary string   `json:"executiveSummary"`
	Diagnosis        []string `json:"diagnosis"`
	WeakElements     string   `json:"weakElements"`
	Improvements     []string `json:"improvements"`
	StoicChallenge   string   `json:"stoicChallenge"`
	RefinedVersion   string   `json:"refinedVersion"`
	GeneratedAt      int64    `json:"generatedAt,omitempty"` // unix milliseconds
}

// DailyRecord bundles one calendar day's ritual state and optional insight.
// The day → record mapping is sparse; a record exists only once the day has
// been touched.
type DailyRecord struct {
	Ritual       []RitualItem `json:"ritual"`
	DailyInsight *Insight     `json:"dailyInsight,omitempty"`
}

// Clone returns a deep copy of the record so callers can hand out
// snapshots without aliasing the store's internal state.
func (d DailyRecord) Clone() DailyRecord {
	out := DailyRecord{}
	if d.Ritual != nil {
		out.Ritual = make([]RitualItem, len(d.Ritual))
		copy(out.Ritual, d.Ritual)
	}
	if d.DailyInsight != nil {
		ins := *d.DailyInsight
		ins.Diagnosis = append([]string(nil), d.DailyInsight.Diagnosis...)
		ins.Improvements = append([]string(nil), d.DailyInsight.Improvements...)
		out.DailyInsight = &ins
	}
	return out
}

// HasCompletedRitual reports whether at least one ritual item is checked.
func (d DailyRecord) HasCompletedRitual() bool {
	for _, item := range d.Ritual {
		if item.Completed {
			return true
		}
	}
	return false
}
