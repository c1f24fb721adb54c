package models

import (
	"strings"
	"time"
)

// Mood is the 5-point ordinal scale attached to a reflection.
type Mood string

const (
	MoodAwful   Mood = "awful"
	MoodBad     Mood = "bad"
	MoodNeutral Mood = "neutral"
	MoodGood    Mood = "good"
	MoodGreat   Mood = "great"
)

// Score maps a mood onto 1..5 for trend calculations. Unknown or empty
// moods score 0 and are skipped by callers.
func (m Mood) Score() int {
	switch m {
	case MoodAwful:
		return 1
	case MoodBad:
		return 2
	case MoodNeutral:
		return 3
	case MoodGood:
		return 4
	case MoodGreat:
		return 5
	default:
		return 0
	}
}

// Reflection is a single journal entry. Entries are immutable once
// created; they are only ever appended or deleted by id.
//
// JSON field names are part of the export file format and must not change.
type Reflection struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Text      string `json:"text"`
	Category  string `json:"category"`
	Mood      Mood   `json:"mood,omitempty"`
	Date      string `json:"date"`      // YYYY-MM-DD, the selected day at save time
	Timestamp int64  `json:"timestamp"` // creation instant, unix milliseconds
}

const titleMaxLen = 50

// DeriveTitle builds a reflection title from the first line of its text,
// truncated to 50 characters with an ellipsis appended when cut.
func DeriveTitle(text string) string {
	line := text
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}
	runes := []rune(line)
	if len(runes) <= titleMaxLen {
		return line
	}
	return string(runes[:titleMaxLen]) + "..."
}

// Today returns the current calendar day in the local timezone as
// YYYY-MM-DD. The logical date of an entry always comes from the selected
// day, never from the creation timestamp.
func Today() string {
	return time.Now().Format(DayFormat)
}

// DayFormat is the layout for all calendar-day strings.
const DayFormat = "2006-01-02"
