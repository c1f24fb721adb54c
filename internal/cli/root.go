package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/mindfuljournal/mindful/internal/config"
	"github.com/mindfuljournal/mindful/internal/insight"
	"github.com/mindfuljournal/mindful/internal/models"
	"github.com/mindfuljournal/mindful/internal/storage"
	"github.com/mindfuljournal/mindful/internal/store"
)

type Context struct {
	KV     storage.Provider
	Store  *store.Store
	Config config.Config
	Log    zerolog.Logger

	// Generator is constructed on demand unless a test injects one.
	Generator insight.Generator
}

// parseDay resolves a date argument: "today", "yesterday", or YYYY-MM-DD.
func parseDay(s string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "today":
		return models.Today(), nil
	case "yesterday":
		return time.Now().AddDate(0, 0, -1).Format(models.DayFormat), nil
	}

	t, err := time.Parse(models.DayFormat, s)
	if err != nil {
		return "", fmt.Errorf("invalid date format, use YYYY-MM-DD or 'today': %w", err)
	}
	return t.Format(models.DayFormat), nil
}

func moodBadge(m models.Mood) string {
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
		return "  "
	}
}

func parseMood(s string) (models.Mood, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return "", nil
	case "awful":
		return models.MoodAwful, nil
	case "bad":
		return models.MoodBad, nil
	case "neutral":
		return models.MoodNeutral, nil
	case "good":
		return models.MoodGood, nil
	case "great":
		return models.MoodGreat, nil
	default:
		return "", fmt.Errorf("invalid mood %q (awful|bad|neutral|good|great)", s)
	}
}
