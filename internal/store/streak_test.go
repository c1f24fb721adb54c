package store

import (
	"testing"
	"time"

	"github.com/mindfuljournal/mindful/internal/models"
)

const testToday = "2024-06-15"

func dayOffset(today string, offset int) string {
	t, _ := time.Parse(models.DayFormat, today)
	return t.AddDate(0, 0, offset).Format(models.DayFormat)
}

func reflectionOn(day string) models.Reflection {
	return models.Reflection{ID: "r-" + day, Text: "x", Date: day}
}

func TestComputeStreak_Empty(t *testing.T) {
	if got := ComputeStreak(nil, nil, testToday); got != 0 {
		t.Errorf("expected 0 for no activity, got %d", got)
	}
}

func TestComputeStreak_TodayOnly(t *testing.T) {
	refs := []models.Reflection{reflectionOn(testToday)}
	if got := ComputeStreak(refs, nil, testToday); got != 1 {
		t.Errorf("expected 1 for activity today only, got %d", got)
	}
}

func TestComputeStreak_FourConsecutiveDays(t *testing.T) {
	var refs []models.Reflection
	for i := 0; i <= 3; i++ {
		refs = append(refs, reflectionOn(dayOffset(testToday, -i)))
	}
	// Day -4 has no activity; the walk must stop there.
	if got := ComputeStreak(refs, nil, testToday); got != 4 {
		t.Errorf("expected 4, got %d", got)
	}
}

func TestComputeStreak_YesterdayOnly(t *testing.T) {
	refs := []models.Reflection{reflectionOn(dayOffset(testToday, -1))}
	if got := ComputeStreak(refs, nil, testToday); got != 1 {
		t.Errorf("expected 1 computed from yesterday, got %d", got)
	}
}

func TestComputeStreak_BrokenStreakIgnoresOlderHistory(t *testing.T) {
	// Rich history two days back and earlier, but nothing today or yesterday.
	var refs []models.Reflection
	for i := 2; i <= 10; i++ {
		refs = append(refs, reflectionOn(dayOffset(testToday, -i)))
	}
	if got := ComputeStreak(refs, nil, testToday); got != 0 {
		t.Errorf("expected 0 when neither today nor yesterday qualifies, got %d", got)
	}
}

func TestComputeStreak_CompletedRitualQualifies(t *testing.T) {
	days := map[string]models.DailyRecord{
		testToday: {Ritual: []models.RitualItem{{ID: "a", Completed: true}}},
	}
	if got := ComputeStreak(nil, days, testToday); got != 1 {
		t.Errorf("expected 1 for a completed ritual item, got %d", got)
	}
}

func TestComputeStreak_UncompletedRitualDoesNotQualify(t *testing.T) {
	days := map[string]models.DailyRecord{
		testToday: {Ritual: []models.RitualItem{{ID: "a"}, {ID: "b"}}},
	}
	if got := ComputeStreak(nil, days, testToday); got != 0 {
		t.Errorf("expected 0 for an all-incomplete ritual, got %d", got)
	}
}

func TestComputeStreak_MixedSources(t *testing.T) {
	// Today qualified by ritual, yesterday by a reflection.
	refs := []models.Reflection{reflectionOn(dayOffset(testToday, -1))}
	days := map[string]models.DailyRecord{
		testToday: {Ritual: []models.RitualItem{{ID: "a", Completed: true}}},
	}
	if got := ComputeStreak(refs, days, testToday); got != 2 {
		t.Errorf("expected 2, got %d", got)
	}
}

func TestComputeStreak_InvalidToday(t *testing.T) {
	refs := []models.Reflection{reflectionOn(testToday)}
	if got := ComputeStreak(refs, nil, "not-a-date"); got != 0 {
		t.Errorf("expected 0 for unparseable today, got %d", got)
	}
}
