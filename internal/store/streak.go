package store

import (
	"time"

	"github.com/mindfuljournal/mindful/internal/models"
)

// maxStreakDays bounds the backward walk so a pathological data set can
// never loop forever.
const maxStreakDays = 1000

// ComputeStreak counts consecutive qualifying calendar days walking
// backward from today, or from yesterday when today has no activity yet.
// A day qualifies when it has at least one reflection dated to it, or its
// ritual has at least one completed item. If neither today nor yesterday
// qualifies the streak is 0, regardless of older history.
//
// Always recomputed from scratch over the full data set, never updated
// incrementally.
func ComputeStreak(reflections []models.Reflection, days map[string]models.DailyRecord, today string) int {
	active := make(map[string]struct{})
	for _, r := range reflections {
		active[r.Date] = struct{}{}
	}
	for day, rec := range days {
		if rec.HasCompletedRitual() {
			active[day] = struct{}{}
		}
	}

	todayTime, err := time.Parse(models.DayFormat, today)
	if err != nil {
		return 0
	}
	yesterday := todayTime.AddDate(0, 0, -1).Format(models.DayFormat)

	_, todayActive := active[today]
	_, yesterdayActive := active[yesterday]
	if !todayActive && !yesterdayActive {
		return 0
	}

	cursor := todayTime
	if !todayActive {
		cursor = cursor.AddDate(0, 0, -1)
	}

	streak := 0
	for streak < maxStreakDays {
		if _, ok := active[cursor.Format(models.DayFormat)]; !ok {
			break
		}
		streak++
		cursor = cursor.AddDate(0, 0, -1)
	}
	return streak
}
