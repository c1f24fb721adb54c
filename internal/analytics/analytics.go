package analytics

import (
	"sort"
	"time"

	"github.com/mindfuljournal/mindful/internal/models"
)

// MoodPoint is one day's average mood on the 1..5 scale.
type MoodPoint struct {
	Day     string
	Average float64
	Entries int
}

// MoodTrend aggregates reflections into a per-day mood series, oldest
// first. Entries without a mood are skipped.
func MoodTrend(reflections []models.Reflection) []MoodPoint {
	sums := make(map[string]int)
	counts := make(map[string]int)
	for _, r := range reflections {
		score := r.Mood.Score()
		if score == 0 {
			continue
		}
		sums[r.Date] += score
		counts[r.Date]++
	}

	points := make([]MoodPoint, 0, len(sums))
	for day, sum := range sums {
		points = append(points, MoodPoint{
			Day:     day,
			Average: float64(sum) / float64(counts[day]),
			Entries: counts[day],
		})
	}
	sort.Slice(points, func(i, j int) bool {
		return points[i].Day < points[j].Day
	})
	return points
}

// HeatCell is one day of the ritual completion heatmap.
type HeatCell struct {
	Day       string
	Completed int
	Total     int
}

// CompletionHeatmap returns one cell per day for the n days ending at
// endDay (inclusive), oldest first. Days without a record yield an empty
// cell so the rendering layer gets a dense window.
func CompletionHeatmap(days map[string]models.DailyRecord, endDay string, n int) []HeatCell {
	end, err := time.Parse(models.DayFormat, endDay)
	if err != nil || n <= 0 {
		return nil
	}

	cells := make([]HeatCell, 0, n)
	for i := n - 1; i >= 0; i-- {
		day := end.AddDate(0, 0, -i).Format(models.DayFormat)
		cell := HeatCell{Day: day}
		if rec, ok := days[day]; ok {
			cell.Total = len(rec.Ritual)
			for _, item := range rec.Ritual {
				if item.Completed {
					cell.Completed++
				}
			}
		}
		cells = append(cells, cell)
	}
	return cells
}
