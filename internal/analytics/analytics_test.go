package analytics

import (
	"testing"

	"github.com/mindfuljournal/mindful/internal/models"
)

func TestMoodTrend(t *testing.T) {
	refs := []models.Reflection{
		{Date: "2024-06-02", Mood: models.MoodGreat},
		{Date: "2024-06-01", Mood: models.MoodBad},
		{Date: "2024-06-01", Mood: models.MoodGood},
		{Date: "2024-06-01"}, // no mood, skipped
	}

	points := MoodTrend(refs)
	if len(points) != 2 {
		t.Fatalf("expected 2 points, got %d", len(points))
	}

	if points[0].Day != "2024-06-01" || points[1].Day != "2024-06-02" {
		t.Errorf("points not sorted oldest first: %v", points)
	}
	if points[0].Average != 3.0 || points[0].Entries != 2 {
		t.Errorf("expected average 3.0 over 2 entries, got %+v", points[0])
	}
	if points[1].Average != 5.0 {
		t.Errorf("expected average 5.0, got %+v", points[1])
	}
}

func TestMoodTrend_Empty(t *testing.T) {
	if got := MoodTrend(nil); len(got) != 0 {
		t.Errorf("expected no points, got %v", got)
	}
	// Entries without moods contribute nothing.
	refs := []models.Reflection{{Date: "2024-06-01"}}
	if got := MoodTrend(refs); len(got) != 0 {
		t.Errorf("expected no points for moodless entries, got %v", got)
	}
}

func TestCompletionHeatmap(t *testing.T) {
	days := map[string]models.DailyRecord{
		"2024-06-14": {Ritual: []models.RitualItem{
			{ID: "a", Completed: true},
			{ID: "b", Completed: true},
			{ID: "c"},
		}},
		"2024-06-12": {Ritual: []models.RitualItem{{ID: "a"}}},
	}

	cells := CompletionHeatmap(days, "2024-06-15", 5)
	if len(cells) != 5 {
		t.Fatalf("expected 5 cells, got %d", len(cells))
	}

	if cells[0].Day != "2024-06-11" || cells[4].Day != "2024-06-15" {
		t.Errorf("window misaligned: first %q last %q", cells[0].Day, cells[4].Day)
	}

	// 06-14 is the fourth cell.
	if cells[3].Completed != 2 || cells[3].Total != 3 {
		t.Errorf("expected 2/3 for 2024-06-14, got %d/%d", cells[3].Completed, cells[3].Total)
	}
	// 06-12 has a record with nothing completed.
	if cells[1].Completed != 0 || cells[1].Total != 1 {
		t.Errorf("expected 0/1 for 2024-06-12, got %d/%d", cells[1].Completed, cells[1].Total)
	}
	// Absent days are empty cells.
	if cells[4].Total != 0 {
		t.Errorf("expected empty cell for a day without a record, got %+v", cells[4])
	}
}

func TestCompletionHeatmap_Degenerate(t *testing.T) {
	if got := CompletionHeatmap(nil, "not-a-day", 7); got != nil {
		t.Errorf("expected nil for an unparseable end day, got %v", got)
	}
	if got := CompletionHeatmap(nil, "2024-06-15", 0); got != nil {
		t.Errorf("expected nil for a zero-width window, got %v", got)
	}
}
