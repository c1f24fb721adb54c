package models

import (
	"strings"
	"testing"
)

func TestDeriveTitle_FirstLine(t *testing.T) {
	title := DeriveTitle("Hello\nworld")
	if title != "Hello" {
		t.Errorf("expected %q, got %q", "Hello", title)
	}
}

func TestDeriveTitle_Truncation(t *testing.T) {
	text := strings.Repeat("a", 60)
	title := DeriveTitle(text)

	if !strings.HasSuffix(title, "...") {
		t.Errorf("expected ellipsis suffix, got %q", title)
	}
	if got := strings.TrimSuffix(title, "..."); len(got) != 50 {
		t.Errorf("expected 50 characters before ellipsis, got %d", len(got))
	}
}

func TestDeriveTitle_ShortText(t *testing.T) {
	title := DeriveTitle("A quiet day")
	if title != "A quiet day" {
		t.Errorf("expected text unchanged, got %q", title)
	}
}

func TestDeriveTitle_ExactBoundary(t *testing.T) {
	text := strings.Repeat("b", 50)
	if title := DeriveTitle(text); title != text {
		t.Errorf("50-char text should not be truncated, got %q", title)
	}
}

func TestMoodScore(t *testing.T) {
	tests := []struct {
		mood Mood
		want int
	}{
		{MoodAwful, 1},
		{MoodBad, 2},
		{MoodNeutral, 3},
		{MoodGood, 4},
		{MoodGreat, 5},
		{Mood(""), 0},
		{Mood("sublime"), 0},
	}

	for _, tt := range tests {
		if got := tt.mood.Score(); got != tt.want {
			t.Errorf("Score(%q) = %d, want %d", tt.mood, got, tt.want)
		}
	}
}

func TestDailyRecordHasCompletedRitual(t *testing.T) {
	rec := DailyRecord{Ritual: []RitualItem{
		{ID: "a", Completed: false},
		{ID: "b", Completed: false},
	}}
	if rec.HasCompletedRitual() {
		t.Error("expected no completed ritual")
	}

	rec.Ritual[1].Completed = true
	if !rec.HasCompletedRitual() {
		t.Error("expected completed ritual after checking an item")
	}
}

func TestDailyRecordClone(t *testing.T) {
	rec := DailyRecord{
		Ritual:       []RitualItem{{ID: "a", Completed: true}},
		DailyInsight: &Insight{ExecutiveSummary: "fine", Diagnosis: []string{"none"}},
	}

	clone := rec.Clone()
	clone.Ritual[0].Completed = false
	clone.DailyInsight.Diagnosis[0] = "changed"

	if !rec.Ritual[0].Completed {
		t.Error("mutating the clone's ritual leaked into the original")
	}
	if rec.DailyInsight.Diagnosis[0] != "none" {
		t.Error("mutating the clone's insight leaked into the original")
	}
}
