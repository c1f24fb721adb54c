package cli

import (
	"fmt"
	"time"
)

type DayCmd struct {
	Date string `arg:"" help:"Day to show (YYYY-MM-DD or 'today')." default:"today"`
}

func (c *DayCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	day, err := parseDay(c.Date)
	if err != nil {
		return err
	}
	ctx.Store.SelectDay(day)

	fmt.Printf("Day %s (streak: %d)\n\n", day, ctx.Store.Streak())

	reflections := ctx.Store.ReflectionsForDay(day)
	if len(reflections) == 0 {
		fmt.Println("  No reflections for this day.")
	}
	for _, r := range reflections {
		fmt.Printf("  %s %-12s %s\n", moodBadge(r.Mood), r.Category, r.Title)
	}

	rec := ctx.Store.DayOrTemplate(day)
	if len(rec.Ritual) > 0 {
		fmt.Println("\nWind-down ritual:")
		for _, item := range rec.Ritual {
			mark := "[ ]"
			if item.Completed {
				mark = "[x]"
			}
			fmt.Printf("  %s %-18s %s  (%s)\n", mark, item.Category, item.Label, item.ID)
		}
	}

	if rec.DailyInsight != nil {
		generated := time.UnixMilli(rec.DailyInsight.GeneratedAt).Format("2006-01-02 15:04")
		fmt.Printf("\nAI review (%s):\n  %s\n", generated, rec.DailyInsight.ExecutiveSummary)
		fmt.Printf("  Challenge: %s\n", rec.DailyInsight.StoicChallenge)
	}

	return nil
}
