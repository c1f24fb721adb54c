package cli

import (
	"fmt"
	"strings"

	"github.com/mindfuljournal/mindful/internal/analytics"
	"github.com/mindfuljournal/mindful/internal/models"
)

type StatsCmd struct {
	Days int `short:"n" help:"Heatmap window in days." default:"28"`
}

var heatGlyphs = []string{"·", "░", "▒", "▓", "█"}

func (c *StatsCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	fmt.Printf("Streak: %d consecutive day(s)\n\n", ctx.Store.Streak())

	trend := analytics.MoodTrend(ctx.Store.Reflections())
	if len(trend) > 0 {
		fmt.Println("Mood trend (1=awful .. 5=great):")
		start := 0
		if len(trend) > 14 {
			start = len(trend) - 14
		}
		for _, p := range trend[start:] {
			bar := strings.Repeat("■", int(p.Average+0.5))
			fmt.Printf("  %s  %-5s %.1f (%d entr%s)\n", p.Day, bar, p.Average, p.Entries, plural(p.Entries, "y", "ies"))
		}
		fmt.Println()
	}

	cells := analytics.CompletionHeatmap(ctx.Store.Days(), models.Today(), c.Days)
	if len(cells) > 0 {
		fmt.Printf("Ritual completion, last %d days:\n  ", c.Days)
		for _, cell := range cells {
			fmt.Print(heatGlyph(cell))
		}
		fmt.Printf("\n  %s .. %s\n", cells[0].Day, cells[len(cells)-1].Day)
	}

	return nil
}

func heatGlyph(cell analytics.HeatCell) string {
	if cell.Total == 0 || cell.Completed == 0 {
		return heatGlyphs[0]
	}
	idx := 1 + (len(heatGlyphs)-2)*cell.Completed/cell.Total
	if idx >= len(heatGlyphs) {
		idx = len(heatGlyphs) - 1
	}
	return heatGlyphs[idx]
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
