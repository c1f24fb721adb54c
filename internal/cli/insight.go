package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/mindfuljournal/mindful/internal/insight"
)

type InsightCmd struct {
	Date string `short:"d" help:"Day to review (YYYY-MM-DD or 'today')." default:"today"`
}

func (c *InsightCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	day, err := parseDay(c.Date)
	if err != nil {
		return err
	}
	ctx.Store.SelectDay(day)

	gen := ctx.Generator
	if gen == nil {
		gen, err = insight.NewGemini(context.Background(), ctx.Config.GeminiAPIKey, ctx.Config.GeminiModel)
		if err != nil {
			return err
		}
	}

	fmt.Printf("Generating review for %s...\n", day)
	result, err := gen.Generate(context.Background(), ctx.Store.Reflections(), ctx.Store.Days(), day)
	if err != nil {
		if errors.Is(err, insight.ErrNoHistory) {
			return fmt.Errorf("nothing to review: %w", err)
		}
		// Any previously saved insight for the day stays untouched.
		return err
	}

	ctx.Store.SaveDailyInsight(result)

	fmt.Printf("\n%s\n\n", result.ExecutiveSummary)
	if len(result.Diagnosis) > 0 {
		fmt.Println("Diagnosis:")
		for _, d := range result.Diagnosis {
			fmt.Printf("  - %s\n", d)
		}
	}
	if result.WeakElements != "" {
		fmt.Printf("\nWeak elements: %s\n", result.WeakElements)
	}
	if len(result.Improvements) > 0 {
		fmt.Println("\nImprovements:")
		for _, imp := range result.Improvements {
			fmt.Printf("  - %s\n", imp)
		}
	}
	fmt.Printf("\nStoic challenge: %s\n", result.StoicChallenge)
	if result.RefinedVersion != "" {
		fmt.Printf("\nRefined version:\n%s\n", result.RefinedVersion)
	}

	return nil
}
