package cli

import "fmt"

type RitualListCmd struct {
	Date string `short:"d" help:"Day to show (YYYY-MM-DD or 'today')." default:"today"`
}

func (c *RitualListCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	day, err := parseDay(c.Date)
	if err != nil {
		return err
	}
	ctx.Store.SelectDay(day)

	rec := ctx.Store.DayOrTemplate(day)
	fmt.Printf("Wind-down ritual for %s:\n\n", day)
	for _, item := range rec.Ritual {
		mark := "[ ]"
		if item.Completed {
			mark = "[x]"
		}
		fmt.Printf("  %s %-18s %-40s %s\n", mark, item.Category, item.Label, item.ID)
	}

	return nil
}

type RitualToggleCmd struct {
	ID   string `arg:"" help:"Ritual item ID (e.g. mental_dump)."`
	Date string `short:"d" help:"Day to toggle on (YYYY-MM-DD or 'today')." default:"today"`
}

func (c *RitualToggleCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	day, err := parseDay(c.Date)
	if err != nil {
		return err
	}
	ctx.Store.SelectDay(day)

	if !ctx.Store.ToggleRitualItem(c.ID) {
		return fmt.Errorf("no ritual item %q on %s", c.ID, day)
	}

	rec, _ := ctx.Store.Day(day)
	for _, item := range rec.Ritual {
		if item.ID == c.ID {
			state := "unchecked"
			if item.Completed {
				state = "checked"
			}
			fmt.Printf("✓ %s %s (streak: %d)\n", item.Label, state, ctx.Store.Streak())
		}
	}

	return nil
}
