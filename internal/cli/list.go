package cli

import (
	"fmt"
	"time"

	"github.com/mindfuljournal/mindful/internal/models"
)

type ListCmd struct {
	Day   string `short:"d" help:"Only show entries for one day (YYYY-MM-DD or 'today')."`
	Limit int    `short:"n" help:"Maximum number of entries to show." default:"20"`
}

func (c *ListCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	var reflections []models.Reflection
	if c.Day != "" {
		day, err := parseDay(c.Day)
		if err != nil {
			return err
		}
		reflections = ctx.Store.ReflectionsForDay(day)
	} else {
		reflections = ctx.Store.Reflections()
	}

	if len(reflections) == 0 {
		fmt.Println("No reflections yet.")
		return nil
	}

	if c.Limit > 0 && len(reflections) > c.Limit {
		reflections = reflections[:c.Limit]
	}

	for _, r := range reflections {
		created := time.UnixMilli(r.Timestamp).Format("15:04")
		fmt.Printf("%s %s  %-12s  %s\n", moodBadge(r.Mood), r.Date, r.Category, r.Title)
		fmt.Printf("   %s  (ID: %s)\n", created, r.ID)
	}

	return nil
}
