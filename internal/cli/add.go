package cli

import (
	"fmt"
	"strings"

	"github.com/mindfuljournal/mindful/internal/store"
)

type AddCmd struct {
	Text     []string `arg:"" help:"Reflection text."`
	Category string   `short:"c" help:"Category (General, Gratitude, Stoicism, ...)." default:"General"`
	Mood     string   `short:"m" help:"Mood (awful|bad|neutral|good|great)."`
	Date     string   `short:"d" help:"Day the entry belongs to (YYYY-MM-DD or 'today')." default:"today"`
}

func (c *AddCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	day, err := parseDay(c.Date)
	if err != nil {
		return err
	}

	mood, err := parseMood(c.Mood)
	if err != nil {
		return err
	}

	ctx.Store.SelectDay(day)
	ref, err := ctx.Store.AddReflection(store.Input{
		Text:     strings.Join(c.Text, " "),
		Category: c.Category,
		Mood:     mood,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Added reflection: %s (ID: %s)\n", ref.Title, ref.ID)
	fmt.Printf("Current streak: %d day(s)\n", ctx.Store.Streak())
	return nil
}
