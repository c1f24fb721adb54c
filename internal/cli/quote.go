package cli

import (
	"fmt"

	"github.com/mindfuljournal/mindful/internal/constants"
	"github.com/mindfuljournal/mindful/internal/models"
)

type QuoteCmd struct{}

func (c *QuoteCmd) Run(ctx *Context) error {
	q := constants.QuoteOfTheDay(models.Today())
	fmt.Printf("\"%s\"\n  — %s\n", q.Text, q.Author)
	return nil
}
