package cli

import "fmt"

type DeleteCmd struct {
	ID string `arg:"" help:"ID of the reflection to delete."`
}

func (c *DeleteCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	before := len(ctx.Store.Reflections())
	ctx.Store.DeleteReflection(c.ID)
	if len(ctx.Store.Reflections()) == before {
		fmt.Printf("No reflection with ID %s.\n", c.ID)
		return nil
	}

	fmt.Println("✓ Reflection deleted.")
	return nil
}
