package cli

import "fmt"

type InitCmd struct{}

func (c *InitCmd) Run(ctx *Context) error {
	if err := ctx.Store.InitializeIfNeeded(); err != nil {
		return err
	}

	habits := ctx.Store.Load()
	fmt.Printf("Initialized habitual storage at: %s\n", ctx.Store.DataPath())
	if len(habits) > 0 {
		fmt.Printf("Seeded %d habits.\n", len(habits))
	}
	return nil
}
