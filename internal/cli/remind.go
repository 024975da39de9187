package cli

import (
	"fmt"

	"github.com/julianstephens/habitual/internal/reminder"
	"github.com/julianstephens/habitual/internal/rollover"
)

type RemindCmd struct {
	DryRun bool `help:"Print the alarms that would be scheduled instead of sending them."`
}

func (c *RemindCmd) Run(ctx *Context) error {
	if c.DryRun {
		roller := rollover.New(ctx.Store, ctx.Prefs)
		roller.Now = ctx.now
		habits := roller.Run()

		mem := reminder.NewMemoryService()
		reminder.New(mem).RescheduleAll(habits)

		pending := mem.Pending()
		if len(pending) == 0 {
			fmt.Println("No reminders to schedule.")
			return nil
		}
		for _, a := range pending {
			fmt.Printf("[DryRun] %02d:%02d daily — %s (key %s)\n", a.Hour, a.Minute, a.Message, a.ID)
		}
		return nil
	}

	habits := ctx.Refresh()
	fmt.Printf("Scheduled %d daily reminders.\n", len(habits))
	return nil
}
