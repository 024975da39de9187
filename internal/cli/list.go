package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

type ListCmd struct{}

func (c *ListCmd) Run(ctx *Context) error {
	habits := ctx.Refresh()

	if len(habits) == 0 {
		fmt.Println("No habits yet. Add one with 'habitual add'.")
		return nil
	}

	now := ctx.now()
	for i, h := range habits {
		swatch := lipgloss.NewStyle().
			Foreground(lipgloss.Color(h.Color().Hex())).
			Render("●")

		status := "[ ]"
		if h.IsChecked(now) {
			status = "[x]"
		}

		fmt.Printf("%2d. %s %s %-20s streak %d · this week %d · total %d\n",
			i+1, swatch, status, h.Name,
			h.ConsecutiveDaysCount(now), h.ThisWeekCheckCount(now), h.TotalCheckCount())
	}

	return nil
}
