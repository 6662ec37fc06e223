package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jakechorley/lockerdesk/pkg/render"
)

// ViewCmd creates the view command
func ViewCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "view",
		Short: "Show lockers, people and this session's assignments",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			printAllLists(app)
			return nil
		},
	}
}

// printAllLists renders the three display lists from the current cache.
func printAllLists(app *AppContext) {
	now := time.Now()

	printList("Lockers", render.Lockers(app.Store, now, ""))
	printList("People", render.People(app.Store))
	printList("Assignments this session", render.Allocations(app.Store))
}

func printList(title string, lines []string) {
	fmt.Printf("\n%s (%d):\n", title, len(lines))
	if len(lines) == 0 {
		fmt.Println("  (none)")
		return
	}
	for _, line := range lines {
		fmt.Printf("  %s\n", line)
	}
}
