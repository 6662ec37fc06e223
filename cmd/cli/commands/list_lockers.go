package commands

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/jakechorley/lockerdesk/pkg/render"
)

// ListLockersCmd creates the listLockers command
func ListLockersCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "listLockers",
		Short: "List lockers with their current status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			area, _ := cmd.Flags().GetString("area")

			printList("Lockers", render.Lockers(app.Store, time.Now(), area))
			return nil
		},
	}

	cmd.Flags().String("area", "", "Only show lockers in this area")

	return cmd
}
