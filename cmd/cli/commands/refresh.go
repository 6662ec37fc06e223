package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jakechorley/lockerdesk/pkg/core/services"
)

// RefreshCmd creates the refresh command
func RefreshCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Re-fetch lockers and people from the server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := services.RefreshState(app.Ctx, app.Gateway, app.Store, app.Logger)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Refreshed: %d lockers, %d people\n", result.LockerCount, result.PersonCount)
			return nil
		},
	}
}
