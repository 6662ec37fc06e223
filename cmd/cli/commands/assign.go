package commands

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jakechorley/lockerdesk/pkg/core/services"
)

// AssignCmd creates the assign command
func AssignCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "assign",
		Short: "Assign the first available locker to the first unassigned person",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			allocation, err := services.AssignLocker(app.Ctx, app.Gateway, app.Store, app.Logger, time.Now())
			if errors.Is(err, services.ErrNothingToAssign) {
				fmt.Println("\nNo available lockers or unassigned people.")
				return nil
			}
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Locker %d assigned to %s (person %d)\n",
				allocation.Locker.ID, allocation.Person.Name, allocation.Person.ID)
			printAllLists(app)
			return nil
		},
	}
}
