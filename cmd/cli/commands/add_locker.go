package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jakechorley/lockerdesk/pkg/core/services"
	"github.com/jakechorley/lockerdesk/pkg/render"
)

// AddLockerCmd creates the addLocker command
func AddLockerCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "addLocker <area> <type>",
		Short: "Register a new locker",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			area := args[0]
			typ := args[1]

			if !app.Cfg.AreaAllowed(area) {
				return fmt.Errorf("unknown area %q (configured areas: %s)", area, strings.Join(app.Cfg.Areas, ", "))
			}

			locker, err := services.AddLocker(app.Ctx, app.Gateway, app.Store, app.Logger, area, typ)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Locker %d added (%s, %s)\n", locker.ID, locker.Area, locker.Type)
			printList("Lockers", render.Lockers(app.Store, time.Now(), ""))
			return nil
		},
	}
}
