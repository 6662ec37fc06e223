package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jakechorley/lockerdesk/pkg/export"
)

// ExportCmd creates the export command
func ExportCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "export <path.xlsx>",
		Short: "Export lockers, people and assignments to a spreadsheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			if err := export.WriteFile(app.Store, time.Now(), path); err != nil {
				return fmt.Errorf("export failed: %w", err)
			}

			fmt.Printf("\n✓ Exported %d lockers and %d people to %s\n",
				len(app.Store.Lockers()), len(app.Store.People()), path)
			return nil
		},
	}
}
