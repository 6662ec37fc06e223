package commands

import (
	"github.com/spf13/cobra"

	"github.com/jakechorley/lockerdesk/pkg/render"
)

// ListPeopleCmd creates the listPeople command
func ListPeopleCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "listPeople",
		Short: "List people known to the server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			printList("People", render.People(app.Store))
			return nil
		},
	}
}
