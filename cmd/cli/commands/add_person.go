package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jakechorley/lockerdesk/pkg/clients/lockerapi"
	"github.com/jakechorley/lockerdesk/pkg/core/model"
	"github.com/jakechorley/lockerdesk/pkg/core/services"
	"github.com/jakechorley/lockerdesk/pkg/render"
)

// AddPersonCmd creates the addPerson command
func AddPersonCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "addPerson <name> <email> <rota>",
		Short: "Register a new person",
		Long:  "Register a new person eligible for locker assignment. The end date defaults to today when omitted.",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			startStr, _ := cmd.Flags().GetString("start")
			endStr, _ := cmd.Flags().GetString("end")

			draft := lockerapi.PersonDraft{
				Name:  args[0],
				Email: args[1],
				Rota:  args[2],
			}

			var err error
			if startStr != "" {
				if draft.StartDate, err = model.ParseDate(startStr); err != nil {
					return fmt.Errorf("invalid --start: %w", err)
				}
			} else {
				draft.StartDate = model.DateOf(time.Now())
			}
			if endStr != "" {
				if draft.EndDate, err = model.ParseDate(endStr); err != nil {
					return fmt.Errorf("invalid --end: %w", err)
				}
			}

			person, err := services.AddPerson(app.Ctx, app.Gateway, app.Store, app.Logger, time.Now(), draft)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Person %d added: %s (%s)\n", person.ID, person.Name, person.Rota)
			printList("People", render.People(app.Store))
			return nil
		},
	}

	cmd.Flags().String("start", "", "Start date (2006-01-02, defaults to today)")
	cmd.Flags().String("end", "", "End date (2006-01-02, defaults to today)")

	return cmd
}
