package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var setVerbose bool

var setCmd = &cobra.Command{
	Use:   "set <event> <date>",
	Short: "Add an event to the planner",
	Long: `Add a new event to the planner.

The date is written YYYY-M-D; month and day may be zero padded
(2020-6-21 and 2020-06-21 are the same day). Events are kept in date order.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession()
		if err != nil {
			return err
		}

		p, err := s.load()
		if err != nil {
			return err
		}

		event, err := p.AddEvent(args[0], args[1])
		if err != nil {
			return err
		}

		p.SortByDate()
		if err := s.save(p); err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(event)
		}

		if setVerbose {
			PrintSuccess(fmt.Sprintf("Added to planner: %s [id: %d, date: %s]", event.Name, event.ID, event.Date))
		} else {
			PrintSuccess(fmt.Sprintf("Added to planner: %s [%s]", event.Name, event.Date))
		}
		return nil
	},
}

func init() {
	setCmd.Flags().BoolVarP(&setVerbose, "verbose", "v", false, "Show the event id")
}
