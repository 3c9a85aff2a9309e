package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var rmCmd = &cobra.Command{
	Use:   "rm <event-id>",
	Short: "Remove an event by id",
	Long: `Remove an event from the planner by its id.

Ids are shown by 'planner view --verbose' and 'planner set --verbose'.
Removed ids are never reused.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid event id %q", args[0])
		}

		s, err := newSession()
		if err != nil {
			return err
		}

		p, err := s.load()
		if err != nil {
			return err
		}

		event, _ := p.Event(id)
		if err := p.RemoveEventByID(id); err != nil {
			return err
		}

		if err := s.save(p); err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(map[string]any{
				"removed":   event,
				"remaining": p.CountEvents(),
			})
		}

		PrintSuccess(fmt.Sprintf("Removed from planner: %s [%s]", event.Name, event.Date))
		return nil
	},
}
