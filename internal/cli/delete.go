package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/planner/internal/stores"
)

var deleteCmd = &cobra.Command{
	Use:   "delete [planner]",
	Short: "Permanently delete a planner",
	Long: `Delete a planner file permanently, including all of its events.

Without an argument the current planner (--planner-name) is deleted.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession()
		if err != nil {
			return err
		}

		target := s.name
		if len(args) == 1 {
			target = args[0]
		}

		exists, err := s.catalog.Exists(target)
		if err != nil {
			return err
		}
		if !exists {
			return fmt.Errorf("planner: %s, does not exist", target)
		}

		if err := s.catalog.Delete(target); err != nil {
			if errors.Is(err, stores.ErrPlannerNotFound) {
				return fmt.Errorf("planner: %s, does not exist", target)
			}
			return err
		}

		if jsonOutput {
			return outputJSON(map[string]any{"deleted": target})
		}

		PrintSuccess(fmt.Sprintf("Deleted planner: %s", target))
		return nil
	},
}
