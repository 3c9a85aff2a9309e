package cli

import (
	"github.com/spf13/cobra"
)

var pathsCmd = &cobra.Command{
	Use:   "paths",
	Short: "Show the directory where your planners are stored",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession()
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(map[string]string{
				"plannerDirectory": s.catalog.Dir(),
				"config":           s.paths.Config,
			})
		}

		PrintLabelValue("Planner directory", s.catalog.Dir())
		PrintLabelValue("Settings", s.paths.Config)
		return nil
	},
}
