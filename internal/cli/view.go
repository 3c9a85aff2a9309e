package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/planner/internal/clock"
	"github.com/danieljhkim/planner/internal/planner"
)

var viewVerbose bool

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Show past due and upcoming events",
	Long: `Show the planner's events in date order, split into events that are
past due and events dated today or later.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession()
		if err != nil {
			return err
		}

		p, err := s.load()
		if err != nil {
			return err
		}

		p.SortByDate()
		today := clock.Today(appClock)
		pastDue, upcoming := planner.Partition(p.Events(), today)

		if jsonOutput {
			return outputJSON(map[string]any{
				"planner":  s.name,
				"today":    today,
				"pastDue":  pastDue,
				"upcoming": upcoming,
				"lastId":   p.LastID(),
			})
		}

		if p.CountEvents() == 0 {
			PrintSection(s.name)
			PrintEmptyState("No events planned")
			return nil
		}

		if len(pastDue) > 0 {
			PrintSection("Past Due")
			for _, e := range pastDue {
				PrintEventLine(e, s.settings.DateLayout, today, viewVerbose)
			}
		}
		if len(upcoming) > 0 {
			PrintSection("Upcoming Dates")
			for _, e := range upcoming {
				PrintEventLine(e, s.settings.DateLayout, today, viewVerbose)
			}
		}
		fmt.Println()
		return nil
	},
}

func init() {
	viewCmd.Flags().BoolVarP(&viewVerbose, "verbose", "v", false, "Show event ids")
}
