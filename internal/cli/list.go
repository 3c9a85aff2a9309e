package cli

import (
	"github.com/spf13/cobra"

	"github.com/danieljhkim/planner/internal/clock"
	"github.com/danieljhkim/planner/internal/planner"
)

var listLong bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List existing planners",
	Long: `Display all planners in the planner directory.

With --long, each planner is loaded and shown with its event count and the
date of its next upcoming event.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession()
		if err != nil {
			return err
		}

		names, err := s.catalog.List()
		if err != nil {
			return err
		}

		if !listLong {
			if jsonOutput {
				return outputJSON(names)
			}

			PrintSection("Planners")
			if len(names) == 0 {
				PrintEmptyState("No planners found")
				return nil
			}
			for _, name := range names {
				PrintPlannerName(name, name == s.name)
			}
			return nil
		}

		summaries, err := summarizePlanners(s, names)
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(summaries)
		}

		PrintSection("Planners")
		if len(summaries) == 0 {
			PrintEmptyState("No planners found")
			return nil
		}

		PrintPlannerTable(summaries)
		return nil
	},
}

type plannerSummary struct {
	Name    string        `json:"name"`
	Current bool          `json:"current"`
	Events  int           `json:"events"`
	Next    *planner.Date `json:"next"`
}

func summarizePlanners(s *session, names []string) ([]plannerSummary, error) {
	today := clock.Today(appClock)

	summaries := make([]plannerSummary, 0, len(names))
	for _, name := range names {
		p, err := planner.LoadFS(s.fs, s.catalog.Dir(), name)
		if err != nil {
			return nil, err
		}

		sum := plannerSummary{Name: name, Current: name == s.name, Events: p.CountEvents()}
		p.SortByDate()
		if _, upcoming := planner.Partition(p.Events(), today); len(upcoming) > 0 {
			next := upcoming[0].Date
			sum.Next = &next
		}
		summaries = append(summaries, sum)
	}
	return summaries, nil
}

func init() {
	listCmd.Flags().BoolVarP(&listLong, "long", "l", false, "Show event counts and the next upcoming date")
}
