package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/planner/internal/ical"
)

var importCmd = &cobra.Command{
	Use:   "import <file.ics>",
	Short: "Import events from an iCalendar file",
	Long: `Add every event of an iCalendar (.ics) file to the planner.

Each event is added under its SUMMARY on the date of its DTSTART, with a new
id. Events without a DTSTART are skipped and reported.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", args[0], err)
		}
		defer func() {
			_ = f.Close()
		}()

		entries, skipped, err := ical.Parse(f)
		if err != nil {
			return err
		}

		s, err := newSession()
		if err != nil {
			return err
		}

		p, err := s.load()
		if err != nil {
			return err
		}

		added, err := ical.Import(p, entries)
		if err != nil {
			return err
		}

		p.SortByDate()
		if err := s.save(p); err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(map[string]any{"added": added, "skipped": skipped})
		}

		PrintSuccess(fmt.Sprintf("Imported %s into %s", countOf(len(added), "event", "events"), s.name))
		PrintSkipped(skipped)
		return nil
	},
}
