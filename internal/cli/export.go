package cli

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/planner/internal/ical"
)

var exportTarget string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the planner as iCalendar",
	Long: `Export the planner's events as an iCalendar (.ics) document.

Each event becomes an all-day event. Event UIDs are stable, so importing a
re-exported file into a calendar client updates events in place.
Writes to stdout unless --target is given.`,
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

		if exportTarget == "" {
			return ical.Export(os.Stdout, s.name, p.Events(), appClock.Now())
		}

		var buf bytes.Buffer
		if err := ical.Export(&buf, s.name, p.Events(), appClock.Now()); err != nil {
			return err
		}
		if err := s.fs.AtomicWrite(exportTarget, buf.Bytes(), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", exportTarget, err)
		}

		if jsonOutput {
			return outputJSON(map[string]any{"target": exportTarget, "events": p.CountEvents()})
		}

		PrintSuccess(fmt.Sprintf("Exported %s to %s", countOf(p.CountEvents(), "event", "events"), exportTarget))
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportTarget, "target", "t", "", "File to write instead of stdout")
}
