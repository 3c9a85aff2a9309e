package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/planner/internal/planner"
)

const (
	minCellWidth = 4
	maxCellWidth = 14
)

var weekdayHeaders = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

var calCmd = &cobra.Command{
	Use:   "cal",
	Short: "Show events on a calendar",
	Long: `Show the planner's events laid out on a calendar, one grid per month
that has events. Weeks start on Sunday.`,
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

		// Grouping follows current order
		p.SortByDate()
		groups := planner.GroupByMonth(p.Events())

		if jsonOutput {
			return outputJSON(calendarJSON(groups))
		}

		if len(groups) == 0 {
			PrintSection(s.name)
			PrintEmptyState("No events planned")
			return nil
		}

		for _, g := range groups {
			PrintSection(g.Label())
			fmt.Print(formatMonth(g))
		}
		return nil
	},
}

// formatMonth renders a month group as a text grid. Each week is one row of
// day numbers followed by one line per event name.
func formatMonth(g planner.MonthGroup) string {
	width := minCellWidth
	for _, e := range g.Events {
		width = max(width, len(e.Name)+1)
	}
	width = min(width, maxCellWidth)

	var b strings.Builder
	writeRow := func(cells [7]string) {
		b.WriteString("  ")
		for i, cell := range cells {
			if i > 0 {
				b.WriteString("|")
			}
			fmt.Fprintf(&b, "%-*s", width, truncate(cell, width))
		}
		b.WriteString("\n")
	}
	separator := "  " + strings.TrimSuffix(strings.Repeat(strings.Repeat("-", width)+"+", 7), "+") + "\n"

	writeRow(weekdayHeaders)
	b.WriteString(separator)

	for _, week := range g.Rows() {
		var days [7]string
		lines := 0
		for i, cell := range week {
			if cell.Day != 0 {
				days[i] = fmt.Sprintf("%d", cell.Day)
			}
			lines = max(lines, len(cell.Names))
		}
		writeRow(days)

		for line := 0; line < lines; line++ {
			var names [7]string
			for i, cell := range week {
				if line < len(cell.Names) {
					names[i] = cell.Names[line]
				}
			}
			writeRow(names)
		}
		b.WriteString(separator)
	}
	return b.String()
}

// truncate shortens s to width runes, marking the cut with "~".
func truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	return string(r[:width-1]) + "~"
}

type calendarMonth struct {
	Label string      `json:"label"`
	Year  int         `json:"year"`
	Month int         `json:"month"`
	Weeks [][7]int    `json:"weeks"`
	Days  []dayEvents `json:"days"`
}

type dayEvents struct {
	Day    int      `json:"day"`
	Events []string `json:"events"`
}

func calendarJSON(groups []planner.MonthGroup) []calendarMonth {
	out := make([]calendarMonth, 0, len(groups))
	for _, g := range groups {
		m := calendarMonth{
			Label: g.Label(),
			Year:  g.Year,
			Month: int(g.Month),
			Weeks: g.Grid(),
			Days:  []dayEvents{},
		}
		for _, week := range g.Rows() {
			for _, cell := range week {
				if len(cell.Names) > 0 {
					m.Days = append(m.Days, dayEvents{Day: cell.Day, Events: cell.Names})
				}
			}
		}
		out = append(out, m)
	}
	return out
}
