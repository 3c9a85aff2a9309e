package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/danieljhkim/planner/internal/ical"
	"github.com/danieljhkim/planner/internal/planner"
)

// fatih/color drops the escape codes when stdout is not a terminal or
// color.NoColor is set by --no-color / no_color.
var (
	headerColor  = color.New(color.FgBlue, color.Bold)
	successColor = color.New(color.FgGreen, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	labelColor   = color.New(color.FgWhite, color.Bold)
	dimColor     = color.New(color.FgHiBlack)
	pastDueColor = color.New(color.FgRed)
	todayColor   = color.New(color.FgYellow, color.Bold)
)

// PrintSection prints a section header surrounded by blank lines.
func PrintSection(title string) {
	fmt.Println()
	_, _ = headerColor.Printf("▸ %s\n", title)
	fmt.Println()
}

// PrintSuccess prints a completed change, e.g. an added event.
func PrintSuccess(msg string) {
	_, _ = successColor.Printf("✓ %s\n", msg)
}

// PrintWarning prints a problem that did not stop the command.
func PrintWarning(msg string) {
	_, _ = warningColor.Printf("⚠ %s\n", msg)
}

// PrintEmptyState prints a dimmed note for a section with nothing in it.
func PrintEmptyState(msg string) {
	_, _ = dimColor.Printf("  %s\n", msg)
}

// PrintLabelValue prints "  label: value".
func PrintLabelValue(label, value string) {
	_, _ = labelColor.Printf("  %s: ", label)
	fmt.Println(value)
}

// PrintEventLine prints one event of the view listing as
// "\t<name> - <date>". Past due events are red and today's are highlighted.
func PrintEventLine(e planner.Event, layout string, today planner.Date, verbose bool) {
	line := fmt.Sprintf("\t%s - %s", e.Name, e.Date.Format(layout))
	if verbose {
		line += fmt.Sprintf(" [id: %d]", e.ID)
	}

	switch c := e.Date.Compare(today); {
	case c < 0:
		_, _ = pastDueColor.Println(line)
	case c == 0:
		_, _ = todayColor.Println(line)
	default:
		fmt.Println(line)
	}
}

// PrintPlannerName prints a planner of the short listing, marking the one
// commands act on by default.
func PrintPlannerName(name string, current bool) {
	if current {
		_, _ = successColor.Printf("%s (current)\n", name)
		return
	}
	fmt.Println(name)
}

// PrintPlannerTable prints the long listing: name, event count and next
// upcoming date. The current planner is marked with "*".
func PrintPlannerTable(summaries []plannerSummary) {
	headers := [3]string{"PLANNER", "EVENTS", "NEXT"}
	rows := make([][3]string, 0, len(summaries))
	for _, sum := range summaries {
		name := sum.Name
		if sum.Current {
			name += " *"
		}
		next := "-"
		if sum.Next != nil {
			next = sum.Next.String()
		}
		rows = append(rows, [3]string{name, strconv.Itoa(sum.Events), next})
	}

	var widths [3]int
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], len(cell))
		}
	}

	format := func(cells [3]string) string {
		return fmt.Sprintf("  %-*s  %*s  %-*s", widths[0], cells[0], widths[1], cells[1], widths[2], cells[2])
	}
	_, _ = headerColor.Println(format(headers))
	fmt.Println(format([3]string{
		strings.Repeat("-", widths[0]),
		strings.Repeat("-", widths[1]),
		strings.Repeat("-", widths[2]),
	}))
	for _, row := range rows {
		fmt.Println(format(row))
	}
}

// PrintSkipped lists calendar entries an import could not use.
func PrintSkipped(skipped []ical.Skipped) {
	if len(skipped) == 0 {
		return
	}
	PrintWarning("Skipped " + countOf(len(skipped), "event", "events"))
	for _, sk := range skipped {
		_, _ = dimColor.Printf("  • %s: %s\n", sk.UID, sk.Reason)
	}
}

// countOf returns "1 event", "2 events" and so on.
func countOf(n int, singular, plural string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, singular)
	}
	return fmt.Sprintf("%d %s", n, plural)
}
