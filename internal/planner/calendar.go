package planner

import (
	"fmt"
	"strings"
	"time"
)

// CalendarDay is one cell of a calendar grid.
type CalendarDay struct {
	// Day is the day of the month, or 0 for a padding cell
	Day int

	// Names lists the events on that day in planner order
	Names []string
}

// Text joins the event names one per line.
func (d CalendarDay) Text() string {
	return strings.Join(d.Names, "\n")
}

// MonthGroup is a run of consecutive events that share a month and year,
// laid out on that month's calendar.
type MonthGroup struct {
	Year   int
	Month  time.Month
	Events []Event
}

// Label returns the month and year, e.g. "June 2020".
func (g MonthGroup) Label() string {
	return fmt.Sprintf("%s %d", g.Month, g.Year)
}

// Grid returns the month's week-by-weekday day numbers.
func (g MonthGroup) Grid() [][7]int {
	return MonthGrid(g.Year, g.Month)
}

// Rows returns the grid with each day's event names attached.
func (g MonthGroup) Rows() [][7]CalendarDay {
	byDay := make(map[int][]string)
	for _, e := range g.Events {
		byDay[e.Date.Day] = append(byDay[e.Date.Day], e.Name)
	}

	grid := g.Grid()
	rows := make([][7]CalendarDay, len(grid))
	for w, week := range grid {
		for wd, day := range week {
			rows[w][wd] = CalendarDay{Day: day, Names: byDay[day]}
		}
	}
	return rows
}

// GroupByMonth groups consecutive events by month and year. Grouping
// follows the current order, so unsorted input can produce several groups
// for the same month; sort by date first for one group per month.
func GroupByMonth(events []Event) []MonthGroup {
	var groups []MonthGroup
	for _, e := range events {
		n := len(groups)
		if n > 0 && groups[n-1].Year == e.Date.Year && groups[n-1].Month == e.Date.Month {
			groups[n-1].Events = append(groups[n-1].Events, e)
			continue
		}
		groups = append(groups, MonthGroup{
			Year:   e.Date.Year,
			Month:  e.Date.Month,
			Events: []Event{e},
		})
	}
	return groups
}

// MonthGrid lays out a month as weeks of seven days starting on Sunday.
// Cells before the first and after the last day of the month hold 0.
func MonthGrid(year int, month time.Month) [][7]int {
	first := Date{Year: year, Month: month, Day: 1}
	offset := int(first.Weekday())
	days := first.Time().AddDate(0, 1, -1).Day()

	weeks := (offset + days + 6) / 7
	grid := make([][7]int, weeks)
	for day := 1; day <= days; day++ {
		cell := offset + day - 1
		grid[cell/7][cell%7] = day
	}
	return grid
}
