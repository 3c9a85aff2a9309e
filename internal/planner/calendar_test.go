package planner

import (
	"testing"
	"time"
)

func TestMonthGrid(t *testing.T) {
	t.Run("june 2020 starts on monday", func(t *testing.T) {
		grid := MonthGrid(2020, time.June)

		want := [][7]int{
			{0, 1, 2, 3, 4, 5, 6},
			{7, 8, 9, 10, 11, 12, 13},
			{14, 15, 16, 17, 18, 19, 20},
			{21, 22, 23, 24, 25, 26, 27},
			{28, 29, 30, 0, 0, 0, 0},
		}
		if len(grid) != len(want) {
			t.Fatalf("got %d weeks, want %d", len(grid), len(want))
		}
		for i := range want {
			if grid[i] != want[i] {
				t.Errorf("week %d = %v, want %v", i, grid[i], want[i])
			}
		}
	})

	t.Run("february 2015 fills four weeks exactly", func(t *testing.T) {
		grid := MonthGrid(2015, time.February)
		if len(grid) != 4 {
			t.Fatalf("got %d weeks, want 4", len(grid))
		}
		if grid[0][0] != 1 || grid[3][6] != 28 {
			t.Errorf("unexpected grid: %v", grid)
		}
	})

	t.Run("leap february", func(t *testing.T) {
		grid := MonthGrid(2024, time.February)
		// 2024-02-01 is a Thursday.
		if grid[0][4] != 1 || grid[0][3] != 0 {
			t.Errorf("first week = %v", grid[0])
		}
		last := grid[len(grid)-1]
		if last[4] != 29 || last[5] != 0 {
			t.Errorf("last week = %v", last)
		}
	})

	t.Run("every day appears once in its weekday column", func(t *testing.T) {
		grid := MonthGrid(2026, time.October)
		seen := 0
		for _, week := range grid {
			for wd, day := range week {
				if day == 0 {
					continue
				}
				seen++
				got := time.Date(2026, time.October, day, 0, 0, 0, 0, time.UTC).Weekday()
				if int(got) != wd {
					t.Errorf("day %d in column %d, want %d", day, wd, got)
				}
			}
		}
		if seen != 31 {
			t.Errorf("saw %d days, want 31", seen)
		}
	})
}

func TestGroupByMonth(t *testing.T) {
	t.Run("same month yields one group", func(t *testing.T) {
		p := New()
		_, _ = p.AddEvent("dentist", "2020-6-3")
		_, _ = p.AddEvent("party", "2020-6-21")
		_, _ = p.AddEvent("call", "2020-6-21")

		groups := GroupByMonth(p.Events())
		if len(groups) != 1 {
			t.Fatalf("got %d groups, want 1", len(groups))
		}

		g := groups[0]
		if g.Label() != "June 2020" {
			t.Errorf("Label() = %q", g.Label())
		}
		if g.Grid()[0][0] != 0 || g.Grid()[0][1] != 1 {
			t.Errorf("grid misaligned: %v", g.Grid()[0])
		}

		rows := g.Rows()
		// 2020-06-21 is a Sunday in the fourth week.
		if rows[3][0].Day != 21 || rows[3][0].Text() != "party\ncall" {
			t.Errorf("cell for 21st = %+v", rows[3][0])
		}
		// 2020-06-03 is a Wednesday in the first week.
		if rows[0][3].Day != 3 || rows[0][3].Text() != "dentist" {
			t.Errorf("cell for 3rd = %+v", rows[0][3])
		}
		if rows[0][0].Day != 0 || rows[0][0].Text() != "" {
			t.Errorf("padding cell = %+v", rows[0][0])
		}
		if rows[1][0].Text() != "" {
			t.Errorf("day without events = %+v", rows[1][0])
		}
	})

	t.Run("sorted events group per month", func(t *testing.T) {
		p := plannerWith(t, "2320-02-01", "2000-12-01", "2320-01-01", "2320-01-15")
		p.SortByDate()

		groups := GroupByMonth(p.Events())
		labels := make([]string, len(groups))
		for i, g := range groups {
			labels[i] = g.Label()
		}
		want := []string{"December 2000", "January 2320", "February 2320"}
		if len(labels) != len(want) {
			t.Fatalf("labels = %v, want %v", labels, want)
		}
		for i := range want {
			if labels[i] != want[i] {
				t.Errorf("labels = %v, want %v", labels, want)
			}
		}
		if len(groups[1].Events) != 2 {
			t.Errorf("January group has %d events, want 2", len(groups[1].Events))
		}
	})

	t.Run("unsorted events fragment", func(t *testing.T) {
		p := plannerWith(t, "2020-01-01", "2020-02-01", "2020-01-02")

		if got := len(GroupByMonth(p.Events())); got != 3 {
			t.Errorf("got %d groups, want 3", got)
		}
	})

	t.Run("same month different year splits", func(t *testing.T) {
		p := plannerWith(t, "2020-01-01", "2021-01-01")

		if got := len(GroupByMonth(p.Events())); got != 2 {
			t.Errorf("got %d groups, want 2", got)
		}
	})

	t.Run("no events", func(t *testing.T) {
		if got := GroupByMonth(nil); len(got) != 0 {
			t.Errorf("got %d groups, want 0", len(got))
		}
	})
}
