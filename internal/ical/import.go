package ical

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/danieljhkim/planner/internal/planner"
)

// Entry is a VEVENT reduced to what a planner event holds.
type Entry struct {
	Name string
	Date planner.Date
}

// Skipped describes a VEVENT that could not be imported.
type Skipped struct {
	UID    string
	Reason string
}

// Parse reads an iCalendar document and returns one entry per VEVENT with a
// usable DTSTART. Timed events keep the calendar date written in DTSTART.
func Parse(r io.Reader) ([]Entry, []Skipped, error) {
	cal, err := ics.ParseCalendar(r)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse calendar: %w", err)
	}

	var entries []Entry
	var skipped []Skipped
	for _, ve := range cal.Events() {
		entry, err := parseEvent(ve)
		if err != nil {
			skipped = append(skipped, Skipped{UID: ve.Id(), Reason: err.Error()})
			continue
		}
		entries = append(entries, entry)
	}
	return entries, skipped, nil
}

func parseEvent(ve *ics.VEvent) (Entry, error) {
	var entry Entry

	if p := ve.GetProperty(ics.ComponentPropertySummary); p != nil {
		entry.Name = p.Value
	}

	start := ve.GetProperty(ics.ComponentPropertyDtStart)
	if start == nil || start.Value == "" {
		return entry, errors.New("missing DTSTART")
	}

	value := strings.TrimSpace(start.Value)
	if len(value) < 8 {
		return entry, fmt.Errorf("malformed DTSTART %q", value)
	}
	t, err := time.Parse("20060102", value[:8])
	if err != nil {
		return entry, fmt.Errorf("malformed DTSTART %q", value)
	}
	entry.Date = planner.DateOf(t)

	return entry, nil
}

// Import adds every entry to p in document order and returns the events
// created.
func Import(p *planner.Planner, entries []Entry) ([]planner.Event, error) {
	added := make([]planner.Event, 0, len(entries))
	for _, entry := range entries {
		e, err := p.AddEvent(entry.Name, entry.Date.String())
		if err != nil {
			return added, err
		}
		added = append(added, e)
	}
	return added, nil
}
