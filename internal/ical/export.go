// Package ical converts planners to and from iCalendar.
//
// Every planner event becomes an all-day VEVENT. UIDs are derived from the
// planner name and event id, so exporting the same planner twice yields the
// same UIDs and calendar clients update events instead of duplicating them.
package ical

import (
	"fmt"
	"io"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"

	"github.com/danieljhkim/planner/internal/planner"
)

const productID = "-//planner//planner//EN"

// EventUID returns the stable UID of an event in the named planner.
func EventUID(plannerName string, e planner.Event) string {
	id := uuid.NewSHA1(uuid.NameSpaceURL, []byte(fmt.Sprintf("planner:%s/%d", plannerName, e.ID)))
	return id.String()
}

// Build converts events into a calendar. stamp is written as DTSTAMP.
func Build(plannerName string, events []planner.Event, stamp time.Time) *ics.Calendar {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(productID)
	cal.SetXWRCalName(plannerName)

	for _, e := range events {
		ve := cal.AddEvent(EventUID(plannerName, e))
		ve.SetDtStampTime(stamp.UTC())
		ve.SetSummary(e.Name)
		ve.SetAllDayStartAt(e.Date.Time())
		// DTEND is exclusive for all-day events
		ve.SetAllDayEndAt(e.Date.Time().AddDate(0, 0, 1))
	}
	return cal
}

// Export writes events as an iCalendar document to w.
func Export(w io.Writer, plannerName string, events []planner.Event, stamp time.Time) error {
	if err := Build(plannerName, events, stamp).SerializeTo(w); err != nil {
		return fmt.Errorf("failed to write calendar: %w", err)
	}
	return nil
}
