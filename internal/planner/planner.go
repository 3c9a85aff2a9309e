package planner

import (
	"fmt"
	"slices"

	"github.com/danieljhkim/planner/internal/ident"
)

// Event is one dated entry in a planner.
type Event struct {
	// Name is a free-form label; empty names are allowed
	Name string `json:"name"`

	// Date is the calendar day the event falls on
	Date Date `json:"date"`

	// ID is unique within the planner and never reused
	ID ident.ID `json:"id"`
}

// Planner is an ordered collection of events plus the generator that
// numbers them.
type Planner struct {
	events []Event
	ids    *ident.Generator
}

// New returns an empty planner.
func New() *Planner {
	return &Planner{
		events: []Event{},
		ids:    ident.New(),
	}
}

// AddEvent parses date as YYYY-M-D and appends a new event with a fresh id.
// The returned event is a copy. On a parse failure nothing changes and the
// error wraps ErrDateParse.
func (p *Planner) AddEvent(name, date string) (Event, error) {
	d, err := ParseDate(date)
	if err != nil {
		return Event{}, err
	}

	e := Event{Name: name, Date: d, ID: p.ids.Next()}
	p.events = append(p.events, e)
	return e, nil
}

// RemoveEventByID removes the first event whose id matches. It reports
// ErrEventListEmpty on an empty planner before searching, and
// ErrEventNotFound when no event matches.
func (p *Planner) RemoveEventByID(id ident.ID) error {
	if p.CountEvents() == 0 {
		return ErrEventListEmpty
	}

	idx := slices.IndexFunc(p.events, func(e Event) bool { return e.ID == id })
	if idx < 0 {
		return fmt.Errorf("%w: id %d", ErrEventNotFound, id)
	}

	p.events = slices.Delete(p.events, idx, idx+1)
	return nil
}

// CountEvents returns the number of events held.
func (p *Planner) CountEvents() int {
	return len(p.events)
}

// Event returns the event with the given id.
func (p *Planner) Event(id ident.ID) (Event, bool) {
	idx := slices.IndexFunc(p.events, func(e Event) bool { return e.ID == id })
	if idx < 0 {
		return Event{}, false
	}
	return p.events[idx], true
}

// Events returns a copy of the events in their current order.
func (p *Planner) Events() []Event {
	return slices.Clone(p.events)
}

// LastID returns the last id the planner issued, or 0 if it never issued one.
func (p *Planner) LastID() ident.ID {
	return p.ids.Current()
}

// SortByDate orders events by date. Events on the same date keep their
// relative order.
func (p *Planner) SortByDate() {
	slices.SortStableFunc(p.events, func(a, b Event) int {
		return a.Date.Compare(b.Date)
	})
}

// Validate checks the invariants a planner file is expected to hold: ids
// are non-zero and pairwise distinct, and the generator has issued at least
// the largest id present.
func (p *Planner) Validate() error {
	seen := make(map[ident.ID]struct{}, len(p.events))
	var maxID ident.ID
	for _, e := range p.events {
		if e.ID == 0 {
			return fmt.Errorf("event %q has id 0", e.Name)
		}
		if _, dup := seen[e.ID]; dup {
			return fmt.Errorf("duplicate event id %d", e.ID)
		}
		seen[e.ID] = struct{}{}
		maxID = max(maxID, e.ID)
	}

	if current := p.ids.Current(); current < maxID {
		return fmt.Errorf("id generator at %d is behind event id %d", current, maxID)
	}
	return nil
}

// Equal reports whether p and other hold the same events in the same order
// and the same generator state.
func (p *Planner) Equal(other *Planner) bool {
	return slices.Equal(p.events, other.events) && p.ids.Current() == other.ids.Current()
}
