// Package ident issues identifiers for planner events.
//
// A Generator is owned by exactly one planner. Identifiers start at 1 and
// increase by one per call; they are never reissued, even after the event
// holding one is removed.
package ident

// ID identifies an event within a single planner.
type ID = uint64

// Generator is a monotonic counter.
type Generator struct {
	current ID
}

// New returns a generator that has issued nothing yet.
func New() *Generator {
	return &Generator{}
}

// Resume rebuilds a generator whose last issued value was current.
func Resume(current ID) *Generator {
	return &Generator{current: current}
}

// Next issues the next identifier.
func (g *Generator) Next() ID {
	g.current++
	return g.current
}

// Current returns the last issued identifier, or 0 if none was issued.
func (g *Generator) Current() ID {
	return g.current
}
