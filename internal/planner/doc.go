// Package planner implements the planner store.
//
// A Planner is a named, file-backed collection of dated events together with
// the identifier generator that numbers them. The package owns loading and
// saving a planner file, the add/remove/count mutations, and the read-only
// views the CLI renders: the past-due/upcoming partition and month-grouped
// calendar grids.
//
// Key responsibilities:
//   - Parse YYYY-M-D dates and assign monotonic event ids
//   - Round-trip the planner through its JSON file format
//   - Partition events around "today" and lay them out on calendar grids
//
// The store never sorts on its own. Callers that want chronological order
// call SortByDate before saving or rendering.
package planner
