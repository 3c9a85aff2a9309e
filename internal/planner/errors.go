package planner

import "errors"

var (
	// ErrDateParse indicates a date string did not match YYYY-M-D.
	ErrDateParse = errors.New("failed to parse date")

	// ErrEventListEmpty indicates a removal was requested on an empty planner.
	ErrEventListEmpty = errors.New("planner has no events")

	// ErrEventNotFound indicates no event carries the requested id.
	ErrEventNotFound = errors.New("event not found")

	// ErrLoad indicates a planner file exists but could not be read or decoded.
	ErrLoad = errors.New("failed to load planner")

	// ErrSave indicates a planner file could not be written.
	ErrSave = errors.New("failed to save planner")
)
