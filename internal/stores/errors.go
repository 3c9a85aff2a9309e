package stores

import "errors"

// ErrPlannerNotFound indicates no planner file exists under the given name.
var ErrPlannerNotFound = errors.New("planner does not exist")
