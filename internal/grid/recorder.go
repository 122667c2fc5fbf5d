package grid

import (
	"context"
	"time"
)

const (
	OpCount          = "count"
	OpReset          = "reset"
	OpFilter         = "filter"
	OpReadCell       = "read_cell"
	OpEdit           = "edit"
	OpOpenDropdown   = "open_dropdown"
	OpDelete         = "delete"
	OpViewCategory   = "view_category"
	OpEditCategory   = "edit_category"
	OpDeleteCategory = "delete_category"
)

// Action is the outcome of one grid operation.
type Action struct {
	Operation string
	Table     string
	Row       int
	Column    string
	// Detail carries the operation result or argument worth keeping, such as a count or banner text.
	Detail   string
	Err      error
	Duration time.Duration
}

// Recorder receives every finished grid action. A failing recorder never fails the action.
type Recorder interface {
	RecordAction(ctx context.Context, a Action) error
}

type RecorderFunc func(ctx context.Context, a Action) error

func (f RecorderFunc) RecordAction(ctx context.Context, a Action) error {
	return f(ctx, a)
}
