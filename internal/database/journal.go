package database

import (
	"context"

	"boTester/internal/grid"
	"boTester/internal/sanitizer"
)

type ActionStore interface {
	CreateAction(a *ActionRecord) error
}

// Journal writes the grid actions of one run.
// Detail and error texts are sanitized before they are stored.
type Journal struct {
	store     ActionStore
	runID     uint
	sanitizer *sanitizer.DataSanitizer
}

func NewJournal(store ActionStore, runID uint) *Journal {
	return &Journal{
		store:     store,
		runID:     runID,
		sanitizer: sanitizer.New(),
	}
}

func (j *Journal) RecordAction(ctx context.Context, a grid.Action) error {
	return j.store.CreateAction(j.toRecord(a))
}

func (j *Journal) toRecord(a grid.Action) *ActionRecord {
	rec := &ActionRecord{
		RunID:      j.runID,
		Operation:  a.Operation,
		GridTable:  a.Table,
		RowNo:      a.Row,
		ColumnName: a.Column,
		Detail:     j.sanitizer.Sanitize(a.Detail),
		DurationMs: a.Duration.Milliseconds(),
	}
	if a.Err != nil {
		rec.Error = j.sanitizer.Sanitize(a.Err.Error())
	}
	return rec
}

var _ grid.Recorder = (*Journal)(nil)
