package storage

import (
	"context"

	"date-topics/internal/timeslot"
	"date-topics/internal/topics"
)

// Repository abstracts persistence of topic records. Implementations can be
// SQLite, a hosted document store, etc., and must be safe for concurrent use.
// Absence is an expected outcome and is reported through the bool, never as
// an error.
type Repository interface {
	Write(ctx context.Context, date string, slot timeslot.Slot, list []topics.Topic) error
	Read(ctx context.Context, date string, slot timeslot.Slot) (topics.Record, bool, error)
}

// Key is the sole persistence lookup key for a record.
func Key(date string, slot timeslot.Slot) string {
	return date + "-" + string(slot)
}

// CurrentReader answers "what is stored for the slot we are in right now":
// it resolves (date, slot) through the fixed-zone clock and performs the
// same point read as any other lookup. It never scans across dates; there
// is no fallback to an earlier slot or day.
type CurrentReader struct {
	Repo  Repository
	Clock *timeslot.Clock
}

func (r CurrentReader) ReadCurrent(ctx context.Context) (topics.Record, bool, error) {
	date, slot := r.Clock.Current()
	return r.Repo.Read(ctx, date, slot)
}
