package timeslot

import (
	"fmt"
	"time"
)

// Slot names a coarse portion of the day.
type Slot string

const (
	Morning   Slot = "morning"
	Midday    Slot = "midday"
	Afternoon Slot = "afternoon"
	// Night is never produced by resolution or by the daily batch;
	// a lookup for it yields "not found" rather than an error.
	Night Slot = "night"
)

// Generated lists the slots the daily batch produces, in display order.
var Generated = []Slot{Morning, Midday, Afternoon}

// DateLayout is the calendar date format used in persistence keys.
const DateLayout = "2006-01-02"

// Clock resolves instants to a calendar date and slot in a single fixed
// timezone, so the scheduler, the batch and on-demand lookups always agree
// on what slot "now" belongs to regardless of where the process runs.
type Clock struct {
	loc *time.Location
	// Now is the time source, time.Now by default. Tests substitute it.
	Now func() time.Time
}

func NewClock(zone string) (*Clock, error) {
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %q: %w", zone, err)
	}
	return &Clock{loc: loc, Now: time.Now}, nil
}

// Resolve returns the calendar date and slot of t in the fixed zone.
// Slot boundaries on the local hour: [5,12) morning, [12,17) midday,
// everything else afternoon. "afternoon" deliberately covers evening and
// night hours as well; the label is part of the data contract.
func (c *Clock) Resolve(t time.Time) (string, Slot) {
	local := t.In(c.loc)
	return local.Format(DateLayout), slotForHour(local.Hour())
}

// Current resolves the present moment.
func (c *Clock) Current() (string, Slot) {
	return c.Resolve(c.Now())
}

func (c *Clock) Location() *time.Location { return c.loc }

func slotForHour(h int) Slot {
	switch {
	case h >= 5 && h < 12:
		return Morning
	case h >= 12 && h < 17:
		return Midday
	default:
		return Afternoon
	}
}

// Parse maps a slot label to its Slot value. Unknown labels are rejected so
// transport code can turn them into a clean "not found".
func Parse(s string) (Slot, bool) {
	switch Slot(s) {
	case Morning, Midday, Afternoon, Night:
		return Slot(s), true
	}
	return "", false
}
