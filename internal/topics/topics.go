package topics

import "date-topics/internal/timeslot"

// Topic is a single conversation topic with its short explanation.
type Topic struct {
	Topic   string `json:"topic"`
	Details string `json:"details"`
}

// Record is the generation result for one (date, slot) pair. The pair is the
// natural key; persistence derives its lookup key from it and nothing else.
// Order of Topics is display order; duplicates are allowed and an empty list
// is a valid result.
type Record struct {
	Date   string        `json:"date"`
	Slot   timeslot.Slot `json:"slot"`
	Topics []Topic       `json:"topics"`
}
