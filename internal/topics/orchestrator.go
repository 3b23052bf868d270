package topics

import (
	"context"
	"errors"
	"fmt"
	"log"

	"date-topics/internal/timeslot"
)

// Writer is the persistence port the daily batch writes through.
type Writer interface {
	Write(ctx context.Context, date string, slot timeslot.Slot, topics []Topic) error
}

// Orchestrator runs the daily batch: one generated record per slot of today.
// Rerunning on the same date replaces all three records; overlapping runs
// race last-write-wins per key, which is accepted.
type Orchestrator struct {
	gen   *Generator
	store Writer
	clock *timeslot.Clock
}

func NewOrchestrator(gen *Generator, store Writer, clock *timeslot.Clock) *Orchestrator {
	return &Orchestrator{gen: gen, store: store, clock: clock}
}

// GenerateAll generates and writes today's record for each slot in order.
// Slots are independent: a failed slot is skipped and reported, the rest
// still run, and nothing touches a slot whose write already succeeded.
// There is no cross-slot transaction.
func (o *Orchestrator) GenerateAll(ctx context.Context) error {
	date, _ := o.clock.Current()
	var errs []error
	for _, slot := range timeslot.Generated {
		list, err := o.gen.Generate(ctx)
		if err != nil {
			errs = append(errs, fmt.Errorf("slot %s: %w", slot, err))
			continue
		}
		if err := o.store.Write(ctx, date, slot, list); err != nil {
			errs = append(errs, fmt.Errorf("slot %s: %w", slot, err))
			continue
		}
		log.Printf("📝 Stored %d topics for %s-%s", len(list), date, slot)
	}
	return errors.Join(errs...)
}
