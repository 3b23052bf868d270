package notify

import (
	"context"
	"fmt"
	"log"

	"date-topics/internal/topics"
)

// CurrentSource yields the stored record for the slot "now" belongs to.
type CurrentSource interface {
	ReadCurrent(ctx context.Context) (topics.Record, bool, error)
}

// Notifier runs the read-format-dispatch path. Absence of a record is not an
// error: the fixed fallback text is dispatched instead. The webhook result is
// what the caller sees; side channels are best-effort and only logged.
type Notifier struct {
	source  CurrentSource
	webhook Dispatcher
	side    []Dispatcher
}

func NewNotifier(source CurrentSource, webhook Dispatcher, side ...Dispatcher) *Notifier {
	return &Notifier{source: source, webhook: webhook, side: side}
}

func (n *Notifier) Notify(ctx context.Context) error {
	rec, ok, err := n.source.ReadCurrent(ctx)
	if err != nil {
		return fmt.Errorf("reading current slot: %w", err)
	}
	if !ok {
		log.Printf("no record for current slot, dispatching fallback text")
	}
	msg := FormatMessage(rec.Topics)

	for _, d := range n.side {
		if err := d.Dispatch(ctx, msg); err != nil {
			log.Printf("side channel dispatch failed: %v", err)
		}
	}
	return n.webhook.Dispatch(ctx, msg)
}
