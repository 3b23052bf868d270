package scheduler

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// Scheduler runs the daily generation batch and the fixed-hour notification
// pushes on a single cron runner. The runner lives in the same fixed
// timezone as slot resolution; notify hours are plain configuration and are
// not derived from slot boundaries.
type Scheduler struct {
	cron         *cron.Cron
	ctx          context.Context
	cancel       context.CancelFunc
	generateFunc func(ctx context.Context) error
	notifyFunc   func(ctx context.Context) error
}

func New(loc *time.Location) *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())

	return &Scheduler{
		cron:   cron.New(cron.WithLocation(loc)),
		ctx:    ctx,
		cancel: cancel,
	}
}

// SetGenerateFunction sets the daily batch callback.
func (s *Scheduler) SetGenerateFunction(f func(ctx context.Context) error) {
	s.generateFunc = f
}

// SetNotifyFunction sets the notification push callback.
func (s *Scheduler) SetNotifyFunction(f func(ctx context.Context) error) {
	s.notifyFunc = f
}

// Start registers one generation trigger at generationHour and a notify
// trigger at each of notifyHours (at most three), then starts the runner.
// Each trigger fires on its own goroutine, so a slow generation batch delays
// only its own completion.
func (s *Scheduler) Start(generationHour int, notifyHours []int) error {
	if s.generateFunc == nil || s.notifyFunc == nil {
		return fmt.Errorf("scheduler callbacks are not set")
	}
	if generationHour < 0 || generationHour > 23 {
		return fmt.Errorf("generation hour out of range: %d", generationHour)
	}
	if len(notifyHours) > 3 {
		return fmt.Errorf("at most 3 notify hours are supported, got %d", len(notifyHours))
	}

	_, err := s.cron.AddFunc(fmt.Sprintf("0 %d * * *", generationHour), func() {
		log.Printf("🕘 Triggered daily topic generation at %02d:00", generationHour)
		if err := s.generateFunc(s.ctx); err != nil {
			log.Printf("❌ Daily topic generation failed: %v", err)
		}
	})
	if err != nil {
		return fmt.Errorf("failed to schedule generation: %w", err)
	}

	for _, h := range notifyHours {
		if h < 0 || h > 23 {
			return fmt.Errorf("notify hour out of range: %d", h)
		}
		hour := h
		_, err := s.cron.AddFunc(fmt.Sprintf("0 %d * * *", hour), func() {
			log.Printf("🔔 Triggered notification push at %02d:00", hour)
			if err := s.notifyFunc(s.ctx); err != nil {
				log.Printf("❌ Notification push failed: %v", err)
			}
		})
		if err != nil {
			return fmt.Errorf("failed to schedule notification at %d: %w", hour, err)
		}
	}

	s.cron.Start()
	log.Printf("📅 Scheduler started - generation at %02d:00, notifications at %v", generationHour, notifyHours)
	return nil
}

// Stop halts the runner and waits for in-flight jobs to finish.
func (s *Scheduler) Stop() {
	if s.cron != nil {
		ctx := s.cron.Stop()
		<-ctx.Done()
	}
	if s.cancel != nil {
		s.cancel()
	}
	log.Println("📅 Scheduler stopped")
}

// IsRunning reports whether any triggers are registered.
func (s *Scheduler) IsRunning() bool {
	return s.cron != nil && len(s.cron.Entries()) > 0
}
