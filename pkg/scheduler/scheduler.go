package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/bandfeed/pkg/pipeline"
)

//go:generate moq -out mocks/generator.go -pkg mocks -skip-ensure -fmt goimports . Generator

// Scheduler regenerates the feed periodically while the server is running
type Scheduler struct {
	generator Generator
	interval  time.Duration
	wg        sync.WaitGroup
	cancel    context.CancelFunc
}

// Generator interface for feed generation
type Generator interface {
	Generate(ctx context.Context) (pipeline.Result, error)
}

// NewScheduler creates a new scheduler instance
func NewScheduler(gen Generator, interval time.Duration) *Scheduler {
	if interval == 0 {
		interval = 6 * time.Hour
	}
	return &Scheduler{generator: gen, interval: interval}
}

// Start begins the scheduler, first generation runs immediately
func (s *Scheduler) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)

	s.wg.Add(1)
	go s.feedUpdateWorker(ctx)

	lgr.Printf("[INFO] scheduler started with update interval %v", s.interval)
}

// Stop gracefully stops the scheduler and waits for the running generation
func (s *Scheduler) Stop() {
	lgr.Printf("[INFO] stopping scheduler...")
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
	lgr.Printf("[INFO] scheduler stopped")
}

func (s *Scheduler) feedUpdateWorker(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.updateFeed(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.updateFeed(ctx)
		}
	}
}

// updateFeed runs one generation, errors are logged and the next tick retries
func (s *Scheduler) updateFeed(ctx context.Context) {
	res, err := s.generator.Generate(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		lgr.Printf("[ERROR] failed to generate feed: %v", err)
		return
	}
	lgr.Printf("[INFO] feed updated, %d releases from %d artists", res.Releases, res.Artists)
}
