// Package scheduler runs the platform's periodic housekeeping: releasing
// stale booking holds, expiring published adverts past their lifetime and
// purging expired refresh tokens.
package scheduler

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/conectone/platform/internal/config"
	"github.com/conectone/platform/internal/storage"
)

// Scheduler ticks at the configured interval and runs every housekeeping
// job each pass.
type Scheduler struct {
	storage *storage.Storage
	cfg     config.SchedulerConfig
	ticker  *time.Ticker
	stop    chan struct{}

	mu      sync.Mutex
	running bool
}

// New creates a scheduler. It does not start ticking until Start is called.
func New(store *storage.Storage, cfg config.SchedulerConfig) *Scheduler {
	return &Scheduler{
		storage: store,
		cfg:     cfg,
		stop:    make(chan struct{}),
	}
}

// Start begins the scheduler loop. The first pass runs immediately.
func (s *Scheduler) Start() {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		log.Println("Scheduler already running")
		return
	}

	interval := s.cfg.Interval
	if interval <= 0 {
		interval = time.Minute
	}

	s.running = true
	s.ticker = time.NewTicker(interval)
	s.mu.Unlock()

	log.Printf("Scheduler started - running housekeeping every %s", interval)

	go func() {
		s.runJobs()

		for {
			select {
			case <-s.ticker.C:
				s.runJobs()
			case <-s.stop:
				s.ticker.Stop()
				log.Println("Scheduler stopped")
				return
			}
		}
	}()
}

// Stop halts the scheduler. Safe to call when not running, and blocks until
// the loop has received the stop signal.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	s.mu.Unlock()

	s.stop <- struct{}{}
}

// runJobs executes one housekeeping pass. Job failures are logged and do
// not block the remaining jobs.
func (s *Scheduler) runJobs() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if n, err := s.storage.ExpireStaleBookings(ctx, s.cfg.BookingHoldWindow); err != nil {
		log.Printf("Error expiring stale bookings: %v", err)
	} else if n > 0 {
		log.Printf("Released %d stale booking hold(s)", n)
	}

	if n, err := s.storage.ExpireAdverts(ctx); err != nil {
		log.Printf("Error expiring adverts: %v", err)
	} else if n > 0 {
		log.Printf("Expired %d advert(s)", n)
	}

	if n, err := s.storage.DeleteExpiredRefreshTokens(ctx); err != nil {
		log.Printf("Error purging refresh tokens: %v", err)
	} else if n > 0 {
		log.Printf("Purged %d expired refresh token(s)", n)
	}
}
