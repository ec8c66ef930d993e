package scheduler

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/go-co-op/gocron"
)

// Job is the work a scheduled run performs.
type Job func(ctx context.Context)

// Scheduler runs jobs on fixed intervals or at a fixed local time each day.
type Scheduler struct {
	scheduler  *gocron.Scheduler
	jobTimeout time.Duration
}

// New creates a new Scheduler in the given time zone. Each run gets its own
// context bounded by jobTimeout.
func New(loc *time.Location, jobTimeout time.Duration) *Scheduler {
	s := gocron.NewScheduler(loc)
	s.SingletonModeAll()
	if jobTimeout <= 0 {
		jobTimeout = 30 * time.Second
	}
	return &Scheduler{
		scheduler:  s,
		jobTimeout: jobTimeout,
	}
}

// Every schedules job every interval, starting immediately.
func (s *Scheduler) Every(name string, interval time.Duration, job Job) error {
	if interval <= 0 {
		log.Printf("scheduler: %s disabled (interval %s)", name, interval)
		return nil
	}

	_, err := s.scheduler.Every(interval).StartImmediately().Do(s.wrap(name, job))
	if err != nil {
		return fmt.Errorf("schedule %s: %w", name, err)
	}
	return nil
}

// DailyAt schedules job once a day at a "15:04" local time.
func (s *Scheduler) DailyAt(name, at string, job Job) error {
	_, err := s.scheduler.Every(1).Day().At(at).Do(s.wrap(name, job))
	if err != nil {
		return fmt.Errorf("schedule %s at %s: %w", name, at, err)
	}
	return nil
}

func (s *Scheduler) wrap(name string, job Job) func() {
	return func() {
		log.Printf("scheduler: running %s", name)

		ctx, cancel := context.WithTimeout(context.Background(), s.jobTimeout)
		defer cancel()

		job(ctx)
		log.Printf("scheduler: completed %s", name)
	}
}

// Start starts the underlying scheduler without blocking.
func (s *Scheduler) Start() {
	s.scheduler.StartAsync()
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
