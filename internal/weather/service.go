package weather

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"
)

// Service runs the interactive flow: fetch, derive suggestions, persist the snapshot.
type Service struct {
	fetcher  Fetcher
	store    SnapshotStore
	notifier Notifier
	tracker  *LocationTracker

	reminderDelay time.Duration
	now           func() time.Time

	mu     sync.RWMutex
	latest *Report
}

// Option customizes a Service.
type Option func(*Service)

// WithClock replaces the wall clock used for LastUpdated.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithReminderDelay sets how long after scheduling a reminder fires.
func WithReminderDelay(d time.Duration) Option {
	return func(s *Service) { s.reminderDelay = d }
}

// NewService creates a new Service.
func NewService(fetcher Fetcher, store SnapshotStore, notifier Notifier, tracker *LocationTracker, opts ...Option) *Service {
	s := &Service{
		fetcher:       fetcher,
		store:         store,
		notifier:      notifier,
		tracker:       tracker,
		reminderDelay: 2 * time.Second,
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.tracker == nil {
		s.tracker = NewLocationTracker()
	}
	return s
}

// Tracker exposes the location tracker fed by the geolocation collaborator.
func (s *Service) Tracker() *LocationTracker {
	return s.tracker
}

// Refresh fetches weather for coords, derives suggestions and saves them.
// Nothing is stored unless every step succeeds.
func (s *Service) Refresh(ctx context.Context, coords Coordinates) (Report, error) {
	start := s.now()
	info, err := s.fetcher.FetchWeather(ctx, coords)
	if err != nil {
		log.Printf("ERROR: %s fetch failed for %.4f,%.4f: %v", s.fetcher.Name(), coords.Lat, coords.Lon, err)
		return Report{}, err
	}
	if err := ctx.Err(); err != nil {
		return Report{}, fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}

	now := s.now()
	report := Report{
		Coordinates: coords,
		Weather:     info,
		Suggestions: DeriveSuggestions(info, now),
		FetchedAt:   now,
	}

	s.store.Save(ctx, report.Suggestions)

	s.mu.Lock()
	s.latest = &report
	s.mu.Unlock()

	log.Printf("INFO: refreshed suggestions for %.4f,%.4f (hourly=%d, items=%v) in %s",
		coords.Lat, coords.Lon, len(info.HourlyForecast), report.Suggestions.Items(), now.Sub(start))
	return report, nil
}

// RefreshCurrent waits for the tracker's coordinates and refreshes for them.
func (s *Service) RefreshCurrent(ctx context.Context) (Report, error) {
	coords, err := s.tracker.Await(ctx)
	if err != nil {
		return Report{}, err
	}
	return s.Refresh(ctx, coords)
}

// Latest returns the last successful report.
func (s *Service) Latest() (Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.latest == nil {
		return Report{}, ErrNoReport
	}
	return *s.latest, nil
}

// Snapshot returns the stored advisory, or the neutral default when none is stored.
func (s *Service) Snapshot(ctx context.Context) (DailySuggestions, bool) {
	if stored, ok := s.store.Load(ctx); ok {
		return stored, true
	}
	return DefaultSuggestions(s.now()), false
}

// Remind schedules a reminder built from the latest report's weather.
func (s *Service) Remind(ctx context.Context) (Reminder, error) {
	report, err := s.Latest()
	if err != nil {
		return Reminder{}, err
	}
	if s.notifier == nil {
		return Reminder{}, fmt.Errorf("no notifier configured")
	}

	r := NewReminder(report.Weather, s.reminderDelay)
	if err := s.notifier.Schedule(ctx, r); err != nil {
		return Reminder{}, fmt.Errorf("schedule reminder: %w", err)
	}
	return r, nil
}
