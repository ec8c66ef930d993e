package weather

import (
	"context"
)

// Fetcher abstracts the upstream forecast API (e.g. Open-Meteo).
type Fetcher interface {
	Name() string
	FetchWeather(ctx context.Context, coords Coordinates) (WeatherInfo, error)
}

// SnapshotStore is the contract every shared snapshot backend satisfies.
// Save replaces the stored advisory atomically and never reports failure;
// Load returns false when nothing usable is stored.
type SnapshotStore interface {
	Save(ctx context.Context, s DailySuggestions)
	Load(ctx context.Context) (DailySuggestions, bool)
}

// Notifier delivers a reminder through the platform's notification service.
type Notifier interface {
	Schedule(ctx context.Context, r Reminder) error
}
