package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/time/rate"

	httpapi "github.com/i474232898/weather-suggestions/internal/api/http"
	"github.com/i474232898/weather-suggestions/internal/config"
	"github.com/i474232898/weather-suggestions/internal/notify"
	"github.com/i474232898/weather-suggestions/internal/scheduler"
	"github.com/i474232898/weather-suggestions/internal/store"
	"github.com/i474232898/weather-suggestions/internal/weather"
	"github.com/i474232898/weather-suggestions/internal/weather/providers"
)

func main() {
	// Load configuration.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Shared snapshot store read by the widget process.
	snapshots, closeStore, err := store.Open(ctx, cfg.SnapshotStore, cfg.SharedContainerDir, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to open snapshot store: %v", err)
	}
	defer closeStore()
	log.Printf("INFO: snapshot store %s (container %s)", cfg.SnapshotStore, cfg.SharedContainerDir)

	// Outbound client for Open-Meteo; callers retry manually, so no backoff here.
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}
	limiter := rate.NewLimiter(rate.Limit(cfg.UpstreamRPS), cfg.UpstreamBurst)
	provider := providers.NewOpenMeteoProvider(httpClient, cfg.OpenMeteoURL, limiter)

	notifier := notify.NewLogNotifier(nil)
	defer notifier.Stop()

	tracker := weather.NewLocationTracker()
	service := weather.NewService(provider, snapshots, notifier, tracker,
		weather.WithReminderDelay(cfg.ReminderDelay),
	)

	seedHomeLocation(cfg, tracker)

	// Periodic refresh for the known location keeps the widget snapshot fresh.
	sched := scheduler.New(time.Local, cfg.HTTPTimeout+10*time.Second)
	err = sched.Every("home refresh", cfg.FetchInterval, func(ctx context.Context) {
		coords, err := tracker.Current()
		if err != nil {
			log.Printf("INFO: home refresh skipped: %s", weather.UserMessage(err))
			return
		}
		if _, err := service.Refresh(ctx, coords); err != nil {
			log.Printf("ERROR: home refresh failed: %s", weather.UserMessage(err))
		}
	})
	if err != nil {
		log.Fatalf("failed to schedule refresh: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	app := httpapi.NewApp(service)

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Printf("fiber server stopped: %v", err)
		}
	}()
	log.Printf("INFO: listening on :%s", cfg.Port)

	// Wait for termination signal
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("error during shutdown: %v", err)
	}
}

// seedHomeLocation feeds configured or geocoded home coordinates into the tracker.
func seedHomeLocation(cfg *config.AppConfig, tracker *weather.LocationTracker) {
	if cfg.Home != nil {
		tracker.UpdateCoordinates(*cfg.Home)
		return
	}
	if cfg.HomeCity == "" {
		return
	}

	coords, err := providers.ResolveHome(cfg.GeocoderAPIKey, cfg.HomeCity, cfg.HomeCountry)
	if err != nil {
		log.Printf("WARN: home location not resolved: %v", err)
		return
	}
	log.Printf("INFO: home %s resolved to %.4f,%.4f", cfg.HomeCity, coords.Lat, coords.Lon)
	tracker.UpdateCoordinates(coords)
}
