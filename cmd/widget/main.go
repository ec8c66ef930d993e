package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/i474232898/weather-suggestions/internal/config"
	"github.com/i474232898/weather-suggestions/internal/scheduler"
	"github.com/i474232898/weather-suggestions/internal/store"
	"github.com/i474232898/weather-suggestions/internal/widget"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	snapshots, closeStore, err := store.Open(ctx, cfg.SnapshotStore, cfg.SharedContainerDir, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to open snapshot store: %v", err)
	}
	defer closeStore()

	display := widget.NewDisplay(snapshots, nil)
	reload := func(ctx context.Context) {
		if err := widget.Render(os.Stdout, display.Entry(ctx)); err != nil {
			log.Printf("ERROR: render widget: %v", err)
		}
		if next, err := widget.NextRefresh(time.Now(), cfg.WidgetRefreshAt); err == nil {
			log.Printf("INFO: next widget reload at %s", next.Format(time.RFC3339))
		}
	}

	reload(ctx)

	sched := scheduler.New(time.Local, 10*time.Second)
	if err := sched.DailyAt("widget reload", cfg.WidgetRefreshAt, reload); err != nil {
		log.Fatalf("failed to schedule widget reload: %v", err)
	}
	// Picks up saves made by the interactive process.
	err = sched.Every("widget poll", cfg.WidgetPollInterval, func(ctx context.Context) {
		e, changed := display.Changed(ctx)
		if !changed {
			return
		}
		log.Printf("INFO: snapshot updated at %s, reloading", e.Suggestions.LastUpdated.Format(time.RFC3339))
		if err := widget.Render(os.Stdout, e); err != nil {
			log.Printf("ERROR: render widget: %v", err)
		}
	})
	if err != nil {
		log.Fatalf("failed to schedule widget poll: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	// SIGHUP asks for an on-demand reload after the app saved a new snapshot.
	hup := make(chan os.Signal, 1)
	signal.Notify(hup, syscall.SIGHUP)
	defer signal.Stop(hup)

	for {
		select {
		case <-ctx.Done():
			return
		case <-hup:
			reload(ctx)
		}
	}
}
