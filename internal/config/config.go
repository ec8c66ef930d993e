package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/i474232898/weather-suggestions/internal/weather"
)

type AppConfig struct {
	Port string `validate:"required,numeric"`

	OpenMeteoURL string        `validate:"required,url"`
	HTTPTimeout  time.Duration `validate:"gt=0"`

	// Outbound pacing for the upstream API.
	UpstreamRPS   float64 `validate:"gt=0"`
	UpstreamBurst int     `validate:"gte=1"`

	// Shared snapshot storage.
	SnapshotStore      string `validate:"oneof=file memory postgres"`
	AppGroupID         string `validate:"required"`
	SharedContainerDir string `validate:"required_if=SnapshotStore file"`
	DatabaseURL        string `validate:"required_if=SnapshotStore postgres"`

	// FetchInterval controls how often the home location is refreshed (0 disables it).
	FetchInterval time.Duration `validate:"gte=0"`

	// Home location, either explicit coordinates or a city to geocode.
	Home           *weather.Coordinates
	HomeCity       string
	HomeCountry    string
	GeocoderAPIKey string

	ReminderDelay time.Duration `validate:"gte=0"`

	// Passive display: daily reload time and how often it checks for a newer snapshot (0 disables polling).
	WidgetRefreshAt    string        `validate:"required,datetime=15:04"`
	WidgetPollInterval time.Duration `validate:"gte=0"`
}

var validate = validator.New()

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}
	cfg := &AppConfig{}

	cfg.Port = getenvDefault("PORT", "8080")
	cfg.OpenMeteoURL = getenvDefault("OPEN_METEO_URL", "https://api.open-meteo.com/v1/forecast")

	var err error
	if cfg.HTTPTimeout, err = getenvDuration("HTTP_TIMEOUT", "15s"); err != nil {
		return nil, err
	}
	if cfg.UpstreamRPS, err = getenvFloat("UPSTREAM_RPS", 1); err != nil {
		return nil, err
	}
	if cfg.UpstreamBurst, err = getenvInt("UPSTREAM_BURST", 2); err != nil {
		return nil, err
	}

	cfg.SnapshotStore = getenvDefault("SNAPSHOT_STORE", "file")
	cfg.AppGroupID = getenvDefault("APP_GROUP_ID", "group.weather-suggestions")
	cfg.SharedContainerDir = os.Getenv("SHARED_CONTAINER_DIR")
	if cfg.SharedContainerDir == "" {
		cfg.SharedContainerDir = defaultContainerDir(cfg.AppGroupID)
	}
	cfg.DatabaseURL = os.Getenv("DATABASE_URL")

	if cfg.FetchInterval, err = getenvDuration("FETCH_INTERVAL", "30m"); err != nil {
		return nil, err
	}

	if cfg.Home, err = loadHomeCoordinates(); err != nil {
		return nil, err
	}
	cfg.HomeCity = os.Getenv("HOME_CITY")
	cfg.HomeCountry = os.Getenv("HOME_COUNTRY")
	cfg.GeocoderAPIKey = os.Getenv("GEOCODER_API_KEY")

	cfg.WidgetRefreshAt = getenvDefault("WIDGET_REFRESH_AT", "07:00")
	if cfg.WidgetPollInterval, err = getenvDuration("WIDGET_POLL_INTERVAL", "1m"); err != nil {
		return nil, err
	}
	if cfg.ReminderDelay, err = getenvDuration("REMINDER_DELAY", "2s"); err != nil {
		return nil, err
	}

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// loadHomeCoordinates returns nil when neither coordinate is set.
func loadHomeCoordinates() (*weather.Coordinates, error) {
	latStr := strings.TrimSpace(os.Getenv("HOME_LATITUDE"))
	lonStr := strings.TrimSpace(os.Getenv("HOME_LONGITUDE"))
	if latStr == "" && lonStr == "" {
		return nil, nil
	}
	if latStr == "" || lonStr == "" {
		return nil, fmt.Errorf("HOME_LATITUDE and HOME_LONGITUDE must be set together")
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid HOME_LATITUDE: %w", err)
	}
	lon, err := strconv.ParseFloat(lonStr, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid HOME_LONGITUDE: %w", err)
	}

	home := &weather.Coordinates{Lat: lat, Lon: lon}
	if err := validate.Struct(home); err != nil {
		return nil, fmt.Errorf("invalid home coordinates: %w", err)
	}
	return home, nil
}

func defaultContainerDir(groupID string) string {
	base, err := os.UserConfigDir()
	if err != nil {
		base = os.TempDir()
	}
	return filepath.Join(base, groupID)
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func getenvFloat(key string, def float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return f, nil
}

func getenvDuration(key, def string) (time.Duration, error) {
	d, err := time.ParseDuration(getenvDefault(key, def))
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
