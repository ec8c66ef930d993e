package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"

	"github.com/i474232898/weather-suggestions/internal/weather"
)

const (
	defaultOpenMeteoURL = "https://api.open-meteo.com/v1/forecast"
	userAgent           = "weather-suggestions/1.0 (Weather)"

	// Hours of hourly forecast requested for the suggestion window.
	hourlyWindowHours = 12
)

var (
	currentFields = []string{"temperature_2m", "relative_humidity_2m", "precipitation", "weather_code", "wind_speed_10m", "wind_gusts_10m"}
	hourlyFields  = []string{"temperature_2m", "precipitation", "weather_code", "wind_speed_10m"}
	dailyFields   = []string{"temperature_2m_max", "temperature_2m_min", "precipitation_probability_max"}
)

// OpenMeteoProvider implements weather.Fetcher for Open-Meteo (no API key needed).
type OpenMeteoProvider struct {
	name    string
	baseURL string
	httpCfg HTTPClientConfig
	circuit *gobreaker.CircuitBreaker
}

// NewOpenMeteoProvider creates a provider. An empty baseURL uses the public endpoint;
// a nil limiter disables pacing.
func NewOpenMeteoProvider(client *http.Client, baseURL string, limiter *rate.Limiter) *OpenMeteoProvider {
	if baseURL == "" {
		baseURL = defaultOpenMeteoURL
	}

	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:         "openmeteo",
		MaxRequests:  5,
		Interval:     1 * time.Minute,
		Timeout:      2 * time.Minute,
		IsSuccessful: breakerSuccess,
	})

	return &OpenMeteoProvider{
		name:    "openmeteo",
		baseURL: baseURL,
		httpCfg: HTTPClientConfig{
			Client:    client,
			Limiter:   limiter,
			UserAgent: userAgent,
		},
		circuit: cb,
	}
}

func (p *OpenMeteoProvider) Name() string {
	return p.name
}

// FetchWeather requests current conditions, the next 12 hours and today's
// daily summary, and normalizes the response.
func (p *OpenMeteoProvider) FetchWeather(ctx context.Context, coords weather.Coordinates) (weather.WeatherInfo, error) {
	buildRequest := func(ctx context.Context) (*http.Request, error) {
		u := fmt.Sprintf("%s?%s", p.baseURL, forecastQuery(coords).Encode())
		return http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	}

	resp, err := doRequest(ctx, p.httpCfg, p.circuit, buildRequest)
	if err != nil {
		return weather.WeatherInfo{}, err
	}
	defer resp.Body.Close()

	var payload weather.RawForecastResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return weather.WeatherInfo{}, fmt.Errorf("%w: decode openmeteo response: %w", weather.ErrFetchFailed, err)
	}

	return weather.Normalize(payload), nil
}

func forecastQuery(coords weather.Coordinates) url.Values {
	values := url.Values{}
	values.Set("latitude", strconv.FormatFloat(coords.Lat, 'f', -1, 64))
	values.Set("longitude", strconv.FormatFloat(coords.Lon, 'f', -1, 64))
	values.Set("current", strings.Join(currentFields, ","))
	values.Set("hourly", strings.Join(hourlyFields, ","))
	values.Set("forecast_hours", strconv.Itoa(hourlyWindowHours))
	values.Set("daily", strings.Join(dailyFields, ","))
	values.Set("forecast_days", "1")
	values.Set("timezone", "auto")
	return values
}
