package weather

import (
	"time"
)

// Condition represents a normalized high-level weather condition.
type Condition string

const (
	ConditionUnknown Condition = "unknown"
	ConditionClear   Condition = "clear"
	ConditionMist    Condition = "mist"
	ConditionRain    Condition = "rain"
	ConditionSnow    Condition = "snow"
	ConditionStorm   Condition = "storm"
)

// Coordinates identifies the place a forecast is requested for.
type Coordinates struct {
	Lat float64 `json:"lat" validate:"latitude"`
	Lon float64 `json:"lon" validate:"longitude"`
}

// HourlyForecast is a single hour of the short-range forecast.
type HourlyForecast struct {
	Time          string  `json:"time"` // ISO-8601 local time as reported upstream
	Temperature   float64 `json:"temperature"`
	Precipitation float64 `json:"precipitation"`
	WeatherCode   int     `json:"weatherCode"`
	WindSpeed     float64 `json:"windSpeed"`
}

// WeatherInfo is the normalized, UI-agnostic view of one forecast response.
// Pointer fields and a nil HourlyForecast mean the provider did not send the value.
type WeatherInfo struct {
	Temperature     float64          `json:"temperature"`   // °C
	Humidity        *int             `json:"humidity"`      // percent
	Precipitation   float64          `json:"precipitation"` // mm
	WeatherCode     int              `json:"weatherCode"`
	WindSpeed       float64          `json:"windSpeed"` // km/h
	WindGusts       *float64         `json:"windGusts"` // km/h
	TodayHigh       *float64         `json:"todayHigh"`
	TodayLow        *float64         `json:"todayLow"`
	TodayRainChance *int             `json:"todayRainChance"`
	HourlyForecast  []HourlyForecast `json:"hourlyForecast"`
}

func (w WeatherInfo) IsRainy() bool  { return ClassifyCode(w.WeatherCode) == ConditionRain }
func (w WeatherInfo) IsSnowy() bool  { return ClassifyCode(w.WeatherCode) == ConditionSnow }
func (w WeatherInfo) IsStormy() bool { return ClassifyCode(w.WeatherCode) == ConditionStorm }

func (w WeatherInfo) NeedsUmbrella() bool { return w.IsRainy() || w.Precipitation > 0 }
func (w WeatherInfo) NeedsJacket() bool   { return w.Temperature < jacketBelowC }

func (w WeatherInfo) NeedsSunscreen() bool {
	return w.Temperature > sunscreenAboveC && ClassifyCode(w.WeatherCode) == ConditionClear
}

// IsWindy prefers gusts over sustained wind when the provider reports them.
func (w WeatherInfo) IsWindy() bool {
	wind := w.WindSpeed
	if w.WindGusts != nil {
		wind = *w.WindGusts
	}
	return wind > windyAboveKmh
}

// HasHourly reports whether the hourly block was present and non-empty.
func (w WeatherInfo) HasHourly() bool {
	return len(w.HourlyForecast) > 0
}

// DailySuggestions is the advisory snapshot shared with the passive display.
type DailySuggestions struct {
	NeedsUmbrella      bool      `json:"needsUmbrella"`
	NeedsJacket        bool      `json:"needsJacket"`
	NeedsSunscreen     bool      `json:"needsSunscreen"`
	NeedsWindbreaker   bool      `json:"needsWindbreaker"`
	NeedsWarmCoat      bool      `json:"needsWarmCoat"`
	MinTemp            float64   `json:"minTemp"`
	MaxTemp            float64   `json:"maxTemp"`
	TotalPrecipitation float64   `json:"totalPrecipitation"`
	LastUpdated        time.Time `json:"lastUpdated"`
}

// Items lists the things to bring in a fixed order, or "Looking good" when nothing is needed.
func (s DailySuggestions) Items() []string {
	var items []string
	if s.NeedsUmbrella {
		items = append(items, "Umbrella")
	}
	if s.NeedsJacket {
		items = append(items, "Jacket")
	}
	if s.NeedsSunscreen {
		items = append(items, "Sunscreen")
	}
	if s.NeedsWindbreaker {
		items = append(items, "Windbreaker")
	}
	if s.NeedsWarmCoat {
		items = append(items, "Warm coat")
	}
	if len(items) == 0 {
		items = append(items, "Looking good")
	}
	return items
}

// DefaultSuggestions is the neutral advisory shown when no snapshot is stored.
func DefaultSuggestions(now time.Time) DailySuggestions {
	return DailySuggestions{LastUpdated: now}
}

// Report is the outcome of one successful refresh.
type Report struct {
	Coordinates Coordinates      `json:"coordinates"`
	Weather     WeatherInfo      `json:"weather"`
	Suggestions DailySuggestions `json:"suggestions"`
	FetchedAt   time.Time        `json:"fetchedAt"`
}
