package httpapi

import (
	"time"

	"github.com/i474232898/weather-suggestions/internal/weather"
)

type weatherView struct {
	weather.WeatherInfo
	Condition   weather.Condition `json:"condition"`
	Description string            `json:"description"`

	IsRainy        bool `json:"isRainy"`
	IsSnowy        bool `json:"isSnowy"`
	IsStormy       bool `json:"isStormy"`
	IsWindy        bool `json:"isWindy"`
	NeedsUmbrella  bool `json:"needsUmbrella"`
	NeedsJacket    bool `json:"needsJacket"`
	NeedsSunscreen bool `json:"needsSunscreen"`
}

func newWeatherView(w weather.WeatherInfo) weatherView {
	return weatherView{
		WeatherInfo:    w,
		Condition:      weather.ClassifyCode(w.WeatherCode),
		Description:    weather.Describe(w.WeatherCode),
		IsRainy:        w.IsRainy(),
		IsSnowy:        w.IsSnowy(),
		IsStormy:       w.IsStormy(),
		IsWindy:        w.IsWindy(),
		NeedsUmbrella:  w.NeedsUmbrella(),
		NeedsJacket:    w.NeedsJacket(),
		NeedsSunscreen: w.NeedsSunscreen(),
	}
}

type suggestionsView struct {
	NeedsUmbrella      bool      `json:"needsUmbrella"`
	NeedsJacket        bool      `json:"needsJacket"`
	NeedsSunscreen     bool      `json:"needsSunscreen"`
	NeedsWindbreaker   bool      `json:"needsWindbreaker"`
	NeedsWarmCoat      bool      `json:"needsWarmCoat"`
	MinTemp            float64   `json:"minTemp"`
	MaxTemp            float64   `json:"maxTemp"`
	TotalPrecipitation float64   `json:"totalPrecipitation"`
	LastUpdated        time.Time `json:"lastUpdated"`
	Items              []string  `json:"items"`
	Stored             bool      `json:"stored"`
}

func newSuggestionsView(s weather.DailySuggestions, stored bool) suggestionsView {
	return suggestionsView{
		NeedsUmbrella:      s.NeedsUmbrella,
		NeedsJacket:        s.NeedsJacket,
		NeedsSunscreen:     s.NeedsSunscreen,
		NeedsWindbreaker:   s.NeedsWindbreaker,
		NeedsWarmCoat:      s.NeedsWarmCoat,
		MinTemp:            s.MinTemp,
		MaxTemp:            s.MaxTemp,
		TotalPrecipitation: s.TotalPrecipitation,
		LastUpdated:        s.LastUpdated,
		Items:              s.Items(),
		Stored:             stored,
	}
}
