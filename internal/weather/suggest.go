package weather

import "time"

// DeriveSuggestions builds the advisory snapshot for the next hours.
// It scans the hourly forecast when one is present and otherwise falls back
// to the current-instant classifiers. ref becomes LastUpdated.
func DeriveSuggestions(w WeatherInfo, ref time.Time) DailySuggestions {
	if w.HasHourly() {
		return deriveHourly(w, ref)
	}
	return deriveCurrent(w, ref)
}

func deriveCurrent(w WeatherInfo, ref time.Time) DailySuggestions {
	return DailySuggestions{
		NeedsUmbrella:      w.NeedsUmbrella(),
		NeedsJacket:        w.NeedsJacket(),
		NeedsSunscreen:     w.NeedsSunscreen(),
		NeedsWindbreaker:   w.IsWindy(),
		NeedsWarmCoat:      w.IsSnowy(),
		MinTemp:            w.Temperature,
		MaxTemp:            w.Temperature,
		TotalPrecipitation: w.Precipitation,
		LastUpdated:        ref,
	}
}

func deriveHourly(w WeatherInfo, ref time.Time) DailySuggestions {
	hours := w.HourlyForecast
	if len(hours) == 0 {
		return deriveCurrent(w, ref)
	}

	var (
		minTemp   = hours[0].Temperature
		maxTemp   = hours[0].Temperature
		total     float64
		anyRain   bool
		anySnow   bool
		anyClear  bool
		anyStrong bool
	)

	for _, h := range hours {
		minTemp = min(minTemp, h.Temperature)
		maxTemp = max(maxTemp, h.Temperature)
		total += h.Precipitation

		switch ClassifyCode(h.WeatherCode) {
		case ConditionRain:
			anyRain = true
		case ConditionSnow:
			anySnow = true
		case ConditionClear:
			anyClear = true
		}
		if h.WindSpeed > windyAboveKmh {
			anyStrong = true
		}
	}

	return DailySuggestions{
		NeedsUmbrella:      anyRain || total > umbrellaTotalMM,
		NeedsJacket:        minTemp < jacketBelowC,
		NeedsSunscreen:     maxTemp > sunscreenAboveC && anyClear,
		NeedsWindbreaker:   anyStrong,
		NeedsWarmCoat:      anySnow,
		MinTemp:            minTemp,
		MaxTemp:            maxTemp,
		TotalPrecipitation: total,
		LastUpdated:        ref,
	}
}
