package weather

import (
	"log"
)

// RawForecastResponse is the Open-Meteo forecast payload. Every block is optional.
type RawForecastResponse struct {
	Latitude  float64     `json:"latitude"`
	Longitude float64     `json:"longitude"`
	Timezone  string      `json:"timezone"`
	Current   *RawCurrent `json:"current,omitempty"`
	Hourly    *RawHourly  `json:"hourly,omitempty"`
	Daily     *RawDaily   `json:"daily,omitempty"`
}

type RawCurrent struct {
	Time          string   `json:"time"`
	Temperature   *float64 `json:"temperature_2m"`
	Humidity      *int     `json:"relative_humidity_2m"`
	Precipitation *float64 `json:"precipitation"`
	WeatherCode   *int     `json:"weather_code"`
	WindSpeed     *float64 `json:"wind_speed_10m"`
	WindGusts     *float64 `json:"wind_gusts_10m"`
}

// RawHourly holds parallel arrays; index i of each describes the same hour.
type RawHourly struct {
	Time          []string  `json:"time"`
	Temperature   []float64 `json:"temperature_2m"`
	Precipitation []float64 `json:"precipitation"`
	WeatherCode   []int     `json:"weather_code"`
	WindSpeed     []float64 `json:"wind_speed_10m"`
}

// RawDaily holds parallel arrays whose values may be null.
type RawDaily struct {
	Time                        []string   `json:"time"`
	PrecipitationSum            []*float64 `json:"precipitation_sum,omitempty"`
	WeatherCodeMax              []*int     `json:"weather_code_max,omitempty"`
	TemperatureMax              []*float64 `json:"temperature_2m_max,omitempty"`
	TemperatureMin              []*float64 `json:"temperature_2m_min,omitempty"`
	PrecipitationProbabilityMax []*int     `json:"precipitation_probability_max,omitempty"`
}

// Normalize maps a raw provider response into a WeatherInfo.
// Missing current values default to zero; humidity and gusts stay absent.
// Hourly arrays of unequal length are truncated to the shortest one.
func Normalize(raw RawForecastResponse) WeatherInfo {
	var info WeatherInfo

	if cur := raw.Current; cur != nil {
		info.Temperature = valueOr(cur.Temperature, 0)
		info.Precipitation = valueOr(cur.Precipitation, 0)
		info.WeatherCode = valueOr(cur.WeatherCode, 0)
		info.WindSpeed = valueOr(cur.WindSpeed, 0)
		info.Humidity = cur.Humidity
		info.WindGusts = cur.WindGusts
	}

	if daily := raw.Daily; daily != nil && len(daily.Time) > 0 {
		info.TodayHigh = first(daily.TemperatureMax)
		info.TodayLow = first(daily.TemperatureMin)
		info.TodayRainChance = first(daily.PrecipitationProbabilityMax)
	}

	if hourly := raw.Hourly; hourly != nil && len(hourly.Time) > 0 {
		info.HourlyForecast = zipHourly(hourly)
	}

	return info
}

func zipHourly(h *RawHourly) []HourlyForecast {
	n := min(len(h.Time), len(h.Temperature), len(h.Precipitation), len(h.WeatherCode), len(h.WindSpeed))
	if n != len(h.Time) {
		log.Printf("WARN: hourly forecast arrays have unequal lengths; truncating %d hours to %d", len(h.Time), n)
	}
	if n == 0 {
		return nil
	}

	hours := make([]HourlyForecast, 0, n)
	for i := 0; i < n; i++ {
		hours = append(hours, HourlyForecast{
			Time:          h.Time[i],
			Temperature:   h.Temperature[i],
			Precipitation: h.Precipitation[i],
			WeatherCode:   h.WeatherCode[i],
			WindSpeed:     h.WindSpeed[i],
		})
	}
	return hours
}

func valueOr[T any](v *T, def T) T {
	if v == nil {
		return def
	}
	return *v
}

// first returns a copy of the first element when it exists and is non-null.
func first[T any](values []*T) *T {
	if len(values) == 0 || values[0] == nil {
		return nil
	}
	v := *values[0]
	return &v
}
