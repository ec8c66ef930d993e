package weather

import (
	"reflect"
	"testing"
	"time"
)

var refTime = time.Date(2026, 10, 19, 7, 0, 0, 0, time.UTC)

func hoursFrom(temps []float64, code int, wind, precip float64) []HourlyForecast {
	hours := make([]HourlyForecast, 0, len(temps))
	for i, temp := range temps {
		hours = append(hours, HourlyForecast{
			Time:          refTime.Add(time.Duration(i) * time.Hour).Format("2006-01-02T15:04"),
			Temperature:   temp,
			Precipitation: precip,
			WeatherCode:   code,
			WindSpeed:     wind,
		})
	}
	return hours
}

func TestCurrentClassifiers_LightRain(t *testing.T) {
	w := WeatherInfo{WeatherCode: 61, Precipitation: 1.2, Temperature: 10, WindSpeed: 20}

	if !w.NeedsUmbrella() {
		t.Error("expected umbrella for light rain")
	}
	if !w.NeedsJacket() {
		t.Error("expected jacket at 10°C")
	}
	if w.NeedsSunscreen() {
		t.Error("did not expect sunscreen")
	}
	if w.IsWindy() {
		t.Error("did not expect windy at 20 km/h")
	}
}

func TestCurrentClassifiers_GustsOverrideWindSpeed(t *testing.T) {
	w := WeatherInfo{WindSpeed: 10, WindGusts: ptr(40.0)}
	if !w.IsWindy() {
		t.Fatal("expected gusts above 35 km/h to count as windy")
	}

	w = WeatherInfo{WindSpeed: 50, WindGusts: ptr(30.0)}
	if w.IsWindy() {
		t.Fatal("expected gusts to take precedence over sustained wind")
	}
}

func TestDeriveSuggestions_HourlyWarmClearDay(t *testing.T) {
	w := WeatherInfo{
		Temperature:    12,
		WeatherCode:    1,
		HourlyForecast: hoursFrom([]float64{12, 14, 16, 18, 20, 22, 24, 26, 28, 25, 20, 15}, 1, 10, 0),
	}

	got := DeriveSuggestions(w, refTime)

	if got.MinTemp != 12 || got.MaxTemp != 28 {
		t.Errorf("expected min 12 max 28, got %v %v", got.MinTemp, got.MaxTemp)
	}
	if !got.NeedsJacket {
		t.Error("expected jacket (min < 15)")
	}
	if !got.NeedsSunscreen {
		t.Error("expected sunscreen (max > 26 and clear hours)")
	}
	if got.NeedsUmbrella || got.NeedsWindbreaker || got.NeedsWarmCoat {
		t.Errorf("unexpected flags: %+v", got)
	}
	if !got.LastUpdated.Equal(refTime) {
		t.Errorf("expected LastUpdated %v, got %v", refTime, got.LastUpdated)
	}
}

func TestDeriveSuggestions_HourlyUmbrellaFromTotalPrecipitation(t *testing.T) {
	// 12 dry-coded hours with 0.05 mm each sum to 0.6 mm.
	w := WeatherInfo{HourlyForecast: hoursFrom(make12(18), 3, 5, 0.05)}

	got := DeriveSuggestions(w, refTime)
	if !got.NeedsUmbrella {
		t.Fatalf("expected umbrella for %.2f mm total", got.TotalPrecipitation)
	}
	if got.NeedsSunscreen {
		t.Error("did not expect sunscreen at 18°C")
	}
}

func TestDeriveSuggestions_HourlyRainSnowWind(t *testing.T) {
	hours := hoursFrom(make12(2), 3, 10, 0)
	hours[3].WeatherCode = 80
	hours[7].WeatherCode = 85
	hours[9].WindSpeed = 36

	got := DeriveSuggestions(WeatherInfo{HourlyForecast: hours}, refTime)

	if !got.NeedsUmbrella {
		t.Error("expected umbrella for a rain-shower hour")
	}
	if !got.NeedsWarmCoat {
		t.Error("expected warm coat for a snow-shower hour")
	}
	if !got.NeedsWindbreaker {
		t.Error("expected windbreaker for an hour above 35 km/h")
	}
	if got.TotalPrecipitation != 0 {
		t.Errorf("expected zero precipitation, got %v", got.TotalPrecipitation)
	}
}

func TestDeriveSuggestions_SunscreenNeedsClearHour(t *testing.T) {
	w := WeatherInfo{HourlyForecast: hoursFrom(make12(30), 45, 5, 0)}
	if got := DeriveSuggestions(w, refTime); got.NeedsSunscreen {
		t.Fatal("did not expect sunscreen when every hour is foggy")
	}
}

func TestDeriveSuggestions_CurrentOnlyFallback(t *testing.T) {
	w := WeatherInfo{
		Temperature:   -3,
		Precipitation: 0.4,
		WeatherCode:   73,
		WindSpeed:     20,
		WindGusts:     ptr(50.0),
	}

	got := DeriveSuggestions(w, refTime)

	want := DailySuggestions{
		NeedsUmbrella:      true, // precipitation > 0
		NeedsJacket:        true,
		NeedsSunscreen:     false,
		NeedsWindbreaker:   true,
		NeedsWarmCoat:      true,
		MinTemp:            -3,
		MaxTemp:            -3,
		TotalPrecipitation: 0.4,
		LastUpdated:        refTime,
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestDeriveSuggestions_Idempotent(t *testing.T) {
	w := WeatherInfo{HourlyForecast: hoursFrom([]float64{5, 9, 27, 14}, 2, 40, 0.3)}

	a := DeriveSuggestions(w, refTime)
	b := DeriveSuggestions(w, refTime)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("expected identical results, got %+v and %+v", a, b)
	}
}

func TestItems_Order(t *testing.T) {
	s := DailySuggestions{
		NeedsUmbrella:    true,
		NeedsJacket:      true,
		NeedsSunscreen:   true,
		NeedsWindbreaker: true,
		NeedsWarmCoat:    true,
	}
	want := []string{"Umbrella", "Jacket", "Sunscreen", "Windbreaker", "Warm coat"}
	if got := s.Items(); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}

	s = DailySuggestions{NeedsSunscreen: true, NeedsWarmCoat: true}
	want = []string{"Sunscreen", "Warm coat"}
	if got := s.Items(); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestItems_LookingGood(t *testing.T) {
	got := DailySuggestions{}.Items()
	if !reflect.DeepEqual(got, []string{"Looking good"}) {
		t.Fatalf(`expected ["Looking good"], got %v`, got)
	}
}

func TestClassifyCode(t *testing.T) {
	cases := map[int]Condition{
		0: ConditionClear, 3: ConditionClear, 45: ConditionMist,
		51: ConditionRain, 57: ConditionRain, 67: ConditionRain, 82: ConditionRain,
		71: ConditionSnow, 77: ConditionSnow, 86: ConditionSnow,
		95: ConditionStorm, 97: ConditionStorm, 99: ConditionStorm,
		4: ConditionUnknown, 60: ConditionUnknown, 100: ConditionUnknown,
	}
	for code, want := range cases {
		if got := ClassifyCode(code); got != want {
			t.Errorf("code %d: expected %s, got %s", code, want, got)
		}
	}
}

func make12(temp float64) []float64 {
	temps := make([]float64, 12)
	for i := range temps {
		temps[i] = temp
	}
	return temps
}

func TestDeriveSuggestions_NegativeCodeIsNotClear(t *testing.T) {
	info := WeatherInfo{Temperature: 30, HourlyForecast: hoursFrom(make12(30), -1, 5, 0)}

	got := DeriveSuggestions(info, refTime)
	if got.NeedsSunscreen {
		t.Fatal("expected out-of-range codes not to count as clear sky")
	}

	info.HourlyForecast = hoursFrom(make12(30), 3, 5, 0)
	if !DeriveSuggestions(info, refTime).NeedsSunscreen {
		t.Fatal("expected overcast code 3 to count as clear sky")
	}
}
