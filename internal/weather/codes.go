package weather

// Thresholds shared by the current-instant classifiers and the hourly scan.
const (
	jacketBelowC       = 15.0
	sunscreenAboveC    = 26.0
	windyAboveKmh      = 35.0
	umbrellaTotalMM    = 0.5
	minThunderstormWMO = 95
	maxThunderstormWMO = 99
)

type codeInfo struct {
	condition   Condition
	description string
}

// codeTable maps Open-Meteo (WMO) weather codes to a condition and a label.
var codeTable = map[int]codeInfo{
	0:  {ConditionClear, "Clear sky"},
	1:  {ConditionClear, "Mainly clear"},
	2:  {ConditionClear, "Partly cloudy"},
	3:  {ConditionClear, "Overcast"},
	45: {ConditionMist, "Fog"},
	48: {ConditionMist, "Depositing rime fog"},
	51: {ConditionRain, "Light drizzle"},
	53: {ConditionRain, "Moderate drizzle"},
	55: {ConditionRain, "Dense drizzle"},
	56: {ConditionRain, "Light freezing drizzle"},
	57: {ConditionRain, "Dense freezing drizzle"},
	61: {ConditionRain, "Slight rain"},
	63: {ConditionRain, "Moderate rain"},
	65: {ConditionRain, "Heavy rain"},
	66: {ConditionRain, "Light freezing rain"},
	67: {ConditionRain, "Heavy freezing rain"},
	71: {ConditionSnow, "Slight snow fall"},
	73: {ConditionSnow, "Moderate snow fall"},
	75: {ConditionSnow, "Heavy snow fall"},
	77: {ConditionSnow, "Snow grains"},
	80: {ConditionRain, "Slight rain showers"},
	81: {ConditionRain, "Moderate rain showers"},
	82: {ConditionRain, "Violent rain showers"},
	85: {ConditionSnow, "Slight snow showers"},
	86: {ConditionSnow, "Heavy snow showers"},
	95: {ConditionStorm, "Thunderstorm"},
	96: {ConditionStorm, "Thunderstorm with slight hail"},
	99: {ConditionStorm, "Thunderstorm with heavy hail"},
}

// ClassifyCode returns the condition family of a provider weather code.
func ClassifyCode(code int) Condition {
	if info, ok := codeTable[code]; ok {
		return info.condition
	}
	// The whole 95-99 band is thunder even where the provider has no named code.
	if code >= minThunderstormWMO && code <= maxThunderstormWMO {
		return ConditionStorm
	}
	return ConditionUnknown
}

// Describe returns a short human label for a provider weather code.
func Describe(code int) string {
	if info, ok := codeTable[code]; ok {
		return info.description
	}
	if ClassifyCode(code) == ConditionStorm {
		return "Thunderstorm"
	}
	return "Unknown"
}
