// Package weather contains the normalized weather model consumed by the
// scoring pipeline: snapshots, condition classification, and the calendar
// season used by the deterministic fallback.
package weather

// Condition is the normalized weather condition for a snapshot.
type Condition string

const (
	ConditionClear        Condition = "clear"
	ConditionPartlyCloudy Condition = "partly_cloudy"
	ConditionCloudy       Condition = "cloudy"
	ConditionLightRain    Condition = "light_rain"
	ConditionHeavyRain    Condition = "heavy_rain"
	ConditionThunderstorm Condition = "thunderstorm"
	ConditionSnow         Condition = "snow"
	ConditionSleet        Condition = "sleet"
	ConditionFog          Condition = "fog"
	ConditionMild         Condition = "mild"
	ConditionSunny        Condition = "sunny"
	ConditionCool         Condition = "cool"
	ConditionCold         Condition = "cold"
	ConditionUnknown      Condition = "unknown"
)

// Source records how a snapshot was produced.
type Source string

const (
	// SourceLive means the snapshot came from the weather service.
	SourceLive Source = "live"
	// SourceSeasonalFallback means the snapshot was estimated from the
	// calendar month and time of day.
	SourceSeasonalFallback Source = "seasonal_fallback"
)

// Snapshot is an immutable view of current conditions, either observed or
// estimated. Temperatures are Fahrenheit, wind speed mph, humidity percent.
type Snapshot struct {
	Temperature float64   `json:"temperature"`
	FeelsLike   float64   `json:"feels_like"`
	Condition   Condition `json:"condition"`
	IsHot       bool      `json:"is_hot"`
	IsCold      bool      `json:"is_cold"`
	IsRainy     bool      `json:"is_rainy"`
	IsSunny     bool      `json:"is_sunny"`
	Humidity    float64   `json:"humidity"`
	WindSpeed   float64   `json:"wind_speed"`
	Source      Source    `json:"source"`
}

// conditionCodes maps Weatherbit numeric condition codes onto normalized
// conditions. Order matters: the first matching range wins.
var conditionCodes = []struct {
	condition Condition
	codes     []int
}{
	{ConditionClear, []int{800}},
	{ConditionPartlyCloudy, []int{801, 802}},
	{ConditionCloudy, []int{803, 804}},
	{ConditionLightRain, []int{500, 501, 502, 503}},
	{ConditionHeavyRain, []int{504, 505, 506, 507}},
	{ConditionThunderstorm, []int{200, 201, 202, 230, 231, 232, 233}},
	{ConditionSnow, []int{600, 601, 602, 610, 611, 612, 621, 622, 623}},
	{ConditionSleet, []int{700, 711, 721, 731, 741, 751}},
}

// rainCodes are the condition codes that force IsRainy regardless of
// measured precipitation.
var rainCodes = map[int]bool{
	500: true, 501: true, 502: true, 503: true,
	504: true, 505: true, 506: true, 507: true,
	200: true, 201: true, 202: true, 230: true,
	231: true, 232: true, 233: true,
}

// clearSkyCodes are the condition codes compatible with IsSunny.
var clearSkyCodes = map[int]bool{800: true, 801: true}

// ConditionForCode resolves a numeric service condition code to a
// normalized condition.
func ConditionForCode(code int) Condition {
	for _, entry := range conditionCodes {
		for _, c := range entry.codes {
			if c == code {
				return entry.condition
			}
		}
	}
	return ConditionUnknown
}

// IsRainCode reports whether code belongs to the rain or storm ranges.
func IsRainCode(code int) bool {
	return rainCodes[code]
}

// IsClearSkyCode reports whether code belongs to the clear-sky range.
func IsClearSkyCode(code int) bool {
	return clearSkyCodes[code]
}
