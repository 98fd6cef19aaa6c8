package food

import "github.com/mrunal1324/FOMO---Food-Mood/internal/domain/weather"

// TemperatureBand is one of five fixed ranges used to select scoring
// multipliers for food keywords.
type TemperatureBand string

const (
	BandVeryCold TemperatureBand = "very_cold"
	BandCold     TemperatureBand = "cold"
	BandMild     TemperatureBand = "mild"
	BandWarm     TemperatureBand = "warm"
	BandHot      TemperatureBand = "hot"
)

// BandMultipliers holds the per-band multipliers applied once per keyword
// group present in a food name.
type BandMultipliers struct {
	Warm float64
	Hot  float64
	Cold float64
	Raw  float64
}

// TemperatureMultipliers is the fixed, asymmetric multiplier table. Values
// come from the scoring data set and must not be tuned independently.
var TemperatureMultipliers = map[TemperatureBand]BandMultipliers{
	BandVeryCold: {Warm: 1.5, Hot: 1.3, Cold: 0.5, Raw: 0.3},
	BandCold:     {Warm: 1.3, Hot: 1.2, Cold: 0.7, Raw: 0.5},
	BandMild:     {Warm: 1.1, Hot: 1.0, Cold: 1.0, Raw: 1.0},
	BandWarm:     {Warm: 0.8, Hot: 0.7, Cold: 1.2, Raw: 1.3},
	BandHot:      {Warm: 0.6, Hot: 0.5, Cold: 1.5, Raw: 1.5},
}

// Keyword groups matched against food names. Each group's multiplier is
// applied at most once per food.
var (
	WarmKeywords = []string{"warm", "hot", "heated"}
	ColdKeywords = []string{"cold", "chilled", "cool"}
	RawKeywords  = []string{"raw", "fresh", "crisp"}
)

// BandFor classifies a temperature into its band. Bands are half-open with
// an inclusive lower bound: exactly 32°F is cold, exactly 85°F is hot.
func BandFor(tempF float64) TemperatureBand {
	switch {
	case tempF < 32:
		return BandVeryCold
	case tempF < 45:
		return BandCold
	case tempF < 70:
		return BandMild
	case tempF < 85:
		return BandWarm
	default:
		return BandHot
	}
}

// SeasonalPreference holds the style, ingredient and avoid vocabulary for a
// season.
type SeasonalPreference struct {
	PreferredStyles []string
	Ingredients     []string
	Avoid           []string
}

// SeasonalPreferences maps each season to its food vocabulary.
var SeasonalPreferences = map[weather.Season]SeasonalPreference{
	weather.SeasonSpring: {
		PreferredStyles: []string{"light", "fresh", "crisp", "grilled"},
		Ingredients:     []string{"asparagus", "strawberries", "peas", "radishes", "spring greens"},
		Avoid:           []string{"heavy", "rich", "warm"},
	},
	weather.SeasonSummer: {
		PreferredStyles: []string{"cold", "refreshing", "light", "grilled"},
		Ingredients:     []string{"tomatoes", "cucumber", "watermelon", "berries", "fresh herbs"},
		Avoid:           []string{"hot", "heavy", "baked"},
	},
	weather.SeasonFall: {
		PreferredStyles: []string{"warm", "roasted", "comforting"},
		Ingredients:     []string{"pumpkin", "apples", "squash", "cranberries", "nuts"},
		Avoid:           []string{"cold", "light", "raw"},
	},
	weather.SeasonWinter: {
		PreferredStyles: []string{"warm", "hearty", "comforting", "hot"},
		Ingredients:     []string{"root vegetables", "winter squash", "citrus", "dark greens"},
		Avoid:           []string{"cold", "raw", "light"},
	},
}
