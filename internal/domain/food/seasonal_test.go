package food

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mrunal1324/FOMO---Food-Mood/internal/domain/weather"
)

func TestBandForBoundaries(t *testing.T) {
	tests := []struct {
		temp float64
		want TemperatureBand
	}{
		{-10, BandVeryCold},
		{31.9, BandVeryCold},
		{32, BandCold}, // lower bound is inclusive
		{44.9, BandCold},
		{45, BandMild},
		{69.9, BandMild},
		{70, BandWarm},
		{84.9, BandWarm},
		{85, BandHot},
		{110, BandHot},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, BandFor(tt.temp), "temp %.1f", tt.temp)
	}
}

func TestTemperatureMultipliersCoverEveryBand(t *testing.T) {
	for _, band := range []TemperatureBand{BandVeryCold, BandCold, BandMild, BandWarm, BandHot} {
		m, ok := TemperatureMultipliers[band]
		assert.True(t, ok, "band %s missing multipliers", band)
		assert.Greater(t, m.Warm, 0.0)
		assert.Greater(t, m.Raw, 0.0)
	}

	// Cold weather favors warm food, hot weather favors cold and raw food.
	assert.Greater(t, TemperatureMultipliers[BandVeryCold].Warm, TemperatureMultipliers[BandHot].Warm)
	assert.Greater(t, TemperatureMultipliers[BandHot].Raw, TemperatureMultipliers[BandVeryCold].Raw)
}

func TestSeasonalPreferencesCoverEverySeason(t *testing.T) {
	for _, season := range []weather.Season{
		weather.SeasonSpring, weather.SeasonSummer, weather.SeasonFall, weather.SeasonWinter,
	} {
		pref, ok := SeasonalPreferences[season]
		assert.True(t, ok, "season %s missing preferences", season)
		assert.NotEmpty(t, pref.PreferredStyles)
		assert.NotEmpty(t, pref.Ingredients)
		assert.NotEmpty(t, pref.Avoid)
	}
}
