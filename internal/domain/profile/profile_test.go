package profile

import (
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrunal1324/FOMO---Food-Mood/internal/domain/mood"
)

func TestNewDefaults(t *testing.T) {
	p := New()

	assert.Equal(t, DefaultLocation, p.Location())
	assert.True(t, p.WeatherEnabled())
	assert.Empty(t, p.History())
	assert.Empty(t, p.Preferences())
}

func TestRestoreAppliesDefaults(t *testing.T) {
	p := Restore(nil, nil, "", false, time.Now())

	assert.Equal(t, DefaultLocation, p.Location())
	assert.False(t, p.WeatherEnabled())
	assert.NotPanics(t, func() {
		p.AddPreference(mood.MoodHappy, "pizza", time.Now())
	})
}

func TestAddPreferenceDeduplicatesButHistoryGrows(t *testing.T) {
	p := New()
	now := time.Now()

	first := p.AddPreference(mood.MoodHappy, "Rainbow sushi roll", now)
	second := p.AddPreference(mood.MoodHappy, "Rainbow sushi roll", now.Add(time.Minute))

	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, []string{"rainbow sushi roll"}, p.PreferencesFor(mood.MoodHappy))
	assert.Len(t, p.History(), 2)
	assert.Equal(t, now.Add(time.Minute), p.UpdatedAt())
}

func TestPreferencesForLowercases(t *testing.T) {
	p := New()
	p.AddPreference(mood.MoodSad, "Chocolate LAVA Cake", time.Now())

	assert.Equal(t, []string{"chocolate lava cake"}, p.PreferencesFor(mood.MoodSad))
	assert.Empty(t, p.PreferencesFor(mood.MoodHappy))
}

func TestCloneIsIndependent(t *testing.T) {
	gofakeit.Seed(11)
	p := New()
	for i := 0; i < 3; i++ {
		p.AddPreference(mood.MoodEnergetic, gofakeit.Dinner(), time.Now())
	}

	clone := p.Clone()
	clone.AddPreference(mood.MoodEnergetic, gofakeit.Dinner(), time.Now())
	clone.SetLocation("Tokyo", time.Now())
	clone.ToggleWeather(time.Now())

	require.Len(t, p.History(), 3)
	assert.Len(t, clone.History(), 4)
	assert.Equal(t, DefaultLocation, p.Location())
	assert.True(t, p.WeatherEnabled())
	assert.False(t, clone.WeatherEnabled())
}

func TestToggleWeatherRoundTrip(t *testing.T) {
	p := New()

	assert.False(t, p.ToggleWeather(time.Now()))
	assert.True(t, p.ToggleWeather(time.Now()))
	assert.True(t, p.WeatherEnabled())
}
