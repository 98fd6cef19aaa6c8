// Package profile defines the persisted single-user profile. All mutation
// goes through named operations so the read-modify-write persistence cycle
// stays visible to the owning service.
package profile

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mrunal1324/FOMO---Food-Mood/internal/domain/mood"
)

// DefaultLocation is used when a profile is created fresh.
const DefaultLocation = "London"

// HistoryEntry records one accepted recommendation.
type HistoryEntry struct {
	ID        uuid.UUID
	Timestamp time.Time
	Mood      mood.Mood
	Food      string
}

// Profile is the process-wide single logical user. Preferences map moods to
// liked-food substrings, matched case-insensitively against food names.
type Profile struct {
	preferences    map[mood.Mood][]string
	history        []HistoryEntry
	location       string
	weatherEnabled bool
	updatedAt      time.Time
}

// New creates a default profile.
func New() *Profile {
	return &Profile{
		preferences:    make(map[mood.Mood][]string),
		location:       DefaultLocation,
		weatherEnabled: true,
		updatedAt:      time.Now(),
	}
}

// Restore rebuilds a profile from persisted state.
func Restore(preferences map[mood.Mood][]string, history []HistoryEntry, location string, weatherEnabled bool, updatedAt time.Time) *Profile {
	if preferences == nil {
		preferences = make(map[mood.Mood][]string)
	}
	if location == "" {
		location = DefaultLocation
	}
	return &Profile{
		preferences:    preferences,
		history:        history,
		location:       location,
		weatherEnabled: weatherEnabled,
		updatedAt:      updatedAt,
	}
}

// Location returns the stored location.
func (p *Profile) Location() string {
	return p.location
}

// WeatherEnabled reports whether weather-based recommendations are on.
func (p *Profile) WeatherEnabled() bool {
	return p.weatherEnabled
}

// UpdatedAt returns the last mutation time.
func (p *Profile) UpdatedAt() time.Time {
	return p.updatedAt
}

// PreferencesFor returns the liked-food substrings for m, lower-cased.
func (p *Profile) PreferencesFor(m mood.Mood) []string {
	prefs := p.preferences[m]
	out := make([]string, len(prefs))
	for i, pref := range prefs {
		out[i] = strings.ToLower(pref)
	}
	return out
}

// Preferences returns a copy of the full preference map.
func (p *Profile) Preferences() map[mood.Mood][]string {
	out := make(map[mood.Mood][]string, len(p.preferences))
	for m, prefs := range p.preferences {
		out[m] = append([]string(nil), prefs...)
	}
	return out
}

// History returns a copy of the recommendation history, oldest first.
func (p *Profile) History() []HistoryEntry {
	return append([]HistoryEntry(nil), p.history...)
}

// AddPreference records that the user liked food for mood m and appends a
// history entry. Duplicate preferences are kept unique; history always
// grows.
func (p *Profile) AddPreference(m mood.Mood, food string, now time.Time) HistoryEntry {
	exists := false
	for _, pref := range p.preferences[m] {
		if pref == food {
			exists = true
			break
		}
	}
	if !exists {
		p.preferences[m] = append(p.preferences[m], food)
	}

	entry := HistoryEntry{
		ID:        uuid.New(),
		Timestamp: now,
		Mood:      m,
		Food:      food,
	}
	p.history = append(p.history, entry)
	p.updatedAt = now
	return entry
}

// Clone returns a deep copy. Mutations are applied to a clone first so a
// failed persistence write leaves the last good in-memory state untouched.
func (p *Profile) Clone() *Profile {
	prefs := make(map[mood.Mood][]string, len(p.preferences))
	for m, list := range p.preferences {
		prefs[m] = append([]string(nil), list...)
	}
	return &Profile{
		preferences:    prefs,
		history:        append([]HistoryEntry(nil), p.history...),
		location:       p.location,
		weatherEnabled: p.weatherEnabled,
		updatedAt:      p.updatedAt,
	}
}

// SetLocation updates the stored location.
func (p *Profile) SetLocation(location string, now time.Time) {
	p.location = location
	p.updatedAt = now
}

// ToggleWeather flips the weather flag and returns the new state.
func (p *Profile) ToggleWeather(now time.Time) bool {
	p.weatherEnabled = !p.weatherEnabled
	p.updatedAt = now
	return p.weatherEnabled
}
