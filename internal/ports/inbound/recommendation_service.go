// Package inbound defines the use cases exposed by the application core.
// The HTTP boundary depends on these contracts only.
package inbound

import (
	"context"
	"time"

	"github.com/mrunal1324/FOMO---Food-Mood/internal/domain/mood"
	"github.com/mrunal1324/FOMO---Food-Mood/internal/domain/weather"
)

// Recommendation is the result of one recommendation cycle.
type Recommendation struct {
	Mood     mood.Analysis     `json:"mood"`
	Foods    []string          `json:"foods"`
	Weather  *weather.Snapshot `json:"weather"`
	Location string            `json:"location"`
}

// HistoryEntryDTO is one recorded recommendation acceptance.
type HistoryEntryDTO struct {
	Timestamp time.Time `json:"timestamp"`
	Mood      string    `json:"mood"`
	Food      string    `json:"food"`
}

// ProfileView is the externally visible profile state.
type ProfileView struct {
	Location       string              `json:"location"`
	WeatherEnabled bool                `json:"weather_enabled"`
	Preferences    map[string][]string `json:"preferences"`
	History        []HistoryEntryDTO   `json:"history"`
}

// RecommendationService is the single inbound port of the engine.
type RecommendationService interface {
	// Recommend maps free text to a mood and a ranked food triple. It has
	// no side effects beyond audit logging and is safe to repeat.
	Recommend(ctx context.Context, text string) (*Recommendation, error)

	// UpdatePreference records that the user liked food while in mood m,
	// appends to history and persists the profile.
	UpdatePreference(ctx context.Context, m mood.Mood, food string) error

	// SetLocation validates and stores a new location.
	SetLocation(ctx context.Context, location string) error

	// ToggleWeather flips weather-based recommendations and returns the
	// new state.
	ToggleWeather(ctx context.Context) (bool, error)

	// Profile returns the current profile view.
	Profile(ctx context.Context) (*ProfileView, error)

	// LogRequest appends an arbitrary request payload to the audit log.
	LogRequest(ctx context.Context, payload map[string]any) error
}
