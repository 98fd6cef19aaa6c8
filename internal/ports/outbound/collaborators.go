// Package outbound defines the interfaces the application uses to reach
// external systems: the emotion classifier, the weather service, profile
// persistence, the audit log and the cache.
package outbound

import (
	"context"
	"time"

	"github.com/mrunal1324/FOMO---Food-Mood/internal/domain/mood"
	"github.com/mrunal1324/FOMO---Food-Mood/internal/domain/profile"
)

// EmotionClassifier scores raw text against a fine-grained emotion
// vocabulary. Implementations return at least the top three labels ordered
// by the model; an empty result is treated as the classifier being
// unavailable.
type EmotionClassifier interface {
	Classify(ctx context.Context, text string) ([]mood.EmotionScore, error)
}

// WeatherObservation is the raw current-conditions record from the weather
// service, before normalization. Units are imperial.
type WeatherObservation struct {
	Temperature   float64
	Humidity      float64
	WindSpeed     float64
	CloudCover    float64
	Precipitation float64
	ConditionCode int
}

// WeatherProvider fetches current conditions for a city. Any error triggers
// the seasonal fallback in the resolver; it is never surfaced to callers of
// the recommendation flow.
type WeatherProvider interface {
	// Current returns the current observation for the city.
	Current(ctx context.Context, city string) (*WeatherObservation, error)
	// Configured reports whether the provider has a usable credential.
	Configured() bool
}

// ProfileRepository persists the process-wide single user profile.
type ProfileRepository interface {
	// Load returns the stored profile, creating a default one if absent.
	Load(ctx context.Context) (*profile.Profile, error)
	// Save writes the full profile state.
	Save(ctx context.Context, p *profile.Profile) error
}

// AuditLog is an append-only record of raw request payloads. It is never
// read back by the core.
type AuditLog interface {
	Append(ctx context.Context, payload map[string]any) error
}

// CacheRepository caches expensive external lookups, keyed by opaque
// strings.
type CacheRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
