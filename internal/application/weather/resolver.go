// Package weather implements weather resolution for the recommendation
// pipeline. Every external failure degrades to the deterministic seasonal
// fallback; the resolver never returns an error to callers.
package weather

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/mrunal1324/FOMO---Food-Mood/internal/domain/weather"
	"github.com/mrunal1324/FOMO---Food-Mood/internal/ports/outbound"
)

const (
	fallbackHumidity  = 60
	fallbackWindSpeed = 5
)

// Resolver normalizes live weather data, falling back to a season and
// time-of-day estimate whenever the service is disabled or unusable.
type Resolver struct {
	provider outbound.WeatherProvider
	clock    func() time.Time
	logger   *zap.Logger
}

// NewResolver creates a weather resolver. A nil provider means the live
// branch is never taken.
func NewResolver(provider outbound.WeatherProvider, logger *zap.Logger) *Resolver {
	return &Resolver{
		provider: provider,
		clock:    time.Now,
		logger:   logger.Named("weather-resolver"),
	}
}

// WithClock overrides the time source. Used by tests.
func (r *Resolver) WithClock(clock func() time.Time) *Resolver {
	r.clock = clock
	return r
}

// Resolve returns a weather snapshot for the location. It never fails:
// disabled weather, a missing credential, or any service error produce the
// seasonal fallback instead.
func (r *Resolver) Resolve(ctx context.Context, location string, weatherEnabled bool) *weather.Snapshot {
	if !weatherEnabled || r.provider == nil || !r.provider.Configured() {
		return r.seasonalFallback()
	}

	observation, err := r.provider.Current(ctx, location)
	if err != nil || observation == nil {
		r.logger.Warn("weather service degraded, using seasonal fallback",
			zap.String("location", location),
			zap.Error(err),
		)
		return r.seasonalFallback()
	}

	return normalize(observation)
}

// seasonalFallback estimates conditions from the calendar month and the
// time-of-day bucket.
func (r *Resolver) seasonalFallback() *weather.Snapshot {
	now := r.clock()
	season := weather.SeasonAt(now)
	base, condition := weather.SeasonBase(season)
	temp := base + weather.TimeOfDayDelta(now.Hour())

	return &weather.Snapshot{
		Temperature: temp,
		FeelsLike:   temp,
		Condition:   condition,
		IsHot:       temp > 75,
		IsCold:      temp < 45,
		IsRainy:     false,
		IsSunny:     true,
		Humidity:    fallbackHumidity,
		WindSpeed:   fallbackWindSpeed,
		Source:      weather.SourceSeasonalFallback,
	}
}

// normalize classifies a raw observation into a snapshot. IsRainy and
// IsSunny are independent flags and may both be true for some code, cloud
// and precipitation combinations.
func normalize(obs *outbound.WeatherObservation) *weather.Snapshot {
	temp := obs.Temperature

	isHot := temp > 80 || (temp > 75 && obs.Humidity > 70)
	isCold := temp < 40 || (temp < 45 && obs.WindSpeed > 15)
	isRainy := obs.Precipitation > 0 ||
		obs.CloudCover > 70 ||
		weather.IsRainCode(obs.ConditionCode)
	isSunny := obs.CloudCover < 30 &&
		obs.Precipitation == 0 &&
		weather.IsClearSkyCode(obs.ConditionCode) &&
		obs.Humidity < 80

	feelsLike := temp
	if isCold && obs.WindSpeed > 5 {
		feelsLike = temp - obs.WindSpeed*0.1
	} else if isHot && obs.Humidity > 60 {
		feelsLike = temp + obs.Humidity*0.1
	}

	return &weather.Snapshot{
		Temperature: temp,
		FeelsLike:   feelsLike,
		Condition:   weather.ConditionForCode(obs.ConditionCode),
		IsHot:       isHot,
		IsCold:      isCold,
		IsRainy:     isRainy,
		IsSunny:     isSunny,
		Humidity:    obs.Humidity,
		WindSpeed:   obs.WindSpeed,
		Source:      weather.SourceLive,
	}
}
