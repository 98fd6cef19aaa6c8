// Package recommendation composes mood analysis, weather resolution and
// food scoring into one request cycle, and owns all profile mutation.
package recommendation

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	foodapp "github.com/mrunal1324/FOMO---Food-Mood/internal/application/food"
	moodapp "github.com/mrunal1324/FOMO---Food-Mood/internal/application/mood"
	weatherapp "github.com/mrunal1324/FOMO---Food-Mood/internal/application/weather"
	"github.com/mrunal1324/FOMO---Food-Mood/internal/domain/mood"
	"github.com/mrunal1324/FOMO---Food-Mood/internal/domain/profile"
	"github.com/mrunal1324/FOMO---Food-Mood/internal/domain/weather"
	"github.com/mrunal1324/FOMO---Food-Mood/internal/ports/inbound"
	"github.com/mrunal1324/FOMO---Food-Mood/internal/ports/outbound"
	"github.com/mrunal1324/FOMO---Food-Mood/pkg/errors"
)

// Service implements the recommendation use cases. It is the exclusive
// owner of the persisted profile: every read-modify-write cycle runs under
// the mutation lock so concurrent updates cannot lose history entries.
type Service struct {
	analyzer *moodapp.Analyzer
	resolver *weatherapp.Resolver
	scorer   *foodapp.Scorer
	profiles outbound.ProfileRepository
	audit    outbound.AuditLog
	weather  outbound.WeatherProvider
	logger   *zap.Logger
	clock    func() time.Time

	mu      sync.Mutex
	profile atomic.Pointer[profile.Profile]
}

// NewService creates the recommendation service.
func NewService(
	analyzer *moodapp.Analyzer,
	resolver *weatherapp.Resolver,
	scorer *foodapp.Scorer,
	profiles outbound.ProfileRepository,
	audit outbound.AuditLog,
	weatherProvider outbound.WeatherProvider,
	logger *zap.Logger,
) inbound.RecommendationService {
	return &Service{
		analyzer: analyzer,
		resolver: resolver,
		scorer:   scorer,
		profiles: profiles,
		audit:    audit,
		weather:  weatherProvider,
		logger:   logger.Named("recommendation-service"),
		clock:    time.Now,
	}
}

// Recommend runs the full pipeline: mood analysis and weather resolution
// fan out concurrently, scoring waits for both. The call mutates nothing;
// repeated invocations with the same text return the same mood and may
// differ only in the sampled food triple.
func (s *Service) Recommend(ctx context.Context, text string) (*inbound.Recommendation, error) {
	if strings.TrimSpace(text) == "" {
		return nil, errors.NewValidationError("text is required")
	}

	prof, err := s.currentProfile(ctx)
	if err != nil {
		return nil, err
	}
	location := prof.Location()
	weatherEnabled := prof.WeatherEnabled()

	var (
		analysis *mood.Analysis
		snapshot *weather.Snapshot
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		result, analyzeErr := s.analyzer.Analyze(gctx, text)
		if analyzeErr != nil {
			return analyzeErr
		}
		analysis = result
		return nil
	})
	g.Go(func() error {
		snapshot = s.resolver.Resolve(gctx, location, weatherEnabled)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Weather-based scoring only applies while the toggle is on; the
	// snapshot itself is always reported.
	var scoringSnapshot *weather.Snapshot
	if weatherEnabled {
		scoringSnapshot = snapshot
	}

	season := weather.SeasonAt(s.clock())
	foods := s.scorer.Score(analysis.Mood, scoringSnapshot, season, prof.PreferencesFor(analysis.Mood))

	s.logger.Info("recommendation produced",
		zap.String("mood", analysis.Mood.String()),
		zap.Float64("intensity", analysis.Intensity),
		zap.String("weather_source", string(snapshot.Source)),
		zap.Int("foods", len(foods)),
	)

	return &inbound.Recommendation{
		Mood:     *analysis,
		Foods:    foods,
		Weather:  snapshot,
		Location: location,
	}, nil
}

// UpdatePreference records a liked food for a mood, appends to history and
// persists. A failed write leaves the in-memory profile at its last good
// state and surfaces as a failed mutation.
func (s *Service) UpdatePreference(ctx context.Context, m mood.Mood, food string) error {
	if !m.IsValid() {
		return errors.NewValidationError("unknown mood label")
	}
	food = strings.TrimSpace(food)
	if food == "" {
		return errors.NewValidationError("food is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	prof, err := s.currentProfileLocked(ctx)
	if err != nil {
		return err
	}

	updated := prof.Clone()
	entry := updated.AddPreference(m, food, s.clock())
	if err := s.profiles.Save(ctx, updated); err != nil {
		s.logger.Error("preference update not persisted", zap.Error(err))
		return err
	}
	s.profile.Store(updated)

	s.logger.Info("preference recorded",
		zap.String("mood", m.String()),
		zap.String("food", food),
		zap.String("entry_id", entry.ID.String()),
	)
	return nil
}

// SetLocation validates and stores a new location. When weather is enabled
// and a credential is configured the city is verified against the weather
// service first; a failed lookup rejects the update.
func (s *Service) SetLocation(ctx context.Context, location string) error {
	location = strings.TrimSpace(location)
	if location == "" {
		return errors.NewValidationError("location is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	prof, err := s.currentProfileLocked(ctx)
	if err != nil {
		return err
	}

	if prof.WeatherEnabled() && s.weather != nil && s.weather.Configured() {
		if _, err := s.weather.Current(ctx, location); err != nil {
			s.logger.Warn("location rejected by weather service",
				zap.String("location", location),
				zap.Error(err),
			)
			return errors.NewExternalServiceError("weather", err)
		}
	}

	updated := prof.Clone()
	updated.SetLocation(location, s.clock())
	if err := s.profiles.Save(ctx, updated); err != nil {
		return err
	}
	s.profile.Store(updated)

	s.logger.Info("location updated", zap.String("location", location))
	return nil
}

// ToggleWeather flips weather-based recommendations and returns the new
// state.
func (s *Service) ToggleWeather(ctx context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prof, err := s.currentProfileLocked(ctx)
	if err != nil {
		return false, err
	}

	updated := prof.Clone()
	enabled := updated.ToggleWeather(s.clock())
	if err := s.profiles.Save(ctx, updated); err != nil {
		return prof.WeatherEnabled(), err
	}
	s.profile.Store(updated)

	s.logger.Info("weather recommendations toggled", zap.Bool("enabled", enabled))
	return enabled, nil
}

// Profile returns the externally visible profile state.
func (s *Service) Profile(ctx context.Context) (*inbound.ProfileView, error) {
	prof, err := s.currentProfile(ctx)
	if err != nil {
		return nil, err
	}

	preferences := make(map[string][]string)
	for m, list := range prof.Preferences() {
		preferences[m.String()] = list
	}

	history := prof.History()
	entries := make([]inbound.HistoryEntryDTO, len(history))
	for i, h := range history {
		entries[i] = inbound.HistoryEntryDTO{
			Timestamp: h.Timestamp,
			Mood:      h.Mood.String(),
			Food:      h.Food,
		}
	}

	return &inbound.ProfileView{
		Location:       prof.Location(),
		WeatherEnabled: prof.WeatherEnabled(),
		Preferences:    preferences,
		History:        entries,
	}, nil
}

// LogRequest appends a raw request payload to the append-only audit log.
func (s *Service) LogRequest(ctx context.Context, payload map[string]any) error {
	if len(payload) == 0 {
		return errors.NewValidationError("payload is required")
	}
	if err := s.audit.Append(ctx, payload); err != nil {
		s.logger.Error("audit append failed", zap.Error(err))
		return err
	}
	return nil
}

// currentProfile returns the cached profile, loading it on first use.
func (s *Service) currentProfile(ctx context.Context) (*profile.Profile, error) {
	if prof := s.profile.Load(); prof != nil {
		return prof, nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentProfileLocked(ctx)
}

func (s *Service) currentProfileLocked(ctx context.Context) (*profile.Profile, error) {
	if prof := s.profile.Load(); prof != nil {
		return prof, nil
	}
	prof, err := s.profiles.Load(ctx)
	if err != nil {
		return nil, err
	}
	s.profile.Store(prof)
	return prof, nil
}
