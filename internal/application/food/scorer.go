// Package food implements the food scoring use case: weather and season
// weighted ranking over the fixed mood catalog.
package food

import (
	"math/rand"
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/mrunal1324/FOMO---Food-Mood/internal/domain/food"
	"github.com/mrunal1324/FOMO---Food-Mood/internal/domain/mood"
	"github.com/mrunal1324/FOMO---Food-Mood/internal/domain/weather"
	"github.com/mrunal1324/FOMO---Food-Mood/pkg/errors"
)

// recommendationCount is the fixed size of a recommendation set.
const recommendationCount = 3

const (
	seasonalStyleBoost      = 1.2
	seasonalIngredientBoost = 1.1
	seasonalAvoidPenalty    = 0.8
	preferenceBoost         = 1.2
)

// Sampler selects k items uniformly at random without replacement. The
// selection step is the only nondeterministic point of the scorer, so the
// sampler is injected and seedable for tests.
type Sampler interface {
	Pick(k int, items []string) []string
}

type randSampler struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSampler creates a sampler from the given seed.
func NewSampler(seed int64) Sampler {
	return &randSampler{rng: rand.New(rand.NewSource(seed))}
}

func (s *randSampler) Pick(k int, items []string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	picked := append([]string(nil), items...)
	s.rng.Shuffle(len(picked), func(i, j int) {
		picked[i], picked[j] = picked[j], picked[i]
	})
	if k > len(picked) {
		k = len(picked)
	}
	return picked[:k]
}

// Scorer ranks foods for a mood under current weather and season.
type Scorer struct {
	sampler Sampler
	logger  *zap.Logger
}

// NewScorer creates a food scorer.
func NewScorer(sampler Sampler, logger *zap.Logger) *Scorer {
	return &Scorer{
		sampler: sampler,
		logger:  logger.Named("food-scorer"),
	}
}

// Score returns the recommendation set for a mood. A nil snapshot skips
// weather-based scoring entirely. Moods without a catalog entry degrade to
// the neutral catalog rather than failing.
func (s *Scorer) Score(m mood.Mood, snapshot *weather.Snapshot, season weather.Season, preferences []string) []string {
	if !food.HasCatalog(m) {
		s.logger.Warn("mood outside food catalog, degrading to neutral",
			zap.String("mood", m.String()),
			zap.String("code", string(errors.CodeUnknownMood)),
		)
	}
	catalog := food.ForMood(m)
	recommendations := append([]string(nil), catalog...)

	if snapshot != nil {
		candidates := make([]food.Candidate, len(catalog))
		for i, name := range catalog {
			candidates[i] = food.Candidate{
				Name:  name,
				Score: scoreCandidate(name, snapshot.Temperature, season, preferences),
			}
		}
		sort.SliceStable(candidates, func(i, j int) bool {
			return candidates[i].Score > candidates[j].Score
		})

		top := recommendationCount
		if top > len(candidates) {
			top = len(candidates)
		}
		recommendations = make([]string, 0, top)
		for _, c := range candidates[:top] {
			recommendations = append(recommendations, c.Name)
		}
	}

	// Top up from the catalog in its fixed order until three are present.
	if len(recommendations) < recommendationCount {
		for _, name := range catalog {
			if len(recommendations) >= recommendationCount {
				break
			}
			if !containsString(recommendations, name) {
				recommendations = append(recommendations, name)
			}
		}
	}

	if len(recommendations) > recommendationCount {
		recommendations = s.sampler.Pick(recommendationCount, recommendations)
	}

	return recommendations
}

// scoreCandidate computes the multiplicative score for one food name.
// Temperature-group multipliers apply once per keyword group present;
// seasonal style, ingredient and avoid multipliers compound per matching
// keyword; the user preference boost lands last on the adjusted score.
func scoreCandidate(name string, tempF float64, season weather.Season, preferences []string) float64 {
	score := 1.0
	lower := strings.ToLower(name)

	multipliers := food.TemperatureMultipliers[food.BandFor(tempF)]
	if containsAnyKeyword(lower, food.WarmKeywords) {
		score *= multipliers.Warm
	}
	if containsAnyKeyword(lower, food.ColdKeywords) {
		score *= multipliers.Cold
	}
	if containsAnyKeyword(lower, food.RawKeywords) {
		score *= multipliers.Raw
	}

	seasonal := food.SeasonalPreferences[season]
	for _, style := range seasonal.PreferredStyles {
		if strings.Contains(lower, style) {
			score *= seasonalStyleBoost
		}
	}
	for _, ingredient := range seasonal.Ingredients {
		if strings.Contains(lower, ingredient) {
			score *= seasonalIngredientBoost
		}
	}
	for _, avoid := range seasonal.Avoid {
		if strings.Contains(lower, avoid) {
			score *= seasonalAvoidPenalty
		}
	}

	for _, preferred := range preferences {
		if preferred != "" && strings.Contains(lower, preferred) {
			score *= preferenceBoost
			break
		}
	}

	return score
}

func containsAnyKeyword(text string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
