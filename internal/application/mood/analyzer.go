// Package mood implements the mood inference use case: a deterministic
// keyword pass over the lexicon with the external emotion classifier as a
// fallback oracle.
package mood

import (
	"context"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/mrunal1324/FOMO---Food-Mood/internal/domain/mood"
	"github.com/mrunal1324/FOMO---Food-Mood/internal/ports/outbound"
	"github.com/mrunal1324/FOMO---Food-Mood/pkg/errors"
)

const (
	baseIntensity       = 0.7
	intensifierBonus    = 0.2
	contextWordBonus    = 0.1
	contextPhraseBonus  = 0.15
	keywordAcceptCutoff = 0.5
	lowConfidenceCutoff = 0.6
	secondaryScanCutoff = 0.5
)

// Analyzer turns free text into a mood analysis.
type Analyzer struct {
	classifier outbound.EmotionClassifier
	logger     *zap.Logger
}

// NewAnalyzer creates a mood analyzer.
func NewAnalyzer(classifier outbound.EmotionClassifier, logger *zap.Logger) *Analyzer {
	return &Analyzer{
		classifier: classifier,
		logger:     logger.Named("mood-analyzer"),
	}
}

// Analyze produces a mood analysis for the given text. Empty or whitespace
// text is rejected before any work happens. The classifier is only
// consulted when the keyword pass is inconclusive; a classifier that
// returns nothing is fatal to the call.
func (a *Analyzer) Analyze(ctx context.Context, text string) (*mood.Analysis, error) {
	if strings.TrimSpace(text) == "" {
		return nil, errors.NewValidationError("text must not be empty")
	}

	lower := strings.ToLower(text)
	words := strings.Fields(lower)
	negated := hasNegation(words)

	if best := a.keywordPass(lower, words, negated); best != nil && best.Intensity > keywordAcceptCutoff {
		a.logger.Debug("keyword pass resolved mood",
			zap.String("mood", best.Mood.String()),
			zap.Float64("intensity", best.Intensity),
			zap.Bool("negated", negated),
		)
		return best, nil
	}

	return a.classifierPass(ctx, text, negated)
}

// keywordPass scans the lexicon in its fixed order and returns the best
// match, or nil when no mood keyword occurs in the text. Ties keep the
// earlier mood.
func (a *Analyzer) keywordPass(lower string, words []string, negated bool) *mood.Analysis {
	var best *mood.Analysis
	bestIntensity := 0.0

	for _, m := range mood.KeywordOrder {
		entry := mood.Keywords[m]
		if !containsAnySubstring(lower, entry.Keywords) {
			continue
		}

		intensity := baseIntensity

		if anyWordIn(words, entry.Intensifiers) {
			intensity = capAt(intensity+intensifierBonus, 1.0)
		}

		if n := countWordsIn(words, entry.Context); n > 0 {
			intensity = capAt(intensity+contextWordBonus*float64(n), 1.0)
		}

		if phrases, ok := mood.EmotionalContext[m]; ok {
			for _, phrase := range phrases.Positive {
				if strings.Contains(lower, phrase) {
					intensity = capAt(intensity+contextPhraseBonus, 1.0)
				}
			}
			for _, phrase := range phrases.Negative {
				if strings.Contains(lower, phrase) {
					intensity = floorAt(intensity-contextPhraseBonus, 0.0)
				}
			}
		}

		label := m
		if negated {
			intensity = 1.0 - intensity
			label = mood.Opposite(m)
		}

		if intensity > bestIntensity {
			bestIntensity = intensity
			best = &mood.Analysis{
				Mood:              label,
				Intensity:         intensity,
				TopEmotion:        label.String(),
				SecondaryEmotions: []string{},
				RawEmotionScores:  []mood.EmotionScore{},
			}
		}
	}

	return best
}

// classifierPass consults the external emotion classifier and applies the
// compound-pattern and low-confidence correction rules.
func (a *Analyzer) classifierPass(ctx context.Context, text string, negated bool) (*mood.Analysis, error) {
	scores, err := a.classifier.Classify(ctx, text)
	if err != nil {
		a.logger.Error("emotion classifier call failed", zap.Error(err))
		return nil, errors.NewClassifierUnavailableError(err)
	}
	if len(scores) == 0 {
		a.logger.Error("emotion classifier returned no emotions")
		return nil, errors.NewClassifierUnavailableError(nil)
	}

	emotions := make([]mood.EmotionScore, len(scores))
	for i, s := range scores {
		confidence := s.Confidence
		if negated {
			confidence = 1.0 - confidence
		}
		emotions[i] = mood.EmotionScore{
			Label:      strings.ToLower(s.Label),
			Confidence: confidence,
		}
	}
	sort.SliceStable(emotions, func(i, j int) bool {
		return emotions[i].Confidence > emotions[j].Confidence
	})

	if analysis := matchCompound(emotions); analysis != nil {
		a.logger.Debug("compound emotion pattern matched",
			zap.String("mood", analysis.Mood.String()),
		)
		return analysis, nil
	}

	top := emotions[0]
	mapped := mood.MapEmotion(top.Label)
	intensity := top.Confidence
	topEmotion := top.Label

	// Low-confidence correction: the first secondary emotion with decent
	// confidence that maps to a non-neutral mood takes over.
	if intensity < lowConfidenceCutoff || mapped == mood.MoodNeutral {
		for _, e := range emotions[1:] {
			if e.Confidence <= secondaryScanCutoff {
				continue
			}
			candidate, known := mood.EmotionToMood[e.Label]
			if known && candidate != mood.MoodNeutral {
				mapped = candidate
				intensity = e.Confidence
				topEmotion = e.Label
				break
			}
		}
	}

	secondary := make([]string, 0, len(emotions)-1)
	for _, e := range emotions[1:] {
		secondary = append(secondary, e.Label)
	}

	return &mood.Analysis{
		Mood:              mapped,
		Intensity:         intensity,
		TopEmotion:        topEmotion,
		SecondaryEmotions: secondary,
		RawEmotionScores:  emotions,
	}, nil
}

// matchCompound returns the analysis for the first compound pattern whose
// two emotions are both present in the detected set, or nil.
func matchCompound(emotions []mood.EmotionScore) *mood.Analysis {
	for _, m := range mood.CompoundOrder {
		for _, pattern := range mood.CompoundPatterns[m] {
			if !hasEmotion(emotions, pattern.First) || !hasEmotion(emotions, pattern.Second) {
				continue
			}

			maxConfidence := 0.0
			secondary := make([]string, 0, len(emotions))
			for _, e := range emotions {
				if e.Confidence > maxConfidence {
					maxConfidence = e.Confidence
				}
				if e.Label != pattern.First && e.Label != pattern.Second {
					secondary = append(secondary, e.Label)
				}
			}

			return &mood.Analysis{
				Mood:              m,
				Intensity:         maxConfidence,
				TopEmotion:        m.String(),
				SecondaryEmotions: secondary,
				RawEmotionScores:  emotions,
			}
		}
	}
	return nil
}

func hasNegation(words []string) bool {
	return anyWordIn(words, mood.NegationWords)
}

func hasEmotion(emotions []mood.EmotionScore, label string) bool {
	for _, e := range emotions {
		if e.Label == label {
			return true
		}
	}
	return false
}

func containsAnySubstring(text string, subs []string) bool {
	for _, s := range subs {
		if strings.Contains(text, s) {
			return true
		}
	}
	return false
}

func anyWordIn(words, set []string) bool {
	for _, w := range words {
		for _, s := range set {
			if w == s {
				return true
			}
		}
	}
	return false
}

func countWordsIn(words, set []string) int {
	count := 0
	for _, w := range words {
		for _, s := range set {
			if w == s {
				count++
				break
			}
		}
	}
	return count
}

func capAt(v, max float64) float64 {
	if v > max {
		return max
	}
	return v
}

func floorAt(v, min float64) float64 {
	if v < min {
		return min
	}
	return v
}
