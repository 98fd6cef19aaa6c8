// Package ai provides classifier middleware: result caching in front of
// the wire client so repeated texts skip the network round trip.
package ai

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/mrunal1324/FOMO---Food-Mood/internal/domain/mood"
	"github.com/mrunal1324/FOMO---Food-Mood/internal/infrastructure/cache"
	"github.com/mrunal1324/FOMO---Food-Mood/internal/ports/outbound"
)

// CachedClassifier wraps an emotion classifier with a cache. Cache failures
// are logged and ignored; they never block classification.
type CachedClassifier struct {
	inner  outbound.EmotionClassifier
	cache  outbound.CacheRepository
	ttl    time.Duration
	logger *zap.Logger
}

// NewCachedClassifier creates the caching wrapper.
func NewCachedClassifier(inner outbound.EmotionClassifier, cacheRepo outbound.CacheRepository, ttl time.Duration, logger *zap.Logger) outbound.EmotionClassifier {
	return &CachedClassifier{
		inner:  inner,
		cache:  cacheRepo,
		ttl:    ttl,
		logger: logger.Named("classifier-cache"),
	}
}

// Classify returns cached emotions when available, otherwise delegates and
// stores the result.
func (c *CachedClassifier) Classify(ctx context.Context, text string) ([]mood.EmotionScore, error) {
	key := cacheKey(text)

	if cached, err := c.cache.Get(ctx, key); err == nil {
		var scores []mood.EmotionScore
		if err := json.Unmarshal(cached, &scores); err == nil && len(scores) > 0 {
			c.logger.Debug("classifier cache hit", zap.String("key", key))
			return scores, nil
		}
	} else if !errors.Is(err, cache.ErrCacheMiss) {
		c.logger.Warn("classifier cache read failed", zap.Error(err))
	}

	scores, err := c.inner.Classify(ctx, text)
	if err != nil {
		return nil, err
	}

	if encoded, err := json.Marshal(scores); err == nil {
		if err := c.cache.Set(ctx, key, encoded, c.ttl); err != nil {
			c.logger.Warn("classifier cache write failed", zap.Error(err))
		}
	}
	return scores, nil
}

// cacheKey hashes the normalized text so arbitrary input never becomes a
// raw cache key.
func cacheKey(text string) string {
	sum := sha256.Sum256([]byte(strings.ToLower(strings.TrimSpace(text))))
	return "classifier:" + hex.EncodeToString(sum[:])
}
