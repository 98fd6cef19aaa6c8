// Package huggingface implements the emotion classifier port against the
// HuggingFace inference API.
package huggingface

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/mrunal1324/FOMO---Food-Mood/internal/domain/mood"
	"github.com/mrunal1324/FOMO---Food-Mood/internal/infrastructure/config"
	"github.com/mrunal1324/FOMO---Food-Mood/internal/ports/outbound"
)

// Client calls a text-classification model hosted on the HuggingFace
// inference API. Calls are rate limited client-side and bounded by the
// configured timeout.
type Client struct {
	baseURL string
	apiKey  string
	model   string
	topK    int
	client  *http.Client
	limiter *rate.Limiter
	logger  *zap.Logger
}

// NewClient creates a classifier client from configuration.
func NewClient(cfg config.ClassifierConfig, logger *zap.Logger) outbound.EmotionClassifier {
	rps := cfg.RequestsPerSec
	if rps <= 0 {
		rps = 1
	}
	return &Client{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
		topK:    cfg.TopK,
		client:  &http.Client{Timeout: cfg.Timeout},
		limiter: rate.NewLimiter(rate.Limit(rps), 1),
		logger:  logger.Named("huggingface"),
	}
}

type classifyRequest struct {
	Inputs     string          `json:"inputs"`
	Parameters map[string]any  `json:"parameters,omitempty"`
	Options    map[string]bool `json:"options,omitempty"`
}

type classifyResult struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// Classify returns the model's top emotions for the text, ordered by the
// model.
func (c *Client) Classify(ctx context.Context, text string) ([]mood.EmotionScore, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	payload := classifyRequest{
		Inputs:     text,
		Parameters: map[string]any{"top_k": c.topK},
		Options:    map[string]bool{"wait_for_model": true},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshaling classify request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s", c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating classify request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling classifier: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.logger.Warn("classifier returned non-success status",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", raw),
		)
		return nil, fmt.Errorf("classifier returned status %d", resp.StatusCode)
	}

	// The inference API nests results one level deep for single inputs.
	var nested [][]classifyResult
	if err := json.NewDecoder(resp.Body).Decode(&nested); err != nil {
		return nil, fmt.Errorf("decoding classifier response: %w", err)
	}
	if len(nested) == 0 || len(nested[0]) == 0 {
		return nil, fmt.Errorf("classifier returned no emotions")
	}

	scores := make([]mood.EmotionScore, len(nested[0]))
	for i, r := range nested[0] {
		scores[i] = mood.EmotionScore{Label: r.Label, Confidence: r.Score}
	}
	return scores, nil
}
