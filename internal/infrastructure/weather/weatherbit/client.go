// Package weatherbit implements the weather provider port against the
// Weatherbit current-conditions API.
package weatherbit

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/mrunal1324/FOMO---Food-Mood/internal/infrastructure/config"
	"github.com/mrunal1324/FOMO---Food-Mood/internal/ports/outbound"
)

// Client fetches current conditions from Weatherbit in imperial units.
type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
	limiter *rate.Limiter
	logger  *zap.Logger
}

// NewClient creates a Weatherbit client from configuration. An empty API
// key produces an unconfigured client; the resolver then always takes the
// seasonal fallback.
func NewClient(cfg config.WeatherConfig, logger *zap.Logger) outbound.WeatherProvider {
	rps := cfg.RequestsPerSec
	if rps <= 0 {
		rps = 1
	}
	return &Client{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		client:  &http.Client{Timeout: cfg.Timeout},
		limiter: rate.NewLimiter(rate.Limit(rps), 1),
		logger:  logger.Named("weatherbit"),
	}
}

// Configured reports whether an API key is present.
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

type currentResponse struct {
	Data []struct {
		Temp     float64 `json:"temp"`
		Humidity float64 `json:"rh"`
		WindSpd  float64 `json:"wind_spd"`
		Clouds   float64 `json:"clouds"`
		Precip   float64 `json:"precip"`
		Weather  struct {
			Code int `json:"code"`
		} `json:"weather"`
	} `json:"data"`
}

// Current returns the current observation for the city.
func (c *Client) Current(ctx context.Context, city string) (*outbound.WeatherObservation, error) {
	if !c.Configured() {
		return nil, fmt.Errorf("weatherbit API key not configured")
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("city", city)
	params.Set("key", c.apiKey)
	params.Set("units", "I")

	endpoint := fmt.Sprintf("%s/current?%s", c.baseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("creating weather request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling weather service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("weather service returned non-success status",
			zap.Int("status", resp.StatusCode),
			zap.String("city", city),
		)
		return nil, fmt.Errorf("weather service returned status %d", resp.StatusCode)
	}

	var body currentResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decoding weather response: %w", err)
	}
	if len(body.Data) == 0 {
		return nil, fmt.Errorf("no weather data found for %q", city)
	}

	current := body.Data[0]
	return &outbound.WeatherObservation{
		Temperature:   current.Temp,
		Humidity:      current.Humidity,
		WindSpeed:     current.WindSpd,
		CloudCover:    current.Clouds,
		Precipitation: current.Precip,
		ConditionCode: current.Weather.Code,
	}, nil
}
