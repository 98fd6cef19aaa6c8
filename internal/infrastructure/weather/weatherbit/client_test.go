package weatherbit

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mrunal1324/FOMO---Food-Mood/internal/infrastructure/config"
)

func testConfig(baseURL, apiKey string) config.WeatherConfig {
	return config.WeatherConfig{
		BaseURL:        baseURL,
		APIKey:         apiKey,
		Timeout:        2 * time.Second,
		RequestsPerSec: 100,
	}
}

func TestConfigured(t *testing.T) {
	assert.True(t, NewClient(testConfig("http://example.com", "key"), zap.NewNop()).Configured())
	assert.False(t, NewClient(testConfig("http://example.com", ""), zap.NewNop()).Configured())
}

func TestCurrentParsesObservation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/current", r.URL.Path)
		query := r.URL.Query()
		assert.Equal(t, "London", query.Get("city"))
		assert.Equal(t, "test-key", query.Get("key"))
		assert.Equal(t, "I", query.Get("units"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[{"temp":68.5,"rh":55,"wind_spd":7.2,"clouds":25,"precip":0,"weather":{"code":801}}]}`))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL, "test-key"), zap.NewNop())

	obs, err := client.Current(context.Background(), "London")
	require.NoError(t, err)
	assert.Equal(t, 68.5, obs.Temperature)
	assert.Equal(t, 55.0, obs.Humidity)
	assert.Equal(t, 7.2, obs.WindSpeed)
	assert.Equal(t, 25.0, obs.CloudCover)
	assert.Equal(t, 0.0, obs.Precipitation)
	assert.Equal(t, 801, obs.ConditionCode)
}

func TestCurrentEmptyData(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"data":[]}`))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL, "test-key"), zap.NewNop())

	_, err := client.Current(context.Background(), "Atlantis")
	assert.ErrorContains(t, err, "no weather data")
}

func TestCurrentWithoutKey(t *testing.T) {
	client := NewClient(testConfig("http://example.com", ""), zap.NewNop())

	_, err := client.Current(context.Background(), "London")
	assert.ErrorContains(t, err, "not configured")
}
