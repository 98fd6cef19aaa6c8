package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "foodmood", cfg.App.Name)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "https://api-inference.huggingface.co", cfg.Classifier.BaseURL)
	assert.Equal(t, "SamLowe/roberta-base-go_emotions", cfg.Classifier.Model)
	assert.Equal(t, 3, cfg.Classifier.TopK)
	assert.True(t, cfg.Classifier.EnableCache)
	assert.Equal(t, "https://api.weatherbit.io/v2.0", cfg.Weather.BaseURL)
	assert.Equal(t, "foodmood.db", cfg.Database.Path)
	assert.False(t, cfg.Redis.Enabled)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte("server:\n  port: 9090\napp:\n  log_level: debug\n")
	require.NoError(t, os.WriteFile(path, content, 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.App.LogLevel)
	// Untouched keys keep their defaults.
	assert.Equal(t, "foodmood.db", cfg.Database.Path)
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		cfg, err := Load("")
		require.NoError(t, err)
		return cfg
	}

	cfg := base()
	cfg.Server.Port = 0
	assert.ErrorContains(t, cfg.Validate(), "port")

	cfg = base()
	cfg.Classifier.BaseURL = ""
	assert.ErrorContains(t, cfg.Validate(), "base URL")

	cfg = base()
	cfg.Classifier.TopK = 2
	assert.ErrorContains(t, cfg.Validate(), "top_k")

	cfg = base()
	cfg.Database.Path = ""
	assert.ErrorContains(t, cfg.Validate(), "database path")
}
