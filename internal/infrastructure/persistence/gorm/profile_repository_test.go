package gorm

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	gormdb "gorm.io/gorm"

	"github.com/mrunal1324/FOMO---Food-Mood/internal/domain/mood"
	"github.com/mrunal1324/FOMO---Food-Mood/internal/domain/profile"
	"github.com/mrunal1324/FOMO---Food-Mood/internal/infrastructure/config"
)

func testDB(t *testing.T) *gormdb.DB {
	t.Helper()
	cfg := config.DatabaseConfig{Path: filepath.Join(t.TempDir(), "test.db")}
	db, err := NewDatabase(cfg, zap.NewNop())
	require.NoError(t, err)
	return db
}

func TestLoadCreatesDefaultProfile(t *testing.T) {
	repo := NewProfileRepository(testDB(t), zap.NewNop())

	p, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, profile.DefaultLocation, p.Location())
	assert.True(t, p.WeatherEnabled())
	assert.Empty(t, p.History())
}

func TestSaveLoadRoundTrip(t *testing.T) {
	gofakeit.Seed(23)
	db := testDB(t)
	repo := NewProfileRepository(db, zap.NewNop())
	ctx := context.Background()

	p, err := repo.Load(ctx)
	require.NoError(t, err)

	now := time.Now().UTC().Truncate(time.Second)
	p.AddPreference(mood.MoodHappy, "Rainbow sushi roll", now)
	p.AddPreference(mood.MoodSad, gofakeit.Dessert(), now.Add(time.Minute))
	p.SetLocation("Tokyo", now.Add(2*time.Minute))
	require.NoError(t, repo.Save(ctx, p))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Tokyo", loaded.Location())
	assert.Equal(t, []string{"rainbow sushi roll"}, loaded.PreferencesFor(mood.MoodHappy))

	history := loaded.History()
	require.Len(t, history, 2)
	assert.Equal(t, mood.MoodHappy, history[0].Mood)
	assert.Equal(t, mood.MoodSad, history[1].Mood)
}

func TestSaveIsIdempotentForHistory(t *testing.T) {
	db := testDB(t)
	repo := NewProfileRepository(db, zap.NewNop())
	ctx := context.Background()

	p, err := repo.Load(ctx)
	require.NoError(t, err)
	p.AddPreference(mood.MoodLazy, "One-pot pasta dish", time.Now())

	// Saving the same profile twice must not duplicate history rows.
	require.NoError(t, repo.Save(ctx, p))
	require.NoError(t, repo.Save(ctx, p))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, loaded.History(), 1)
}

func TestWeatherToggleSurvivesRestart(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	repo := NewProfileRepository(db, zap.NewNop())
	p, err := repo.Load(ctx)
	require.NoError(t, err)
	p.ToggleWeather(time.Now())
	require.NoError(t, repo.Save(ctx, p))

	// A fresh repository over the same database sees the persisted flag.
	reopened := NewProfileRepository(db, zap.NewNop())
	loaded, err := reopened.Load(ctx)
	require.NoError(t, err)
	assert.False(t, loaded.WeatherEnabled())
}

func TestAuditLogAppend(t *testing.T) {
	db := testDB(t)
	audit := NewAuditLog(db, zap.NewNop())

	require.NoError(t, audit.Append(context.Background(), map[string]any{
		"endpoint": "/api/v1/recommendations",
		"text":     "feeling happy",
	}))
	require.NoError(t, audit.Append(context.Background(), map[string]any{"text": "again"}))

	var count int64
	require.NoError(t, db.Model(&AuditRecordModel{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)

	var record AuditRecordModel
	require.NoError(t, db.Order("id asc").First(&record).Error)
	assert.Equal(t, "feeling happy", record.Payload["text"])
}
