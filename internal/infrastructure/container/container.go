// Package container assembles the application with Uber FX dependency
// injection.
package container

import (
	"context"
	"time"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
	"gorm.io/gorm"

	foodapp "github.com/mrunal1324/FOMO---Food-Mood/internal/application/food"
	moodapp "github.com/mrunal1324/FOMO---Food-Mood/internal/application/mood"
	"github.com/mrunal1324/FOMO---Food-Mood/internal/application/recommendation"
	weatherapp "github.com/mrunal1324/FOMO---Food-Mood/internal/application/weather"
	"github.com/mrunal1324/FOMO---Food-Mood/internal/infrastructure/ai"
	"github.com/mrunal1324/FOMO---Food-Mood/internal/infrastructure/ai/huggingface"
	"github.com/mrunal1324/FOMO---Food-Mood/internal/infrastructure/cache"
	"github.com/mrunal1324/FOMO---Food-Mood/internal/infrastructure/config"
	"github.com/mrunal1324/FOMO---Food-Mood/internal/infrastructure/http/handlers"
	"github.com/mrunal1324/FOMO---Food-Mood/internal/infrastructure/http/server"
	gormpersistence "github.com/mrunal1324/FOMO---Food-Mood/internal/infrastructure/persistence/gorm"
	"github.com/mrunal1324/FOMO---Food-Mood/internal/infrastructure/weather/weatherbit"
	"github.com/mrunal1324/FOMO---Food-Mood/internal/ports/outbound"
	"github.com/mrunal1324/FOMO---Food-Mood/pkg/logger"
)

// New builds the FX application.
func New(configPath string) *fx.App {
	return fx.New(
		fx.Provide(
			func() (*config.Config, error) { return config.Load(configPath) },
			newLogger,
			newDatabase,
			gormpersistence.NewProfileRepository,
			gormpersistence.NewAuditLog,
			newCacheRepository,
			newClassifier,
			newWeatherProvider,
			moodapp.NewAnalyzer,
			newScorer,
			newResolver,
			recommendation.NewService,
			handlers.NewAPIHandlers,
			server.NewServer,
		),
		fx.Invoke(registerServer),
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log.Named("fx")}
		}),
	)
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	return logger.New(logger.Config{
		Level:       cfg.App.LogLevel,
		Format:      cfg.App.LogFormat,
		Development: cfg.App.Environment == "development",
	})
}

func newDatabase(cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
	return gormpersistence.NewDatabase(cfg.Database, log)
}

// newCacheRepository picks Redis when enabled, otherwise the in-process
// cache.
func newCacheRepository(cfg *config.Config, log *zap.Logger) (outbound.CacheRepository, error) {
	if !cfg.Redis.Enabled {
		log.Info("using in-process cache")
		return cache.NewLocalCache(), nil
	}

	client, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, err
	}
	log.Info("using redis cache")
	return cache.NewRedisCache(client, log), nil
}

// newClassifier wires the HuggingFace client, wrapped with the cache when
// caching is enabled.
func newClassifier(cfg *config.Config, cacheRepo outbound.CacheRepository, log *zap.Logger) outbound.EmotionClassifier {
	client := huggingface.NewClient(cfg.Classifier, log)
	if !cfg.Classifier.EnableCache {
		return client
	}
	return ai.NewCachedClassifier(client, cacheRepo, cfg.Classifier.CacheTTL, log)
}

func newWeatherProvider(cfg *config.Config, log *zap.Logger) outbound.WeatherProvider {
	return weatherbit.NewClient(cfg.Weather, log)
}

func newScorer(cfg *config.Config, log *zap.Logger) *foodapp.Scorer {
	seed := cfg.App.SamplerSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return foodapp.NewScorer(foodapp.NewSampler(seed), log)
}

func newResolver(provider outbound.WeatherProvider, log *zap.Logger) *weatherapp.Resolver {
	return weatherapp.NewResolver(provider, log)
}

func registerServer(lc fx.Lifecycle, srv *server.Server, cfg *config.Config, log *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				if err := srv.Start(); err != nil {
					log.Fatal("server failed", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Server.ShutdownTimeout)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}
