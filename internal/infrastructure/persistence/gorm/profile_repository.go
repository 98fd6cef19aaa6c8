package gorm

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mrunal1324/FOMO---Food-Mood/internal/domain/mood"
	"github.com/mrunal1324/FOMO---Food-Mood/internal/domain/profile"
	"github.com/mrunal1324/FOMO---Food-Mood/internal/ports/outbound"
	apperrors "github.com/mrunal1324/FOMO---Food-Mood/pkg/errors"
)

// ProfileRepository persists the singleton profile using GORM.
type ProfileRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewProfileRepository creates a profile repository.
func NewProfileRepository(db *gorm.DB, logger *zap.Logger) outbound.ProfileRepository {
	return &ProfileRepository{
		db:     db,
		logger: logger.Named("profile-repository"),
	}
}

// Load returns the stored profile, creating and persisting a default one
// when no row exists yet.
func (r *ProfileRepository) Load(ctx context.Context) (*profile.Profile, error) {
	var model ProfileModel
	err := r.db.WithContext(ctx).First(&model, "id = ?", profileRowID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		fresh := profile.New()
		if saveErr := r.Save(ctx, fresh); saveErr != nil {
			return nil, saveErr
		}
		r.logger.Info("created default profile")
		return fresh, nil
	}
	if err != nil {
		return nil, apperrors.NewPersistenceError("load profile", err)
	}

	var entryModels []HistoryEntryModel
	if err := r.db.WithContext(ctx).Order("timestamp asc").Find(&entryModels).Error; err != nil {
		return nil, apperrors.NewPersistenceError("load history", err)
	}

	preferences := make(map[mood.Mood][]string, len(model.Preferences))
	for label, foods := range model.Preferences {
		preferences[mood.Mood(label)] = foods
	}

	history := make([]profile.HistoryEntry, len(entryModels))
	for i, e := range entryModels {
		history[i] = profile.HistoryEntry{
			ID:        e.ID,
			Timestamp: e.Timestamp,
			Mood:      mood.Mood(e.Mood),
			Food:      e.Food,
		}
	}

	return profile.Restore(preferences, history, model.Location, model.WeatherEnabled, model.UpdatedAt), nil
}

// Save writes the profile row and appends any history entries not yet
// stored. History rows are keyed by entry ID so re-saving is idempotent.
func (r *ProfileRepository) Save(ctx context.Context, p *profile.Profile) error {
	preferences := make(PreferenceMap)
	for m, foods := range p.Preferences() {
		preferences[m.String()] = foods
	}

	model := ProfileModel{
		ID:             profileRowID,
		Location:       p.Location(),
		WeatherEnabled: p.WeatherEnabled(),
		Preferences:    preferences,
		UpdatedAt:      p.UpdatedAt(),
	}

	history := p.History()
	entryModels := make([]HistoryEntryModel, len(history))
	for i, e := range history {
		entryModels[i] = HistoryEntryModel{
			ID:        e.ID,
			Timestamp: e.Timestamp,
			Mood:      e.Mood.String(),
			Food:      e.Food,
		}
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&model).Error; err != nil {
			return err
		}
		if len(entryModels) > 0 {
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&entryModels).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return apperrors.NewPersistenceError("save profile", err)
	}
	return nil
}
