package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"medconsult/internal/models"
)

// PreferencesKey is the fixed storage key for the user's language and voice
// preferences.
const PreferencesKey = "userLanguagePreferences"

// PreferenceRepository persists the user's last chosen settings subset.
// Load returns nil with no error when nothing usable is stored.
type PreferenceRepository interface {
	Load(ctx context.Context) (*models.PersistedPreferences, error)
	Save(ctx context.Context, prefs models.PersistedPreferences) error
}

type preferenceRepository struct {
	db *gorm.DB
}

func NewPreferenceRepository(db *gorm.DB) PreferenceRepository {
	return &preferenceRepository{db: db}
}

func (r *preferenceRepository) Load(ctx context.Context) (*models.PersistedPreferences, error) {
	var row models.Preference
	if err := r.db.WithContext(ctx).Where(&models.Preference{Key: PreferencesKey}).Take(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return decodePreferences(row.Value), nil
}

func (r *preferenceRepository) Save(ctx context.Context, prefs models.PersistedPreferences) error {
	data, err := json.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("encode preferences: %w", err)
	}
	row := models.Preference{
		Key:       PreferencesKey,
		Value:     string(data),
		UpdatedAt: time.Now(),
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&row).Error
}

// decodePreferences treats malformed stored data as absent.
func decodePreferences(raw string) *models.PersistedPreferences {
	if raw == "" || raw == "null" {
		return nil
	}
	var prefs models.PersistedPreferences
	if err := json.Unmarshal([]byte(raw), &prefs); err != nil {
		log.Printf("preferences: ignoring malformed record %q: %v", PreferencesKey, err)
		return nil
	}
	return &prefs
}
