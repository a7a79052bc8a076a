package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"medconsult/internal/models"
)

type memoryPreferenceRepository struct {
	mu  sync.Mutex
	raw string
}

// NewMemoryPreferenceRepository keeps preferences in process memory. The
// record is stored in its serialized form so Load behaves like the database
// store, including treating malformed data as absent.
func NewMemoryPreferenceRepository() PreferenceRepository {
	return &memoryPreferenceRepository{}
}

// NewMemoryPreferenceRepositoryWithRaw seeds the store with raw serialized data.
func NewMemoryPreferenceRepositoryWithRaw(raw string) PreferenceRepository {
	return &memoryPreferenceRepository{raw: raw}
}

func (r *memoryPreferenceRepository) Load(ctx context.Context) (*models.PersistedPreferences, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return decodePreferences(r.raw), nil
}

func (r *memoryPreferenceRepository) Save(ctx context.Context, prefs models.PersistedPreferences) error {
	data, err := json.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("encode preferences: %w", err)
	}
	r.mu.Lock()
	r.raw = string(data)
	r.mu.Unlock()
	return nil
}
