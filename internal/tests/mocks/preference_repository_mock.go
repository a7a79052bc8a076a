package mocks

import (
	"context"
	"sync"

	"medconsult/internal/models"
)

type PreferenceRepositoryMock struct {
	LoadFunc func(ctx context.Context) (*models.PersistedPreferences, error)
	SaveFunc func(ctx context.Context, prefs models.PersistedPreferences) error

	mu    sync.Mutex
	Saved []models.PersistedPreferences
}

func (m *PreferenceRepositoryMock) Load(ctx context.Context) (*models.PersistedPreferences, error) {
	if m.LoadFunc != nil {
		return m.LoadFunc(ctx)
	}
	return nil, nil
}

func (m *PreferenceRepositoryMock) Save(ctx context.Context, prefs models.PersistedPreferences) error {
	m.mu.Lock()
	m.Saved = append(m.Saved, prefs)
	m.mu.Unlock()
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, prefs)
	}
	return nil
}

// SaveCount returns how many times Save was called.
func (m *PreferenceRepositoryMock) SaveCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Saved)
}

// LastSaved returns the most recent record passed to Save.
func (m *PreferenceRepositoryMock) LastSaved() (models.PersistedPreferences, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.Saved) == 0 {
		return models.PersistedPreferences{}, false
	}
	return m.Saved[len(m.Saved)-1], true
}
