package services

import (
	"context"
	"log"
	"sync"

	"medconsult/internal/events"
	"medconsult/internal/i18n"
	"medconsult/internal/models"
	"medconsult/internal/repositories"
	"medconsult/internal/settings"
)

type SettingsService interface {
	Startup(ctx context.Context)
	Get() models.Settings
	SetInterfaceLanguage(code string) (models.Settings, error)
	SetPreferredLanguage(code string) (models.Settings, error)
	SetAutoDetectLanguage(enabled bool) (models.Settings, error)
	SetVoiceEnabled(enabled bool) (models.Settings, error)
	SetVoiceGender(gender models.VoiceGender) (models.Settings, error)
	SetVoiceSpeed(speed float64) (models.Settings, error)
	SetShowSettingsPanel(show bool) (models.Settings, error)
	// ApplyRemote overlays server supplied language preferences for the
	// current session only. Nothing is written back to the store.
	ApplyRemote(prefs *models.LanguagePreferences) models.Settings
	Translate(key string) string
	TextDirection() i18n.Direction
}

type settingsService struct {
	preferences repositories.PreferenceRepository
	translator  *i18n.Translator
	context     context.Context

	mu      sync.Mutex
	current models.Settings
}

func NewSettingsService(preferences repositories.PreferenceRepository, translator *i18n.Translator) SettingsService {
	if translator == nil {
		translator = i18n.NewTranslator()
	}
	return &settingsService{
		preferences: preferences,
		translator:  translator,
		current:     settings.Defaults(),
	}
}

// Startup builds the initial state from the defaults and the stored record.
func (s *settingsService) Startup(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.context = ctx

	stored, err := s.preferences.Load(s.ctx())
	if err != nil {
		log.Printf("settings: loading stored preferences: %v", err)
		stored = nil
	}
	s.current = settings.FromPersisted(settings.Defaults(), stored)
}

func (s *settingsService) Get() models.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// apply runs one typed edit. It stays unexported so Wails does not bind it;
// the frontend goes through the setters.
func (s *settingsService) apply(edit settings.Edit) (models.Settings, error) {
	s.mu.Lock()
	next, err := settings.Apply(s.current, edit)
	if err != nil {
		current := s.current
		s.mu.Unlock()
		return current, err
	}
	s.current = next

	var saveErr error
	if settings.Persists(edit) {
		saveErr = s.preferences.Save(s.ctx(), settings.Project(next))
	}
	ctx := s.ctx()
	s.mu.Unlock()

	events.Emit(ctx, events.SettingsChanged, events.NewInfo(edit.Field()).WithPayload(next))
	if saveErr != nil {
		log.Printf("settings: saving preferences: %v", saveErr)
		events.Emit(ctx, events.Notification, events.NewWarn("Your preferences could not be saved"))
	}
	return next, nil
}

func (s *settingsService) SetInterfaceLanguage(code string) (models.Settings, error) {
	return s.apply(settings.SetInterfaceLanguage{Code: code})
}

func (s *settingsService) SetPreferredLanguage(code string) (models.Settings, error) {
	return s.apply(settings.SetPreferredLanguage{Code: code})
}

func (s *settingsService) SetAutoDetectLanguage(enabled bool) (models.Settings, error) {
	return s.apply(settings.SetAutoDetect{Enabled: enabled})
}

func (s *settingsService) SetVoiceEnabled(enabled bool) (models.Settings, error) {
	return s.apply(settings.SetVoiceEnabled{Enabled: enabled})
}

func (s *settingsService) SetVoiceGender(gender models.VoiceGender) (models.Settings, error) {
	return s.apply(settings.SetVoiceGender{Gender: gender})
}

func (s *settingsService) SetVoiceSpeed(speed float64) (models.Settings, error) {
	return s.apply(settings.SetVoiceSpeed{Speed: speed})
}

func (s *settingsService) SetShowSettingsPanel(show bool) (models.Settings, error) {
	return s.apply(settings.SetShowSettingsPanel{Show: show})
}

func (s *settingsService) ApplyRemote(prefs *models.LanguagePreferences) models.Settings {
	s.mu.Lock()
	s.current = settings.OverlayRemote(s.current, prefs)
	next, ctx := s.current, s.ctx()
	s.mu.Unlock()

	events.Emit(ctx, events.SettingsChanged, events.NewInfo("remote").WithPayload(next))
	return next
}

func (s *settingsService) Translate(key string) string {
	return s.translator.Get(key, s.Get().InterfaceLanguage)
}

func (s *settingsService) TextDirection() i18n.Direction {
	return i18n.TextDirection(s.Get().InterfaceLanguage)
}

func (s *settingsService) ctx() context.Context {
	if s.context == nil {
		return context.Background()
	}
	return s.context
}
