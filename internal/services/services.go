package services

import (
	"context"
	"log"

	"gorm.io/gorm"

	"medconsult/internal/gateway"
	"medconsult/internal/i18n"
	"medconsult/internal/repositories"
)

// Services aggregates the services bound to the frontend.
type Services struct {
	Settings      SettingsService
	Consultations ConsultationService
	Speech        *SpeechService
	Reports       *ReportService
	Channel       *EventChannelService
	Keyring       *KeyringService
}

// NewServices constructs the container. Preferences live in db; a nil db
// keeps them in memory for the lifetime of the process.
func NewServices(db *gorm.DB, client *gateway.Client, keyring *KeyringService, translator *i18n.Translator) *Services {
	var prefs repositories.PreferenceRepository
	if db != nil {
		prefs = repositories.NewPreferenceRepository(db)
	} else {
		log.Printf("services: no database, preferences will not survive a restart")
		prefs = repositories.NewMemoryPreferenceRepository()
	}

	settings := NewSettingsService(prefs, translator)
	return &Services{
		Settings:      settings,
		Consultations: NewConsultationService(client, settings),
		Speech:        NewSpeechService(client, settings),
		Reports:       NewReportService(client, settings, nil),
		Channel:       NewEventChannelService(GatewayDialer{Client: client}, settings),
		Keyring:       keyring,
	}
}

// Startup hands the Wails context to every service. Settings start first so
// the stored preferences are in place before anything reads them.
func (s *Services) Startup(ctx context.Context) {
	s.Settings.Startup(ctx)
	s.Consultations.Startup(ctx)
	s.Speech.Startup(ctx)
	s.Reports.Startup(ctx)
	s.Channel.Startup(ctx)
}

// Shutdown closes the open consultation channel, if any.
func (s *Services) Shutdown() {
	s.Channel.Close()
}

// Bindings lists the values exposed to the frontend.
func (s *Services) Bindings() []interface{} {
	return []interface{}{
		s.Settings,
		s.Consultations,
		s.Speech,
		s.Reports,
		s.Channel,
		s.Keyring,
	}
}
