package main

import (
	"context"
	"fmt"

	"github.com/wailsapp/wails/v2/pkg/runtime"

	"medconsult/internal/database"
	"medconsult/internal/events"
	"medconsult/internal/i18n"
	"medconsult/internal/services"
)

// App struct
type App struct {
	ctx      context.Context
	services *services.Services
	dbClose  func() error
}

// NewApp creates a new App application struct
func NewApp() *App {
	return &App{}
}

// startup is called when the app starts. The context is saved
// so we can call the runtime methods
func (a *App) startup(ctx context.Context) {
	a.ctx = ctx
	events.EnableRuntimeEmitter()
	a.services.Startup(ctx)

	current := a.services.Settings.Get()
	runtime.LogInfo(ctx, fmt.Sprintf("started (development=%t), interface language %s, preferred language %s",
		database.IsDevelopment(), current.InterfaceLanguage, current.PreferredLanguage))
}

// shutdown is called when the app is closing. Clean up resources here.
func (a *App) shutdown(ctx context.Context) {
	a.services.Shutdown()

	// Close database connection pool
	if a.dbClose != nil {
		if err := a.dbClose(); err != nil {
			runtime.LogError(ctx, fmt.Sprintf("failed to close database: %v", err))
		} else {
			runtime.LogInfo(ctx, "database closed")
		}
		a.dbClose = nil
	}
}

// onMissingTranslation forwards translation misses to the frontend once the
// runtime is up.
func (a *App) onMissingTranslation(key, lang, fallback string) {
	if a.ctx == nil {
		return
	}
	msg := fmt.Sprintf("Translation missing for %q in %q", key, lang)
	events.Emit(a.ctx, events.TranslationMissing, events.NewWarn(msg).WithPayload(map[string]string{
		"key":      key,
		"language": lang,
		"fallback": fallback,
	}))
}

// SupportedLanguages returns the language picker entries.
func (a *App) SupportedLanguages() []i18n.Language {
	return i18n.SupportedLanguages()
}

// Translate returns the text for key in the current interface language.
func (a *App) Translate(key string) string {
	return a.services.Settings.Translate(key)
}

// TextDirection returns "rtl" or "ltr" for the current interface language.
func (a *App) TextDirection() string {
	return string(a.services.Settings.TextDirection())
}

// GetOS reports the host platform.
func (a *App) GetOS() string {
	return services.GetOS()
}
