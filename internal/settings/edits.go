package settings

import (
	"fmt"

	"medconsult/internal/i18n"
	"medconsult/internal/models"
)

// Edit is one user change to Settings. The set of edits is closed; each
// variant replaces exactly one field.
type Edit interface {
	apply(s *models.Settings)
	Field() string
}

type SetInterfaceLanguage struct{ Code string }

type SetPreferredLanguage struct{ Code string }

type SetAutoDetect struct{ Enabled bool }

type SetVoiceEnabled struct{ Enabled bool }

type SetVoiceGender struct{ Gender models.VoiceGender }

type SetVoiceSpeed struct{ Speed float64 }

type SetShowSettingsPanel struct{ Show bool }

func (e SetInterfaceLanguage) apply(s *models.Settings) { s.InterfaceLanguage = normalizeCode(e.Code) }
func (e SetPreferredLanguage) apply(s *models.Settings) { s.PreferredLanguage = normalizeCode(e.Code) }
func (e SetAutoDetect) apply(s *models.Settings)        { s.AutoDetectLanguage = e.Enabled }
func (e SetVoiceEnabled) apply(s *models.Settings)      { s.Voice.Enabled = e.Enabled }
func (e SetVoiceGender) apply(s *models.Settings)       { s.Voice.Gender = e.Gender }
func (e SetVoiceSpeed) apply(s *models.Settings)        { s.Voice.Speed = e.Speed }
func (e SetShowSettingsPanel) apply(s *models.Settings) { s.ShowSettingsPanel = e.Show }

func (SetInterfaceLanguage) Field() string { return "interfaceLanguage" }
func (SetPreferredLanguage) Field() string { return "preferredLanguage" }
func (SetAutoDetect) Field() string        { return "autoDetectLanguage" }
func (SetVoiceEnabled) Field() string      { return "voice.enabled" }
func (SetVoiceGender) Field() string       { return "voice.gender" }
func (SetVoiceSpeed) Field() string        { return "voice.speed" }
func (SetShowSettingsPanel) Field() string { return "showSettings" }

// Apply returns current with the edit applied. On error current is returned
// unchanged.
func Apply(current models.Settings, e Edit) (models.Settings, error) {
	if e == nil {
		return current, fmt.Errorf("%w: nil edit", ErrInvalidEdit)
	}
	next := current
	e.apply(&next)
	if err := Validate(next); err != nil {
		return current, err
	}
	return next, nil
}

// Persists reports whether applying e should be written to the preference
// store. Only the settings panel flag is transient.
func Persists(e Edit) bool {
	_, transient := e.(SetShowSettingsPanel)
	return !transient
}

func normalizeCode(code string) string {
	if c, ok := i18n.Normalize(code); ok {
		return c
	}
	return code
}
