// Package settings merges default, persisted, remote and user-edited
// preferences into one Settings value. Everything here is pure; persistence
// and state live in the services layer.
package settings

import (
	"medconsult/internal/i18n"
	"medconsult/internal/models"
)

// Defaults returns the settings a fresh client starts with.
func Defaults() models.Settings {
	return models.Settings{
		InterfaceLanguage:  i18n.DefaultLanguage,
		PreferredLanguage:  i18n.DefaultLanguage,
		AutoDetectLanguage: true,
		Voice: models.VoiceSettings{
			Enabled: true,
			Gender:  models.VoiceFemale,
			Speed:   1,
		},
	}
}

// FromPersisted overlays the fields present in p onto base. Absent fields, and
// stored values that would break an invariant, keep the base value.
func FromPersisted(base models.Settings, p *models.PersistedPreferences) models.Settings {
	if p == nil {
		return base
	}
	out := base

	if p.Interface != nil && i18n.IsSupported(*p.Interface) {
		out.InterfaceLanguage = *p.Interface
	}
	if p.Preferred != nil && i18n.IsSupported(*p.Preferred) {
		out.PreferredLanguage = *p.Preferred
	}
	if p.AutoDetect != nil {
		out.AutoDetectLanguage = *p.AutoDetect
	}
	if v := p.Voice; v != nil {
		if v.Enabled != nil {
			out.Voice.Enabled = *v.Enabled
		}
		if v.Gender != nil && validGender(*v.Gender) {
			out.Voice.Gender = *v.Gender
		}
		if v.Speed != nil && *v.Speed > 0 {
			out.Voice.Speed = *v.Speed
		}
	}
	return out
}

// Project returns the persisted subset of s. The settings panel flag is left out.
func Project(s models.Settings) models.PersistedPreferences {
	iface := s.InterfaceLanguage
	preferred := s.PreferredLanguage
	autoDetect := s.AutoDetectLanguage
	enabled := s.Voice.Enabled
	gender := s.Voice.Gender
	speed := s.Voice.Speed

	return models.PersistedPreferences{
		Interface:  &iface,
		Preferred:  &preferred,
		AutoDetect: &autoDetect,
		Voice: &models.PersistedVoice{
			Enabled: &enabled,
			Gender:  &gender,
			Speed:   &speed,
		},
	}
}

// OverlayRemote applies the server's language preferences to s. Only present,
// supported values are taken; everything else is left as it was.
func OverlayRemote(s models.Settings, remote *models.LanguagePreferences) models.Settings {
	if remote == nil {
		return s
	}
	if remote.Preferred != nil {
		if code, ok := i18n.Normalize(*remote.Preferred); ok {
			s.PreferredLanguage = code
		}
	}
	if remote.Interface != nil {
		if code, ok := i18n.Normalize(*remote.Interface); ok {
			s.InterfaceLanguage = code
		}
	}
	return s
}

func validGender(g models.VoiceGender) bool {
	return g == models.VoiceMale || g == models.VoiceFemale
}
