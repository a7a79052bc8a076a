package models

import "time"

// VoiceGender selects the synthesized voice.
type VoiceGender string

const (
	VoiceMale   VoiceGender = "male"
	VoiceFemale VoiceGender = "female"
)

// VoiceSettings holds the speech output preferences.
type VoiceSettings struct {
	Enabled bool        `json:"enabled"`
	Gender  VoiceGender `json:"gender" validate:"oneof=male female"`
	Speed   float64     `json:"speed" validate:"gt=0"`
}

// Settings is the client's authoritative language and voice state.
// ShowSettingsPanel is a UI flag and is never persisted.
type Settings struct {
	InterfaceLanguage  string        `json:"interfaceLanguage" validate:"langcode"`
	PreferredLanguage  string        `json:"preferredLanguage" validate:"langcode"`
	AutoDetectLanguage bool          `json:"autoDetectLanguage"`
	Voice              VoiceSettings `json:"voice"`
	ShowSettingsPanel  bool          `json:"showSettings"`
}

// PersistedVoice is the stored form of VoiceSettings. Absent fields are nil.
type PersistedVoice struct {
	Enabled *bool        `json:"enabled,omitempty"`
	Gender  *VoiceGender `json:"gender,omitempty"`
	Speed   *float64     `json:"speed,omitempty"`
}

// PersistedPreferences is the record kept under the preferences key.
type PersistedPreferences struct {
	Interface  *string         `json:"interface,omitempty"`
	Preferred  *string         `json:"preferred,omitempty"`
	AutoDetect *bool           `json:"autoDetect,omitempty"`
	Voice      *PersistedVoice `json:"voice,omitempty"`
}

// Preference is a single key/value row in the preferences table.
type Preference struct {
	Key       string `gorm:"primaryKey;size:120"`
	Value     string `gorm:"type:text;not null"`
	UpdatedAt time.Time
}
