package settings

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medconsult/internal/models"
)

func ptr[T any](v T) *T { return &v }

func TestDefaults(t *testing.T) {
	d := Defaults()

	assert.Equal(t, "en", d.InterfaceLanguage)
	assert.Equal(t, "en", d.PreferredLanguage)
	assert.True(t, d.AutoDetectLanguage)
	assert.Equal(t, models.VoiceSettings{Enabled: true, Gender: models.VoiceFemale, Speed: 1}, d.Voice)
	assert.False(t, d.ShowSettingsPanel)
	assert.NoError(t, Validate(d))
}

func TestFromPersisted_Nil(t *testing.T) {
	assert.Equal(t, Defaults(), FromPersisted(Defaults(), nil))
}

func TestFromPersisted_MissingFieldsKeepDefaults(t *testing.T) {
	got := FromPersisted(Defaults(), &models.PersistedPreferences{
		Interface: ptr("hi"),
		Voice:     &models.PersistedVoice{Gender: ptr(models.VoiceMale)},
	})

	assert.Equal(t, "hi", got.InterfaceLanguage)
	assert.Equal(t, "en", got.PreferredLanguage)
	assert.True(t, got.AutoDetectLanguage)
	assert.Equal(t, models.VoiceSettings{Enabled: true, Gender: models.VoiceMale, Speed: 1}, got.Voice)
}

func TestFromPersisted_ExplicitFalseWins(t *testing.T) {
	got := FromPersisted(Defaults(), &models.PersistedPreferences{
		AutoDetect: ptr(false),
		Voice:      &models.PersistedVoice{Enabled: ptr(false)},
	})

	assert.False(t, got.AutoDetectLanguage)
	assert.False(t, got.Voice.Enabled)
	assert.Equal(t, models.VoiceFemale, got.Voice.Gender)
}

func TestFromPersisted_IgnoresInvalidValues(t *testing.T) {
	got := FromPersisted(Defaults(), &models.PersistedPreferences{
		Interface: ptr("klingon"),
		Preferred: ptr("ta"),
		Voice: &models.PersistedVoice{
			Gender: ptr(models.VoiceGender("robot")),
			Speed:  ptr(-2.0),
		},
	})

	assert.Equal(t, "en", got.InterfaceLanguage)
	assert.Equal(t, "ta", got.PreferredLanguage)
	assert.Equal(t, models.VoiceFemale, got.Voice.Gender)
	assert.Equal(t, 1.0, got.Voice.Speed)
}

func TestProject_ExcludesPanelFlag(t *testing.T) {
	s := Defaults()
	s.ShowSettingsPanel = true
	s.InterfaceLanguage = "ur"

	data, err := json.Marshal(Project(s))
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.ElementsMatch(t, []string{"interface", "preferred", "autoDetect", "voice"}, keys(raw))
	assert.Equal(t, "ur", raw["interface"])
}

func TestProjectThenFromPersisted_RoundTrip(t *testing.T) {
	s := models.Settings{
		InterfaceLanguage:  "bn",
		PreferredLanguage:  "ml",
		AutoDetectLanguage: false,
		Voice:              models.VoiceSettings{Enabled: false, Gender: models.VoiceMale, Speed: 1.5},
	}
	p := Project(s)

	assert.Equal(t, s, FromPersisted(Defaults(), &p))
}

func TestOverlayRemote_Precedence(t *testing.T) {
	persisted := FromPersisted(Defaults(), &models.PersistedPreferences{Interface: ptr("hi")})
	require.Equal(t, "hi", persisted.InterfaceLanguage)

	got := OverlayRemote(persisted, &models.LanguagePreferences{Interface: ptr("ta")})

	assert.Equal(t, "ta", got.InterfaceLanguage)
	assert.Equal(t, "en", got.PreferredLanguage)
}

func TestOverlayRemote_AbsentLeavesPersisted(t *testing.T) {
	persisted := FromPersisted(Defaults(), &models.PersistedPreferences{
		Interface: ptr("hi"),
		Preferred: ptr("mr"),
	})

	assert.Equal(t, persisted, OverlayRemote(persisted, nil))
	assert.Equal(t, persisted, OverlayRemote(persisted, &models.LanguagePreferences{}))
	assert.Equal(t, persisted, OverlayRemote(persisted, &models.LanguagePreferences{Preferred: ptr("")}))
	assert.Equal(t, persisted, OverlayRemote(persisted, &models.LanguagePreferences{Preferred: ptr("xx")}))
}

func TestOverlayRemote_OnlyPresentFields(t *testing.T) {
	s := Defaults()
	s.InterfaceLanguage = "gu"

	got := OverlayRemote(s, &models.LanguagePreferences{Preferred: ptr("pa")})

	assert.Equal(t, "pa", got.PreferredLanguage)
	assert.Equal(t, "gu", got.InterfaceLanguage)
}

func TestApply_VoiceGenderKeepsSiblings(t *testing.T) {
	s := Defaults()
	s.Voice.Speed = 1.25

	got, err := Apply(s, SetVoiceGender{Gender: models.VoiceMale})
	require.NoError(t, err)

	assert.Equal(t, models.VoiceMale, got.Voice.Gender)
	assert.True(t, got.Voice.Enabled)
	assert.Equal(t, 1.25, got.Voice.Speed)
}

func TestApply_VoiceToggleKeepsGenderAndSpeed(t *testing.T) {
	s := Defaults()
	s, err := Apply(s, SetVoiceGender{Gender: models.VoiceMale})
	require.NoError(t, err)
	s, err = Apply(s, SetVoiceSpeed{Speed: 0.75})
	require.NoError(t, err)

	off, err := Apply(s, SetVoiceEnabled{Enabled: false})
	require.NoError(t, err)
	on, err := Apply(off, SetVoiceEnabled{Enabled: true})
	require.NoError(t, err)

	assert.False(t, off.Voice.Enabled)
	assert.Equal(t, s.Voice, on.Voice)
}

func TestApply_ReplacesExactlyOneField(t *testing.T) {
	base := Defaults()
	cases := []struct {
		edit Edit
		want func(models.Settings) models.Settings
	}{
		{SetInterfaceLanguage{Code: "ur"}, func(s models.Settings) models.Settings { s.InterfaceLanguage = "ur"; return s }},
		{SetPreferredLanguage{Code: "te"}, func(s models.Settings) models.Settings { s.PreferredLanguage = "te"; return s }},
		{SetAutoDetect{Enabled: false}, func(s models.Settings) models.Settings { s.AutoDetectLanguage = false; return s }},
		{SetVoiceEnabled{Enabled: false}, func(s models.Settings) models.Settings { s.Voice.Enabled = false; return s }},
		{SetVoiceSpeed{Speed: 2}, func(s models.Settings) models.Settings { s.Voice.Speed = 2; return s }},
		{SetShowSettingsPanel{Show: true}, func(s models.Settings) models.Settings { s.ShowSettingsPanel = true; return s }},
	}

	for _, tc := range cases {
		got, err := Apply(base, tc.edit)
		require.NoError(t, err, tc.edit.Field())
		assert.Equal(t, tc.want(base), got, tc.edit.Field())
	}
}

func TestApply_NormalizesLanguageCodes(t *testing.T) {
	got, err := Apply(Defaults(), SetInterfaceLanguage{Code: "hi-IN"})
	require.NoError(t, err)
	assert.Equal(t, "hi", got.InterfaceLanguage)
}

func TestApply_RejectsInvalidValues(t *testing.T) {
	base := Defaults()
	for _, e := range []Edit{
		SetInterfaceLanguage{Code: "fr"},
		SetPreferredLanguage{Code: ""},
		SetVoiceGender{Gender: "robot"},
		SetVoiceSpeed{Speed: 0},
		nil,
	} {
		got, err := Apply(base, e)
		assert.ErrorIs(t, err, ErrInvalidEdit)
		assert.Equal(t, base, got)
	}
}

func TestValidate_MessageUsesJSONNames(t *testing.T) {
	s := Defaults()
	s.Voice.Gender = "robot"

	err := Validate(s)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "voice.gender")
}

func TestPersists(t *testing.T) {
	assert.False(t, Persists(SetShowSettingsPanel{Show: true}))
	assert.True(t, Persists(SetVoiceEnabled{}))
	assert.True(t, Persists(SetInterfaceLanguage{Code: "en"}))
}

func keys(m map[string]any) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
