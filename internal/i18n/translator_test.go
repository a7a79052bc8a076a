package i18n

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type miss struct {
	key, lang, fallback string
}

func recordingTranslator(opts ...Option) (*Translator, *[]miss) {
	var misses []miss
	opts = append(opts, WithMissingHandler(func(key, lang, fallback string) {
		misses = append(misses, miss{key, lang, fallback})
	}))
	return NewTranslator(opts...), &misses
}

func TestTranslatorGet_ExactMatch(t *testing.T) {
	tr, misses := recordingTranslator()

	assert.Equal(t, "सेटिंग्स", tr.Get("settings", "hi"))
	assert.Equal(t, "Settings", tr.Get("settings", "en"))
	assert.Empty(t, *misses)
}

func TestTranslatorGet_FallsBackToEnglish(t *testing.T) {
	tr, misses := recordingTranslator()

	assert.Equal(t, "Settings", tr.Get("settings", "fr"))
	require.Len(t, *misses, 1)
	assert.Equal(t, miss{"settings", "fr", "Settings"}, (*misses)[0])
}

func TestTranslatorGet_UnknownKeyReturnsKey(t *testing.T) {
	tr, misses := recordingTranslator()

	assert.Equal(t, "noSuchKey", tr.Get("noSuchKey", "hi"))
	require.Len(t, *misses, 1)
	assert.Equal(t, "noSuchKey", (*misses)[0].fallback)
}

func TestTranslatorGet_NeverEmptyForEnglishKeys(t *testing.T) {
	tr := NewTranslator(WithMissingHandler(nil))

	for _, key := range tr.Keys() {
		if !tr.Has(key, DefaultLanguage) {
			continue
		}
		for _, lang := range SupportedCodes() {
			got := tr.Get(key, lang)
			assert.NotEmpty(t, got, "key %s lang %s", key, lang)
			if tr.Has(key, lang) {
				assert.Equal(t, builtin[key][lang], got)
			} else {
				assert.Equal(t, builtin[key][DefaultLanguage], got)
			}
		}
	}
}

func TestTranslatorAvailableLanguages(t *testing.T) {
	tr := NewTranslator()

	langs := tr.AvailableLanguages("settings")
	assert.Len(t, langs, 16)
	assert.Contains(t, langs, "ur")
	assert.IsIncreasing(t, langs)

	assert.Empty(t, tr.AvailableLanguages("noSuchKey"))
}

func TestTranslatorHas(t *testing.T) {
	tr := NewTranslator()

	assert.True(t, tr.Has("endConsultation", "ta"))
	assert.False(t, tr.Has("endConsultation", "fr"))
	assert.False(t, tr.Has("noSuchKey", "en"))
}

func TestTranslatorOverlayDir(t *testing.T) {
	dir := t.TempDir()
	nested := filepath.Join(dir, "extra")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "fr.json"), []byte(`{"settings":"Paramètres"}`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(nested, "en.json"), []byte(`{"welcome":"Welcome"}`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(nested, "hi.json"), []byte(`not json`), 0o644))

	tr, misses := recordingTranslator(WithOverlayDir(dir))

	assert.Equal(t, "Paramètres", tr.Get("settings", "fr"))
	assert.Equal(t, "Welcome", tr.Get("welcome", "ta"))
	assert.Equal(t, "सेटिंग्स", tr.Get("settings", "hi"))
	assert.Len(t, *misses, 1)
}

func TestTranslatorOverlayDoesNotLeakIntoBuiltin(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "en.json"), []byte(`{"settings":"Preferences"}`), 0o644))

	overlaid := NewTranslator(WithOverlayDir(dir))
	plain := NewTranslator()

	assert.Equal(t, "Preferences", overlaid.Get("settings", "en"))
	assert.Equal(t, "Settings", plain.Get("settings", "en"))
}

func TestTranslatorMissingOverlayDirIsIgnored(t *testing.T) {
	tr := NewTranslator(WithOverlayDir(filepath.Join(t.TempDir(), "absent")))

	assert.Equal(t, "Settings", tr.Get("settings", "en"))
}
