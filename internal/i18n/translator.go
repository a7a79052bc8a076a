// Package i18n holds the client's translation table, the language catalogue
// and text direction rules.
package i18n

import (
	"log"
	"sort"
)

// DefaultLanguage is the fallback language for every lookup.
const DefaultLanguage = "en"

// MissingHandler is told about lookups that had to fall back.
// fallback is the text that was returned instead.
type MissingHandler func(key, lang, fallback string)

// Translator resolves UI strings. It is safe for concurrent use; the table is
// never written after NewTranslator returns.
type Translator struct {
	table     map[string]map[string]string
	onMissing MissingHandler
}

// Option configures a Translator.
type Option func(*translatorOptions)

type translatorOptions struct {
	onMissing  MissingHandler
	overlayDir string
}

// WithMissingHandler replaces the default log-based miss handler.
func WithMissingHandler(h MissingHandler) Option {
	return func(o *translatorOptions) {
		o.onMissing = h
	}
}

// WithOverlayDir merges <dir>/**/<lang>.json files over the built-in table.
func WithOverlayDir(dir string) Option {
	return func(o *translatorOptions) {
		o.overlayDir = dir
	}
}

func logMissing(key, lang, fallback string) {
	log.Printf("i18n: translation missing for key %q in language %q, using %q", key, lang, fallback)
}

// NewTranslator builds a translator from the built-in table plus any overlays.
func NewTranslator(opts ...Option) *Translator {
	o := translatorOptions{onMissing: logMissing}
	for _, opt := range opts {
		opt(&o)
	}
	if o.onMissing == nil {
		o.onMissing = func(string, string, string) {}
	}

	table := cloneTable(builtin)
	if o.overlayDir != "" {
		if err := applyOverlays(table, o.overlayDir); err != nil {
			log.Printf("i18n: overlay dir %s: %v", o.overlayDir, err)
		}
	}
	return &Translator{table: table, onMissing: o.onMissing}
}

// Get returns the text for key in lang, falling back to English and then to
// the key itself.
func (t *Translator) Get(key, lang string) string {
	text, ok := t.Lookup(key, lang)
	if !ok {
		t.onMissing(key, lang, text)
	}
	return text
}

// Lookup is Get without the miss notification. ok reports whether the exact
// (key, lang) entry was found.
func (t *Translator) Lookup(key, lang string) (string, bool) {
	entries := t.table[key]
	if text := entries[lang]; text != "" {
		return text, true
	}
	if text := entries[DefaultLanguage]; text != "" {
		return text, false
	}
	return key, false
}

// AvailableLanguages lists the language codes that have text for key.
func (t *Translator) AvailableLanguages(key string) []string {
	entries := t.table[key]
	langs := make([]string, 0, len(entries))
	for lang, text := range entries {
		if text != "" {
			langs = append(langs, lang)
		}
	}
	sort.Strings(langs)
	return langs
}

// Has reports whether key has non-empty text in lang.
func (t *Translator) Has(key, lang string) bool {
	return t.table[key][lang] != ""
}

// Keys returns every translation key, sorted.
func (t *Translator) Keys() []string {
	keys := make([]string, 0, len(t.table))
	for k := range t.table {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func cloneTable(src map[string]map[string]string) map[string]map[string]string {
	dst := make(map[string]map[string]string, len(src))
	for key, entries := range src {
		m := make(map[string]string, len(entries))
		for lang, text := range entries {
			m[lang] = text
		}
		dst[key] = m
	}
	return dst
}
