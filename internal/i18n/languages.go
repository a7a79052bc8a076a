package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// Language describes one supported language.
type Language struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Native string `json:"native"`
}

var supported = []Language{
	{Code: "en", Name: "English", Native: "English"},
	{Code: "hi", Name: "Hindi", Native: "हिन्दी"},
	{Code: "ta", Name: "Tamil", Native: "தமிழ்"},
	{Code: "te", Name: "Telugu", Native: "తెలుగు"},
	{Code: "kn", Name: "Kannada", Native: "ಕನ್ನಡ"},
	{Code: "ml", Name: "Malayalam", Native: "മലയാളം"},
	{Code: "bn", Name: "Bengali", Native: "বাংলা"},
	{Code: "gu", Name: "Gujarati", Native: "ગુજરાતી"},
	{Code: "mr", Name: "Marathi", Native: "मराठी"},
	{Code: "pa", Name: "Punjabi", Native: "ਪੰਜਾਬੀ"},
	{Code: "as", Name: "Assamese", Native: "অসমীয়া"},
	{Code: "bo", Name: "Bodo", Native: "बड़ो"},
	{Code: "mni", Name: "Manipuri", Native: "মৈতৈলোন্"},
	{Code: "or", Name: "Odia", Native: "ଓଡ଼ିଆ"},
	{Code: "raj", Name: "Rajasthani", Native: "राजस्थानी"},
	{Code: "ur", Name: "Urdu", Native: "اردو"},
}

var supportedIndex = func() map[string]Language {
	m := make(map[string]Language, len(supported))
	for _, l := range supported {
		m[l.Code] = l
	}
	return m
}()

// SupportedLanguages returns the closed set of languages the client offers.
func SupportedLanguages() []Language {
	out := make([]Language, len(supported))
	copy(out, supported)
	return out
}

// SupportedCodes returns the supported language codes in catalogue order.
func SupportedCodes() []string {
	codes := make([]string, len(supported))
	for i, l := range supported {
		codes[i] = l.Code
	}
	return codes
}

// IsSupported reports exact membership in the catalogue.
func IsSupported(code string) bool {
	_, ok := supportedIndex[code]
	return ok
}

// LanguageByCode returns the catalogue entry for code.
func LanguageByCode(code string) (Language, bool) {
	l, ok := supportedIndex[code]
	return l, ok
}

// Normalize maps loosely written codes such as "HI", " en " or "en-US" to a
// supported catalogue code.
func Normalize(code string) (string, bool) {
	c := strings.ToLower(strings.TrimSpace(code))
	if c == "" {
		return "", false
	}
	if IsSupported(c) {
		return c, true
	}

	tag, err := language.Parse(c)
	if err != nil {
		return "", false
	}
	base, _ := tag.Base()
	if IsSupported(base.String()) {
		return base.String(), true
	}
	return "", false
}
