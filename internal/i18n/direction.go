package i18n

// Direction is a text layout direction.
type Direction string

const (
	LTR Direction = "ltr"
	RTL Direction = "rtl"
)

var rtlLanguages = map[string]struct{}{
	"ur": {},
	"ar": {},
	"fa": {},
	"he": {},
}

// TextDirection returns RTL for the right-to-left languages and LTR for
// everything else, unknown codes included.
func TextDirection(lang string) Direction {
	if IsRTL(lang) {
		return RTL
	}
	return LTR
}

// IsRTL reports whether lang is laid out right to left.
func IsRTL(lang string) bool {
	_, ok := rtlLanguages[lang]
	return ok
}
